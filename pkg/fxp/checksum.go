// Checksums use the prefixed "algorithm:hexvalue" form (e.g.
// "sha256:c0ffee123...", "adler32:babe1337").
package fxp

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"hash/adler32"
)

// ChecksumAlgorithm selects a supported checksum algorithm.
type ChecksumAlgorithm int

const (
	ChecksumSHA256 ChecksumAlgorithm = iota
	ChecksumAdler32
)

func (c ChecksumAlgorithm) String() string {
	if c == ChecksumAdler32 {
		return "adler32"
	}
	return "sha256"
}

// Checksum calculates a prefixed checksum of data.
func Checksum(data []byte, algorithm ChecksumAlgorithm) string {
	var h hash.Hash
	switch algorithm {
	case ChecksumAdler32:
		h = adler32.New()
	default:
		h = sha256.New()
	}
	h.Write(data)
	return algorithm.String() + ":" + hex.EncodeToString(h.Sum(nil))
}
