// Package fxp reads and patches VST preset containers (.fxp) and diffs raw
// preset buffers. All operations are pure computations over in-memory bytes;
// file I/O belongs to the caller.
package fxp

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// Kind discriminates the two payload layouts selected by the fxMagic tag.
type Kind int

const (
	KindParams Kind = iota // "FxCk": numParams big-endian floats
	KindChunk              // "FPCh": opaque chunk of chunkSize bytes
)

func (k Kind) String() string {
	if k == KindChunk {
		return "opaque chunk"
	}
	return "parameter list"
}

// Preset is the parsed form of an FXP buffer. Integer fields are big-endian
// on disk and native here. PluginCode is an opaque tag, never byte-swapped.
type Preset struct {
	ContainerMagic [4]byte
	ByteSize       uint32 // declared size, diagnostic only
	FxMagic        [4]byte
	Version        uint32
	PluginCode     [4]byte
	ProgramName    string

	Kind      Kind
	NumParams uint32
	Params    []float32
	ChunkData []byte

	// SizeMismatch is set when the declared byteSize disagrees with the
	// actual buffer length. Hand-edited presets routinely carry stale
	// sizes, so this stays diagnostic and never fails a parse.
	SizeMismatch bool
}

// CodeString renders the plugin code for display.
func (p *Preset) CodeString() string {
	return CodeString(p.PluginCode)
}

// CodeString renders a 4-byte plugin code, masking non-printable bytes.
func CodeString(code [4]byte) string {
	out := make([]byte, CodeSize)
	for i, b := range code {
		if b < 0x20 || b > 0x7E {
			out[i] = '.'
			continue
		}
		out[i] = b
	}
	return string(out)
}

// Parse reads an FXP buffer into a Preset. Same bytes in, same record out;
// the buffer is not retained.
func Parse(buf []byte) (*Preset, error) {
	if len(buf) < HeaderSize {
		return nil, fmt.Errorf("%w: buffer is %d bytes, fixed header needs %d",
			ErrMalformedPreset, len(buf), HeaderSize)
	}
	if !bytes.Equal(buf[OffsetContainerMagic:OffsetContainerMagic+4], ContainerMagic) {
		return nil, fmt.Errorf("%w: chunkMagic %q", ErrUnrecognizedContainer, buf[:4])
	}

	p := &Preset{}
	copy(p.ContainerMagic[:], buf[OffsetContainerMagic:])
	p.ByteSize = binary.BigEndian.Uint32(buf[OffsetByteSize:])
	copy(p.FxMagic[:], buf[OffsetFxMagic:])
	p.Version = binary.BigEndian.Uint32(buf[OffsetVersion:])
	copy(p.PluginCode[:], buf[OffsetPluginCode:])
	p.ProgramName = trimName(buf[OffsetProgramName : OffsetProgramName+ProgramNameSize])

	// byteSize declares the file size minus the first 8 bytes
	if uint64(p.ByteSize) != uint64(len(buf)-8) {
		p.SizeMismatch = true
	}

	count := binary.BigEndian.Uint32(buf[OffsetCount:])
	payload := buf[HeaderSize:]

	switch {
	case bytes.Equal(p.FxMagic[:], MagicParams):
		p.Kind = KindParams
		p.NumParams = count
		if uint64(count)*4 > uint64(len(payload)) {
			return nil, fmt.Errorf("%w: numParams %d exceeds buffer", ErrMalformedPreset, count)
		}
		p.Params = make([]float32, count)
		for i := range p.Params {
			p.Params[i] = math.Float32frombits(binary.BigEndian.Uint32(payload[i*4:]))
		}
	case bytes.Equal(p.FxMagic[:], MagicChunk):
		p.Kind = KindChunk
		if uint64(count) > uint64(len(payload)) {
			return nil, fmt.Errorf("%w: chunkSize %d exceeds buffer", ErrMalformedPreset, count)
		}
		p.ChunkData = make([]byte, count)
		copy(p.ChunkData, payload)
	default:
		// Bank tags (FxBk/FBCh) land here too: banks are a different
		// container layout, not a preset.
		return nil, fmt.Errorf("%w: fxMagic %q", ErrUnrecognizedContainer, p.FxMagic[:])
	}

	return p, nil
}

// trimName cuts a fixed-width name field at its first NUL.
func trimName(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
