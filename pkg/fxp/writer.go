package fxp

import "fmt"

// PatchCode returns a copy of buf with the 4 bytes at the plugin-code offset
// replaced by code. Every other byte is preserved verbatim, stale byteSize
// included; nothing is re-validated and persisting the result is the
// caller's job.
func PatchCode(buf, code []byte) ([]byte, error) {
	if len(code) != CodeSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCodeLength, len(code))
	}
	if len(buf) < OffsetPluginCode+CodeSize {
		return nil, fmt.Errorf("%w: buffer is %d bytes, plugin code field ends at %d",
			ErrMalformedPreset, len(buf), OffsetPluginCode+CodeSize)
	}

	out := make([]byte, len(buf))
	copy(out, buf)
	copy(out[OffsetPluginCode:], code)
	return out, nil
}
