package fxp

import (
	"bytes"
	"errors"
	"testing"
)

func TestPatchCode(t *testing.T) {
	buf := buildParamPreset("syl1", "Lead", []float32{0.1, 0.9})

	patched, err := PatchCode(buf, []byte("abcd"))
	if err != nil {
		t.Fatalf("PatchCode failed: %v", err)
	}

	p, err := Parse(patched)
	if err != nil {
		t.Fatalf("patched buffer no longer parses: %v", err)
	}
	want := [4]byte{0x61, 0x62, 0x63, 0x64}
	if p.PluginCode != want {
		t.Errorf("PluginCode = %x, want %x", p.PluginCode, want)
	}

	// Exactly the four code bytes may differ
	report := Compare(buf, patched, len(buf))
	if len(report.Diffs) != CodeSize {
		t.Fatalf("patch touched %d bytes, want %d", len(report.Diffs), CodeSize)
	}
	for i, d := range report.Diffs {
		if d.Offset != OffsetPluginCode+i {
			t.Errorf("diff %d at offset %d, want %d", i, d.Offset, OffsetPluginCode+i)
		}
	}
}

func TestPatchCodeIdempotent(t *testing.T) {
	buf := buildChunkPreset("syl1", "Pad", []byte{1, 2, 3, 4})

	once, err := PatchCode(buf, []byte("abcd"))
	if err != nil {
		t.Fatalf("PatchCode failed: %v", err)
	}
	twice, err := PatchCode(once, []byte("abcd"))
	if err != nil {
		t.Fatalf("PatchCode failed: %v", err)
	}
	if !bytes.Equal(once, twice) {
		t.Error("applying the same code twice changed the buffer")
	}
}

func TestPatchCodePreservesStaleSize(t *testing.T) {
	buf := buildParamPreset("syl1", "", nil)
	buf[OffsetByteSize] = 0xFF // stale on purpose

	patched, err := PatchCode(buf, []byte("abcd"))
	if err != nil {
		t.Fatalf("PatchCode failed: %v", err)
	}
	if patched[OffsetByteSize] != 0xFF {
		t.Error("patch rewrote the declared byteSize")
	}
}

func TestPatchCodeDoesNotMutateInput(t *testing.T) {
	buf := buildParamPreset("syl1", "", nil)
	before := make([]byte, len(buf))
	copy(before, buf)

	if _, err := PatchCode(buf, []byte("abcd")); err != nil {
		t.Fatalf("PatchCode failed: %v", err)
	}
	if !bytes.Equal(buf, before) {
		t.Error("input buffer was mutated")
	}
}

func TestPatchCodeRejectsBadLength(t *testing.T) {
	buf := buildParamPreset("syl1", "", nil)
	before := make([]byte, len(buf))
	copy(before, buf)

	for _, code := range [][]byte{nil, []byte("abc"), []byte("abcde")} {
		if _, err := PatchCode(buf, code); !errors.Is(err, ErrInvalidCodeLength) {
			t.Errorf("PatchCode(%q) error = %v, want ErrInvalidCodeLength", code, err)
		}
	}
	// Failed patches leave nothing behind
	if !bytes.Equal(buf, before) {
		t.Error("rejected patch still mutated the buffer")
	}
}

func TestPatchCodeShortBuffer(t *testing.T) {
	short := make([]byte, OffsetPluginCode+CodeSize-1)
	if _, err := PatchCode(short, []byte("abcd")); !errors.Is(err, ErrMalformedPreset) {
		t.Errorf("PatchCode on short buffer error = %v, want ErrMalformedPreset", err)
	}
}
