// Package pkg exposes the path-level operations the CLI (and historically
// the GUI) call into: read preset info, rewrite a plugin code in place,
// compare two presets, register a signature.
package pkg

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/absoluteskid/fxputil-go/pkg/fxp"
)

// Info is everything readInfo surfaces about one preset file.
type Info struct {
	Path        string
	PluginName  string
	CompanyName string
	Code        string
	CodeBytes   [4]byte
	Version     uint32
	ProgramName string
	Kind        fxp.Kind
	NumParams   uint32
	ChunkBytes  int
	FileSize    int64
	Checksum    string

	DeclaredSize uint32
	SizeMismatch bool
}

// ReadInfo parses the preset at path and resolves its plugin identity
// against table.
func ReadInfo(path string, table fxp.Lookup, logger hclog.Logger) (*Info, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return buildInfo(path, buf, table, logger)
}

func buildInfo(path string, buf []byte, table fxp.Lookup, logger hclog.Logger) (*Info, error) {
	preset, err := fxp.Parse(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if preset.SizeMismatch {
		logger.Warn("⚠️ declared byteSize disagrees with file length",
			"path", path, "declared", preset.ByteSize, "actual", len(buf))
	}

	entry := fxp.NewResolver(table).Resolve(preset.PluginCode)
	return &Info{
		Path:         path,
		PluginName:   entry.Name,
		CompanyName:  entry.Company,
		Code:         preset.CodeString(),
		CodeBytes:    preset.PluginCode,
		Version:      preset.Version,
		ProgramName:  preset.ProgramName,
		Kind:         preset.Kind,
		NumParams:    preset.NumParams,
		ChunkBytes:   len(preset.ChunkData),
		FileSize:     int64(len(buf)),
		Checksum:     fxp.Checksum(buf, fxp.ChecksumSHA256),
		DeclaredSize: preset.ByteSize,
		SizeMismatch: preset.SizeMismatch,
	}, nil
}

// SetCode rewrites the preset at path in place with a new 4-byte plugin
// code. The patch is atomic from the caller's view: validation happens
// before any byte of the file changes.
func SetCode(path, code string, logger hclog.Logger) error {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	patched, err := fxp.PatchCode(buf, []byte(code))
	if err != nil {
		return err
	}

	mode := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode()
	}
	if err := os.WriteFile(path, patched, mode); err != nil {
		return err
	}
	logger.Info("🔧 plugin code set", "path", path, "code", code)
	return nil
}

// Comparison pairs two file infos with their byte-level diff.
type Comparison struct {
	A, B   *Info
	Report *fxp.DiffReport

	SameCode    bool
	SamePlugin  bool
	SameCompany bool
}

// ComparePresets diffs the first window bytes of two preset files. Buffers
// that fail to parse still get compared byte for byte; their identity side
// just stays nil.
func ComparePresets(pathA, pathB string, window int, table fxp.Lookup, logger hclog.Logger) (*Comparison, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	bufA, err := os.ReadFile(pathA)
	if err != nil {
		return nil, err
	}
	bufB, err := os.ReadFile(pathB)
	if err != nil {
		return nil, err
	}

	cmp := &Comparison{Report: fxp.Compare(bufA, bufB, window)}

	if info, err := buildInfo(pathA, bufA, table, logger); err == nil {
		cmp.A = info
	} else {
		logger.Debug("left side did not parse", "path", pathA, "error", err)
	}
	if info, err := buildInfo(pathB, bufB, table, logger); err == nil {
		cmp.B = info
	} else {
		logger.Debug("right side did not parse", "path", pathB, "error", err)
	}

	if cmp.A != nil && cmp.B != nil {
		cmp.SameCode = cmp.A.CodeBytes == cmp.B.CodeBytes
		cmp.SamePlugin = cmp.A.PluginName == cmp.B.PluginName
		cmp.SameCompany = cmp.A.CompanyName == cmp.B.CompanyName
	}
	return cmp, nil
}

// RegisterEntry validates a signature and stores it through table.
func RegisterEntry(table fxp.Lookup, code, name, company string) error {
	code = strings.TrimSpace(code)
	if len(code) != fxp.CodeSize {
		return fmt.Errorf("%w: got %d", fxp.ErrInvalidCodeLength, len(code))
	}
	name = strings.TrimSpace(name)
	company = strings.TrimSpace(company)
	if name == "" || company == "" {
		return fmt.Errorf("%w: name and company are required", fxp.ErrInvalidArgument)
	}

	var key [4]byte
	copy(key[:], code)
	return fxp.NewResolver(table).Register(key, fxp.Entry{Name: name, Company: company})
}
