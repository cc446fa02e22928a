// Package sigdb persists the plugin signature table as a JSON array of
// {code, name, company} objects, file-compatible with the signatures.json
// shipped by the upstream tool.
package sigdb

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/absoluteskid/fxputil-go/pkg/fxp"
)

var ErrNotFound = errors.New("❌ no signature for code")

// Record is one row of signatures.json.
type Record struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Company string `json:"company"`
}

// Store is a JSON-file-backed signature table. It satisfies fxp.Lookup.
// Single writer assumed; concurrent mutation is the caller's problem.
type Store struct {
	path   string
	table  map[[4]byte]fxp.Entry
	logger hclog.Logger
}

// Open loads the table at path. A missing file is not an error: the store
// starts from the builtin seed table and materializes on first save.
func Open(path string, logger hclog.Logger) (*Store, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	s := &Store{
		path:   path,
		table:  make(map[[4]byte]fxp.Entry),
		logger: logger,
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Debug("no signature table on disk, seeding defaults", "path", path)
		for code, e := range builtinSignatures {
			s.table[code] = e
		}
		return s, nil
	}
	if err != nil {
		return nil, err
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	s.load(records)
	return s, nil
}

// load replaces the in-memory table, dropping rows whose trimmed code is not
// exactly 4 bytes.
func (s *Store) load(records []Record) {
	s.table = make(map[[4]byte]fxp.Entry, len(records))
	for _, rec := range records {
		code, ok := codeKey(rec.Code)
		if !ok {
			s.logger.Warn("⚠️ skipping signature with bad code", "code", rec.Code)
			continue
		}
		s.table[code] = fxp.Entry{
			Name:    strings.TrimSpace(rec.Name),
			Company: strings.TrimSpace(rec.Company),
		}
	}
}

// codeKey converts a JSON code string to an exact 4-byte key.
func codeKey(code string) ([4]byte, bool) {
	var key [4]byte
	trimmed := strings.TrimSpace(code)
	if len(trimmed) != fxp.CodeSize {
		return key, false
	}
	copy(key[:], trimmed)
	return key, true
}

// Get implements fxp.Lookup.
func (s *Store) Get(code [4]byte) (fxp.Entry, bool) {
	e, ok := s.table[code]
	return e, ok
}

// Put adds or overwrites the entry for code and saves. Implements
// fxp.Lookup.
func (s *Store) Put(code [4]byte, e fxp.Entry) error {
	s.table[code] = e
	return s.Save()
}

// Remove deletes the entry for code and saves.
func (s *Store) Remove(code [4]byte) error {
	if _, ok := s.table[code]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, code[:])
	}
	delete(s.table, code)
	return s.Save()
}

// Edit re-keys an existing entry, replacing code, name and company at once.
func (s *Store) Edit(code, newCode [4]byte, e fxp.Entry) error {
	if _, ok := s.table[code]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, code[:])
	}
	delete(s.table, code)
	s.table[newCode] = e
	return s.Save()
}

// All returns every record sorted by code.
func (s *Store) All() []Record {
	records := make([]Record, 0, len(s.table))
	for code, e := range s.table {
		records = append(records, Record{
			Code:    string(code[:]),
			Name:    e.Name,
			Company: e.Company,
		})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Code < records[j].Code })
	return records
}

// Len returns the number of registered signatures.
func (s *Store) Len() int {
	return len(s.table)
}

// Path returns the on-disk location of the table.
func (s *Store) Path() string {
	return s.path
}

// Save writes the table back out with the upstream tool's 4-space indent.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.All(), "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
