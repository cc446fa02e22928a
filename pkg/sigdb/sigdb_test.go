package sigdb

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/absoluteskid/fxputil-go/pkg/fxp"
)

var syl1 = [4]byte{'s', 'y', 'l', '1'}

func tempStorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "signatures.json")
}

func TestOpenMissingFileSeedsDefaults(t *testing.T) {
	store, err := Open(tempStorePath(t), nil)
	require.NoError(t, err)

	entry, ok := store.Get(syl1)
	require.True(t, ok, "builtin table must know syl1")
	assert.Equal(t, "Sylenth1", entry.Name)
	assert.Equal(t, "LennarDigital", entry.Company)
}

func TestPutSaveReload(t *testing.T) {
	path := tempStorePath(t)
	store, err := Open(path, nil)
	require.NoError(t, err)

	code := [4]byte{'t', 'e', 's', 't'}
	require.NoError(t, store.Put(code, fxp.Entry{Name: "Test Synth", Company: "Test Co"}))

	reloaded, err := Open(path, nil)
	require.NoError(t, err)
	entry, ok := reloaded.Get(code)
	require.True(t, ok)
	assert.Equal(t, "Test Synth", entry.Name)
	assert.Equal(t, "Test Co", entry.Company)
	assert.Equal(t, store.Len(), reloaded.Len())
}

func TestRemove(t *testing.T) {
	path := tempStorePath(t)
	store, err := Open(path, nil)
	require.NoError(t, err)

	require.NoError(t, store.Remove(syl1))
	_, ok := store.Get(syl1)
	assert.False(t, ok)

	err = store.Remove(syl1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEditRekeys(t *testing.T) {
	path := tempStorePath(t)
	store, err := Open(path, nil)
	require.NoError(t, err)

	newCode := [4]byte{'s', 'y', 'l', '2'}
	require.NoError(t, store.Edit(syl1, newCode, fxp.Entry{Name: "Sylenth2", Company: "LennarDigital"}))

	_, ok := store.Get(syl1)
	assert.False(t, ok, "old code must be gone")
	entry, ok := store.Get(newCode)
	require.True(t, ok)
	assert.Equal(t, "Sylenth2", entry.Name)

	err = store.Edit([4]byte{'n', 'o', 'p', 'e'}, newCode, fxp.Entry{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadSkipsBadCodes(t *testing.T) {
	path := tempStorePath(t)
	raw := `[
    {"code": "syl1", "name": "Sylenth1", "company": "LennarDigital"},
    {"code": "abc", "name": "Too Short", "company": "Nobody"},
    {"code": "toolong", "name": "Too Long", "company": "Nobody"},
    {"code": " Spir ", "name": "Spire", "company": "Reveal Sound"}
]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	store, err := Open(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, store.Len(), "only the 4-byte codes survive")

	// Codes are trimmed the way the upstream tool trims them
	entry, ok := store.Get([4]byte{'S', 'p', 'i', 'r'})
	require.True(t, ok)
	assert.Equal(t, "Spire", entry.Name)
}

func TestSaveWritesUpstreamFormat(t *testing.T) {
	path := tempStorePath(t)
	store, err := Open(path, nil)
	require.NoError(t, err)
	require.NoError(t, store.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var records []Record
	require.NoError(t, json.Unmarshal(data, &records))
	assert.Len(t, records, store.Len())

	// Sorted by code, 4-space indent like the original signatures.json
	for i := 1; i < len(records); i++ {
		assert.Less(t, records[i-1].Code, records[i].Code)
	}
	assert.Contains(t, string(data), "\n    {")
}

func TestOpenRejectsGarbage(t *testing.T) {
	path := tempStorePath(t)
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := Open(path, nil)
	assert.Error(t, err)
}
