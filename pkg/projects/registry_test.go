package projects

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r
}

func TestAddAndGet(t *testing.T) {
	r := newRegistry(t)

	e, err := r.Add("roadmap")
	require.NoError(t, err)
	assert.Equal(t, "roadmap", e.Name)
	assert.Equal(t, ".json", filepath.Ext(e.Path))

	got, err := r.Get("roadmap")
	require.NoError(t, err)
	assert.Equal(t, e.Path, got.Path)
}

func TestAddRejectsDuplicatesAndBadNames(t *testing.T) {
	r := newRegistry(t)

	_, err := r.Add("roadmap")
	require.NoError(t, err)
	_, err = r.Add("roadmap")
	assert.Error(t, err)

	for _, name := range []string{"", "../escape", "a b", ".hidden"} {
		_, err := r.Add(name)
		assert.Error(t, err, "name %q must be rejected", name)
	}
}

func TestGetMissing(t *testing.T) {
	r := newRegistry(t)
	_, err := r.Get("nope")
	assert.Error(t, err)
}

func TestListOrdersByLastUsed(t *testing.T) {
	r := newRegistry(t)

	_, err := r.Add("first")
	require.NoError(t, err)
	_, err = r.Add("second")
	require.NoError(t, err)

	_, err = r.Use("first")
	require.NoError(t, err)

	entries, err := r.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0].Name)
}

func TestUseAndCurrent(t *testing.T) {
	r := newRegistry(t)

	cur, err := r.Current()
	require.NoError(t, err)
	assert.Nil(t, cur, "no selection on a fresh registry")

	_, err = r.Use("ghost")
	assert.Error(t, err)

	_, err = r.Add("roadmap")
	require.NoError(t, err)
	_, err = r.Use("roadmap")
	require.NoError(t, err)

	cur, err = r.Current()
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, "roadmap", cur.Name)
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRegistry(dir)
	require.NoError(t, err)
	defer r.Close()

	e, err := r.Add("roadmap")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(e.Path, []byte("{}"), 0644))
	_, err = r.Use("roadmap")
	require.NoError(t, err)

	require.NoError(t, r.Remove("roadmap", false))
	_, err = r.Get("roadmap")
	assert.Error(t, err)

	cur, err := r.Current()
	require.NoError(t, err)
	assert.Nil(t, cur, "removing the active project clears the selection")

	_, err = os.Stat(e.Path)
	assert.NoError(t, err, "without purge the file stays")
}

func TestRemovePurge(t *testing.T) {
	r := newRegistry(t)

	e, err := r.Add("scratch")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(e.Path, []byte("{}"), 0644))

	require.NoError(t, r.Remove("scratch", true))
	_, err = os.Stat(e.Path)
	assert.True(t, os.IsNotExist(err))

	// Purging a project whose file never existed is fine.
	e, err = r.Add("empty")
	require.NoError(t, err)
	require.NoError(t, r.Remove("empty", true))
}
