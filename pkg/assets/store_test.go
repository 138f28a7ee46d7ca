package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golker16/pizarra/pkg/models"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "assets"))
	require.NoError(t, err)
	return s
}

func TestAdd(t *testing.T) {
	s := newStore(t)

	src := filepath.Join(t.TempDir(), "photo.PNG")
	require.NoError(t, os.WriteFile(src, []byte("png-bytes"), 0644))

	ref, err := s.Add(src)
	require.NoError(t, err)
	assert.Equal(t, ".png", filepath.Ext(ref), "extension is kept lower-cased")

	path := s.Resolve(ref)
	require.NotEmpty(t, path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestAddMissingSource(t *testing.T) {
	s := newStore(t)

	ref, err := s.Add(filepath.Join(t.TempDir(), "nope.png"))
	assert.Empty(t, ref, "callers treat an empty reference as no asset")
	assert.ErrorIs(t, err, models.ErrAssetUnavailable)

	_, err = s.Add("")
	assert.ErrorIs(t, err, models.ErrAssetUnavailable)
}

func TestAddBytes(t *testing.T) {
	s := newStore(t)

	ref, err := s.AddBytes([]byte{0x89, 0x50}, "png")
	require.NoError(t, err)
	assert.Equal(t, ".png", filepath.Ext(ref))
	assert.NotEmpty(t, s.Resolve(ref))
}

func TestResolve(t *testing.T) {
	s := newStore(t)

	assert.Empty(t, s.Resolve(""))
	assert.Empty(t, s.Resolve("gone.png"), "a manually deleted attachment is never fatal")
}

func TestDuplicateIsIndependent(t *testing.T) {
	s := newStore(t)

	ref, err := s.AddBytes([]byte("original"), ".wav")
	require.NoError(t, err)

	dup, err := s.Duplicate(ref)
	require.NoError(t, err)
	require.NotEmpty(t, dup)
	assert.NotEqual(t, ref, dup)

	// Removing the duplicate leaves the original untouched.
	require.NoError(t, os.Remove(s.Resolve(dup)))
	assert.NotEmpty(t, s.Resolve(ref))
}

func TestDuplicateMissing(t *testing.T) {
	s := newStore(t)

	dup, err := s.Duplicate("")
	require.NoError(t, err)
	assert.Empty(t, dup)

	dup, err = s.Duplicate("vanished.png")
	require.NoError(t, err)
	assert.Empty(t, dup)
}
