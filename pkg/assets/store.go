// Package assets holds binary attachments (images, audio) referenced by
// notes, decoupled from the project file. References are relative file
// names under the store directory: a fresh random id plus the original
// extension, so a reference never collides and never aliases another
// note's attachment.
package assets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golker16/pizarra/pkg/models"
)

// Store is a directory of attachment files.
type Store struct {
	dir string
}

// New opens (creating if needed) an asset store rooted at dir.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create assets dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store's root directory.
func (s *Store) Dir() string {
	return s.dir
}

// Add copies the content of sourcePath into the store under a fresh id,
// keeping the original extension lower-cased. Returns the relative
// reference, or an empty reference with ErrAssetUnavailable when the source
// is missing or the copy fails; callers treat an empty reference as "no
// asset".
func (s *Store) Add(sourcePath string) (string, error) {
	if sourcePath == "" {
		return "", fmt.Errorf("empty source path: %w", models.ErrAssetUnavailable)
	}
	src, err := os.Open(sourcePath)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", sourcePath, models.ErrAssetUnavailable)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(sourcePath))
	ref := models.NewID() + ext
	if err := s.write(ref, src); err != nil {
		return "", err
	}
	return ref, nil
}

// AddBytes stores in-memory binary data (for example a clipboard-pasted
// image) under a fresh id with the given extension.
func (s *Store) AddBytes(data []byte, ext string) (string, error) {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	ref := models.NewID() + ext
	if err := os.WriteFile(filepath.Join(s.dir, ref), data, 0644); err != nil {
		return "", fmt.Errorf("write asset: %w", models.ErrAssetUnavailable)
	}
	return ref, nil
}

// Resolve returns the absolute path for a reference, or "" when the
// reference is empty or the file is missing. A manually deleted attachment
// is never fatal.
func (s *Store) Resolve(ref string) string {
	if ref == "" {
		return ""
	}
	path := filepath.Join(s.dir, ref)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// Duplicate re-stores the content behind ref under a fresh id. Every paste
// of a note with an attachment goes through here so that deleting one
// note's asset can never affect another note. Returns "" (no error) when
// the source reference is empty or its file has gone missing.
func (s *Store) Duplicate(ref string) (string, error) {
	path := s.Resolve(ref)
	if path == "" {
		return "", nil
	}
	return s.Add(path)
}

func (s *Store) write(ref string, src io.Reader) error {
	dst, err := os.Create(filepath.Join(s.dir, ref))
	if err != nil {
		return fmt.Errorf("create asset: %w", models.ErrAssetUnavailable)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return fmt.Errorf("copy asset: %w", models.ErrAssetUnavailable)
	}
	return dst.Close()
}
