// Package fs provides the file system adapter used to read sources and write generated code.
package fs

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/esb/internal/core/domain"
	"go.trai.ch/esb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSync = (*Sync)(nil)

// Sync implements ports.FileSync on the local file system.
type Sync struct{}

// NewSync creates a new Sync.
func NewSync() *Sync {
	return &Sync{}
}

// ReadFile returns the content of the file at path.
func (s *Sync) ReadFile(path string) (string, error) {
	//nolint:gosec // Path comes from the resolved project configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}
	return string(data), nil
}

// WriteIfChanged writes content to path unless the file already holds exactly
// that content. An unreadable existing file is treated as changed.
func (s *Sync) WriteIfChanged(path, content string) (bool, error) {
	//nolint:gosec // Path comes from the resolved project configuration
	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, []byte(content)) {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrDirCreateFailed.Error()), "path", filepath.Dir(path))
	}

	//nolint:gosec // Generated sources are meant to be world readable
	if err := os.WriteFile(path, []byte(content), domain.FilePerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", path)
	}

	return true, nil
}

// Exists reports whether path exists.
func (s *Sync) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}

// Glob returns the files matching pattern in lexical order.
func (s *Sync) Glob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrGlobFailed.Error()), "pattern", pattern)
	}

	files := matches[:0]
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && !info.IsDir() {
			files = append(files, m)
		}
	}
	slices.Sort(files)

	return files, nil
}
