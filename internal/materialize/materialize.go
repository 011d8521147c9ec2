// Package materialize is the filesystem boundary: the capability
// interface consumed by the scaffold applier and the validator, plus
// its real-filesystem implementation.
package materialize

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	oerrors "github.com/pubforge/cli/internal/errors"
)

// Materializer is the capability surface the core needs from the
// filesystem. The core never retries these calls; a failure aborts the
// remaining plan and surfaces to the caller.
type Materializer interface {
	// EnsureDir creates a directory (and missing parents).
	EnsureDir(path string) error

	// WriteFile writes content to path. Without overwrite an existing
	// file is an errors.ErrAlreadyExists failure and the file is left
	// untouched.
	WriteFile(path string, content []byte, overwrite bool) error

	// ReadFile returns the content of path, or errors.ErrNotFound.
	ReadFile(path string) ([]byte, error)

	// Exists reports whether path exists at all.
	Exists(path string) bool
}

// OS is the real-filesystem Materializer.
type OS struct{}

var _ Materializer = OS{}

// EnsureDir implements Materializer.
func (OS) EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return oerrors.NewIOError("creating directory", path, err)
	}
	return nil
}

// WriteFile implements Materializer. The write is all-or-nothing at
// single-file granularity: content lands under a temporary name and is
// renamed into place.
func (OS) WriteFile(path string, content []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Lstat(path); err == nil {
			return oerrors.NewAlreadyExistsError(
				fmt.Sprintf("file already exists: %s", path),
				path,
				"Pass --force to overwrite existing files.",
			)
		}
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return oerrors.NewIOError("creating file", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return oerrors.NewIOError("writing file", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return oerrors.NewIOError("writing file", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return oerrors.NewIOError("writing file", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return oerrors.NewIOError("writing file", path, err)
	}
	return nil
}

// ReadFile implements Materializer.
func (OS) ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, oerrors.Wrap(oerrors.ErrNotFound, path)
		}
		return nil, oerrors.NewIOError("reading file", path, err)
	}
	return content, nil
}

// Exists implements Materializer.
func (OS) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
