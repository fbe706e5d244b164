// Package store implements the document store backends.
package store

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/zerr"
)

const tempPattern = ".nexon-*.tmp"

// FileStore implements ports.DocumentStore with one file per key under a root directory.
type FileStore struct {
	root string
}

// NewFileStore creates a FileStore rooted at root, creating the directory if needed.
func NewFileStore(root string) (*FileStore, error) {
	root = filepath.Clean(root)
	if err := os.MkdirAll(root, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", root)
	}
	return &FileStore{root: root}, nil
}

// Root returns the directory the store writes to.
func (s *FileStore) Root() string {
	return s.root
}

// Get returns the document at key.
func (s *FileStore) Get(key string) ([]byte, error) {
	p, err := s.resolve(key)
	if err != nil {
		return nil, err
	}

	//nolint:gosec // Path is confined to the store root by securejoin
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrDocumentNotFound, "no document at key"), "key", key)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "key", key)
	}
	return data, nil
}

// Put writes the document atomically via a temp file in the same directory.
func (s *FileStore) Put(key string, data []byte) error {
	p, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := atomicWriteFile(p, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "key", key)
	}
	return nil
}

// Delete removes the document at key.
func (s *FileStore) Delete(key string) error {
	p, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "key", key)
	}
	return nil
}

// Exists reports whether a document is stored at key.
func (s *FileStore) Exists(key string) (bool, error) {
	p, err := s.resolve(key)
	if err != nil {
		return false, err
	}
	info, err := os.Stat(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "key", key)
	}
	return !info.IsDir(), nil
}

// List returns the keys of every document below the prefix directory.
func (s *FileStore) List(prefix string) ([]string, error) {
	dir := s.root
	if prefix != "" {
		var err error
		if dir, err = s.resolve(prefix); err != nil {
			return nil, err
		}
	}

	var keys []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && p == dir {
				return filepath.SkipDir
			}
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		keys = append(keys, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "prefix", prefix)
	}

	slices.Sort(keys)
	return keys, nil
}

// Close is a no-op for the file store.
func (s *FileStore) Close() error {
	return nil
}

// resolve maps a slash-separated key to a path confined to the store root.
func (s *FileStore) resolve(key string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}
	p, err := securejoin.SecureJoin(s.root, filepath.FromSlash(key))
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrInvalidKey, err.Error()), "key", key)
	}
	return p, nil
}

func validateKey(key string) error {
	trimmed := strings.TrimSuffix(key, "/")
	if trimmed == "" || path.IsAbs(trimmed) || path.Clean(trimmed) != trimmed || strings.HasPrefix(trimmed, "..") {
		return zerr.With(zerr.Wrap(domain.ErrInvalidKey, "key must be a relative, clean path"), "key", key)
	}
	return nil
}

func atomicWriteFile(p string, data []byte) error {
	dir := filepath.Dir(p)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, p)
}
