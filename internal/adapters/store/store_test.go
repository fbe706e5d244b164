package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nexon/internal/adapters/config"
	"go.trai.ch/nexon/internal/adapters/store"
	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/nexon/internal/core/ports"
)

func backends(t *testing.T) map[string]ports.DocumentStore {
	t.Helper()

	fileStore, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)

	badgerStore, err := store.OpenBadger(store.BadgerConfig{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = badgerStore.Close() })

	return map[string]ports.DocumentStore{
		"file":   fileStore,
		"badger": badgerStore,
	}
}

func TestDocumentStore_Conformance(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get("environments/shot01.yaml")
			assert.True(t, errors.Is(err, domain.ErrDocumentNotFound))

			ok, err := s.Exists("environments/shot01.yaml")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Put("environments/shot01.yaml", []byte("name: shot01\n")))
			require.NoError(t, s.Put("environments/shot01.lock.yaml", []byte("name: shot01\n")))
			require.NoError(t, s.Put("packages/A/1.0.0/package.yaml", []byte("name: A\n")))
			require.NoError(t, s.Put("environmentsX/other.yaml", []byte("x")))

			data, err := s.Get("environments/shot01.yaml")
			require.NoError(t, err)
			assert.Equal(t, "name: shot01\n", string(data))

			require.NoError(t, s.Put("environments/shot01.yaml", []byte("name: shot01\nrole: fx\n")))
			data, err = s.Get("environments/shot01.yaml")
			require.NoError(t, err)
			assert.Equal(t, "name: shot01\nrole: fx\n", string(data))

			keys, err := s.List("environments")
			require.NoError(t, err)
			assert.Equal(t, []string{"environments/shot01.lock.yaml", "environments/shot01.yaml"}, keys)

			keys, err = s.List("layers")
			require.NoError(t, err)
			assert.Empty(t, keys)

			require.NoError(t, s.Delete("environments/shot01.lock.yaml"))
			require.NoError(t, s.Delete("environments/shot01.lock.yaml"))
			ok, err = s.Exists("environments/shot01.lock.yaml")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestDocumentStore_RejectsEscapingKeys(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, key := range []string{"", "../outside.yaml", "/etc/passwd", "a/../../b"} {
				err := s.Put(key, []byte("x"))
				assert.True(t, errors.Is(err, domain.ErrInvalidKey), key)
			}
		})
	}
}

func TestFileStore_AtomicWriteLeavesNoTempFiles(t *testing.T) {
	root := t.TempDir()
	s, err := store.NewFileStore(root)
	require.NoError(t, err)

	require.NoError(t, s.Put("layers/team/fx.yaml", []byte("role: fx\n")))

	entries, err := os.ReadDir(filepath.Join(root, "layers", "team"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "fx.yaml", entries[0].Name())

	info, err := entries[0].Info()
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(domain.FilePerm), info.Mode().Perm())
}

func TestOpen_SelectsBackend(t *testing.T) {
	base := t.TempDir()

	s, err := store.Open(&config.Settings{BaseDir: base, Store: config.StoreFile}, nil)
	require.NoError(t, err)
	assert.IsType(t, &store.FileStore{}, s)

	s, err = store.Open(&config.Settings{BaseDir: base, Store: config.StoreBadger}, nil)
	require.NoError(t, err)
	assert.IsType(t, &store.BadgerStore{}, s)
	require.NoError(t, s.Close())
	assert.DirExists(t, filepath.Join(base, domain.StorePrefix))

	_, err = store.Open(&config.Settings{BaseDir: base, Store: "s3"}, nil)
	assert.True(t, errors.Is(err, domain.ErrUnknownStoreBackend))
}
