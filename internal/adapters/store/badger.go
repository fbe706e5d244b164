package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/nexon/internal/core/ports"
	"go.trai.ch/zerr"
)

// BadgerConfig configures the embedded key-value backend.
type BadgerConfig struct {
	// Path is the database directory. Ignored when InMemory is set.
	Path string

	InMemory bool

	// Logger receives Badger's warnings and errors. Nil disables Badger logging.
	Logger ports.Logger
}

// BadgerStore implements ports.DocumentStore on an embedded Badger database.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadger opens or creates the database described by cfg.
func OpenBadger(cfg BadgerConfig) (*BadgerStore, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, domain.DirPerm); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", cfg.Path)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}

	opts = opts.WithSyncWrites(!cfg.InMemory).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", cfg.Path)
	}
	return &BadgerStore{db: db}, nil
}

// Get returns the document at key.
func (s *BadgerStore) Get(key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, zerr.With(zerr.Wrap(domain.ErrDocumentNotFound, "no document at key"), "key", key)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "key", key)
	}
	return data, nil
}

// Put writes the document in a single transaction.
func (s *BadgerStore) Put(key string, data []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "key", key)
	}
	return nil
}

// Delete removes the document at key.
func (s *BadgerStore) Delete(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "key", key)
	}
	return nil
}

// Exists reports whether a document is stored at key.
func (s *BadgerStore) Exists(key string) (bool, error) {
	_, err := s.Get(key)
	if errors.Is(err, domain.ErrDocumentNotFound) {
		return false, nil
	}
	return err == nil, err
}

// List returns the keys under prefix in lexical order.
func (s *BadgerStore) List(prefix string) ([]string, error) {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	var keys []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(prefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "prefix", prefix)
	}
	return keys, nil
}

// Close closes the database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

type badgerLogger struct {
	logger ports.Logger
}

func (l *badgerLogger) Errorf(format string, args ...any) {
	l.logger.Error(zerr.New("badger: " + strings.TrimSpace(fmt.Sprintf(format, args...))))
}

func (l *badgerLogger) Warningf(format string, args ...any) {
	l.logger.Warn("badger: " + strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// Infof drops Badger's informational chatter.
func (l *badgerLogger) Infof(string, ...any) {}

// Debugf drops Badger's debug output.
func (l *badgerLogger) Debugf(string, ...any) {}
