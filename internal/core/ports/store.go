// Package ports defines the core interfaces for the application.
package ports

// DocumentStore is a key-value store of documents addressed by slash-separated keys
// such as "environments/shot01.yaml".
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type DocumentStore interface {
	// Get returns the document at key, or domain.ErrDocumentNotFound.
	Get(key string) ([]byte, error)

	// Put writes the document at key, replacing any previous content atomically.
	Put(key string, data []byte) error

	// Delete removes the document at key. Deleting a missing key is not an error.
	Delete(key string) error

	// List returns every key under prefix, sorted.
	List(prefix string) ([]string, error)

	// Exists reports whether a document is stored at key.
	Exists(key string) (bool, error)

	// Close releases the underlying resources.
	Close() error
}
