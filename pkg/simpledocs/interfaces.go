package simpledocs

import (
	"context"
	"io"
)

// BlobStore defines the interface for document storage backends. Keys
// are document names; backends hold a single flat namespace.
type BlobStore interface {
	// Upload stores the bytes read from reader under key, replacing
	// any existing object.
	Upload(ctx context.Context, key string, reader io.Reader) error

	// Download returns the content stored under key. It returns
	// ErrObjectNotFound if the key is absent.
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the object stored under key. It returns
	// ErrObjectNotFound if the key is absent.
	Delete(ctx context.Context, key string) error

	// Exists reports whether an object is stored under key.
	Exists(ctx context.Context, key string) (bool, error)

	// List enumerates all stored keys. The order is stable for a
	// given storage state.
	List(ctx context.Context) ([]string, error)

	// GetObjectMeta retrieves metadata for the object under key.
	GetObjectMeta(ctx context.Context, key string) (*ObjectMeta, error)
}

// CredentialRepository defines the interface for credential
// persistence. The mapping (username to password hash) is loaded and
// saved whole; callers serialize read-modify-write sequences.
type CredentialRepository interface {
	// Load returns the full username-to-password-hash mapping. A
	// missing store loads as an empty mapping, not an error.
	Load(ctx context.Context) (map[string]string, error)

	// Save replaces the full mapping.
	Save(ctx context.Context, credentials map[string]string) error
}
