package memory

import (
	"context"
	"sync"

	"github.com/tendant/simple-docs/pkg/simpledocs"
)

// Repository is an in-memory implementation of
// simpledocs.CredentialRepository, used by tests and the development
// preset.
type Repository struct {
	mu          sync.RWMutex
	credentials map[string]string
}

// New creates an empty in-memory credential repository
func New() *Repository {
	return &Repository{credentials: map[string]string{}}
}

// Load returns a copy of the full mapping
func (r *Repository) Load(ctx context.Context) (map[string]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]string, len(r.credentials))
	for username, hash := range r.credentials {
		out[username] = hash
	}
	return out, nil
}

// Save replaces the full mapping
func (r *Repository) Save(ctx context.Context, credentials map[string]string) error {
	out := make(map[string]string, len(credentials))
	for username, hash := range credentials {
		out[username] = hash
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.credentials = out
	return nil
}

var _ simpledocs.CredentialRepository = (*Repository)(nil)
