package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/tendant/simple-docs/pkg/simpledocs"
)

// Repository implements simpledocs.CredentialRepository on a single
// JSON file mapping usernames to bcrypt hashes. Saves replace the whole
// file atomically.
type Repository struct {
	path string
}

// New creates a file-backed credential repository at path, creating the
// parent directory if needed. The file itself is created on first Save.
func New(path string) (*Repository, error) {
	if path == "" {
		return nil, errors.New("credentials file path is required")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create credentials directory: %w", err)
	}

	return &Repository{path: path}, nil
}

// Load reads the full mapping. A missing file loads as an empty mapping.
func (r *Repository) Load(ctx context.Context) (map[string]string, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	credentials := map[string]string{}
	if len(data) == 0 {
		return credentials, nil
	}
	if err := json.Unmarshal(data, &credentials); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}
	return credentials, nil
}

// Save replaces the full mapping on disk.
func (r *Repository) Save(ctx context.Context, credentials map[string]string) error {
	data, err := json.MarshalIndent(credentials, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	if err := atomic.WriteFile(r.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}
	return nil
}

var _ simpledocs.CredentialRepository = (*Repository)(nil)
