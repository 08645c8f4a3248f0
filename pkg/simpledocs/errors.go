package simpledocs

import (
	"errors"
	"fmt"
)

// Error types
var (
	// ErrDocumentNotFound indicates the named document does not exist.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrInvalidDocumentName indicates a name rejected by the filename policy.
	ErrInvalidDocumentName = errors.New("invalid document name")

	// ErrObjectNotFound is returned by storage backends for a missing key.
	ErrObjectNotFound = errors.New("object not found")

	// ErrUnauthorized indicates a mutating operation attempted anonymously.
	ErrUnauthorized = errors.New("sign in required")

	// ErrInvalidCredentials indicates a failed sign-in attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidUsername indicates a username failing the signup pattern.
	ErrInvalidUsername = errors.New("invalid username")

	// ErrUsernameTaken indicates a signup with an existing username.
	ErrUsernameTaken = errors.New("username taken")
)

// DocumentError represents an error related to document operations
type DocumentError struct {
	Name string
	Op   string
	Err  error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("document operation %s failed for %q: %v", e.Op, e.Name, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// CredentialError represents an error related to credential operations
type CredentialError struct {
	Username string
	Op       string
	Err      error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("credential operation %s failed for %q: %v", e.Op, e.Username, e.Err)
}

func (e *CredentialError) Unwrap() error {
	return e.Err
}

// StorageError represents an error related to storage operations
type StorageError struct {
	Backend string
	Key     string
	Op      string
	Err     error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage operation %s failed for key %s on backend %s: %v", e.Op, e.Key, e.Backend, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
