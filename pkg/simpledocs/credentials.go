package simpledocs

import (
	"context"
	"errors"
	"regexp"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var usernamePattern = regexp.MustCompile(`^\w{3,20}$`)

// CredentialService owns the username-to-password-hash namespace.
// Passwords are stored only as salted bcrypt hashes. Registration is a
// whole-mapping read-modify-write; the service serializes it with a
// mutex so concurrent signups cannot lose updates.
type CredentialService struct {
	repo CredentialRepository
	cost int

	mu sync.Mutex
}

// CredentialOption represents a functional option for configuring the
// credential service.
type CredentialOption func(*CredentialService)

// WithBcryptCost overrides the bcrypt cost used when hashing new
// passwords. Tests use bcrypt.MinCost to stay fast.
func WithBcryptCost(cost int) CredentialOption {
	return func(c *CredentialService) {
		c.cost = cost
	}
}

// NewCredentialService creates a credential service backed by repo.
func NewCredentialService(repo CredentialRepository, options ...CredentialOption) *CredentialService {
	c := &CredentialService{
		repo: repo,
		cost: bcrypt.DefaultCost,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Verify reports whether password matches the stored hash for
// username. An unknown username verifies as false without error.
func (c *CredentialService) Verify(ctx context.Context, username, password string) (bool, error) {
	credentials, err := c.repo.Load(ctx)
	if err != nil {
		return false, &CredentialError{Username: username, Op: "verify", Err: err}
	}

	hash, ok := credentials[username]
	if !ok {
		return false, nil
	}

	switch err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, &CredentialError{Username: username, Op: "verify", Err: err}
	}
}

// Register validates the username, hashes the password, and persists
// the updated mapping. It fails with ErrInvalidUsername when the name
// is not 3-20 word characters and ErrUsernameTaken when it already
// exists.
func (c *CredentialService) Register(ctx context.Context, username, password string) error {
	if !usernamePattern.MatchString(username) {
		return ErrInvalidUsername
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	credentials, err := c.repo.Load(ctx)
	if err != nil {
		return &CredentialError{Username: username, Op: "register", Err: err}
	}

	if _, exists := credentials[username]; exists {
		return ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), c.cost)
	if err != nil {
		return &CredentialError{Username: username, Op: "register", Err: err}
	}

	credentials[username] = string(hash)
	if err := c.repo.Save(ctx, credentials); err != nil {
		return &CredentialError{Username: username, Op: "register", Err: err}
	}

	return nil
}
