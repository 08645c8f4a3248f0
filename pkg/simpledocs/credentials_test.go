package simpledocs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tendant/simple-docs/pkg/simpledocs"
	credmemory "github.com/tendant/simple-docs/pkg/simpledocs/credrepo/memory"
)

func setupCredentialService(t *testing.T, seed map[string]string) *simpledocs.CredentialService {
	t.Helper()

	repo := credmemory.New()
	if len(seed) > 0 {
		require.NoError(t, repo.Save(context.Background(), seed))
	}
	return simpledocs.NewCredentialService(repo, simpledocs.WithBcryptCost(bcrypt.MinCost))
}

func seededAdmin(t *testing.T) map[string]string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	return map[string]string{"admin": string(hash)}
}

func TestVerify(t *testing.T) {
	creds := setupCredentialService(t, seededAdmin(t))
	ctx := context.Background()

	ok, err := creds.Verify(ctx, "admin", "secret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = creds.Verify(ctx, "admin", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	// Unknown usernames verify false without error.
	ok, err = creds.Verify(ctx, "nobody", "secret")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegister(t *testing.T) {
	creds := setupCredentialService(t, seededAdmin(t))
	ctx := context.Background()

	require.NoError(t, creds.Register(ctx, "newuser", "hunter2"))

	ok, err := creds.Verify(ctx, "newuser", "hunter2")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegisterValidation(t *testing.T) {
	creds := setupCredentialService(t, seededAdmin(t))
	ctx := context.Background()

	// Too short, too long, bad characters.
	assert.ErrorIs(t, creds.Register(ctx, "ab", "pw"), simpledocs.ErrInvalidUsername)
	assert.ErrorIs(t, creds.Register(ctx, "$$$", "pw"), simpledocs.ErrInvalidUsername)
	assert.ErrorIs(t, creds.Register(ctx, "a_very_long_username_over_twenty", "pw"), simpledocs.ErrInvalidUsername)

	assert.ErrorIs(t, creds.Register(ctx, "admin", "pw"), simpledocs.ErrUsernameTaken)

	// Failed registrations change nothing.
	ok, err := creds.Verify(ctx, "admin", "secret")
	require.NoError(t, err)
	assert.True(t, ok)
}
