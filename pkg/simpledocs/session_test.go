package simpledocs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendant/simple-docs/pkg/simpledocs"
)

func TestRequireSignedIn(t *testing.T) {
	denied := simpledocs.RequireSignedIn(simpledocs.Session{})
	assert.False(t, denied.Allowed)
	assert.Equal(t, "You must be signed in to do that.", denied.Notice)

	allowed := simpledocs.RequireSignedIn(simpledocs.Session{Username: "admin"})
	assert.True(t, allowed.Allowed)
	assert.Empty(t, allowed.Notice)
}

func TestSignIn(t *testing.T) {
	creds := setupCredentialService(t, seededAdmin(t))
	auth := simpledocs.NewAuthenticator(creds)
	ctx := context.Background()

	sess, err := auth.SignIn(ctx, "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", sess.Username)
	assert.Equal(t, "Welcome!", sess.Notice)

	_, err = auth.SignIn(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, simpledocs.ErrInvalidCredentials)

	_, err = auth.SignIn(ctx, "bob", "sauce")
	assert.ErrorIs(t, err, simpledocs.ErrInvalidCredentials)
}

func TestSignUp(t *testing.T) {
	creds := setupCredentialService(t, seededAdmin(t))
	auth := simpledocs.NewAuthenticator(creds)
	ctx := context.Background()

	sess, err := auth.SignUp(ctx, "new_user", "secret")
	require.NoError(t, err)
	assert.Equal(t, "new_user", sess.Username)
	assert.Equal(t, "Your account has been created. Welcome!", sess.Notice)

	// The new credential signs in afterwards.
	sess, err = auth.SignIn(ctx, "new_user", "secret")
	require.NoError(t, err)
	assert.Equal(t, "new_user", sess.Username)

	_, err = auth.SignUp(ctx, "admin", "something")
	assert.ErrorIs(t, err, simpledocs.ErrUsernameTaken)

	_, err = auth.SignUp(ctx, "bo", "something")
	assert.ErrorIs(t, err, simpledocs.ErrInvalidUsername)
}

func TestSignOut(t *testing.T) {
	sess := simpledocs.SignOut()
	assert.False(t, sess.SignedIn())
	assert.Equal(t, "You have been signed out.", sess.Notice)
}
