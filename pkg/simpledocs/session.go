package simpledocs

import "context"

// Decision is the outcome of an authorization check. When Allowed is
// false, Notice carries the message to queue before redirecting the
// visitor back to the listing view.
type Decision struct {
	Allowed bool
	Notice  string
}

// RequireSignedIn is the guard for every mutating or management-only
// operation (new, create, upload, clone, edit, update, delete). An
// anonymous session is denied with the sign-in notice; a signed-in
// session proceeds unguarded further.
func RequireSignedIn(sess Session) Decision {
	if !sess.SignedIn() {
		return Decision{Allowed: false, Notice: NoticeSignInRequired}
	}
	return Decision{Allowed: true}
}

// Authenticator drives session transitions against a credential
// service. It holds no per-request state; the resulting Session is the
// caller's explicit request context.
type Authenticator struct {
	credentials *CredentialService
}

// NewAuthenticator creates an authenticator backed by the given
// credential service.
func NewAuthenticator(credentials *CredentialService) *Authenticator {
	return &Authenticator{credentials: credentials}
}

// SignIn verifies the credentials and, on success, returns a signed-in
// session carrying the welcome notice. A mismatch returns
// ErrInvalidCredentials and the anonymous session unchanged.
func (a *Authenticator) SignIn(ctx context.Context, username, password string) (Session, error) {
	ok, err := a.credentials.Verify(ctx, username, password)
	if err != nil {
		return Session{}, err
	}
	if !ok {
		return Session{}, ErrInvalidCredentials
	}
	return Session{Username: username, Notice: NoticeWelcome}, nil
}

// SignUp registers a new credential and signs the new user in
// immediately. Validation failures surface as ErrInvalidUsername or
// ErrUsernameTaken.
func (a *Authenticator) SignUp(ctx context.Context, username, password string) (Session, error) {
	if err := a.credentials.Register(ctx, username, password); err != nil {
		return Session{}, err
	}
	return Session{Username: username, Notice: NoticeAccountCreated}, nil
}

// SignOut clears any session and queues the signed-out notice.
func SignOut() Session {
	return Session{Notice: NoticeSignedOut}
}
