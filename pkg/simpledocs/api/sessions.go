package api

import (
	"encoding/base64"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth"
	"github.com/google/uuid"

	"github.com/tendant/simple-docs/pkg/simpledocs"
)

const (
	sessionCookieName = "jwt"
	noticeCookieName  = "notice"

	sessionTTL = 24 * time.Hour
)

// SessionManager carries simpledocs.Session state across requests. The
// signed-in username travels in an HMAC-signed JWT cookie; the one-shot
// notice travels in a flash cookie that is cleared when read, giving
// the read-once display semantics.
type SessionManager struct {
	auth   *jwtauth.JWTAuth
	secure bool
}

// NewSessionManager creates a session manager signing tokens with
// secret. secure marks issued cookies Secure for TLS deployments.
func NewSessionManager(secret []byte, secure bool) *SessionManager {
	return &SessionManager{
		auth:   jwtauth.New("HS256", secret, nil),
		secure: secure,
	}
}

// Session reconstructs the per-request session without consuming the
// pending notice. Use it for authorization checks.
func (m *SessionManager) Session(r *http.Request) simpledocs.Session {
	return simpledocs.Session{Username: m.User(r)}
}

// User returns the signed-in username, or "" for anonymous requests. A
// missing, malformed, or tampered session cookie counts as anonymous.
func (m *SessionManager) User(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}

	token, err := jwtauth.VerifyToken(m.auth, cookie.Value)
	if err != nil {
		return ""
	}

	claim, ok := token.Get("username")
	if !ok {
		return ""
	}
	username, _ := claim.(string)
	return username
}

// SignIn issues the session cookie for username.
func (m *SessionManager) SignIn(w http.ResponseWriter, username string) error {
	claims := map[string]interface{}{
		"username": username,
		"jti":      uuid.NewString(),
	}
	jwtauth.SetIssuedNow(claims)
	jwtauth.SetExpiryIn(claims, sessionTTL)

	_, tokenString, err := m.auth.Encode(claims)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    tokenString,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// SignOut clears the session cookie.
func (m *SessionManager) SignOut(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SetNotice queues a one-shot notice for the next rendered view.
func (m *SessionManager) SetNotice(w http.ResponseWriter, notice string) {
	http.SetCookie(w, &http.Cookie{
		Name:     noticeCookieName,
		Value:    base64.URLEncoding.EncodeToString([]byte(notice)),
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopNotice returns the pending notice and clears it, so it displays at
// most once. Rendering handlers call this; mutating handlers do not.
func (m *SessionManager) PopNotice(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(noticeCookieName)
	if err != nil {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     noticeCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	data, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return ""
	}
	return string(data)
}
