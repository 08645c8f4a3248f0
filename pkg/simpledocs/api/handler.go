package api

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tendant/simple-docs/pkg/simpledocs"
)

// Handler serves the document manager UI and the JSON document API. It
// is presentation glue only: every decision (naming, rendering,
// authorization, credential checks) is delegated to the core packages.
type Handler struct {
	docs     simpledocs.Service
	auth     *simpledocs.Authenticator
	sessions *SessionManager
	logger   *slog.Logger
}

// NewHandler creates a handler around the document service and
// credential service.
func NewHandler(docs simpledocs.Service, credentials *simpledocs.CredentialService, sessions *SessionManager) *Handler {
	return &Handler{
		docs:     docs,
		auth:     simpledocs.NewAuthenticator(credentials),
		sessions: sessions,
		logger:   slog.Default(),
	}
}

// Routes returns the router for the UI and the mounted JSON API.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Index)
	r.Get("/new", h.NewDocumentForm)
	r.Post("/create", h.CreateDocument)
	r.Get("/upload", h.UploadForm)
	r.Post("/upload", h.UploadDocument)
	r.Post("/clone", h.DuplicateDocument)

	r.Get("/users/signin", h.SignInForm)
	r.Post("/users/signin", h.SignIn)
	r.Get("/users/signup", h.SignUpForm)
	r.Post("/users/signup", h.SignUp)
	r.Post("/users/signout", h.SignOut)

	r.Mount("/api/v1", h.apiRoutes())

	r.Get("/{name}", h.ViewDocument)
	r.Get("/{name}/edit", h.EditDocumentForm)
	r.Post("/{name}", h.UpdateDocument)
	r.Post("/{name}/delete", h.DeleteDocument)

	return r
}

// requireSignedIn gates mutating and management-only handlers. On
// denial it queues the notice, redirects to the listing, and returns
// false so the caller aborts without touching storage.
func (h *Handler) requireSignedIn(w http.ResponseWriter, r *http.Request) bool {
	decision := simpledocs.RequireSignedIn(h.sessions.Session(r))
	if !decision.Allowed {
		h.sessions.SetNotice(w, decision.Notice)
		http.Redirect(w, r, "/", http.StatusFound)
		return false
	}
	return true
}

func (h *Handler) renderHTML(w http.ResponseWriter, r *http.Request, status int, page string, data pageData) {
	data.Username = h.sessions.User(r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := renderPage(w, page, data); err != nil {
		h.logger.Error("Failed to render page", "page", page, "error", err)
	}
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.logger.Error("Operation failed", "op", op, "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Index lists all documents.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	names, err := h.docs.ListDocuments(r.Context())
	if err != nil {
		h.internalError(w, r, "list", err)
		return
	}

	h.renderHTML(w, r, http.StatusOK, "index", pageData{
		Notice:    h.sessions.PopNotice(w, r),
		Documents: names,
	})
}

// ViewDocument serves a document rendered by type: markdown becomes an
// HTML fragment embedded in the page layout, text and images are served
// raw under their content type.
func (h *Handler) ViewDocument(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	rendered, err := h.docs.ViewDocument(r.Context(), name)
	if err != nil {
		if errors.Is(err, simpledocs.ErrDocumentNotFound) {
			h.sessions.SetNotice(w, simpledocs.NoticeNotFound(name))
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		h.internalError(w, r, "view", err)
		return
	}

	if strings.HasPrefix(rendered.ContentType, "text/html") {
		h.renderHTML(w, r, http.StatusOK, "view", pageData{
			Notice: h.sessions.PopNotice(w, r),
			Name:   name,
			Body:   template.HTML(rendered.Body),
		})
		return
	}

	w.Header().Set("Content-Type", rendered.ContentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(rendered.Body); err != nil {
		h.logger.Error("Failed to write document body", "name", name, "error", err)
	}
}

// NewDocumentForm shows the create form.
func (h *Handler) NewDocumentForm(w http.ResponseWriter, r *http.Request) {
	if !h.requireSignedIn(w, r) {
		return
	}
	h.renderHTML(w, r, http.StatusOK, "new", pageData{
		Notice: h.sessions.PopNotice(w, r),
	})
}

// CreateDocument creates an empty document under the submitted name.
// Validation failures re-render the form with a message and a 422
// status instead of redirecting.
func (h *Handler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	if !h.requireSignedIn(w, r) {
		return
	}

	name := strings.TrimSpace(r.FormValue("filename"))
	if name == "" {
		h.renderHTML(w, r, http.StatusUnprocessableEntity, "new", pageData{
			Message: simpledocs.MsgNameRequired,
		})
		return
	}

	err := h.docs.CreateDocument(r.Context(), name, nil)
	if err != nil {
		if errors.Is(err, simpledocs.ErrInvalidDocumentName) {
			h.renderHTML(w, r, http.StatusUnprocessableEntity, "new", pageData{
				Message: simpledocs.MsgInvalidExtension,
			})
			return
		}
		h.internalError(w, r, "create", err)
		return
	}

	h.sessions.SetNotice(w, simpledocs.NoticeCreated(name))
	http.Redirect(w, r, "/", http.StatusFound)
}

// EditDocumentForm shows the current content for editing.
func (h *Handler) EditDocumentForm(w http.ResponseWriter, r *http.Request) {
	if !h.requireSignedIn(w, r) {
		return
	}

	name := chi.URLParam(r, "name")
	doc, err := h.docs.GetDocument(r.Context(), name)
	if err != nil {
		if errors.Is(err, simpledocs.ErrDocumentNotFound) {
			h.sessions.SetNotice(w, simpledocs.NoticeNotFound(name))
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		h.internalError(w, r, "edit", err)
		return
	}

	h.renderHTML(w, r, http.StatusOK, "edit", pageData{
		Notice:  h.sessions.PopNotice(w, r),
		Name:    doc.Name,
		Content: string(doc.Content),
	})
}

// UpdateDocument replaces a document's content with the submitted form
// text, creating the document if absent.
func (h *Handler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	if !h.requireSignedIn(w, r) {
		return
	}

	name := chi.URLParam(r, "name")
	if err := h.docs.UpdateDocument(r.Context(), name, []byte(r.FormValue("content"))); err != nil {
		h.internalError(w, r, "update", err)
		return
	}

	h.sessions.SetNotice(w, simpledocs.NoticeUpdated(name))
	http.Redirect(w, r, "/", http.StatusFound)
}

// DeleteDocument removes a document.
func (h *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	if !h.requireSignedIn(w, r) {
		return
	}

	name := chi.URLParam(r, "name")
	err := h.docs.DeleteDocument(r.Context(), name)
	if err != nil {
		if errors.Is(err, simpledocs.ErrDocumentNotFound) {
			h.sessions.SetNotice(w, simpledocs.NoticeNotFound(name))
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		h.internalError(w, r, "delete", err)
		return
	}

	h.sessions.SetNotice(w, simpledocs.NoticeDeleted(name))
	http.Redirect(w, r, "/", http.StatusFound)
}

// DuplicateDocument copies the submitted document under its "(copy)"
// name.
func (h *Handler) DuplicateDocument(w http.ResponseWriter, r *http.Request) {
	if !h.requireSignedIn(w, r) {
		return
	}

	name := r.FormValue("filename")
	_, err := h.docs.DuplicateDocument(r.Context(), name)
	if err != nil {
		if errors.Is(err, simpledocs.ErrDocumentNotFound) {
			h.sessions.SetNotice(w, simpledocs.NoticeNotFound(name))
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		h.internalError(w, r, "duplicate", err)
		return
	}

	h.sessions.SetNotice(w, simpledocs.NoticeDuplicated(name))
	http.Redirect(w, r, "/", http.StatusFound)
}

// UploadForm shows the upload form.
func (h *Handler) UploadForm(w http.ResponseWriter, r *http.Request) {
	if !h.requireSignedIn(w, r) {
		return
	}
	h.renderHTML(w, r, http.StatusOK, "upload", pageData{
		Notice: h.sessions.PopNotice(w, r),
	})
}

// UploadDocument stores an uploaded file verbatim under its original
// filename.
func (h *Handler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	if !h.requireSignedIn(w, r) {
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.renderHTML(w, r, http.StatusUnprocessableEntity, "upload", pageData{
			Message: simpledocs.MsgNameRequired,
		})
		return
	}
	defer file.Close()

	name := filepath.Base(header.Filename)
	if err := h.docs.UploadDocument(r.Context(), name, file); err != nil {
		if errors.Is(err, simpledocs.ErrInvalidDocumentName) {
			h.renderHTML(w, r, http.StatusUnprocessableEntity, "upload", pageData{
				Message: simpledocs.MsgInvalidExtension,
			})
			return
		}
		h.internalError(w, r, "upload", err)
		return
	}

	h.sessions.SetNotice(w, simpledocs.NoticeUploaded(name))
	http.Redirect(w, r, "/", http.StatusFound)
}

// SignInForm shows the sign-in form.
func (h *Handler) SignInForm(w http.ResponseWriter, r *http.Request) {
	h.renderHTML(w, r, http.StatusOK, "signin", pageData{
		Notice: h.sessions.PopNotice(w, r),
	})
}

// SignIn verifies the submitted credentials and establishes a session.
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	sess, err := h.auth.SignIn(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, simpledocs.ErrInvalidCredentials) {
			h.renderHTML(w, r, http.StatusUnprocessableEntity, "signin", pageData{
				Message: simpledocs.MsgInvalidCredentials,
				Name:    username,
			})
			return
		}
		h.internalError(w, r, "signin", err)
		return
	}

	if err := h.sessions.SignIn(w, sess.Username); err != nil {
		h.internalError(w, r, "signin", err)
		return
	}
	h.sessions.SetNotice(w, sess.Notice)
	http.Redirect(w, r, "/", http.StatusFound)
}

// SignUpForm shows the sign-up form.
func (h *Handler) SignUpForm(w http.ResponseWriter, r *http.Request) {
	h.renderHTML(w, r, http.StatusOK, "signup", pageData{
		Notice: h.sessions.PopNotice(w, r),
	})
}

// SignUp registers a new credential and signs the user in immediately.
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	sess, err := h.auth.SignUp(r.Context(), username, password)
	if err != nil {
		switch {
		case errors.Is(err, simpledocs.ErrInvalidUsername):
			h.renderHTML(w, r, http.StatusUnprocessableEntity, "signup", pageData{
				Message: simpledocs.MsgInvalidUsername,
				Name:    username,
			})
		case errors.Is(err, simpledocs.ErrUsernameTaken):
			h.renderHTML(w, r, http.StatusUnprocessableEntity, "signup", pageData{
				Message: simpledocs.MsgUsernameTaken,
				Name:    username,
			})
		default:
			h.internalError(w, r, "signup", err)
		}
		return
	}

	if err := h.sessions.SignIn(w, sess.Username); err != nil {
		h.internalError(w, r, "signup", err)
		return
	}
	h.sessions.SetNotice(w, sess.Notice)
	http.Redirect(w, r, "/", http.StatusFound)
}

// SignOut clears the session.
func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	sess := simpledocs.SignOut()
	h.sessions.SignOut(w)
	h.sessions.SetNotice(w, sess.Notice)
	http.Redirect(w, r, "/", http.StatusFound)
}
