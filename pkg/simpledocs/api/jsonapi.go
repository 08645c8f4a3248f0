package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/tendant/simple-docs/pkg/simpledocs"
)

// The JSON API exposes the same core operations as the UI for
// programmatic clients. Reads are open like the UI listing and view;
// mutations require the same session cookie and answer 401 instead of
// redirecting.

// DocumentListResponse is the response for listing documents
type DocumentListResponse struct {
	Documents []string `json:"documents"`
}

// DocumentResponse is the response for a single document
type DocumentResponse struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Size        int    `json:"size"`
	ContentType string `json:"content_type,omitempty"`
}

// ErrorResponse is the error envelope for the JSON API
type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) apiRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/documents", h.apiListDocuments)
	r.Get("/documents/{name}", h.apiGetDocument)
	r.Put("/documents/{name}", h.apiPutDocument)
	r.Delete("/documents/{name}", h.apiDeleteDocument)
	r.Post("/documents/{name}/duplicate", h.apiDuplicateDocument)
	return r
}

// apiRequireSignedIn mirrors the UI authorization gate for JSON
// clients, answering 401 with the same notice text.
func (h *Handler) apiRequireSignedIn(w http.ResponseWriter, r *http.Request) bool {
	decision := simpledocs.RequireSignedIn(h.sessions.Session(r))
	if !decision.Allowed {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, ErrorResponse{Error: decision.Notice})
		return false
	}
	return true
}

func (h *Handler) apiError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, simpledocs.ErrDocumentNotFound):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, ErrorResponse{Error: err.Error()})
	case errors.Is(err, simpledocs.ErrInvalidDocumentName):
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, ErrorResponse{Error: simpledocs.MsgInvalidExtension})
	default:
		h.logger.Error("API operation failed", "op", op, "error", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, ErrorResponse{Error: "internal error"})
	}
}

func (h *Handler) apiListDocuments(w http.ResponseWriter, r *http.Request) {
	names, err := h.docs.ListDocuments(r.Context())
	if err != nil {
		h.apiError(w, r, "list", err)
		return
	}
	if names == nil {
		names = []string{}
	}
	render.JSON(w, r, DocumentListResponse{Documents: names})
}

// apiGetDocument serves the raw document bytes under the document's
// rendered content type.
func (h *Handler) apiGetDocument(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	rendered, err := h.docs.ViewDocument(r.Context(), name)
	if err != nil {
		h.apiError(w, r, "view", err)
		return
	}

	w.Header().Set("Content-Type", rendered.ContentType)
	w.WriteHeader(http.StatusOK)
	w.Write(rendered.Body)
}

// apiPutDocument creates or replaces a document with the request body.
func (h *Handler) apiPutDocument(w http.ResponseWriter, r *http.Request) {
	if !h.apiRequireSignedIn(w, r) {
		return
	}

	name := chi.URLParam(r, "name")
	if err := h.docs.UploadDocument(r.Context(), name, io.LimitReader(r.Body, 10<<20)); err != nil {
		h.apiError(w, r, "put", err)
		return
	}

	doc, err := h.docs.GetDocument(r.Context(), name)
	if err != nil {
		h.apiError(w, r, "put", err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, DocumentResponse{
		Name: doc.Name,
		Kind: string(doc.Kind),
		Size: len(doc.Content),
	})
}

func (h *Handler) apiDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if !h.apiRequireSignedIn(w, r) {
		return
	}

	name := chi.URLParam(r, "name")
	if err := h.docs.DeleteDocument(r.Context(), name); err != nil {
		h.apiError(w, r, "delete", err)
		return
	}
	render.NoContent(w, r)
}

func (h *Handler) apiDuplicateDocument(w http.ResponseWriter, r *http.Request) {
	if !h.apiRequireSignedIn(w, r) {
		return
	}

	name := chi.URLParam(r, "name")
	newName, err := h.docs.DuplicateDocument(r.Context(), name)
	if err != nil {
		h.apiError(w, r, "duplicate", err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, DocumentResponse{
		Name: newName,
		Kind: string(simpledocs.Classify(newName)),
	})
}
