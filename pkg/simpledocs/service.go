package simpledocs

import (
	"context"
	"io"
)

// Service defines the document repository: the operations governing how
// a document name maps to stored content.
type Service interface {
	// ListDocuments enumerates all stored document names in the
	// backend's stable listing order.
	ListDocuments(ctx context.Context) ([]string, error)

	// DocumentExists reports whether name is stored.
	DocumentExists(ctx context.Context, name string) (bool, error)

	// GetDocument reads the raw document. It returns
	// ErrDocumentNotFound if name is absent.
	GetDocument(ctx context.Context, name string) (*Document, error)

	// ViewDocument reads the document and renders it by type.
	ViewDocument(ctx context.Context, name string) (*Rendered, error)

	// CreateDocument stores content (usually empty) under name. It
	// returns ErrInvalidDocumentName if the filename policy rejects
	// name. An existing document of the same name is overwritten.
	CreateDocument(ctx context.Context, name string, content []byte) error

	// UpdateDocument replaces the content at name, creating the
	// document if absent.
	UpdateDocument(ctx context.Context, name string, content []byte) error

	// DeleteDocument removes the document. It returns
	// ErrDocumentNotFound if name is absent.
	DeleteDocument(ctx context.Context, name string) error

	// DuplicateDocument copies name's content under the "(copy)"
	// name and returns the new name. It returns ErrDocumentNotFound
	// if name is absent; an existing duplicate is overwritten.
	DuplicateDocument(ctx context.Context, name string) (string, error)

	// UploadDocument stores bytes read from reader verbatim under
	// name. It returns ErrInvalidDocumentName if the filename policy
	// rejects name.
	UploadDocument(ctx context.Context, name string, reader io.Reader) error
}
