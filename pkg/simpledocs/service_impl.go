package simpledocs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
)

// service implements the Service interface
type service struct {
	store BlobStore
	locks *nameLocks
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithBlobStore sets the storage backend for the service
func WithBlobStore(store BlobStore) Option {
	return func(s *service) {
		s.store = store
	}
}

// New creates a new document service with the given options. A blob
// store is required.
func New(options ...Option) (Service, error) {
	s := &service{
		locks: newNameLocks(),
	}

	for _, option := range options {
		option(s)
	}

	if s.store == nil {
		return nil, fmt.Errorf("blob store is required")
	}

	return s, nil
}

func (s *service) ListDocuments(ctx context.Context) ([]string, error) {
	names, err := s.store.List(ctx)
	if err != nil {
		return nil, &DocumentError{Op: "list", Err: err}
	}
	return names, nil
}

func (s *service) DocumentExists(ctx context.Context, name string) (bool, error) {
	exists, err := s.store.Exists(ctx, name)
	if err != nil {
		return false, &DocumentError{Name: name, Op: "exists", Err: err}
	}
	return exists, nil
}

func (s *service) GetDocument(ctx context.Context, name string) (*Document, error) {
	rc, err := s.store.Download(ctx, name)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, &DocumentError{Name: name, Op: "read", Err: err}
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, &DocumentError{Name: name, Op: "read", Err: err}
	}

	return &Document{
		Name:    name,
		Kind:    Classify(name),
		Content: content,
	}, nil
}

func (s *service) ViewDocument(ctx context.Context, name string) (*Rendered, error) {
	doc, err := s.GetDocument(ctx, name)
	if err != nil {
		return nil, err
	}
	return Render(doc.Kind, doc.Content)
}

func (s *service) CreateDocument(ctx context.Context, name string, content []byte) error {
	if !IsValidDocumentName(name) {
		return ErrInvalidDocumentName
	}

	unlock := s.locks.lock(name)
	defer unlock()

	if err := s.store.Upload(ctx, name, bytes.NewReader(content)); err != nil {
		return &DocumentError{Name: name, Op: "create", Err: err}
	}
	return nil
}

func (s *service) UpdateDocument(ctx context.Context, name string, content []byte) error {
	unlock := s.locks.lock(name)
	defer unlock()

	// Update acts as an upsert: the document is created if absent.
	if err := s.store.Upload(ctx, name, bytes.NewReader(content)); err != nil {
		return &DocumentError{Name: name, Op: "update", Err: err}
	}
	return nil
}

func (s *service) DeleteDocument(ctx context.Context, name string) error {
	unlock := s.locks.lock(name)
	defer unlock()

	if err := s.store.Delete(ctx, name); err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return ErrDocumentNotFound
		}
		return &DocumentError{Name: name, Op: "delete", Err: err}
	}
	return nil
}

func (s *service) DuplicateDocument(ctx context.Context, name string) (string, error) {
	doc, err := s.GetDocument(ctx, name)
	if err != nil {
		return "", err
	}

	// An existing document under the duplicate name is overwritten;
	// the name computation does not check for collisions.
	newName := DuplicateName(name)

	unlock := s.locks.lock(newName)
	defer unlock()

	if err := s.store.Upload(ctx, newName, bytes.NewReader(doc.Content)); err != nil {
		return "", &DocumentError{Name: newName, Op: "duplicate", Err: err}
	}
	return newName, nil
}

func (s *service) UploadDocument(ctx context.Context, name string, reader io.Reader) error {
	if !IsValidDocumentName(name) {
		return ErrInvalidDocumentName
	}

	unlock := s.locks.lock(name)
	defer unlock()

	if err := s.store.Upload(ctx, name, reader); err != nil {
		return &DocumentError{Name: name, Op: "upload", Err: err}
	}
	return nil
}

// nameLocks serializes mutations per document name. The underlying
// backends only guarantee last-writer-wins on whole-object writes, so
// without this two concurrent updates to the same name could interleave.
type nameLocks struct {
	mu    sync.Mutex
	names map[string]*sync.Mutex
}

func newNameLocks() *nameLocks {
	return &nameLocks{names: make(map[string]*sync.Mutex)}
}

func (l *nameLocks) lock(name string) (unlock func()) {
	l.mu.Lock()
	m, ok := l.names[name]
	if !ok {
		m = &sync.Mutex{}
		l.names[name] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
