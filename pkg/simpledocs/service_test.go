package simpledocs_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendant/simple-docs/pkg/simpledocs"
	memorystorage "github.com/tendant/simple-docs/pkg/simpledocs/storage/memory"
)

func setupTestService(t *testing.T) simpledocs.Service {
	t.Helper()

	svc, err := simpledocs.New(simpledocs.WithBlobStore(memorystorage.New()))
	require.NoError(t, err)
	return svc
}

func TestServiceCreation(t *testing.T) {
	svc, err := simpledocs.New()
	assert.Error(t, err)
	assert.Nil(t, svc)

	svc, err = simpledocs.New(simpledocs.WithBlobStore(memorystorage.New()))
	assert.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestCreateAndReadDocument(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateDocument(ctx, "about.md", nil))

	doc, err := svc.GetDocument(ctx, "about.md")
	require.NoError(t, err)
	assert.Equal(t, "about.md", doc.Name)
	assert.Equal(t, simpledocs.KindMarkdown, doc.Kind)
	assert.Empty(t, doc.Content)

	names, err := svc.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Contains(t, names, "about.md")
}

func TestCreateDocumentInvalidName(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	for _, name := range []string{"", "bad.pdf", "no extension", "sub/dir.txt"} {
		err := svc.CreateDocument(ctx, name, nil)
		assert.ErrorIs(t, err, simpledocs.ErrInvalidDocumentName, "name %q", name)
	}

	names, err := svc.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestUpdateDocumentRoundTrip(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	content := []byte("new content")
	require.NoError(t, svc.UpdateDocument(ctx, "changes.txt", content))

	doc, err := svc.GetDocument(ctx, "changes.txt")
	require.NoError(t, err)
	assert.Equal(t, content, doc.Content)

	// Update acts as an upsert, so the document now exists.
	exists, err := svc.DocumentExists(ctx, "changes.txt")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestDeleteDocument(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateDocument(ctx, "doomed.txt", nil))
	require.NoError(t, svc.DeleteDocument(ctx, "doomed.txt"))

	names, err := svc.ListDocuments(ctx)
	require.NoError(t, err)
	assert.NotContains(t, names, "doomed.txt")

	err = svc.DeleteDocument(ctx, "doomed.txt")
	assert.ErrorIs(t, err, simpledocs.ErrDocumentNotFound)
}

func TestDuplicateDocument(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateDocument(ctx, "test.txt", []byte("my awesome content")))

	newName, err := svc.DuplicateDocument(ctx, "test.txt")
	require.NoError(t, err)
	assert.Equal(t, "test(copy).txt", newName)

	copied, err := svc.GetDocument(ctx, "test(copy).txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("my awesome content"), copied.Content)

	// Mutating the original afterwards does not touch the copy.
	require.NoError(t, svc.UpdateDocument(ctx, "test.txt", []byte("changed")))
	copied, err = svc.GetDocument(ctx, "test(copy).txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("my awesome content"), copied.Content)
}

func TestDuplicateDocumentNotFound(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.DuplicateDocument(context.Background(), "ghost.txt")
	assert.ErrorIs(t, err, simpledocs.ErrDocumentNotFound)
}

func TestUploadDocument(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	err := svc.UploadDocument(ctx, "logo.png", strings.NewReader("binary bytes"))
	require.NoError(t, err)

	doc, err := svc.GetDocument(ctx, "logo.png")
	require.NoError(t, err)
	assert.Equal(t, simpledocs.KindPNG, doc.Kind)
	assert.Equal(t, []byte("binary bytes"), doc.Content)

	err = svc.UploadDocument(ctx, "malware.exe", strings.NewReader("nope"))
	assert.ErrorIs(t, err, simpledocs.ErrInvalidDocumentName)
}

func TestViewDocument(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateDocument(ctx, "about.md", []byte("# Hi")))

	rendered, err := svc.ViewDocument(ctx, "about.md")
	require.NoError(t, err)
	assert.Contains(t, string(rendered.Body), "<h1")
	assert.Contains(t, string(rendered.Body), "Hi")

	_, err = svc.ViewDocument(ctx, "missing.md")
	assert.ErrorIs(t, err, simpledocs.ErrDocumentNotFound)
}

func TestGetDocumentNotFound(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.GetDocument(context.Background(), "notafile.txt")
	assert.ErrorIs(t, err, simpledocs.ErrDocumentNotFound)
}
