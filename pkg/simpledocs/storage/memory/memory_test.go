package memory

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/tendant/simple-docs/pkg/simpledocs"
)

func TestMemoryBackend_BasicOps(t *testing.T) {
	backend := New()
	ctx := context.Background()

	data := []byte("hello memory")
	if err := backend.Upload(ctx, "about.md", bytes.NewReader(data)); err != nil {
		t.Fatalf("upload: %v", err)
	}

	rc, err := backend.Download(ctx, "about.md")
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	got, _ := io.ReadAll(rc)
	_ = rc.Close()
	if string(got) != string(data) {
		t.Fatalf("download mismatch: %q", string(got))
	}

	meta, err := backend.GetObjectMeta(ctx, "about.md")
	if err != nil {
		t.Fatalf("get meta: %v", err)
	}
	if meta.Size != int64(len(data)) {
		t.Fatalf("expected size %d, got %d", len(data), meta.Size)
	}

	if err := backend.Delete(ctx, "about.md"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	exists, err := backend.Exists(ctx, "about.md")
	if err != nil || exists {
		t.Fatalf("expected object removed, got %v, %v", exists, err)
	}
}

func TestMemoryBackend_NotFound(t *testing.T) {
	backend := New()
	ctx := context.Background()

	if _, err := backend.Download(ctx, "ghost.txt"); !errors.Is(err, simpledocs.ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound from download, got %v", err)
	}
	if err := backend.Delete(ctx, "ghost.txt"); !errors.Is(err, simpledocs.ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound from delete, got %v", err)
	}
}

func TestMemoryBackend_ListSorted(t *testing.T) {
	backend := New()
	ctx := context.Background()

	for _, name := range []string{"c.png", "a.md", "b.txt"} {
		if err := backend.Upload(ctx, name, bytes.NewReader([]byte("x"))); err != nil {
			t.Fatalf("upload %s: %v", name, err)
		}
	}

	names, err := backend.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"a.md", "b.txt", "c.png"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected sorted listing %v, got %v", want, names)
		}
	}
}
