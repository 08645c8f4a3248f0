package fs

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/tendant/simple-docs/pkg/simpledocs"
)

func TestFSBackend_BasicOps(t *testing.T) {
	tmp := t.TempDir()
	backend, err := New(Config{BaseDir: tmp})
	if err != nil {
		t.Fatalf("new fs backend: %v", err)
	}

	ctx := context.Background()
	key := "changes.txt"

	// Upload
	data := []byte("hello fs")
	if err := backend.Upload(ctx, key, bytes.NewReader(data)); err != nil {
		t.Fatalf("upload: %v", err)
	}

	// Exists
	exists, err := backend.Exists(ctx, key)
	if err != nil || !exists {
		t.Fatalf("exists: got %v, %v", exists, err)
	}

	// GetObjectMeta
	meta, err := backend.GetObjectMeta(ctx, key)
	if err != nil {
		t.Fatalf("get meta: %v", err)
	}
	if meta.Size != int64(len(data)) {
		t.Fatalf("expected size %d, got %d", len(data), meta.Size)
	}

	// Download
	rc, err := backend.Download(ctx, key)
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	got, _ := io.ReadAll(rc)
	_ = rc.Close()
	if string(got) != string(data) {
		t.Fatalf("download mismatch: %q", string(got))
	}

	// Delete
	if err := backend.Delete(ctx, key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tmp, key)); !os.IsNotExist(err) {
		t.Fatalf("expected file removed, stat err=%v", err)
	}
}

func TestFSBackend_NotFound(t *testing.T) {
	backend, err := New(Config{BaseDir: t.TempDir()})
	if err != nil {
		t.Fatalf("new fs backend: %v", err)
	}
	ctx := context.Background()

	if _, err := backend.Download(ctx, "ghost.txt"); !errors.Is(err, simpledocs.ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound from download, got %v", err)
	}
	if err := backend.Delete(ctx, "ghost.txt"); !errors.Is(err, simpledocs.ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound from delete, got %v", err)
	}
	if _, err := backend.GetObjectMeta(ctx, "ghost.txt"); !errors.Is(err, simpledocs.ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound from meta, got %v", err)
	}
}

func TestFSBackend_List(t *testing.T) {
	backend, err := New(Config{BaseDir: t.TempDir()})
	if err != nil {
		t.Fatalf("new fs backend: %v", err)
	}
	ctx := context.Background()

	for _, name := range []string{"b.txt", "a.md", "c.png"} {
		if err := backend.Upload(ctx, name, bytes.NewReader([]byte("x"))); err != nil {
			t.Fatalf("upload %s: %v", name, err)
		}
	}

	names, err := backend.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"a.md", "b.txt", "c.png"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %v", len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected sorted listing %v, got %v", want, names)
		}
	}
}

func TestFSBackend_RejectsEscapingKeys(t *testing.T) {
	backend, err := New(Config{BaseDir: t.TempDir()})
	if err != nil {
		t.Fatalf("new fs backend: %v", err)
	}
	ctx := context.Background()

	for _, key := range []string{"", "../evil.txt", "sub/dir.txt", ".hidden"} {
		if err := backend.Upload(ctx, key, bytes.NewReader([]byte("x"))); err == nil {
			t.Fatalf("expected error uploading key %q", key)
		}
	}
}

func TestFSBackend_RequiresBaseDir(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error without base directory")
	}
}
