package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func TestSQLiteKVUpsertAndTimestamps(t *testing.T) {
	kv := setupKV(t)
	ctx := t.Context()

	first := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	kv.now = func() time.Time { return first }
	if err := kv.Set(ctx, "toolstack.addressit.v1", `{"a":1}`); err != nil {
		t.Fatalf("set: %v", err)
	}

	second := first.Add(time.Hour)
	kv.now = func() time.Time { return second }
	if err := kv.Set(ctx, "toolstack.addressit.v1", `{"a":2}`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, err := kv.Get(ctx, "toolstack.addressit.v1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != `{"a":2}` {
		t.Fatalf("expected overwritten value, got %q", got)
	}

	at, err := kv.UpdatedAt(ctx, "toolstack.addressit.v1")
	if err != nil {
		t.Fatalf("updated at: %v", err)
	}
	if !at.Equal(second) {
		t.Fatalf("expected updated_at %s, got %s", second, at)
	}

	if _, err := kv.UpdatedAt(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOpenSQLiteCreatesDirectoryAndSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "addressit.db")
	kv, err := OpenSQLite(t.Context(), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := kv.Set(t.Context(), "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := OpenSQLite(t.Context(), path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	got, err := reopened.Get(t.Context(), "k")
	if err != nil || got != "v" {
		t.Fatalf("expected persisted value, got %q err=%v", got, err)
	}
}

func TestNewSQLiteKVRejectsNilDB(t *testing.T) {
	if _, err := NewSQLiteKV(nil); err == nil {
		t.Fatal("expected error for nil db")
	}
}
