package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/saxionhub/intake/internal/intake/storage"
)

func TestStoreSaveLoad(t *testing.T) {
	store := New()

	if err := store.Save(context.Background(), "hbo-ict", []byte("payload")); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	loaded, err := store.Load(context.Background(), "hbo-ict")
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if string(loaded) != "payload" {
		t.Fatalf("loaded = %q, want %q", loaded, "payload")
	}
}

func TestStoreLoadMissingKey(t *testing.T) {
	store := New()

	_, err := store.Load(context.Background(), "unknown")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestStoreCopiesPayloads(t *testing.T) {
	store := New()

	payload := []byte("original")
	if err := store.Save(context.Background(), "hbo-ict", payload); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}
	payload[0] = 'X'

	loaded, err := store.Load(context.Background(), "hbo-ict")
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if string(loaded) != "original" {
		t.Fatalf("loaded = %q, want %q", loaded, "original")
	}

	loaded[0] = 'Y'
	again, err := store.Load(context.Background(), "hbo-ict")
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if string(again) != "original" {
		t.Fatalf("loaded = %q, want %q", again, "original")
	}
}

func TestStoreRejectsEmptyKey(t *testing.T) {
	store := New()

	if err := store.Save(context.Background(), " ", []byte("x")); err == nil {
		t.Fatal("expected error for empty key")
	}
	if _, err := store.Load(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty key")
	}
}
