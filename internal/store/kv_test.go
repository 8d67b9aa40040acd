package store

import (
	"context"
	"testing"

	"github.com/iburimskiy/sunnah-tracker/internal/database"
)

func setupKVTestDB(t *testing.T) *KVStore {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewKVStore(db)
}

func TestKVGetMissing(t *testing.T) {
	s := setupKVTestDB(t)

	value, ok, err := s.Get(context.Background(), "jannah_celebrated_2025-03-01")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok || value != "" {
		t.Errorf("Get missing = (%q, %v), want (\"\", false)", value, ok)
	}
}

func TestKVSetGet(t *testing.T) {
	s := setupKVTestDB(t)
	ctx := context.Background()

	if err := s.Set(ctx, "jannah_celebrated_2025-03-01", "true"); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, ok, err := s.Get(ctx, "jannah_celebrated_2025-03-01")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || value != "true" {
		t.Errorf("Get = (%q, %v), want (\"true\", true)", value, ok)
	}
}

func TestKVSetOverwrites(t *testing.T) {
	s := setupKVTestDB(t)
	ctx := context.Background()

	if err := s.Set(ctx, "theme", "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(ctx, "theme", "light"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	value, _, err := s.Get(ctx, "theme")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if value != "light" {
		t.Errorf("value = %q, want light", value)
	}
}

func TestKVDeleteAndKeys(t *testing.T) {
	s := setupKVTestDB(t)
	ctx := context.Background()

	for _, k := range []string{"jannah_celebrated_2025-03-02", "jannah_celebrated_2025-03-01", "theme"} {
		if err := s.Set(ctx, k, "true"); err != nil {
			t.Fatalf("set %q: %v", k, err)
		}
	}

	keys, err := s.Keys(ctx, "jannah_celebrated_")
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	want := []string{"jannah_celebrated_2025-03-01", "jannah_celebrated_2025-03-02"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}

	if err := s.Delete(ctx, "theme"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "theme"); ok {
		t.Error("theme still present after delete")
	}
}
