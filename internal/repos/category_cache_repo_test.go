package repos_test

import (
	"testing"

	"nectar/internal/repos"
)

func TestCategoryCacheRepo(t *testing.T) {
	cache := repos.NewCategoryCacheRepo(memdb(t))

	if _, ok := cache.Get("student lets"); ok {
		t.Fatal("empty cache must miss")
	}

	cache.Put("student lets", 7)
	id, ok := cache.Get("student lets")
	if !ok || id != 7 {
		t.Fatalf("want 7, got %d ok=%v", id, ok)
	}

	// Upsert keyed by name
	cache.Put("student lets", 9)
	id, _ = cache.Get("student lets")
	if id != 9 {
		t.Fatalf("upsert did not overwrite, got %d", id)
	}

	cache.Invalidate("student lets")
	if _, ok := cache.Get("student lets"); ok {
		t.Fatal("invalidated entry still present")
	}
}
