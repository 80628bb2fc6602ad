package cache

import (
	"path/filepath"
	"testing"
)

func TestCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	c, err := Open(filepath.Join(dir, "cache.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Close()

	key := Key("(+ 1 2)", "  ")
	if _, ok, err := c.Get(key); err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	if err := c.Put(key, "return (1 + 2)"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	text, ok, err := c.Get(key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || text != "return (1 + 2)" {
		t.Fatalf("got text=%q ok=%v, want hit", text, ok)
	}

	if err := c.Put(key, "return (1 + 2) -- updated"); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	text, _, _ = c.Get(key)
	if text != "return (1 + 2) -- updated" {
		t.Fatalf("overwrite not applied, got %q", text)
	}
}

func TestKeyDiffersOnTab(t *testing.T) {
	if Key("x", "  ") == Key("x", "\t") {
		t.Error("expected different keys for different tab settings")
	}
}
