package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(``), "test.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Indent != "  " {
		t.Errorf("indent = %q, want two spaces", cfg.Indent)
	}
	if cfg.Cache.Path != ".slc-cache.db" {
		t.Errorf("cache path = %q, want default", cfg.Cache.Path)
	}
	if cfg.RPC.Addr != "127.0.0.1:7777" {
		t.Errorf("rpc addr = %q, want default", cfg.RPC.Addr)
	}
}

func TestParseConfig_Explicit(t *testing.T) {
	yaml := `
indent: "\t"
reserved_words: [self, env]
cache:
  enabled: true
  path: build/cache.db
rpc:
  addr: 0.0.0.0:9090
`
	cfg, err := ParseConfig([]byte(yaml), "test.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Indent != "\t" {
		t.Errorf("indent = %q, want tab", cfg.Indent)
	}
	if len(cfg.ReservedWords) != 2 || cfg.ReservedWords[0] != "self" {
		t.Errorf("reserved_words = %v", cfg.ReservedWords)
	}
	if !cfg.Cache.Enabled || cfg.Cache.Path != "build/cache.db" {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.RPC.Addr != "0.0.0.0:9090" {
		t.Errorf("rpc addr = %q", cfg.RPC.Addr)
	}
}

func TestFindConfig(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "slc.yaml")
	if err := os.WriteFile(want, []byte("indent: \"  \"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := FindConfig(sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("found %q, want %q", got, want)
	}
}

func TestFindConfig_NotFound(t *testing.T) {
	dir := t.TempDir()
	got, err := FindConfig(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("expected no config found, got %q", got)
	}
}
