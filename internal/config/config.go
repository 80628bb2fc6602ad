// Package config loads the compiler's project configuration, slc.yaml,
// the way the teacher's ext.Config loads funxy.yaml: a thin yaml.v3
// struct with defaults filled in after parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level slc.yaml document.
type Config struct {
	// Indent is the string the chunk assembler uses per nesting level.
	// Defaults to two spaces.
	Indent string `yaml:"indent,omitempty"`

	// ReservedWords lists extra identifiers to be treated as reserved,
	// beyond the target language's own keyword set (e.g. globals such as
	// "self" that the host injects). It is only parsed: the compiler does
	// not read it, and the mangler's reserved set is the fixed target
	// keyword list.
	ReservedWords []string `yaml:"reserved_words,omitempty"`

	// Cache configures the compile cache.
	Cache CacheConfig `yaml:"cache,omitempty"`

	// RPC configures the gRPC CompileService.
	RPC RPCConfig `yaml:"rpc,omitempty"`
}

// CacheConfig configures the sqlite-backed compile cache.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled,omitempty"`
	Path    string `yaml:"path,omitempty"`
}

// RPCConfig configures the gRPC CompileService.
type RPCConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

// LoadConfig reads and parses an slc.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses slc.yaml content from bytes. path is used only for
// error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.setDefaults()
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Indent == "" {
		c.Indent = "  "
	}
	if c.Cache.Path == "" {
		c.Cache.Path = ".slc-cache.db"
	}
	if c.RPC.Addr == "" {
		c.RPC.Addr = "127.0.0.1:7777"
	}
}

// FindConfig searches for slc.yaml starting from dir and walking up to
// parent directories, the way the teacher's ext.FindConfig locates
// funxy.yaml. Returns "" with a nil error if none is found.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}
	for {
		for _, name := range []string{"slc.yaml", "slc.yml"} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
