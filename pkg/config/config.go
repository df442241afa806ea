// Package config loads the standard configuration file used by the packaging
// tools and provides access to its values by dotted key-path (for example
// "local_path.aggregate" or "token.github").
//
// The file is YAML, validated against a schema before use. Consumers receive
// an explicitly constructed *Config (dependency injection); Default loads the
// file from the home directory exactly once for process-wide use.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/anaconda/go-packaging-utils/pkg/schema"
)

// FileName is the standard configuration file name, looked up in the user's
// home directory by Default.
const FileName = ".go-packaging-utils-config.yaml"

// Config is a read-only view of a loaded configuration file.
type Config struct {
	path   string
	values map[string]string
}

// Load reads, validates and flattens the configuration file at path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var tree map[string]map[string]string
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	// The schema validator wants a generic JSON-like tree.
	doc := make(map[string]any, len(tree))
	for top, inner := range tree {
		m := make(map[string]any, len(inner))
		for k, v := range inner {
			m[k] = v
		}
		doc[top] = m
	}
	if err := schema.Config().Validate(doc); err != nil {
		return nil, fmt.Errorf("config file %s does not match schema: %w", path, err)
	}

	values := make(map[string]string)
	for top, inner := range tree {
		for k, v := range inner {
			values[top+"."+k] = v
		}
	}
	return &Config{path: path, values: values}, nil
}

// Path returns the file the configuration was loaded from.
func (c *Config) Path() string { return c.path }

// Has reports whether a key-path is present.
func (c *Config) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// Get returns the value at a key-path.
func (c *Config) Get(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

// MustGet returns the value at a key-path or an error naming the missing key.
func (c *Config) MustGet(key string) (string, error) {
	v, ok := c.values[key]
	if !ok {
		return "", fmt.Errorf("config key not found: %s", key)
	}
	return v, nil
}

// String renders the flattened key-value table, one entry per line in sorted
// key order. USE ONLY FOR DEBUGGING; the output includes tokens.
func (c *Config) String() string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %s\n", k, c.values[k])
	}
	return b.String()
}

var (
	defaultOnce sync.Once
	defaultCfg  *Config
	defaultErr  error
)

// Default loads the configuration file from the user's home directory. The
// load happens exactly once per process; subsequent calls return the shared
// instance (or the sticky load error).
func Default() (*Config, error) {
	defaultOnce.Do(func() {
		home, err := os.UserHomeDir()
		if err != nil {
			defaultErr = fmt.Errorf("failed to locate home directory: %w", err)
			return
		}
		defaultCfg, defaultErr = Load(filepath.Join(home, FileName))
	})
	return defaultCfg, defaultErr
}
