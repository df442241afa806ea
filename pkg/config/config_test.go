package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validConfig = `token:
  github: ghp_example
  jira: jira_example
user_info:
  email: dev@example.com
local_path:
  aggregate: /home/dev/aggregate
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	tests := []struct {
		key      string
		expected string
	}{
		{"token.github", "ghp_example"},
		{"token.jira", "jira_example"},
		{"user_info.email", "dev@example.com"},
		{"local_path.aggregate", "/home/dev/aggregate"},
	}
	for _, tc := range tests {
		got, ok := cfg.Get(tc.key)
		if !ok {
			t.Errorf("key %q not found", tc.key)
			continue
		}
		if got != tc.expected {
			t.Errorf("Get(%q) = %q, want %q", tc.key, got, tc.expected)
		}
	}

	if cfg.Has("token.gitlab") {
		t.Error("unexpected key token.gitlab")
	}
	if _, err := cfg.MustGet("token.gitlab"); err == nil {
		t.Error("MustGet should fail for a missing key")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	if _, err := Load(writeConfig(t, "token: [unclosed")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoad_SchemaViolation(t *testing.T) {
	// user_info.email is required.
	content := `token:
  github: x
user_info:
  name: dev
local_path:
  aggregate: /x
`
	_, err := Load(writeConfig(t, content))
	if err == nil || !strings.Contains(err.Error(), "schema") {
		t.Errorf("expected schema error, got: %v", err)
	}
}

func TestLoad_TokensOptional(t *testing.T) {
	content := `token: {}
user_info:
  email: dev@example.com
local_path:
  aggregate: /x
`
	cfg, err := Load(writeConfig(t, content))
	if err != nil {
		t.Fatalf("tokens should be optional: %v", err)
	}
	if cfg.Has("token.github") {
		t.Error("token.github should be absent")
	}
}

func TestString_SortedOutput(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatal(err)
	}
	out := cfg.String()
	first := strings.SplitN(out, "\n", 2)[0]
	if !strings.HasPrefix(first, "local_path.aggregate:") {
		t.Errorf("expected sorted output starting with local_path.aggregate, got %q", first)
	}
}
