package jira

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/anaconda/go-packaging-utils/pkg/config"
)

func loadConfig(t *testing.T, content string) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.FileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestNew(t *testing.T) {
	cfg := loadConfig(t, `token:
  jira: jira_test_token
user_info:
  email: dev@example.com
local_path:
  aggregate: /tmp/aggregate
`)
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if c.Raw() == nil {
		t.Error("expected underlying client to be exposed")
	}
}

func TestNew_MissingToken(t *testing.T) {
	cfg := loadConfig(t, `token: {}
user_info:
  email: dev@example.com
local_path:
  aggregate: /tmp/aggregate
`)
	if _, err := New(cfg); err == nil {
		t.Error("expected error when token.jira is absent")
	}
}

func TestNew_CustomHost(t *testing.T) {
	cfg := loadConfig(t, `token:
  jira: jira_test_token
user_info:
  email: dev@example.com
local_path:
  aggregate: /tmp/aggregate
`)
	c, err := New(cfg, WithHostURL("https://jira.example.com/"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := c.Raw().GetBaseURL(); got.Host != "jira.example.com" {
		t.Errorf("unexpected host: %q", got.Host)
	}
}
