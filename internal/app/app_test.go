package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/mise/internal/config"
)

func TestNewBackend_CreatesIdentity(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.APIBase = "http://127.0.0.1:5999"
	cfg.IdentityPath = filepath.Join(dir, "identity.toml")

	client, err := newBackend(cfg)
	if err != nil {
		t.Fatalf("newBackend: %v", err)
	}
	if got := client.BaseURL(); got != "http://127.0.0.1:5999" {
		t.Fatalf("BaseURL() = %q, want http://127.0.0.1:5999", got)
	}
	if _, err := os.Stat(cfg.IdentityPath); err != nil {
		t.Fatalf("identity file not written: %v", err)
	}
}

func TestNewBackend_CorruptIdentity(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "identity.toml")
	if err := os.WriteFile(path, []byte("user_id = ["), 0o600); err != nil {
		t.Fatalf("write identity: %v", err)
	}
	cfg := config.Default()
	cfg.IdentityPath = path

	if _, err := newBackend(cfg); err == nil || !strings.Contains(err.Error(), "session identity") {
		t.Fatalf("newBackend err = %v, want session identity error", err)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("api_base = "), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	err := Run(context.Background(), Options{ConfigPath: path})
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("Run err = %v, want load config error", err)
	}
}
