package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 0},
		Database: DatabaseConfig{
			Addrs: []string{"localhost:6379"},
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingDatabaseAddrs(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Addrs: []string{},
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing database addrs")
	}
}

func TestValidate_DefaultPageSizeExceedsMax(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Addrs: []string{"localhost:6379"},
		},
		Search: SearchConfig{DefaultPageSize: 200, MaxPageSize: 100},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error when default page size exceeds max")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Database.ReadinessTimeout)
	}
	if cfg.Search.Alias != "orders-search" {
		t.Errorf("expected Alias='orders-search', got %q", cfg.Search.Alias)
	}
	if cfg.Search.DefaultPageSize != 10 {
		t.Errorf("expected DefaultPageSize=10, got %d", cfg.Search.DefaultPageSize)
	}
	if cfg.Search.MaxPageSize != 100 {
		t.Errorf("expected MaxPageSize=100, got %d", cfg.Search.MaxPageSize)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Database: DatabaseConfig{ReadinessTimeout: 15},
		Search:   SearchConfig{Alias: "orders-staging", DefaultPageSize: 25, MaxPageSize: 500},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("expected WriteTimeoutSec=60, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Search.Alias != "orders-staging" {
		t.Errorf("expected Alias='orders-staging', got %q", cfg.Search.Alias)
	}
	if cfg.Search.DefaultPageSize != 25 {
		t.Errorf("expected DefaultPageSize=25, got %d", cfg.Search.DefaultPageSize)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("ORDEX_TEST_ADDR", "db.internal:6379")

	in := []byte("addrs:\n  - \"${ORDEX_TEST_ADDR}\"\npassword: \"${ORDEX_TEST_MISSING:-fallback}\"\n")
	out := string(expandEnvVars(in))

	want := "addrs:\n  - \"db.internal:6379\"\npassword: \"fallback\"\n"
	if out != want {
		t.Errorf("expandEnvVars mismatch:\ngot:  %q\nwant: %q", out, want)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "config"), 0o755); err != nil {
		t.Fatal(err)
	}

	data := []byte(`
http:
  port: 9090
database:
  addrs:
    - "localhost:6379"
search:
  default_page_size: 20
`)
	if err := os.WriteFile(filepath.Join(dir, "config", "test.yaml"), data, 0o600); err != nil {
		t.Fatal(err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(cwd) })
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.HTTP.Port)
	}
	if cfg.Search.DefaultPageSize != 20 {
		t.Errorf("expected default page size 20, got %d", cfg.Search.DefaultPageSize)
	}
	// Defaults filled for the rest
	if cfg.Search.MaxPageSize != 100 {
		t.Errorf("expected max page size 100, got %d", cfg.Search.MaxPageSize)
	}
}
