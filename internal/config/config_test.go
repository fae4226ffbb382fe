package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CATALOG_API_URL", "http://catalog:8080/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "http://catalog:8080" {
		t.Errorf("expected trailing slash trimmed, got %q", cfg.APIBaseURL)
	}
	if cfg.Addr != ":8081" {
		t.Errorf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.APITimeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", cfg.APITimeout)
	}
	if cfg.RateLimitBurst != 40 || cfg.MaxBodyBytes != 1<<20 {
		t.Errorf("unexpected limits: %+v", cfg)
	}
}

func TestLoad_MissingAPIURL(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CATALOG_API_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error without CATALOG_API_URL")
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CATALOG_API_URL", "http://catalog")
	t.Setenv("CATALOG_API_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for bad timeout")
	}
}

func TestLoad_AllowedOrigins(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CATALOG_API_URL", "http://catalog")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, ,http://b.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "http://b.test" {
		t.Errorf("unexpected origins: %v", cfg.AllowedOrigins)
	}
}

func TestLoadEnvFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, ".env"), []byte("CATALOG_API_URL=from_file\nADMIN_ADDR=:9999\n"), 0644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Chdir(tmp)
	t.Setenv("CATALOG_API_URL", "from_env")
	t.Setenv("ADMIN_ADDR", "")
	os.Unsetenv("ADMIN_ADDR")

	LoadEnvFiles()

	if got := os.Getenv("CATALOG_API_URL"); got != "from_env" {
		t.Fatalf("expected existing env to win, got %q", got)
	}
	if got := os.Getenv("ADMIN_ADDR"); got != ":9999" {
		t.Fatalf("expected file value for unset var, got %q", got)
	}
}

func TestLoadClient_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CATALOG_API_URL", "")
	t.Setenv("CATALOG_SESSION_FILE", "")
	t.Setenv("CATALOG_TOKEN", "")
	t.Setenv("CATALOG_API_TIMEOUT", "")

	c, err := LoadClient()
	if err != nil {
		t.Fatalf("LoadClient: %v", err)
	}
	if c.APIBaseURL != "http://localhost:8080" {
		t.Errorf("expected local default, got %q", c.APIBaseURL)
	}
	if c.APITimeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", c.APITimeout)
	}
	if c.SessionFile != "" || c.Token != "" {
		t.Errorf("expected empty session settings, got %+v", c)
	}
}

func TestLoadClient_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CATALOG_API_URL", "http://catalog:8080/")
	t.Setenv("CATALOG_SESSION_FILE", "/tmp/session.yaml")
	t.Setenv("CATALOG_TOKEN", "tok")
	t.Setenv("CATALOG_API_TIMEOUT", "3s")

	c, err := LoadClient()
	if err != nil {
		t.Fatalf("LoadClient: %v", err)
	}
	want := Client{APIBaseURL: "http://catalog:8080", APITimeout: 3 * time.Second, SessionFile: "/tmp/session.yaml", Token: "tok"}
	if c != want {
		t.Errorf("got %+v, want %+v", c, want)
	}
}

func TestLoadClient_InvalidTimeout(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CATALOG_API_TIMEOUT", "later")

	if _, err := LoadClient(); err == nil {
		t.Fatal("expected error for bad timeout")
	}
}
