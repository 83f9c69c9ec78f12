package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(cfg.Protocols) != 3 {
		t.Errorf("default protocols: got %v", cfg.Protocols)
	}
	if cfg.Runtime.BaseURL == "" || cfg.Runtime.LoadWaitSeconds != 30 {
		t.Errorf("default runtime config wrong: %+v", cfg.Runtime)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "core.yaml")
	body := `
protocols: [soap]
allow_structured_recommendations: false
contact:
  name: Dana
  phone: 555-0101
runtime:
  base_url: http://localhost:9999
  coach_models: [tiny-coach]
  load_wait_seconds: 5
db_path: /tmp/test.db
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Protocols) != 1 || cfg.Protocols[0] != "soap" {
		t.Errorf("protocols: got %v", cfg.Protocols)
	}
	if cfg.AllowStructuredRecommendations {
		t.Error("allow_structured_recommendations should be false")
	}
	if cfg.Contact == nil || cfg.Contact.Name != "Dana" {
		t.Errorf("contact: got %+v", cfg.Contact)
	}
	if cfg.Runtime.BaseURL != "http://localhost:9999" {
		t.Errorf("base_url: got %q", cfg.Runtime.BaseURL)
	}
	if cfg.Runtime.LoadWaitSeconds != 5 {
		t.Errorf("load_wait_seconds: got %d", cfg.Runtime.LoadWaitSeconds)
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("db_path: got %q", cfg.DBPath)
	}
}

func TestLoadInvalidYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("invalid yaml should fail")
	}
}
