package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoad_EnvOverridesYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	fixture := map[string]any{
		"port": "3443",
		"env":  "test",
		"database": map[string]any{
			"host":     "db.example.com",
			"port":     5432,
			"user":     "testuser",
			"database": "testdb",
		},
		"llm": map[string]any{
			"provider":        "openai",
			"model":           "gpt-4o",
			"timeout_seconds": 45,
		},
	}
	yamlContent, err := yaml.Marshal(fixture)
	if err != nil {
		t.Fatalf("failed to marshal fixture: %v", err)
	}
	if err := os.WriteFile(configPath, yamlContent, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Change to temp directory so Load() finds config.yaml
	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	t.Cleanup(func() {
		os.Chdir(originalDir)
	})

	// Clear env vars that might interfere with test
	os.Unsetenv("PGHOST")
	os.Unsetenv("LLM_MODEL")
	os.Unsetenv("AUTH_ENABLE_VERIFICATION")

	// Set env vars to override YAML values
	t.Setenv("PORT", "4443")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := Load("test-version")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Verify env vars override YAML
	if cfg.Port != "4443" {
		t.Errorf("expected Port=4443 (from env), got %s", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Errorf("expected Env=production (from env), got %s", cfg.Env)
	}

	// Verify version was set
	if cfg.Version != "test-version" {
		t.Errorf("expected Version=test-version, got %s", cfg.Version)
	}

	// Verify YAML value used for database host (proves YAML was read)
	if cfg.Database.Host != "db.example.com" {
		t.Errorf("expected Database.Host=db.example.com (from yaml), got %s", cfg.Database.Host)
	}
	if cfg.LLM.TimeoutSeconds != 45 {
		t.Errorf("expected LLM.TimeoutSeconds=45 (from yaml), got %d", cfg.LLM.TimeoutSeconds)
	}
}

func TestLoad_RequiresSigningKeyWhenVerificationEnabled(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
auth:
  enable_verification: true
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	t.Cleanup(func() {
		os.Chdir(originalDir)
	})

	os.Unsetenv("JWT_SIGNING_KEY")
	os.Unsetenv("AUTH_ENABLE_VERIFICATION")

	if _, err := Load("test"); err == nil {
		t.Fatal("expected Load() to fail without JWT_SIGNING_KEY")
	}

	t.Setenv("JWT_SIGNING_KEY", "secret")
	if _, err := Load("test"); err != nil {
		t.Fatalf("Load() failed with signing key set: %v", err)
	}
}

func TestLoad_RejectsNonPositiveTimeout(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("env: \"test\"\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	t.Cleanup(func() {
		os.Chdir(originalDir)
	})

	t.Setenv("LLM_TIMEOUT_SECONDS", "0")

	if _, err := Load("test"); err == nil {
		t.Fatal("expected Load() to reject LLM_TIMEOUT_SECONDS=0")
	}
}

func TestConnectionString(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "orientlink",
		Password: "pw",
		Database: "orientlink",
		SSLMode:  "disable",
	}

	got := cfg.ConnectionString()
	want := "host=localhost port=5432 user=orientlink password=pw dbname=orientlink sslmode=disable"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
