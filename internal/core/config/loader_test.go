package config

import (
	"os"
	"testing"
	"time"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "config_*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })

	if _, err := tmpFile.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tmpFile.Close()

	return tmpFile.Name()
}

func TestLoad_EnvSubstitution(t *testing.T) {
	// Setup env var
	os.Setenv("TEST_PRINTIFY_KEY", "pfy-test-token")
	defer os.Unsetenv("TEST_PRINTIFY_KEY")

	path := writeTempConfig(t, `
printify:
  api_key: ${TEST_PRINTIFY_KEY}
  shop_id: "12345"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Printify.APIKey != "pfy-test-token" {
		t.Errorf("Expected api key pfy-test-token, got %s", cfg.Printify.APIKey)
	}
	if cfg.Printify.ShopID != "12345" {
		t.Errorf("Expected shop id 12345, got %s", cfg.Printify.ShopID)
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeTempConfig(t, `
printify:
  api_key: test-token
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Printify.BaseURL != "https://api.printify.com/v1" {
		t.Errorf("Expected default base URL, got %s", cfg.Printify.BaseURL)
	}
	if cfg.Printify.MaxRetries != 3 {
		t.Errorf("Expected default max retries 3, got %d", cfg.Printify.MaxRetries)
	}
	if cfg.Cache.TTL != 1*time.Hour {
		t.Errorf("Expected default cache TTL 1h, got %v", cfg.Cache.TTL)
	}
}

func TestLoad_MissingAPIKey(t *testing.T) {
	path := writeTempConfig(t, `
server:
  port: 9090
`)

	if _, err := Load(path); err == nil {
		t.Fatal("Expected error for missing api key, got nil")
	}
}
