package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "softwear.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func defaultsForTest() map[string]any {
	return map[string]any{
		"database.type": "sqlite",
		"database.dsn":  "./softwear.db",
		"language":      "en",
	}
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := writeTempConfig(t, "database:\n  type: postgres\n  dsn: \"host=localhost dbname=softwear\"\n")

	cfg, err := LoadConfig[Config](&cobra.Command{}, defaultsForTest(), &path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Type != "postgres" {
		t.Fatalf("expected file value for database.type, got %q", cfg.Database.Type)
	}
	if cfg.Language != "en" {
		t.Fatalf("expected default language retained, got %q", cfg.Language)
	}
}

func TestLoadConfig_FlagOverridesFile(t *testing.T) {
	path := writeTempConfig(t, "database:\n  dsn: ./from-file.db\n")

	cmd := &cobra.Command{}
	cmd.Flags().String("database.dsn", "./softwear.db", "")
	if err := cmd.Flags().Set("database.dsn", "./from-flag.db"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}

	cfg, err := LoadConfig[Config](cmd, defaultsForTest(), &path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.DSN != "./from-flag.db" {
		t.Fatalf("expected flag to win over file, got %q", cfg.Database.DSN)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeTempConfig(t, "language: en\n")
	t.Setenv("SOFTWEAR_LANGUAGE", "fil")

	cfg, err := LoadConfig[Config](&cobra.Command{}, defaultsForTest(), &path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Language != "fil" {
		t.Fatalf("expected env to win over file, got %q", cfg.Language)
	}
}

func TestLoadConfig_MalformedFileIsFatal(t *testing.T) {
	path := writeTempConfig(t, "database: [unclosed\n")

	if _, err := LoadConfig[Config](&cobra.Command{}, defaultsForTest(), &path); err == nil {
		t.Fatal("expected an error for a malformed config file")
	}
}
