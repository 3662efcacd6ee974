// Copyright (c) 2026 Airdesk Team
// Airdesk - flight and passenger desk
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	cfg "github.com/toeirei/airdesk/internal/config"
)

// isolate points the user config dir and the working directory at empty
// temporary directories.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	t.Chdir(tmp)
	return tmp
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	isolate(t)

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err == nil {
		t.Fatalf("expected ConfigFileNotFoundError, got nil")
	}
	if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		t.Fatalf("expected ConfigFileNotFoundError, got: %T %v", err, err)
	}
	if got.Database.Type != "sqlite" || got.Database.Dsn != "./airport.db" {
		t.Fatalf("unexpected database defaults: %+v", got.Database)
	}
	if got.Language != "en" || got.Export.Path != "passengers.xlsx" || got.Export.Sheet != "Passengers" {
		t.Fatalf("unexpected defaults: %+v", got)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	tmp := isolate(t)
	yaml := "database:\n  type: postgres\n  dsn: postgresql://user@/db\nlanguage: de\nexport:\n  sheet: Roster\n"
	file := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(file, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Database.Type != "postgres" {
		t.Fatalf("expected postgres, got %q", got.Database.Type)
	}
	if got.Language != "de" {
		t.Fatalf("expected de, got %q", got.Language)
	}
	if got.Export.Sheet != "Roster" || got.Export.Path != "passengers.xlsx" {
		t.Fatalf("expected file value merged over defaults, got %+v", got.Export)
	}
}

func TestLoadConfig_FindsFileInWorkingDir(t *testing.T) {
	tmp := isolate(t)
	if err := os.WriteFile(filepath.Join(tmp, "airdesk.yaml"), []byte("language: de\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Language != "de" {
		t.Fatalf("expected de from ./airdesk.yaml, got %q", got.Language)
	}
}

func TestLoadConfig_EnvVarParsing(t *testing.T) {
	isolate(t)
	t.Setenv("AIRDESK_DATABASE_TYPE", "mysql")
	t.Setenv("AIRDESK_DATABASE_DSN", "user:pw@tcp(127.0.0.1:3306)/airdesk")
	t.Setenv("AIRDESK_LANGUAGE", "de")

	got, _ := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)

	if got.Database.Type != "mysql" {
		t.Fatalf("expected mysql from env, got %q", got.Database.Type)
	}
	if got.Database.Dsn != "user:pw@tcp(127.0.0.1:3306)/airdesk" {
		t.Fatalf("expected env DSN, got %q", got.Database.Dsn)
	}
	if got.Language != "de" {
		t.Fatalf("expected de from env, got %q", got.Language)
	}
}

func TestLoadConfig_FlagOverridesEnv(t *testing.T) {
	isolate(t)
	t.Setenv("AIRDESK_LANGUAGE", "de")

	cmd := &cobra.Command{}
	cmd.Flags().String("lang", "en", "language")
	cmd.Flags().String("db-dsn", "./airport.db", "dsn")
	if err := cmd.Flags().Set("lang", "en"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}

	got, _ := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil)

	if got.Language != "en" {
		t.Fatalf("expected en from flag (not de from env), got %q", got.Language)
	}
	if got.Database.Dsn != "./airport.db" {
		t.Fatalf("unchanged flag should keep default dsn, got %q", got.Database.Dsn)
	}
}

func TestLoadConfig_BrokenFile(t *testing.T) {
	tmp := isolate(t)
	file := filepath.Join(tmp, "broken.yaml")
	if err := os.WriteFile(file, []byte("database: [unterminated\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	_, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		t.Fatalf("expected parse error, got not-found")
	}
}

func TestWriteConfigFile_CreatesFileThatLoads(t *testing.T) {
	isolate(t)

	c := cfg.Config{Language: "de"}
	c.Database.Type = "sqlite"
	c.Database.Dsn = "./other.db"
	c.Export.Sheet = "Roster"

	path, err := cfg.WriteConfigFile(&c, false)
	if err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}
	want, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	if path != want {
		t.Fatalf("expected %s, got %s", want, path)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig after write: %v", err)
	}
	if got.Database.Dsn != "./other.db" || got.Language != "de" || got.Export.Sheet != "Roster" {
		t.Fatalf("written values not loaded back: %+v", got)
	}
}

func TestGetConfigPath(t *testing.T) {
	isolate(t)
	p, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath(false): %v", err)
	}
	if filepath.Base(p) != "airdesk.yaml" || filepath.Base(filepath.Dir(p)) != "airdesk" {
		t.Fatalf("unexpected user config path: %s", p)
	}
}
