package config

import (
	"os"
	"path/filepath"
	"testing"
)

// pointConfigHome redirects the config dir to a temp directory. On linux
// os.UserConfigDir honors XDG_CONFIG_HOME.
func pointConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvServerURL, "")
	t.Setenv(EnvCloneSource, "")
	t.Setenv(EnvLogFile, "")
	return dir
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	pointConfigHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Defaults() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	pointConfigHome(t)

	want := Config{
		ServerURL:   "http://example.test:9000",
		CloneSource: "JAN 26",
		LogFile:     "/tmp/sheetdesk.log",
	}
	if err := Save(want); err != nil {
		t.Fatal(err)
	}

	got, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	pointConfigHome(t)

	if err := Save(Config{ServerURL: "http://from-file", CloneSource: "APR 25"}); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvServerURL, "http://from-env")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ServerURL != "http://from-env" {
		t.Errorf("ServerURL = %q, env must win", cfg.ServerURL)
	}
	if cfg.CloneSource != "APR 25" {
		t.Errorf("CloneSource = %q", cfg.CloneSource)
	}
}

func TestPartialFileGetsDefaults(t *testing.T) {
	dir := pointConfigHome(t)

	path := filepath.Join(dir, "sheetdesk", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("log_file: /tmp/x.log\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ServerURL != Defaults().ServerURL {
		t.Errorf("ServerURL = %q, want default", cfg.ServerURL)
	}
	if cfg.CloneSource != Defaults().CloneSource {
		t.Errorf("CloneSource = %q, want default", cfg.CloneSource)
	}
	if cfg.LogFile != "/tmp/x.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
}

func TestMalformedFileErrors(t *testing.T) {
	dir := pointConfigHome(t)

	path := filepath.Join(dir, "sheetdesk", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("malformed config must error")
	}
}
