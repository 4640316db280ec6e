package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsZeroConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with no file should not error: %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	t.Chdir(t.TempDir())

	want := Config{APIKey: "secret", Model: "gemini-2.5-flash", Theme: "dark"}
	if err := Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}

	// The file holds a credential; neither it nor its directory may be
	// readable by others.
	path, err := Path()
	if err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("config file mode = %v, want 0600", info.Mode().Perm())
	}
	dirInfo, err := os.Stat(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if dirInfo.Mode().Perm() != 0700 {
		t.Errorf("config dir mode = %v, want 0700", dirInfo.Mode().Perm())
	}
}

func TestLoadCorruptFileReturnsErrorAndDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.MkdirAll(filepath.Join(dir, ".dandata"), 0700); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, ".dandata", "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err == nil {
		t.Error("corrupt file should surface an error")
	}
	if cfg != (Config{}) {
		t.Errorf("corrupt file should still yield the zero config, got %+v", cfg)
	}
}

func TestLoadSanitizesUnknownTheme(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.MkdirAll(filepath.Join(dir, ".dandata"), 0700); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, ".dandata", "config.json")
	if err := os.WriteFile(path, []byte(`{"theme": "solarized"}`), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme != "" {
		t.Errorf("unknown theme should reset to auto-detect, got %q", cfg.Theme)
	}
}

func TestPathPrefersProjectLocalDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path, err := Path()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, ".dandata", "config.json")
	if path != want {
		t.Errorf("Path() = %q, want %q", path, want)
	}
}
