package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "image-vault.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadEmptyPathYieldsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if *cfg != want {
		t.Fatalf("Load(\"\") = %+v, want defaults %+v", *cfg, want)
	}
}

func TestLoadMissingExplicitFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.toml")
	_, err := Load(path)
	if err == nil {
		t.Fatal("Load silently fell back to defaults for a named file that does not exist")
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("error = %v, want mention of %q", err, path)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[storage]
root_dir = "/srv/masters"
date_sharding = false
fetch_timeout_seconds = 5

[render]
jpeg_quality = 70
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.RootDir != "/srv/masters" {
		t.Errorf("RootDir = %q", cfg.Storage.RootDir)
	}
	if cfg.Storage.DateSharding {
		t.Error("DateSharding = true, want false")
	}
	if cfg.Render.JPEGQuality != 70 {
		t.Errorf("JPEGQuality = %d, want 70", cfg.Render.JPEGQuality)
	}
	// Sections absent from the file keep their defaults.
	if cfg.Database.Path != Default().Database.Path {
		t.Errorf("Database.Path = %q, want default", cfg.Database.Path)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name     string
		contents string
		wantErr  string
	}{
		{"quality too high", "[render]\njpeg_quality = 101\n", "jpeg_quality"},
		{"quality zero", "[render]\njpeg_quality = 0\n", "jpeg_quality"},
		{"empty root", "[storage]\nroot_dir = \"\"\n", "root_dir"},
		{"negative timeout", "[storage]\nfetch_timeout_seconds = -1\n", "fetch_timeout_seconds"},
		{"malformed toml", "storage = not toml", "parse config"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.contents))
			if err == nil {
				t.Fatal("Load accepted invalid config")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error = %v, want mention of %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadExpandsTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	path := writeConfig(t, "[storage]\nroot_dir = \"~/vault\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, "vault"); cfg.Storage.RootDir != want {
		t.Fatalf("RootDir = %q, want %q", cfg.Storage.RootDir, want)
	}
}

func TestAttachConfig(t *testing.T) {
	cfg := Config{
		Storage: Storage{RootDir: "/srv/m", DateSharding: true, FetchTimeoutSeconds: 12},
		Render:  Render{JPEGQuality: 60},
	}
	ac := cfg.AttachConfig()
	if ac.RootDir != "/srv/m" || !ac.DateSharding || ac.JPEGQuality != 60 {
		t.Fatalf("AttachConfig = %+v", ac)
	}
	if ac.FetchTimeout != 12*time.Second {
		t.Fatalf("FetchTimeout = %v, want 12s", ac.FetchTimeout)
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := Default()
	cfg.Storage.RootDir = filepath.Join(base, "a", "masters")
	cfg.Database.Path = filepath.Join(base, "b", "photos.db")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, dir := range []string{cfg.Storage.RootDir, filepath.Join(base, "b")} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("directory %s not created: %v", dir, err)
		}
	}
}

func TestWriteSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := WriteSample(path); err != nil {
		t.Fatalf("WriteSample: %v", err)
	}
	// The sample must itself parse and validate.
	if _, err := Load(path); err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if err := WriteSample(path); err == nil {
		t.Fatal("WriteSample overwrote an existing file")
	}
}
