package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/ironsheep/image-vault/internal/attach"
)

//go:embed sample_config.toml
var sampleConfig string

// Storage controls where master images live and how they are laid out.
type Storage struct {
	RootDir             string `toml:"root_dir"`
	DateSharding        bool   `toml:"date_sharding"`
	FetchTimeoutSeconds int    `toml:"fetch_timeout_seconds"`
}

// Database locates the record database.
type Database struct {
	Path string `toml:"path"`
}

// Render controls delivery-format encoding.
type Render struct {
	JPEGQuality int `toml:"jpeg_quality"`
}

// Config is the full image-vault configuration.
type Config struct {
	Storage  Storage  `toml:"storage"`
	Database Database `toml:"database"`
	Render   Render   `toml:"render"`
}

// Default returns the repository defaults applied underneath any loaded file.
func Default() Config {
	return Config{
		Storage: Storage{
			RootDir:             "data/masters",
			DateSharding:        true,
			FetchTimeoutSeconds: 30,
		},
		Database: Database{
			Path: "data/image-vault.db",
		},
		Render: Render{
			JPEGQuality: attach.DefaultJPEGQuality,
		},
	}
}

// Load reads TOML configuration from path on top of the defaults. An empty
// path yields the defaults unchanged; a non-empty path names a file the user
// asked for, so a missing, unparseable, or invalid file is an error rather
// than a silent fallback.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file %s does not exist", path)
		}
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() {
	c.Storage.RootDir = expandPath(c.Storage.RootDir)
	c.Database.Path = expandPath(c.Database.Path)
}

func (c *Config) validate() error {
	if c.Storage.RootDir == "" {
		return errors.New("storage.root_dir must not be empty")
	}
	if c.Database.Path == "" {
		return errors.New("database.path must not be empty")
	}
	if q := c.Render.JPEGQuality; q < 1 || q > 100 {
		return fmt.Errorf("render.jpeg_quality must be in 1..100, got %d", q)
	}
	if c.Storage.FetchTimeoutSeconds < 0 {
		return fmt.Errorf("storage.fetch_timeout_seconds must not be negative, got %d", c.Storage.FetchTimeoutSeconds)
	}
	return nil
}

// EnsureDirectories creates the storage root and the database directory.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Storage.RootDir, filepath.Dir(c.Database.Path)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure directory %s: %w", dir, err)
		}
	}
	return nil
}

// AttachConfig converts the loaded settings into the attachment package's
// read-only configuration.
func (c *Config) AttachConfig() attach.Config {
	return attach.Config{
		RootDir:      c.Storage.RootDir,
		DateSharding: c.Storage.DateSharding,
		JPEGQuality:  c.Render.JPEGQuality,
		FetchTimeout: time.Duration(c.Storage.FetchTimeoutSeconds) * time.Second,
	}
}

// WriteSample writes the annotated sample configuration to path, refusing to
// overwrite an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(sampleConfig), 0o644)
}

// expandPath resolves a leading tilde against the user's home directory.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
