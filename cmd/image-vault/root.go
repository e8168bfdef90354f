package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ironsheep/image-vault/internal/config"
	"github.com/ironsheep/image-vault/internal/operator"
	"github.com/ironsheep/image-vault/internal/record"
)

var (
	configPath string
	cfg        *config.Config
	logger     = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

var rootCmd = &cobra.Command{
	Use:   "image-vault",
	Short: "Store one master image per record and render transformed outputs",
	Long: `image-vault keeps exactly one losslessly stored master image per photo
record, laid out under a date-sharded directory tree, and renders JPEG
outputs through a pipeline of named operators (resize, crop, grayscale, ...).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			logger.Debug("no .env file found")
		}
		path := configPath
		if path == "" {
			path = os.Getenv("IMAGE_VAULT_CONFIG")
		}
		var err error
		cfg, err = config.Load(path)
		return err
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to config file (default $IMAGE_VAULT_CONFIG or built-in defaults)")
}

// openRepo opens the photo repository wired to the default operator registry.
func openRepo() (*record.Repository, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, err
	}
	return record.Open(cfg.Database.Path, cfg.AttachConfig(), operator.Default())
}

// lockRoot takes an exclusive cross-process lock under the storage root so
// concurrent invocations cannot interleave master writes and deletes.
func lockRoot() (*flock.Flock, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, err
	}
	l := flock.New(filepath.Join(cfg.Storage.RootDir, ".image-vault.lock"))
	if err := l.Lock(); err != nil {
		return nil, fmt.Errorf("lock storage root: %w", err)
	}
	return l, nil
}
