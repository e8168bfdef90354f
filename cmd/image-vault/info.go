package main

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-vault/internal/attach"
)

var infoCmd = &cobra.Command{
	Use:   "info <id>",
	Short: "Show a photo's master image path and dimensions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid photo id %q", args[0])
		}

		repo, err := openRepo()
		if err != nil {
			return err
		}
		defer repo.Close()

		photo, err := repo.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		if photo == nil {
			return fmt.Errorf("photo %d not found", id)
		}

		path := photo.Attachment().Path()
		fmt.Printf("ID:      %d\n", photo.ID)
		fmt.Printf("Title:   %s\n", photo.Title)
		if photo.Source != "" {
			fmt.Printf("Source:  %s\n", photo.Source)
		}
		fmt.Printf("Created: %s\n", photo.CreatedAt)
		fmt.Printf("Master:  %s\n", path.File)

		w, h, err := masterDimensions(path)
		var notFound *attach.MasterNotFoundError
		if errors.As(err, &notFound) {
			fmt.Println("Status:  no master image stored yet")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("Size:    %dx%d\n", w, h)
		return nil
	},
}

// masterDimensions reads just the image header, not the full raster.
func masterDimensions(p attach.Path) (w, h int, err error) {
	f, err := os.Open(p.File)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, 0, &attach.MasterNotFoundError{Path: p.File}
		}
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("read master header: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
