package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <title> <source>",
	Short: "Create a photo record and store its master image",
	Long: `Source is a local file path or an http(s) URL. The image is decoded,
normalized to PNG, and written to the record's sharded master path once the
record row is saved.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		title, source := args[0], args[1]

		lock, err := lockRoot()
		if err != nil {
			return err
		}
		defer lock.Unlock()

		repo, err := openRepo()
		if err != nil {
			return err
		}
		defer repo.Close()

		photo := repo.NewPhoto(title)
		photo.Source = source
		att := photo.Attachment()

		if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
			err = att.AssignURL(source)
		} else {
			var f *os.File
			f, err = os.Open(source)
			if err != nil {
				return err
			}
			defer f.Close()
			err = att.Assign(f)
		}
		if err != nil {
			return err
		}

		if err := repo.Save(cmd.Context(), photo); err != nil {
			return err
		}
		logger.Info("photo ingested", "id", photo.ID, "master", att.Path().File)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}
