package main

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/image-vault/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write an annotated sample config file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "image-vault.toml"
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.WriteSample(path); err != nil {
			return err
		}
		logger.Info("sample config written", "path", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
