package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a photo record and its master image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid photo id %q", args[0])
		}

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

		if err := repo.Destroy(cmd.Context(), id); err != nil {
			return err
		}
		logger.Info("photo deleted", "id", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
