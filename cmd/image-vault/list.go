package main

import (
	"os"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List photo records and their master image paths",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepo()
		if err != nil {
			return err
		}
		defer repo.Close()

		photos, err := repo.List(cmd.Context())
		if err != nil {
			return err
		}

		tw := table.NewWriter()
		tw.SetOutputMirror(os.Stdout)
		tw.SetStyle(table.StyleRounded)
		tw.AppendHeader(table.Row{"ID", "Title", "Created", "Master"})
		for _, p := range photos {
			tw.AppendRow(table.Row{
				strconv.FormatInt(p.ID, 10),
				p.Title,
				p.CreatedAt.Format(time.DateOnly),
				p.Attachment().Path().File,
			})
		}
		tw.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
