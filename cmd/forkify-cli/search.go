package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newSearchCmd(cc *cliContext) *cobra.Command {
	var page, perPage int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the recipe API.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := cc.service().Search(cmd.Context(), args[0], page, perPage)
			if err != nil {
				return err
			}

			t := newTable(cmd.OutOrStdout())
			t.SetTitle(fmt.Sprintf("%q: page %d of %d (%d recipes)", res.Query, res.Page, res.Pages, res.Total))
			t.AppendHeader(table.Row{"ID", "Title", "Publisher"})
			for _, s := range res.Results {
				t.AppendRow(table.Row{s.ID, s.Title, s.Publisher})
			}
			t.Render()
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "result page, starting at 1")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "results per page (default 10)")
	return cmd
}
