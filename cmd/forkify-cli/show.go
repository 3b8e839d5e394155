package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/lataewar/forkify/internal/service"
)

func newShowCmd(cc *cliContext) *cobra.Command {
	var servings int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a recipe with its parsed ingredients.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := cc.recipes().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			r := service.Assemble(raw, cc.cfg.DefaultServings)
			if servings != 0 {
				if err := r.Scale(servings); err != nil {
					return err
				}
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), r)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n%s\n%d servings, about %d minutes\n", r.Title, r.Publisher, r.Servings, r.Minutes)

			t := newTable(out)
			t.AppendHeader(table.Row{"Count", "Unit", "Ingredient"})
			for _, ing := range r.Ingredients {
				t.AppendRow(table.Row{formatCount(ing.Count), ing.Unit, ing.Name})
			}
			t.Render()

			for _, line := range r.Unparsed {
				fmt.Fprintf(out, "unparsed: %s\n", line)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&servings, "servings", 0, "scale ingredients to this many servings")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}
