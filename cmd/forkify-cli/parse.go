package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/lataewar/forkify/internal/ingredient"
)

func newParseCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse [lines...]",
		Short: "Parse ingredient lines into count, unit and name.",
		Long: `Parse each argument as one ingredient line. With no arguments, lines
are read from standard input and blank lines are skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := args
			if len(lines) == 0 {
				var err error
				if lines, err = readLines(cmd.InOrStdin()); err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}

			results := ingredient.ParseAll(lines)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), results)
			}

			t := newTable(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"#", "Count", "Unit", "Ingredient", "Error"})
			for i, res := range results {
				if res.Err != nil {
					t.AppendRow(table.Row{i + 1, "", "", res.Line, res.Err.Error()})
					continue
				}
				ing := res.Ingredient
				t.AppendRow(table.Row{i + 1, formatCount(ing.Count), ing.Unit, ing.Name, ""})
			}
			t.Render()
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
