package main

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/lataewar/forkify/internal/config"
	"github.com/lataewar/forkify/internal/logging"
	"github.com/lataewar/forkify/internal/recipeapi"
	"github.com/lataewar/forkify/internal/service"
)

// cliContext holds flag values and the settings resolved from config before
// any subcommand runs.
type cliContext struct {
	apiURL string
	apiKey string
	cfg    config.Config
}

func newRootCmd() *cobra.Command {
	cc := &cliContext{}

	root := &cobra.Command{
		Use:           "forkify-cli",
		Short:         "forkify-cli parses ingredient lines and searches recipes.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logging.Setup(cfg.LogLevel)
			if cc.apiURL == "" {
				cc.apiURL = cfg.RecipeAPIURL
			}
			if cc.apiKey == "" {
				cc.apiKey = cfg.RecipeAPIKey
			}
			cc.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cc.apiURL, "api-url", "", "recipe API base URL (default from config)")
	root.PersistentFlags().StringVar(&cc.apiKey, "api-key", "", "recipe API key (default from config)")

	root.AddCommand(newParseCmd())
	root.AddCommand(newSearchCmd(cc))
	root.AddCommand(newShowCmd(cc))
	return root
}

func (cc *cliContext) recipes() *recipeapi.Client {
	return recipeapi.New(recipeapi.Options{
		BaseURL: cc.apiURL,
		Key:     cc.apiKey,
		Timeout: cc.cfg.RecipeAPITimeout,
	})
}

// service returns a Service backed only by the recipe API. The CLI has no
// database, so list and like operations are unavailable.
func (cc *cliContext) service() *service.Service {
	return service.New(nil, nil, cc.recipes(), service.Options{
		DefaultServings: cc.cfg.DefaultServings,
	})
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatCount(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}
