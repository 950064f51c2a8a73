package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yigit/courseplan/internal/app/catalog"
	"github.com/yigit/courseplan/internal/app/requirements"
)

var verbose bool

// rootCmd is the root command for planctl.
var rootCmd = &cobra.Command{
	Use:     "planctl",
	Version: "1.0.0",
	Short:   "Course catalog maintenance tool",
	Long: `planctl inspects course catalog files used by the planning service.

It resolves courseset requirement expressions the same way the API does,
so catalog data problems surface before deployment.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(showCmd)
}

// loadCatalog loads a catalog file and builds a resolver over it.
func loadCatalog(path string) (*catalog.Catalog, *requirements.Resolver, error) {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	cat, err := catalog.Load(path, logger)
	if err != nil {
		return nil, nil, err
	}
	return cat, requirements.NewResolver(cat, logger), nil
}
