package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/tint"
)

var (
	verbose bool

	rootCmd = &cobra.Command{
		Use:          "tint",
		Short:        "Color manipulation and WCAG contrast checks",
		Long:         `tint converts, adjusts, and audits CSS hex colors: lighten/darken/mix, WCAG AA/AAA contrast checks, and contrast-preserving fixes.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				tint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging to stderr")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
