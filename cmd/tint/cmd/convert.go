package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/tint"
)

var (
	rgbaAlpha   float64
	randomCount int
)

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize HEX...",
	Short: "Normalize colors to canonical #rrggbb form",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			canonical, err := tint.SanitizeHex(arg)
			if err != nil {
				return fmt.Errorf("%q: %w", arg, err)
			}
			fmt.Println(canonical)
		}
		return nil
	},
}

var rgbaCmd = &cobra.Command{
	Use:   "rgba HEX",
	Short: "Render a color as a CSS rgba() string",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := tint.RGBAString(args[0], rgbaAlpha)
		if err != nil {
			return err
		}
		fmt.Println(s)
		return nil
	},
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate random colors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for range randomCount {
			fmt.Println(tint.Random())
		}
		return nil
	},
}

func init() {
	rgbaCmd.Flags().Float64VarP(&rgbaAlpha, "alpha", "a", 1.0, "alpha channel, 0-1")
	randomCmd.Flags().IntVarP(&randomCount, "count", "n", 1, "number of colors to generate")

	rootCmd.AddCommand(sanitizeCmd, rgbaCmd, randomCmd)
}
