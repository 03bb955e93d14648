package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/tint"
)

var (
	adjustPercent int
	mixRatio      float64
)

var lightenCmd = &cobra.Command{
	Use:   "lighten HEX",
	Short: "Move a color toward white by --percent",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printAdjusted(tint.Lighten(args[0], adjustPercent))
	},
}

var darkenCmd = &cobra.Command{
	Use:   "darken HEX",
	Short: "Move a color toward black by --percent",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printAdjusted(tint.Darken(args[0], adjustPercent))
	},
}

var grayscaleCmd = &cobra.Command{
	Use:   "grayscale HEX",
	Short: "Convert a color to its perceptual gray equivalent",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printAdjusted(tint.Grayscale(args[0]))
	},
}

var complementCmd = &cobra.Command{
	Use:   "complement HEX",
	Short: "Invert each channel of a color",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printAdjusted(tint.Complementary(args[0]))
	},
}

var mixCmd = &cobra.Command{
	Use:   "mix HEX1 HEX2",
	Short: "Interpolate between two colors by --ratio",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printAdjusted(tint.Mix(args[0], args[1], mixRatio))
	},
}

func init() {
	for _, c := range []*cobra.Command{lightenCmd, darkenCmd} {
		c.Flags().IntVarP(&adjustPercent, "percent", "p", tint.DefaultAdjustPercent, "adjustment strength, 0-100")
	}
	mixCmd.Flags().Float64VarP(&mixRatio, "ratio", "r", tint.DefaultMixRatio, "blend ratio, 0 keeps the first color, 1 the second")

	rootCmd.AddCommand(lightenCmd, darkenCmd, grayscaleCmd, complementCmd, mixCmd)
}

func printAdjusted(hex string, err error) error {
	if err != nil {
		return err
	}
	fmt.Println(hex)
	return nil
}
