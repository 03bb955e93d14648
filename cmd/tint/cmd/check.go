package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/tint"
)

var (
	checkLarge    bool
	checkMinRatio float64
	checkFix      bool
)

var checkCmd = &cobra.Command{
	Use:   "check FOREGROUND BACKGROUND",
	Short: "Report the WCAG contrast ratio and AA/AAA verdicts for a color pair",
	Args:  cobra.ExactArgs(2),
	RunE:  runCheckCmd,
}

func init() {
	checkCmd.Flags().BoolVar(&checkLarge, "large", false, "use large-text thresholds (AA 3.0, AAA 4.5)")
	checkCmd.Flags().Float64Var(&checkMinRatio, "min-ratio", tint.DefaultMinContrastRatio, "minimum ratio required by --fix")
	checkCmd.Flags().BoolVar(&checkFix, "fix", false, "adjust the foreground until it meets --min-ratio against the background")
	rootCmd.AddCommand(checkCmd)
}

func runCheckCmd(cmd *cobra.Command, args []string) error {
	fg, bg := args[0], args[1]

	ratio, err := tint.ContrastRatio(fg, bg)
	if err != nil {
		return err
	}
	fmt.Printf("ratio: %.2f\n", ratio)
	fmt.Printf("AA:    %s\n", verdict(tint.MeetsWCAGAA(fg, bg, checkLarge)))
	fmt.Printf("AAA:   %s\n", verdict(tint.MeetsWCAGAAA(fg, bg, checkLarge)))

	if checkFix {
		adjusted, err := tint.AdjustForContrast(fg, bg, checkMinRatio)
		if err != nil {
			return err
		}
		adjustedRatio, err := tint.ContrastRatio(adjusted, bg)
		if err != nil {
			return err
		}
		fmt.Printf("fixed: %s (ratio %.2f)\n", adjusted, adjustedRatio)
	}
	return nil
}

func verdict(pass bool) string {
	if pass {
		return "pass"
	}
	return "fail"
}
