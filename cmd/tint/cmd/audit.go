package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/tint"
)

var (
	auditLevel string
	auditLarge bool
)

// paletteFile is the on-disk palette format:
//
//	colors:
//	  primary: "#3498db"
//	  surface: "#ffffff"
//	pairs:
//	  - foreground: primary
//	    background: surface
//	  - foreground: "#777777"
//	    background: surface
//	    large: true
//
// Pair entries name a key from the colors map or give a literal hex value.
type paletteFile struct {
	Colors map[string]string `yaml:"colors"`
	Pairs  []palettePair     `yaml:"pairs"`
}

type palettePair struct {
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
	Large      bool   `yaml:"large"`
}

var auditCmd = &cobra.Command{
	Use:   "audit PALETTE.yaml",
	Short: "Check every color pair in a palette file against WCAG thresholds",
	Args:  cobra.ExactArgs(1),
	RunE:  runAuditCmd,
}

func init() {
	auditCmd.Flags().StringVar(&auditLevel, "level", "aa", "conformance level to enforce: aa or aaa")
	auditCmd.Flags().BoolVar(&auditLarge, "large", false, "use large-text thresholds for pairs that don't set their own")
	rootCmd.AddCommand(auditCmd)
}

func runAuditCmd(cmd *cobra.Command, args []string) error {
	if auditLevel != "aa" && auditLevel != "aaa" {
		return fmt.Errorf("unknown conformance level %q (want aa or aaa)", auditLevel)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var palette paletteFile
	if err := yaml.Unmarshal(data, &palette); err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}
	if len(palette.Pairs) == 0 {
		return fmt.Errorf("%s defines no pairs to audit", args[0])
	}

	failed := 0
	for _, pair := range palette.Pairs {
		fg, err := palette.resolve(pair.Foreground)
		if err != nil {
			return err
		}
		bg, err := palette.resolve(pair.Background)
		if err != nil {
			return err
		}

		large := pair.Large || auditLarge
		ratio, err := tint.ContrastRatio(fg, bg)
		if err != nil {
			return fmt.Errorf("pair %s/%s: %w", pair.Foreground, pair.Background, err)
		}

		pass := tint.MeetsWCAGAA(fg, bg, large)
		if auditLevel == "aaa" {
			pass = tint.MeetsWCAGAAA(fg, bg, large)
		}
		if !pass {
			failed++
		}
		fmt.Printf("%-24s on %-24s ratio %5.2f  %s\n",
			pair.Foreground, pair.Background, ratio, verdict(pass))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d pairs fail %s", failed, len(palette.Pairs), auditLevel)
	}
	return nil
}

// resolve maps a palette name to its hex value, or passes a literal
// hex string through.
func (p *paletteFile) resolve(name string) (string, error) {
	if hex, ok := p.Colors[name]; ok {
		return hex, nil
	}
	if tint.IsValidHex(name) {
		return name, nil
	}
	return "", fmt.Errorf("%q is neither a palette color nor a hex value", name)
}
