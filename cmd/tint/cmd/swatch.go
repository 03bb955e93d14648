package cmd

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/tint"
)

var (
	swatchOutput     string
	swatchFixAgainst string
)

const (
	swatchWidth  = 240
	swatchHeight = 48
)

var swatchCmd = &cobra.Command{
	Use:   "swatch HEX...",
	Short: "Render labeled color swatches to a PNG",
	Long: `Render one swatch strip per color to a PNG file. Each strip is
labeled with its canonical hex value, drawn in black or white per the
library's own contrast-color choice. With --fix-against, every color is
first adjusted until it meets AA contrast against the given background.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSwatchCmd,
}

func init() {
	swatchCmd.Flags().StringVarP(&swatchOutput, "output", "o", "swatch.png", "output PNG file")
	swatchCmd.Flags().StringVar(&swatchFixAgainst, "fix-against", "", "background hex to enforce AA contrast against")
	rootCmd.AddCommand(swatchCmd)
}

func runSwatchCmd(cmd *cobra.Command, args []string) error {
	hexes := make([]string, 0, len(args))
	for _, arg := range args {
		hex, err := tint.SanitizeHex(arg)
		if err != nil {
			return fmt.Errorf("%q: %w", arg, err)
		}
		if swatchFixAgainst != "" {
			adjusted, err := tint.AdjustForContrast(hex, swatchFixAgainst, tint.DefaultMinContrastRatio)
			if err != nil {
				return fmt.Errorf("fixing %q: %w", arg, err)
			}
			hex = adjusted
		}
		hexes = append(hexes, hex)
	}

	img := image.NewRGBA(image.Rect(0, 0, swatchWidth, swatchHeight*len(hexes)))
	for i, hex := range hexes {
		fill, err := tint.ParseHex(hex)
		if err != nil {
			return err
		}
		strip := image.Rect(0, i*swatchHeight, swatchWidth, (i+1)*swatchHeight)
		draw.Draw(img, strip, image.NewUniform(fill), image.Point{}, draw.Src)

		label, err := tint.ParseHex(tint.ContrastColor(hex))
		if err != nil {
			return err
		}
		d := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(label),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(8, i*swatchHeight+swatchHeight/2+basicfont.Face7x13.Height/2),
		}
		d.DrawString(hex)
	}

	out, err := os.Create(swatchOutput)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d swatches)\n", swatchOutput, len(hexes))
	return nil
}
