package cli

import (
	"fmt"
	"io"

	fcolor "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ironsheep/color-tools-mcp/internal/color"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <color>",
		Short: "Print a color in every format",
		Long: `Parse a color string and print it in every supported format.

Examples:
  color-mcp parse '#ff8000'
  color-mcp parse 'rgba(255, 128, 0, 0.5)'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := color.Parse(args[0])
			if err != nil {
				return err
			}
			printFormats(cmd.OutOrStdout(), c)
			return nil
		},
	}
}

func printFormats(w io.Writer, c color.Color) {
	f := c.Formats()
	fmt.Fprintf(w, "%s %s\n", swatch(c), f.Hex)
	fmt.Fprintf(w, "  rgb:  %s\n", f.RGB)
	fmt.Fprintf(w, "  rgba: %s\n", f.RGBA)
	fmt.Fprintf(w, "  hex:  %s\n", f.Hex)
	fmt.Fprintf(w, "  hexa: %s\n", f.HexA)
	fmt.Fprintf(w, "  hsl:  %.1f, %.3f, %.3f\n", f.HSL.H, f.HSL.S, f.HSL.L)
}

// swatch returns a block painted in c's clamped RGB, or brackets when color
// output is disabled.
func swatch(c color.Color) string {
	if fcolor.NoColor {
		return "[    ]"
	}
	n := c.NRGBA()
	return fcolor.BgRGB(int(n.R), int(n.G), int(n.B)).Sprint("      ")
}
