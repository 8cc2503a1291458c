package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/color-tools-mcp/internal/color"
	"github.com/ironsheep/color-tools-mcp/internal/palette"
)

func newPaletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette <hex>",
		Short: "Print the seven tone scale of a base color",
		Long: `Derive the tints and shades of a six digit hex color.

Examples:
  color-mcp palette '#336699'
  color-mcp palette ff0000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := palette.New(args[0])
			if err != nil {
				return err
			}
			tones, err := s.Tones()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, t := range tones {
				c, err := color.Parse(t.Hex)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s %-8s %s\n", swatch(c), t.Name, t.Hex)
			}
			return nil
		},
	}
}
