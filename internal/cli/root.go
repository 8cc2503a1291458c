// Package cli wires the color-mcp command line.
package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// BuildInfo carries the version details stamped in by ldflags.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// NewRootCmd builds the command tree. With no subcommand the MCP server runs
// on stdin/stdout.
func NewRootCmd(info BuildInfo) *cobra.Command {
	var envFiles []string

	rootCmd := &cobra.Command{
		Use:   "color-mcp",
		Short: "MCP server for color parsing and palette derivation",
		Long: `color-mcp parses CSS-style color strings, derives tint and shade
palettes, and samples colors from images.

Run without a subcommand it speaks the MCP protocol over stdin/stdout.
Configure it in your MCP client (e.g., Claude Desktop).

Environment variables:
  COLOR_MCP_LOG_LEVEL=debug        Enable debug logging
  COLOR_MCP_METRICS_ADDR=:9090     Serve Prometheus metrics
  COLOR_MCP_SWATCH_SIZE=64         Default swatch edge in pixels
  COLOR_MCP_CACHE_IMAGES=false     Decode images on every call`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), envFiles, info)
		},
	}
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "Load settings from these .env files (default .env)")

	rootCmd.AddCommand(newServeCmd(&envFiles, info))
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newPaletteCmd())
	rootCmd.AddCommand(newVersionCmd(info))

	return rootCmd
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context, info BuildInfo) error {
	return NewRootCmd(info).ExecuteContext(ctx)
}
