package cli

import (
	"context"
	"errors"
	"log"

	"github.com/spf13/cobra"

	"github.com/ironsheep/color-tools-mcp/internal/config"
	"github.com/ironsheep/color-tools-mcp/internal/server"
)

func newServeCmd(envFiles *[]string, info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *envFiles, info)
		},
	}
}

func runServe(ctx context.Context, envFiles []string, info BuildInfo) error {
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return err
	}

	if cfg.Debug() {
		log.Printf("Color MCP Server v%s (built %s, commit %s)", info.Version, info.BuildTime, info.GitCommit)
		log.Printf("Swatch size %d, image cache %t", cfg.SwatchSize, cfg.CacheImages)
	}

	err = server.NewWithConfig(cfg).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
