package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/aretw0/fae"
	"github.com/aretw0/fae/internal/cli"
	"github.com/aretw0/fae/internal/logging"
	"github.com/aretw0/fae/pkg/adapters/mcp"
	"github.com/aretw0/fae/pkg/adapters/memory"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts fae as an MCP Server, so AI agents can check diagrams as tools.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")
		debug, _ := cmd.Flags().GetBool("debug")

		// Logs go to stderr so they never corrupt JSON-RPC on stdout.
		logger := logging.New(logging.Level(debug))
		log.SetOutput(os.Stderr)

		store, closer, err := storeFor(cmd)
		if err != nil {
			return err
		}
		defer closer.Close()
		if store == nil {
			store = memory.NewStore()
		}

		checker := fae.New(fae.WithLogger(logger), fae.WithStore(store), fae.WithHooks(auditHooks(cmd)))
		srv := mcp.NewServer(checker, logger)

		switch transport {
		case "stdio":
			logger.Info("starting fae MCP server (stdio)")
			return srv.ServeStdio()
		case "sse":
			ctx := cli.NewSignalContext(context.Background())
			defer ctx.Cancel()

			if err := srv.ServeSSE(ctx, port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			logger.Info("MCP server stopped gracefully")
			return nil
		default:
			return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
}
