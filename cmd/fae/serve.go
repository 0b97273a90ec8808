package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/fae"
	"github.com/aretw0/fae/internal/cli"
	httpAdapter "github.com/aretw0/fae/pkg/adapters/http"
	"github.com/aretw0/fae/pkg/adapters/memory"
	"github.com/aretw0/fae/pkg/observability"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Serves the checker as a JSON API over HTTP:

  POST /check         check a diagram document sent as the request body
  GET  /reports       list stored report IDs
  GET  /reports/{id}  fetch a stored report
  GET  /metrics       Prometheus metrics (unless --metrics=false)

Reports are kept in memory unless --store says otherwise.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		withMetrics, _ := cmd.Flags().GetBool("metrics")
		logger := loggerFor(cmd)

		store, closer, err := storeFor(cmd)
		if err != nil {
			return err
		}
		defer closer.Close()
		if store == nil {
			store = memory.NewStore()
		}

		checkerOpts := []fae.Option{
			fae.WithLogger(logger),
			fae.WithStore(store),
			fae.WithHooks(auditHooks(cmd)),
		}
		var handlerOpts []httpAdapter.Option
		if withMetrics {
			metrics := observability.NewMetrics()
			checkerOpts = append(checkerOpts, fae.WithHooks(metrics.Hooks()))
			handlerOpts = append(handlerOpts, httpAdapter.WithMetrics(metrics.Handler()))
		}
		checker := fae.New(checkerOpts...)
		handlerOpts = append(handlerOpts, httpAdapter.WithLogger(logger))

		srv := &http.Server{
			Addr:              ":" + port,
			Handler:           httpAdapter.NewHandler(checker, handlerOpts...),
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)
		go func() {
			fmt.Fprintf(cmd.OutOrStdout(), "Starting fae %s on %s\n", strings.TrimSpace(fae.Version), srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)

		case <-ctx.Done():
			fmt.Fprintf(cmd.OutOrStdout(), "\nStart shutdown... Signal: %v\n", ctx.Signal())

			// Give outstanding requests a deadline for completion.
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("graceful shutdown did not complete", "error", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("error killing server: %w", err)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "fae server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().Bool("metrics", true, "Expose Prometheus metrics at /metrics")
}
