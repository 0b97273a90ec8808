package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/fae/internal/presentation/report"
	"github.com/aretw0/fae/pkg/ports"
	"github.com/spf13/cobra"
)

var errNoStore = errors.New("no report store configured: pass --store or set " + storeEnv)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Inspect stored check reports",
}

var reportListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored report IDs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closer, err := persistentStore(cmd)
		if err != nil {
			return err
		}
		defer closer.Close()

		ids, err := store.List(cmd.Context())
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}

var reportShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Print a stored report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		store, closer, err := persistentStore(cmd)
		if err != nil {
			return err
		}
		defer closer.Close()

		rep, err := store.Load(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		color := false
		if f, ok := out.(*os.File); ok {
			color = colorEnabled(cmd, f)
		}
		r, err := report.New(report.Format(format), out, color)
		if err != nil {
			return err
		}
		return r.Report(&rep.Result)
	},
}

func persistentStore(cmd *cobra.Command) (ports.ReportStore, io.Closer, error) {
	store, closer, err := storeFor(cmd)
	if err != nil {
		return nil, nil, err
	}
	if store == nil {
		return nil, nil, errNoStore
	}
	return store, closer, nil
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.AddCommand(reportListCmd)
	reportCmd.AddCommand(reportShowCmd)

	reportShowCmd.Flags().StringP("format", "f", "text", "Output format: text, markdown or json")
}
