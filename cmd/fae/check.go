package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/fae/internal/cli"
	"github.com/aretw0/fae/internal/presentation/report"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Check diagram files against their expected strings",
	Long: `Loads every diagram of each file and evaluates its expected strings.
Exits 0 when all expectations hold, 1 when some string got the wrong verdict
and 2 when a file could not be loaded or a diagram is broken.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")
		watchMode, _ := cmd.Flags().GetBool("watch")

		store, closer, err := storeFor(cmd)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(exitError)
		}
		defer closer.Close()

		opts := cli.CheckOptions{
			Paths:  args,
			Format: report.Format(format),
			Color:  colorEnabled(cmd, os.Stdout),
			Store:  store,
			Hooks:  auditHooks(cmd),
			Logger: loggerFor(cmd),
		}
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetUint64("seed")
			opts.Seed = &seed
		}

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		if watchMode {
			if err := cli.RunWatch(ctx, opts, os.Stdout); err != nil && !cli.IsInterrupted(err) {
				fmt.Fprintln(os.Stderr, "Error:", err)
				os.Exit(exitError)
			}
			return
		}

		passed, err := cli.RunCheck(ctx, opts, os.Stdout)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			closer.Close()
			os.Exit(exitError)
		}
		if !passed {
			closer.Close()
			os.Exit(exitMismatch)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringP("format", "f", "text", "Output format: text, markdown or json")
	checkCmd.Flags().Uint64("seed", 0, "Seed for sampled strings (random when omitted)")
	checkCmd.Flags().BoolP("watch", "w", false, "Re-check whenever a file changes")
}
