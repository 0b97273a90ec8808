package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/fae"
	"github.com/aretw0/fae/internal/cli"
	"github.com/aretw0/fae/internal/presentation/report"
	"github.com/aretw0/fae/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Describe a diagram at the prompt and check it",
	Run: func(cmd *cobra.Command, args []string) {
		profile := profileFor(cmd, os.Stdout)

		store, closer, err := storeFor(cmd)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(exitError)
		}
		defer closer.Close()

		checker := fae.New(
			fae.WithLogger(loggerFor(cmd)),
			fae.WithStore(store),
			fae.WithHooks(auditHooks(cmd)),
			fae.WithReporter(report.NewText(os.Stdout, profile)),
		)

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		tui.PrintBanner(os.Stdout, profile, fae.Version)
		rep, err := cli.RunInteractive(ctx, os.Stdin, os.Stdout, profile, checker)
		if err != nil {
			if cli.IsInterrupted(err) {
				fmt.Fprintln(os.Stdout, "\nBye!")
				return
			}
			fmt.Fprintln(os.Stderr, "Error:", err)
			closer.Close()
			os.Exit(exitError)
		}
		if !rep.Passed() {
			closer.Close()
			os.Exit(exitMismatch)
		}
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
