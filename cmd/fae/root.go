package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/fae/internal/cli"
	"github.com/aretw0/fae/internal/logging"
	"github.com/aretw0/fae/pkg/domain"
	"github.com/aretw0/fae/pkg/observability"
	"github.com/aretw0/fae/pkg/ports"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Exit codes.
const (
	exitOK       = 0
	exitMismatch = 1
	exitError    = 2
)

// storeEnv is consulted when --store is not given.
const storeEnv = "FAE_STORE"

var rootCmd = &cobra.Command{
	Use:   "fae",
	Short: "fae checks finite automata against the strings they should accept",
	Long: `fae loads deterministic finite automata from YAML or JSON diagram files,
walks every expected string through them and reports each string whose
verdict differs from the expectation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitError)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Write debug logs to stderr")
	rootCmd.PersistentFlags().Bool("audit", false, "Log every evaluation event to stderr")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().String("store", "", "Report store: memory, file:DIR, sqlite:PATH or redis://host:port/db (default $"+storeEnv+")")
}

func loggerFor(cmd *cobra.Command) *slog.Logger {
	debug, _ := cmd.Flags().GetBool("debug")
	return cli.NewLogger(debug)
}

// auditHooks returns the audit log hooks when --audit is set.
func auditHooks(cmd *cobra.Command) domain.LifecycleHooks {
	audit, _ := cmd.Flags().GetBool("audit")
	if !audit {
		return domain.LifecycleHooks{}
	}
	level := slog.LevelInfo
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = slog.LevelDebug
	}
	return observability.AuditHooks(logging.New(level))
}

// colorEnabled reports whether output to f should be styled.
func colorEnabled(cmd *cobra.Command, f *os.File) bool {
	noColor, _ := cmd.Flags().GetBool("no-color")
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func profileFor(cmd *cobra.Command, f *os.File) termenv.Profile {
	if !colorEnabled(cmd, f) {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).EnvColorProfile()
}

func storeFor(cmd *cobra.Command) (ports.ReportStore, io.Closer, error) {
	spec, _ := cmd.Flags().GetString("store")
	if !cmd.Flags().Changed("store") {
		spec = os.Getenv(storeEnv)
	}
	return cli.OpenStore(spec)
}
