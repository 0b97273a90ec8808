package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/fae"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fae",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fae version %s\n", strings.TrimSpace(fae.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
