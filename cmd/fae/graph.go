package main

import (
	"fmt"

	"github.com/aretw0/fae/internal/presentation/graph"
	"github.com/aretw0/fae/pkg/domain"
	"github.com/aretw0/fae/pkg/loader"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph FILE",
	Short: "Export a diagram as a Mermaid state diagram",
	Long: `Loads FILE and prints one of its diagrams (the first unless --name is given)
as a Mermaid stateDiagram-v2. With --trace, the walk of that string is highlighted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		word, _ := cmd.Flags().GetString("trace")

		diagrams, err := loader.LoadFile(args[0], loader.WithLogger(loggerFor(cmd)))
		if err != nil {
			return err
		}
		d, err := loader.Select(diagrams, name)
		if err != nil {
			return err
		}

		var overlay *graph.Overlay
		if cmd.Flags().Changed("trace") {
			tr, err := d.Automaton.Trace(domain.ParseWord(word))
			if err != nil {
				return err
			}
			if tr.Foreign {
				return fmt.Errorf("%q is not a string over %s", word, d.Automaton.Alphabet())
			}
			overlay = graph.OverlayFromTrace(tr)
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(d.Automaton, overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().String("name", "", "Name of the diagram to draw")
	graphCmd.Flags().String("trace", "", "Highlight the walk of this string")
}
