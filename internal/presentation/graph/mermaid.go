package graph

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/aretw0/fae/pkg/automaton"
	"github.com/aretw0/fae/pkg/domain"
)

// Overlay contains walk data to visualize on the graph.
type Overlay struct {
	VisitedStates []string
	CurrentState  string
}

// OverlayFromTrace highlights the states a trace walked through, ending on
// its final state. Foreign traces produce no overlay.
func OverlayFromTrace(tr domain.Trace) *Overlay {
	if len(tr.Path) == 0 {
		return nil
	}
	return &Overlay{
		VisitedStates: tr.Path[:len(tr.Path)-1],
		CurrentState:  tr.Final(),
	}
}

// GenerateMermaid produces a Mermaid stateDiagram-v2 for fa.
// Edges between the same pair of states are merged into one edge whose label
// lists the symbols in alphabet order. Accepting states get the "accepting"
// class. Overlay styles (visited/current) are applied if provided.
func GenerateMermaid(fa *automaton.Automaton, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")

	states := fa.States()
	if len(states) == 0 {
		return sb.String()
	}

	// Names that are not valid Mermaid IDs are declared with an alias.
	for _, s := range states {
		if id := sanitizeMermaidID(s.Name()); id != s.Name() {
			sb.WriteString(fmt.Sprintf("    state %q as %s\n", s.Name(), id))
		}
	}

	sb.WriteString(fmt.Sprintf("    [*] --> %s\n", sanitizeMermaidID(fa.Start())))

	var accepting []string
	for _, s := range states {
		from := sanitizeMermaidID(s.Name())
		for _, e := range edges(s, fa.Alphabet()) {
			sb.WriteString(fmt.Sprintf("    %s --> %s: %s\n", from, sanitizeMermaidID(e.to), strings.Join(e.labels, ", ")))
		}
		if s.Accepting() {
			accepting = append(accepting, from)
		}
	}

	if len(accepting) > 0 {
		sb.WriteString("\n    classDef accepting stroke-width:4px,font-weight:bold;\n")
		sb.WriteString(fmt.Sprintf("    class %s accepting\n", strings.Join(accepting, ",")))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for contrast regardless of theme
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, name := range overlay.VisitedStates {
			id := sanitizeMermaidID(name)
			if id == "" || seen[id] || name == overlay.CurrentState {
				continue
			}
			seen[id] = true
			sb.WriteString(fmt.Sprintf("    class %s visited\n", id))
		}
		if overlay.CurrentState != "" {
			sb.WriteString(fmt.Sprintf("    class %s current\n", sanitizeMermaidID(overlay.CurrentState)))
		}
	}

	return sb.String()
}

type edge struct {
	to     string
	labels []string
}

// edges groups a state's transitions by target, in order of first symbol.
// Symbols outside the alphabet come last, sorted.
func edges(s domain.State, alphabet *domain.Alphabet) []edge {
	transitions := s.Transitions()

	symbols := make([]domain.Symbol, 0, len(transitions))
	for _, sym := range alphabet.Symbols() {
		if _, ok := transitions[sym]; ok {
			symbols = append(symbols, sym)
		}
	}
	var extra []domain.Symbol
	for sym := range transitions {
		if !alphabet.Contains(sym) {
			extra = append(extra, sym)
		}
	}
	slices.Sort(extra)
	symbols = append(symbols, extra...)

	var out []edge
	index := make(map[string]int)
	for _, sym := range symbols {
		to := transitions[sym]
		i, ok := index[to]
		if !ok {
			i = len(out)
			index[to] = i
			out = append(out, edge{to: to})
		}
		out[i].labels = append(out[i].labels, string(sym))
	}
	return out
}

func sanitizeMermaidID(id string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, id)
}
