package report

import (
	"fmt"
	"io"

	"github.com/aretw0/fae/pkg/automaton"
	"github.com/muesli/termenv"
)

// Format names an output format.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// New returns a reporter for the named format. Color only affects text and
// rendered markdown.
func New(format Format, w io.Writer, color bool) (automaton.Reporter, error) {
	switch format {
	case FormatText, "":
		profile := termenv.Ascii
		if color {
			profile = termenv.NewOutput(w).EnvColorProfile()
		}
		return NewText(w, profile), nil
	case FormatMarkdown, "md":
		if !color {
			return NewMarkdown(w), nil
		}
		return NewRenderedMarkdown(w, true, 0)
	case FormatJSON:
		return NewJSON(w), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want text, markdown or json)", format)
	}
}
