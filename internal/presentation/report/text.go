package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/fae/pkg/domain"
	"github.com/muesli/termenv"
)

// Text renders results as the classic console report: one line per string
// with the visited states, then a summary of unmet expectations.
type Text struct {
	w       io.Writer
	profile termenv.Profile
}

// NewText creates a Text reporter. The profile decides how much color is
// emitted; termenv.Ascii gives plain text.
func NewText(w io.Writer, profile termenv.Profile) *Text {
	return &Text{w: w, profile: profile}
}

func (t *Text) style(s, color string) string {
	return t.profile.String(s).Foreground(t.profile.Color(color)).String()
}

// Report implements automaton.Reporter.
func (t *Text) Report(r *domain.Result) error {
	var b strings.Builder
	alphabet := domain.NewAlphabet(r.Alphabet...)

	b.WriteString(t.style(fmt.Sprintf("Evaluating strings for %s using language %s", r.Description, alphabet), yellow))
	b.WriteString("\n")

	for _, tr := range r.Traces {
		b.WriteString(t.style(displayWord(tr.Value), blue))
		b.WriteString(": ")
		if tr.Foreign {
			b.WriteString(t.style(fmt.Sprintf("not valid for language %s", alphabet), red))
			b.WriteString("\n")
			continue
		}
		arrow := " " + t.style("->", gray) + " "
		b.WriteString(strings.Join(tr.Path, arrow))
		b.WriteString(" (" + t.verdict(tr.Verdict) + ") ")
		if tr.Mismatch() {
			b.WriteString(t.style("✗", red))
		} else {
			b.WriteString(t.style("✓", green))
		}
		b.WriteString("\n")
	}

	if n := len(r.Mismatches); n > 0 {
		b.WriteString(t.style("State diagram may be incorrect for "+r.Description, red))
		b.WriteString("\n\n")
		plural := "s"
		if n == 1 {
			plural = ""
		}
		fmt.Fprintf(&b, "A total of %d string%s did not meet your expectations:\n", n, plural)
		for _, tc := range r.Mismatches {
			fmt.Fprintf(&b, "* You expected the string '%s' to be %s\n", t.style(displayWord(tc.Value), blue), t.verdict(tc.Expected))
		}
		b.WriteString("\nIf these expectations are correct, then your state diagram needs revising. Otherwise, you've simply expected the wrong values.\n")
	} else {
		b.WriteString(t.style("State diagram is correct.", green))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	_, err := io.WriteString(t.w, b.String())
	return err
}

func (t *Text) verdict(valid bool) string {
	if valid {
		return t.style("valid", green)
	}
	return t.style("invalid", red)
}

const (
	red    = "1"
	green  = "2"
	yellow = "3"
	blue   = "4"
	gray   = "8"
)

// displayWord shows the empty word as ε.
func displayWord(w domain.Word) string {
	if len(w) == 0 {
		return "ε"
	}
	return w.String()
}
