package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/fae/internal/presentation/tui"
	"github.com/aretw0/fae/pkg/domain"
)

// Markdown renders results as a markdown section with one table row per string.
type Markdown struct {
	w      io.Writer
	render func(string) (string, error)
}

// NewMarkdown writes raw markdown to w.
func NewMarkdown(w io.Writer) *Markdown {
	return &Markdown{w: w}
}

// NewRenderedMarkdown writes markdown rendered for the terminal through glamour.
func NewRenderedMarkdown(w io.Writer, styled bool, width int) (*Markdown, error) {
	render, err := tui.NewRenderer(styled, width)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return &Markdown{w: w, render: render}, nil
}

// Report implements automaton.Reporter.
func (m *Markdown) Report(r *domain.Result) error {
	doc := MarkdownDocument(r)
	if m.render != nil {
		out, err := m.render(doc)
		if err != nil {
			return err
		}
		doc = out
	}
	_, err := io.WriteString(m.w, doc)
	return err
}

// MarkdownDocument returns the markdown document for r.
func MarkdownDocument(r *domain.Result) string {
	var b strings.Builder

	status := "**passed**"
	if !r.Passed {
		status = "**failed**"
	}
	fmt.Fprintf(&b, "## %s\n\n", r.Description)
	fmt.Fprintf(&b, "Alphabet `%s`, start state `%s`: %s\n\n", domain.NewAlphabet(r.Alphabet...), r.Start, status)

	b.WriteString("| String | Path | Verdict | Expected | Result |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, tr := range r.Traces {
		path, verdict, mark := strings.Join(tr.Path, " → "), validity(tr.Verdict), "✓"
		switch {
		case tr.Foreign:
			path, verdict, mark = "", "", "not in language"
		case tr.Mismatch():
			mark = "✗"
		}
		fmt.Fprintf(&b, "| `%s` | %s | %s | %s | %s |\n", displayWord(tr.Value), path, verdict, validity(tr.Expected), mark)
	}

	if len(r.Mismatches) > 0 {
		b.WriteString("\nUnmet expectations:\n\n")
		for _, tc := range r.Mismatches {
			fmt.Fprintf(&b, "- `%s` should be %s\n", displayWord(tc.Value), validity(tc.Expected))
		}
	}
	return b.String()
}

func validity(v bool) string {
	if v {
		return "valid"
	}
	return "invalid"
}
