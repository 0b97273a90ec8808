package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text, color string
}{
	{`   __`, "#818cf8"},
	{`  / _| __ _  ___`, "#a78bfa"},
	{` | |_ / _' |/ _ \`, "#c084fc"},
	{` |  _| (_| |  __/`, "#e879f9"},
	{` |_|  \__,_|\___|`, "#f472b6"},
}

// PrintBanner writes the fae banner and version to w.
func PrintBanner(w io.Writer, profile termenv.Profile, version string) {
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, profile.String(l.text).Foreground(profile.Color(l.color)))
	}
	fmt.Fprintln(w, profile.String("  finite automata evaluator v"+strings.TrimSpace(version)).Faint())
	fmt.Fprintln(w)
}
