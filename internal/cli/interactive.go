package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/fae"
	"github.com/aretw0/fae/pkg/automaton"
	"github.com/aretw0/fae/pkg/domain"
	"github.com/muesli/termenv"
)

// Prompter asks a designer for a state diagram on the console: letters,
// description, state names, one transition per state and letter, accepting
// flags, test strings and their expectations.
type Prompter struct {
	in      *bufio.Reader
	out     io.Writer
	profile termenv.Profile
}

// NewPrompter creates a Prompter reading answers from in.
func NewPrompter(in io.Reader, out io.Writer, profile termenv.Profile) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, profile: profile}
}

func (p *Prompter) style(s, color string) string {
	return p.profile.String(s).Foreground(p.profile.Color(color)).String()
}

func (p *Prompter) ask(parts ...string) (string, error) {
	fmt.Fprint(p.out, strings.Join(parts, ""))
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *Prompter) warn(format string, args ...any) {
	fmt.Fprintln(p.out, p.style(fmt.Sprintf(format, args...), "1"))
}

func (p *Prompter) yes(parts ...string) (bool, error) {
	answer, err := p.ask(parts...)
	if err != nil {
		return false, err
	}
	answer = strings.TrimSpace(answer)
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes"), nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (p *Prompter) letters() ([]domain.Symbol, error) {
	for {
		answer, err := p.ask(p.style("~ Enter the letters of your language separated by a comma: ", "3"))
		if err != nil {
			return nil, err
		}
		letters := splitList(answer)
		if len(letters) == 0 {
			p.warn("Please enter at least one letter.")
			continue
		}
		if i := slices.IndexFunc(letters, func(l string) bool { return utf8.RuneCountInString(l) != 1 }); i >= 0 {
			p.warn("Letter %q must be a single character.", letters[i])
			continue
		}
		symbols := make([]domain.Symbol, len(letters))
		for i, l := range letters {
			symbols[i] = domain.Symbol(l)
		}
		return symbols, nil
	}
}

func (p *Prompter) stateNames() ([]string, error) {
	for {
		answer, err := p.ask(p.style("~ Enter your state names separated by a comma: ", "3"))
		if err != nil {
			return nil, err
		}
		names := splitList(answer)
		switch {
		case len(names) == 0:
			p.warn("Please enter at least one state name.")
		case len(slices.Compact(slices.Sorted(slices.Values(names)))) != len(names):
			p.warn("State names must be unique.")
		default:
			return names, nil
		}
	}
}

// Build runs the prompt sequence and returns the automaton with its test strings.
func (p *Prompter) Build(opts ...automaton.Option) (*automaton.Automaton, error) {
	symbols, err := p.letters()
	if err != nil {
		return nil, err
	}
	description, err := p.ask(p.style("~ Enter the description of your state diagram: ", "3"))
	if err != nil {
		return nil, err
	}
	names, err := p.stateNames()
	if err != nil {
		return nil, err
	}

	fa := automaton.New(domain.NewAlphabet(symbols...), strings.TrimSpace(description), opts...)
	for _, name := range names {
		fmt.Fprintln(p.out, "\n"+p.style("State "+name+":", "4"))

		transitions := make(map[domain.Symbol]string, len(symbols))
		for _, sym := range symbols {
			for {
				next, err := p.ask(
					p.style("~ In state ", "3"), p.style(name, "4"),
					p.style(" the letter ", "3"), p.style(string(sym), "4"),
					p.style(" will take you to what state? ", "3"))
				if err != nil {
					return nil, err
				}
				next = strings.TrimSpace(next)
				if slices.Contains(names, next) {
					transitions[sym] = next
					break
				}
				p.warn("State %s is not one of your state names. Please choose from the following: %s",
					next, strings.Join(names, ", "))
			}
		}

		accepting, err := p.yes(p.style("~ Is state ", "3"), p.style(name, "4"), p.style(" an accepting state? (y/n): ", "3"))
		if err != nil {
			return nil, err
		}
		if err := fa.AddState(domain.NewState(name, transitions, accepting)); err != nil {
			return nil, err
		}
	}

	fmt.Fprintln(p.out, p.style("~ Enter strings to test your state diagram with (type 'done' when finished):", "3"))
	var values []string
	for {
		value, err := p.ask()
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(value) == "done" {
			break
		}
		values = append(values, value)
	}

	for _, value := range values {
		valid, err := p.yes(p.style("~ Is ", "3"), p.style(value, "4"), p.style(" a valid string for this state diagram? (y/n): ", "3"))
		if err != nil {
			return nil, err
		}
		fa.AddStrings(domain.NewTestCase(value, valid))
	}
	fmt.Fprintln(p.out)

	return fa, nil
}

// RunInteractive prompts for a diagram on in and checks it with checker.
// The checker's reporter decides how the result is shown.
func RunInteractive(ctx context.Context, in io.Reader, out io.Writer, profile termenv.Profile, checker *fae.Checker) (*domain.Report, error) {
	prompter := NewPrompter(NewInterruptibleReader(in, ctx.Done()), out, profile)
	fa, err := prompter.Build(checker.AutomatonOptions()...)
	if err != nil {
		return nil, err
	}
	return checker.CheckAutomaton(ctx, "interactive", fa)
}
