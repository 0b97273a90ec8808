package loader

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/fae/pkg/automaton"
	"github.com/aretw0/fae/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Option configures the loader.
type Option func(*Loader)

// WithAutomatonOptions forwards options to every automaton the loader creates.
func WithAutomatonOptions(opts ...automaton.Option) Option {
	return func(l *Loader) {
		l.automatonOpts = append(l.automatonOpts, opts...)
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// Loader turns diagram documents into automata.
type Loader struct {
	automatonOpts []automaton.Option
	logger        *slog.Logger
}

// New creates a Loader.
func New(opts ...Option) *Loader {
	l := &Loader{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFile reads and parses a diagram document from disk.
func LoadFile(path string, opts ...Option) ([]Diagram, error) {
	return New(opts...).LoadFile(path)
}

// Parse parses a diagram document.
func Parse(data []byte, opts ...Option) ([]Diagram, error) {
	return New(opts...).Parse(data)
}

// LoadFile reads and parses a diagram document from disk.
func (l *Loader) LoadFile(path string) ([]Diagram, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read diagram file: %w", err)
	}
	diagrams, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return diagrams, nil
}

// Parse parses a diagram document. JSON documents are accepted as YAML.
func (l *Loader) Parse(data []byte) ([]Diagram, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &Error{Index: -1, Err: fmt.Errorf("failed to parse document: %w", err)}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, &Error{Index: -1, Err: errors.New("empty document")}
	}

	doc := root.Content[0]
	var items []*yaml.Node
	switch doc.Kind {
	case yaml.SequenceNode:
		items = doc.Content
	case yaml.MappingNode:
		items = []*yaml.Node{doc}
	default:
		return nil, &Error{Index: -1, Err: fmt.Errorf("line %d: expected a list of diagrams", doc.Line)}
	}

	named := make(map[string]*automaton.Automaton)
	diagrams := make([]Diagram, 0, len(items))
	for i, item := range items {
		d, err := l.parseDiagram(item, named)
		if err != nil {
			return nil, &Error{Index: i, Name: d.Name, Err: err}
		}
		if d.Name != "" {
			if _, dup := named[d.Name]; dup {
				return nil, &Error{Index: i, Name: d.Name, Err: errors.New("diagram name already used")}
			}
			named[d.Name] = d.Automaton
		}
		l.logger.Debug("diagram loaded", "index", i, "name", d.Name, "states", d.Automaton.Len())
		diagrams = append(diagrams, d)
	}
	return diagrams, nil
}

// fields collects the keys of a diagram mapping.
type fields struct {
	name, description, start, combine string
	language, states, strings, sample *yaml.Node
	operands                          *yaml.Node
}

func readFields(node *yaml.Node) (fields, error) {
	var f fields
	if node.Kind != yaml.MappingNode {
		return f, fmt.Errorf("line %d: diagram must be a mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "name":
			f.name = val.Value
		case "description":
			f.description = val.Value
		case "start":
			f.start = val.Value
		case "combine":
			f.combine = val.Value
		case "language":
			f.language = val
		case "states":
			f.states = val
		case "strings":
			f.strings = val
		case "sample":
			f.sample = val
		case "operands":
			f.operands = val
		default:
			return f, fmt.Errorf("line %d: unknown key %q", key.Line, key.Value)
		}
	}
	return f, nil
}

func (l *Loader) parseDiagram(node *yaml.Node, named map[string]*automaton.Automaton) (Diagram, error) {
	f, err := readFields(node)
	d := Diagram{Name: f.name}
	if err != nil {
		return d, err
	}

	if f.combine != "" {
		d.Automaton, err = l.combine(f, named)
	} else {
		d.Automaton, err = l.build(f)
	}
	if err != nil {
		return d, err
	}

	if f.strings != nil {
		cases, err := parseStrings(f.strings)
		if err != nil {
			return d, err
		}
		d.Automaton.AddStrings(cases...)
	}
	if f.sample != nil {
		if err := applySample(d.Automaton, f.sample); err != nil {
			return d, err
		}
	}
	return d, nil
}

func (l *Loader) build(f fields) (*automaton.Automaton, error) {
	if f.language == nil {
		return nil, errors.New("missing language")
	}
	symbols, err := parseLanguage(f.language)
	if err != nil {
		return nil, err
	}
	if f.states == nil {
		return nil, errors.New("missing states")
	}
	if f.states.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: states must be a mapping", f.states.Line)
	}

	opts := append([]automaton.Option{}, l.automatonOpts...)
	if f.start != "" {
		opts = append(opts, automaton.WithStart(f.start))
	}
	fa := automaton.New(domain.NewAlphabet(symbols...), f.description, opts...)

	for i := 0; i+1 < len(f.states.Content); i += 2 {
		key, val := f.states.Content[i], f.states.Content[i+1]
		state, err := parseState(key.Value, val)
		if err != nil {
			return nil, err
		}
		if err := fa.AddState(state); err != nil {
			return nil, fmt.Errorf("line %d: %w", key.Line, err)
		}
	}
	if f.start != "" {
		if err := fa.SetStart(f.start); err != nil {
			return nil, fmt.Errorf("start: %w", err)
		}
	}
	return fa, nil
}

func (l *Loader) combine(f fields, named map[string]*automaton.Automaton) (*automaton.Automaton, error) {
	op, err := automaton.ParseOperation(f.combine)
	if err != nil {
		return nil, err
	}
	if f.language != nil || f.states != nil {
		return nil, errors.New("combined diagrams take their states from the operands")
	}

	var operands []string
	if f.operands != nil {
		if err := f.operands.Decode(&operands); err != nil {
			return nil, fmt.Errorf("line %d: operands: %w", f.operands.Line, err)
		}
	}
	if len(operands) != 2 {
		return nil, fmt.Errorf("%s needs exactly two operands, got %d", op, len(operands))
	}

	a, ok := named[operands[0]]
	if !ok {
		return nil, fmt.Errorf("unknown operand %q", operands[0])
	}
	b, ok := named[operands[1]]
	if !ok {
		return nil, fmt.Errorf("unknown operand %q", operands[1])
	}

	fa, err := automaton.Combine(op, a, b, l.automatonOpts...)
	if err != nil {
		return nil, err
	}
	if f.start != "" {
		if err := fa.SetStart(f.start); err != nil {
			return nil, fmt.Errorf("start: %w", err)
		}
	}
	if f.description != "" {
		// Combine generates a description; an explicit one wins.
		fa = relabel(fa, f.description, l.automatonOpts)
	}
	return fa, nil
}

// relabel copies fa's states under a new description.
func relabel(fa *automaton.Automaton, description string, opts []automaton.Option) *automaton.Automaton {
	opts = append(append([]automaton.Option{}, opts...), automaton.WithStart(fa.Start()))
	out := automaton.New(fa.Alphabet(), description, opts...)
	for _, s := range fa.States() {
		// Names are unique in fa, so this cannot fail.
		_ = out.AddState(s)
	}
	return out
}

func parseLanguage(node *yaml.Node) ([]domain.Symbol, error) {
	var raw []string
	switch node.Kind {
	case yaml.ScalarNode:
		raw = strings.Split(node.Value, ",")
	case yaml.SequenceNode:
		if err := node.Decode(&raw); err != nil {
			return nil, fmt.Errorf("line %d: language: %w", node.Line, err)
		}
	default:
		return nil, fmt.Errorf("line %d: language must be a list of symbols", node.Line)
	}

	symbols := make([]domain.Symbol, 0, len(raw))
	for _, r := range raw {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if utf8.RuneCountInString(r) != 1 {
			return nil, fmt.Errorf("line %d: language: symbol %q must be a single character", node.Line, r)
		}
		symbols = append(symbols, domain.Symbol(r))
	}
	return symbols, nil
}

// parseState accepts "a -> B, b -> A, accepting" or {on: {...}, accepting: bool}.
func parseState(name string, node *yaml.Node) (domain.State, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return parseStateLine(name, node.Value, node.Line)
	case yaml.MappingNode:
		var raw map[string]any
		if err := node.Decode(&raw); err != nil {
			return domain.State{}, fmt.Errorf("line %d: state %q: %w", node.Line, name, err)
		}
		var spec stateSpec
		if err := decodeSpec(raw, &spec); err != nil {
			return domain.State{}, fmt.Errorf("line %d: state %q: %w", node.Line, name, err)
		}
		transitions := make(map[domain.Symbol]string, len(spec.On))
		for sym, next := range spec.On {
			transitions[domain.Symbol(sym)] = next
		}
		return domain.NewState(name, transitions, spec.Accepting), nil
	default:
		return domain.State{}, fmt.Errorf("line %d: state %q must be a string or a mapping", node.Line, name)
	}
}

func decodeSpec(raw map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

func parseStateLine(name, line string, lineNo int) (domain.State, error) {
	transitions := make(map[domain.Symbol]string)
	accepting := false

	for _, part := range strings.Split(line, ",") {
		part = strings.TrimSpace(part)
		switch {
		case part == "":
			continue
		case part == "accepting":
			accepting = true
		case strings.Contains(part, "->"):
			sym, next, _ := strings.Cut(part, "->")
			sym, next = strings.TrimSpace(sym), strings.TrimSpace(next)
			if sym == "" || next == "" {
				return domain.State{}, fmt.Errorf("line %d: state %q: malformed transition %q", lineNo, name, part)
			}
			transitions[domain.Symbol(sym)] = next
		default:
			return domain.State{}, fmt.Errorf("line %d: state %q: unexpected %q", lineNo, name, part)
		}
	}
	return domain.NewState(name, transitions, accepting), nil
}

func parseStrings(node *yaml.Node) ([]domain.TestCase, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: strings must be a mapping of string to valid/invalid", node.Line)
	}
	cases := make([]domain.TestCase, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		var expected bool
		switch strings.ToLower(strings.TrimSpace(val.Value)) {
		case "valid", "accept", "true":
			expected = true
		case "invalid", "reject", "false":
			expected = false
		default:
			return nil, fmt.Errorf("line %d: string %q: expected valid or invalid, got %q", val.Line, key.Value, val.Value)
		}
		cases = append(cases, domain.NewTestCase(key.Value, expected))
	}
	return cases, nil
}

func applySample(fa *automaton.Automaton, node *yaml.Node) error {
	var spec sampleSpec
	if err := node.Decode(&spec); err != nil {
		return fmt.Errorf("line %d: sample: %w", node.Line, err)
	}
	if spec.Pattern == "" {
		return fmt.Errorf("line %d: sample: %w: pattern is required", node.Line, domain.ErrMissingPredicate)
	}
	re, err := regexp.Compile("^(?:" + spec.Pattern + ")$")
	if err != nil {
		return fmt.Errorf("line %d: sample: %w", node.Line, err)
	}

	fa.SetPredicate(func(w domain.Word) bool {
		return re.MatchString(w.String())
	})
	if _, err := fa.GenerateStrings(spec.Count, spec.Length); err != nil {
		return fmt.Errorf("sample: %w", err)
	}
	return nil
}
