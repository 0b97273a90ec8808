package domain

import (
	"strings"
)

// Symbol is a single token of an alphabet.
// In the common case it is one character, but it is treated as opaque.
type Symbol string

// Word is an ordered sequence of symbols.
type Word []Symbol

// ParseWord splits s into one symbol per rune.
func ParseWord(s string) Word {
	w := make(Word, 0, len(s))
	for _, r := range s {
		w = append(w, Symbol(r))
	}
	return w
}

// String concatenates the symbols of the word.
func (w Word) String() string {
	var sb strings.Builder
	for _, s := range w {
		sb.WriteString(string(s))
	}
	return sb.String()
}

// Alphabet is an ordered set of unique symbols.
// It is immutable after construction and can be shared between automata.
type Alphabet struct {
	symbols []Symbol
	set     map[Symbol]struct{}
}

// NewAlphabet builds an alphabet from symbols, dropping duplicates while
// preserving first-occurrence order.
func NewAlphabet(symbols ...Symbol) *Alphabet {
	a := &Alphabet{
		symbols: make([]Symbol, 0, len(symbols)),
		set:     make(map[Symbol]struct{}, len(symbols)),
	}
	for _, s := range symbols {
		if _, ok := a.set[s]; ok {
			continue
		}
		a.set[s] = struct{}{}
		a.symbols = append(a.symbols, s)
	}
	return a
}

// Symbols returns a copy of the symbols in insertion order.
func (a *Alphabet) Symbols() []Symbol {
	out := make([]Symbol, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// Len returns the number of symbols.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Contains reports whether s belongs to the alphabet.
func (a *Alphabet) Contains(s Symbol) bool {
	_, ok := a.set[s]
	return ok
}

// Accepts reports whether every symbol of w belongs to the alphabet.
// The empty word is always accepted.
func (a *Alphabet) Accepts(w Word) bool {
	for _, s := range w {
		if !a.Contains(s) {
			return false
		}
	}
	return true
}

// AcceptsString is Accepts over the per-rune split of s.
func (a *Alphabet) AcceptsString(s string) bool {
	return a.Accepts(ParseWord(s))
}

// Equal reports whether both alphabets hold the same symbol set, in any order.
func (a *Alphabet) Equal(other *Alphabet) bool {
	if a == nil || other == nil {
		return a == other
	}
	if len(a.set) != len(other.set) {
		return false
	}
	for s := range a.set {
		if !other.Contains(s) {
			return false
		}
	}
	return true
}

// String renders the alphabet as "{a, b}".
func (a *Alphabet) String() string {
	parts := make([]string, len(a.symbols))
	for i, s := range a.symbols {
		parts[i] = string(s)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
