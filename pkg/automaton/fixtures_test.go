package automaton_test

import (
	"strings"

	"github.com/aretw0/fae/pkg/automaton"
	"github.com/aretw0/fae/pkg/domain"
)

var sigmaAB = domain.NewAlphabet("a", "b")

func tr(pairs ...string) map[domain.Symbol]string {
	m := make(map[domain.Symbol]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		m[domain.Symbol(pairs[i])] = pairs[i+1]
	}
	return m
}

func mustAdd(fa *automaton.Automaton, states ...domain.State) *automaton.Automaton {
	if err := fa.AddStates(states...); err != nil {
		panic(err)
	}
	return fa
}

// atLeastTwoAs accepts words over {a,b} containing at least two a's.
func atLeastTwoAs(opts ...automaton.Option) *automaton.Automaton {
	return mustAdd(automaton.New(sigmaAB, "at least two a's", opts...),
		domain.NewState("A", tr("a", "B", "b", "A"), false),
		domain.NewState("B", tr("a", "C", "b", "B"), false),
		domain.NewState("C", tr("a", "C", "b", "C"), true),
	)
}

// oddAs accepts words with an odd number of a's.
func oddAs(opts ...automaton.Option) *automaton.Automaton {
	return mustAdd(automaton.New(sigmaAB, "odd number of a's", opts...),
		domain.NewState("A", tr("a", "B", "b", "A"), false),
		domain.NewState("B", tr("a", "A", "b", "B"), true),
	)
}

// hasBB accepts words containing the substring "bb".
func hasBB(opts ...automaton.Option) *automaton.Automaton {
	return mustAdd(automaton.New(sigmaAB, "contains 'bb'", opts...),
		domain.NewState("C", tr("a", "C", "b", "D"), false),
		domain.NewState("D", tr("a", "C", "b", "E"), false),
		domain.NewState("E", tr("a", "E", "b", "E"), true),
	)
}

func isOddAs(w domain.Word) bool {
	return strings.Count(w.String(), "a")%2 == 1
}

func isHasBB(w domain.Word) bool {
	return strings.Contains(w.String(), "bb")
}

// allWords enumerates every word over symbols up to maxLen, shortest first.
func allWords(symbols []domain.Symbol, maxLen int) []domain.Word {
	words := []domain.Word{{}}
	frontier := []domain.Word{{}}
	for n := 1; n <= maxLen; n++ {
		var next []domain.Word
		for _, w := range frontier {
			for _, s := range symbols {
				ext := make(domain.Word, len(w), len(w)+1)
				copy(ext, w)
				next = append(next, append(ext, s))
			}
		}
		words = append(words, next...)
		frontier = next
	}
	return words
}
