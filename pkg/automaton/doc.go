/*
Package automaton implements a checker for deterministic finite automata.

An Automaton owns an ordered set of states over a shared alphabet and a list
of labelled test cases. Evaluation walks every test word from the start state
and compares the verdict with the designer's expectation. Two automata over
the same alphabet can be combined with product construction into their
intersection, union, or difference, and test cases can be sampled at random
against a membership predicate.

	sigma := domain.NewAlphabet("a", "b")
	fa := automaton.New(sigma, "at least two a's")
	_ = fa.AddStates(
		domain.NewState("A", map[domain.Symbol]string{"a": "B", "b": "A"}, false),
		domain.NewState("B", map[domain.Symbol]string{"a": "C", "b": "B"}, false),
		domain.NewState("C", map[domain.Symbol]string{"a": "C", "b": "C"}, true),
	)
	fa.AddStrings(domain.NewTestCase("aa", true), domain.NewTestCase("ba", false))
	ok, err := fa.Evaluate(true)

An Automaton is not safe for concurrent mutation. Alphabets are immutable
and may be shared freely.
*/
package automaton
