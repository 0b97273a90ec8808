/*
Package fae checks deterministic finite automata against labelled test strings.

A state diagram designer writes each automaton as a transition table together
with strings the language should accept or reject. fae walks every string
through the table, compares the verdict with the expectation and reports the
strings where the diagram disagrees. Automata over the same alphabet can be
combined into their intersection, union or difference, and test strings can be
sampled at random against a membership predicate.

# Usage

The Checker loads YAML (or JSON) diagram documents, see package loader for the
format:

	checker := fae.New(fae.WithStore(memory.NewStore()))

	reports, err := checker.CheckFile(ctx, "diagrams.yaml")
	if err != nil {
		log.Fatal(err)
	}
	for _, r := range reports {
		fmt.Println(r.Name, r.Passed())
	}

Automata can also be built in code with package dsl or package automaton and
handed to Checker.CheckAutomaton.

# Packages

  - pkg/domain: alphabets, states, test cases, results and errors.
  - pkg/automaton: evaluation, product construction and sampling.
  - pkg/dsl: fluent builder for automata.
  - pkg/loader: diagram documents.
  - pkg/ports and pkg/adapters: report persistence, HTTP and MCP surfaces.
*/
package fae
