/*
Package domain contains the core models of the fae automaton checker.

It defines the building blocks of a deterministic finite automaton and the
structured output of an evaluation run. This package is kept pure and free of
I/O, persistence, and rendering concerns.

# Key Entities

  - Alphabet: The finite, ordered set of symbols an automaton operates over.
  - State: A named node with a total transition table and an accepting flag.
  - TestCase: A word paired with the acceptance the designer expects.
  - Result: The outcome of checking an automaton against its test cases.
  - Report: A persisted, identified Result.
*/
package domain
