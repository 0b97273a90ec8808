/*
Package dsl provides a fluent builder for constructing automata in Go code.

It is the programmatic counterpart of the YAML loader: useful in tests, for
generated diagrams, and wherever IDE completion beats a description file.

Example usage:

	b := dsl.New("at least two a's", "a", "b")

	b.State("A").On("a", "B").Loop("b")
	b.State("B").On("a", "C").Loop("b")
	b.State("C").Loop("a", "b").Accepting()

	b.Invalid("a", "ba").Valid("aa")

	fa, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}
	ok, err := fa.Evaluate(true)
*/
package dsl
