/*
Package loader reads diagram documents into automata.

A document is a YAML (or JSON) sequence of diagrams. Mapping order is
significant: states are added in the order they are written, so the first
state is the start state unless "start" says otherwise.

	- name: two_as
	  language: a, b
	  description: at least two a's
	  states:
	    A: a -> B, b -> A
	    B: a -> C, b -> B
	    C: a -> C, b -> C, accepting
	  strings:
	    a: invalid
	    aa: valid

States may also use the long form {on: {a: B, b: A}, accepting: true}.
A diagram can be derived from two earlier named diagrams with
"combine: intersection|union|difference" and "operands: [x, y]", and can
sample extra strings with "sample: {count, length, pattern}" where pattern is
a Go regular expression, matched against the whole word, used as the
membership predicate.
*/
package loader
