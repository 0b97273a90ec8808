// Package report renders evaluation results for people and machines.
//
// Text, Markdown and JSON all implement automaton.Reporter, so they can be
// attached to an automaton or a Checker.
package report
