package domain

import (
	"slices"
	"time"
)

// Trace records how one test case was walked.
type Trace struct {
	Value    Word     `json:"value"`
	Path     []string `json:"path,omitempty"` // visited state names, start first
	Verdict  bool     `json:"verdict"`
	Expected bool     `json:"expected"`
	// Foreign marks words outside the alphabet. They carry no verdict.
	Foreign bool `json:"foreign,omitempty"`
}

// Mismatch reports whether the walk contradicted the expectation.
func (t Trace) Mismatch() bool {
	return !t.Foreign && t.Verdict != t.Expected
}

// Final returns the last visited state, or "" for foreign words.
func (t Trace) Final() string {
	if len(t.Path) == 0 {
		return ""
	}
	return t.Path[len(t.Path)-1]
}

// Result is the structured outcome of checking an automaton.
type Result struct {
	Description string     `json:"description"`
	Alphabet    []Symbol   `json:"alphabet"`
	Start       string     `json:"start"`
	Passed      bool       `json:"passed"`
	Traces      []Trace    `json:"traces"`
	Mismatches  []TestCase `json:"mismatches,omitempty"`
	Foreign     []TestCase `json:"foreign,omitempty"`
}

// Report is a persisted Result.
type Report struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Result    Result    `json:"result"`
}

// Passed is a shortcut for r.Result.Passed.
func (r *Report) Passed() bool {
	return r.Result.Passed
}

// Clone returns a deep copy of the report.
func (r *Report) Clone() *Report {
	out := *r
	res := &out.Result
	res.Alphabet = slices.Clone(r.Result.Alphabet)
	res.Mismatches = cloneCases(r.Result.Mismatches)
	res.Foreign = cloneCases(r.Result.Foreign)
	if r.Result.Traces != nil {
		res.Traces = make([]Trace, len(r.Result.Traces))
		for i, t := range r.Result.Traces {
			t.Value = slices.Clone(t.Value)
			t.Path = slices.Clone(t.Path)
			res.Traces[i] = t
		}
	}
	return &out
}

func cloneCases(cases []TestCase) []TestCase {
	if cases == nil {
		return nil
	}
	out := make([]TestCase, len(cases))
	for i, tc := range cases {
		out[i] = TestCase{Value: slices.Clone(tc.Value), Expected: tc.Expected}
	}
	return out
}
