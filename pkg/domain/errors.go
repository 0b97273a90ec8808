package domain

import "errors"

// ErrDuplicateState is returned when a state name is already registered.
var ErrDuplicateState = errors.New("duplicate state")

// ErrStateNotFound is returned when a state name (explicit lookup or a
// transition target) does not resolve. During evaluation it signals an
// incomplete transition table.
var ErrStateNotFound = errors.New("state not found")

// ErrEmptyStates is returned when evaluating an automaton without states.
var ErrEmptyStates = errors.New("automaton has no states")

// ErrMissingPredicate is returned when sampling without a predicate.
var ErrMissingPredicate = errors.New("missing predicate")

// ErrLanguageMismatch is returned when combining automata over different alphabets.
var ErrLanguageMismatch = errors.New("language mismatch")

// ErrInvalidSample is returned for sampling arguments that cannot produce words.
var ErrInvalidSample = errors.New("invalid sample")

// ErrReportNotFound is returned when a report ID cannot be found in the store.
var ErrReportNotFound = errors.New("report not found")
