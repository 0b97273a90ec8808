package domain

import (
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventEvaluationStart EventType = "evaluation_start"
	EventStringEvaluated EventType = "string_evaluated"
	EventEvaluationEnd   EventType = "evaluation_end"
)

// Outcome classifies a single evaluated word.
type Outcome string

const (
	OutcomeMatch    Outcome = "match"
	OutcomeMismatch Outcome = "mismatch"
	OutcomeForeign  Outcome = "foreign"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// EvaluationEvent marks the start or end of an evaluation run.
// Counters are only populated on EventEvaluationEnd, and Error is set there
// when a walk failed partway through.
type EvaluationEvent struct {
	EventBase
	Description string `json:"description"`
	Cases       int    `json:"cases"`
	Mismatches  int    `json:"mismatches,omitempty"`
	Foreign     int    `json:"foreign,omitempty"`
	Passed      bool   `json:"passed,omitempty"`
	Error       string `json:"error,omitempty"`
}

// StringEvent describes one evaluated test case.
type StringEvent struct {
	EventBase
	Description string  `json:"description"`
	Value       string  `json:"value"`
	Steps       int     `json:"steps"`
	Outcome     Outcome `json:"outcome"`
}

// LifecycleHooks defines callbacks for evaluation observability.
type LifecycleHooks struct {
	OnEvaluationStart func(*EvaluationEvent)
	OnStringEvaluated func(*StringEvent)
	OnEvaluationEnd   func(*EvaluationEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnEvaluationStart: chain(h.OnEvaluationStart, other.OnEvaluationStart),
		OnStringEvaluated: chain(h.OnStringEvaluated, other.OnStringEvaluated),
		OnEvaluationEnd:   chain(h.OnEvaluationEnd, other.OnEvaluationEnd),
	}
}

func chain[E any](a, b func(E)) func(E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(e E) {
		a(e)
		b(e)
	}
}
