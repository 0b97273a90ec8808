package loader

import (
	"fmt"

	"github.com/aretw0/fae/pkg/automaton"
)

// Diagram is one loaded automaton.
type Diagram struct {
	Name      string
	Automaton *automaton.Automaton
}

// Error reports which diagram of a document failed to load.
type Error struct {
	Index int // zero-based position in the document, -1 for document-level errors
	Name  string
	Err   error
}

func (e *Error) Error() string {
	switch {
	case e.Index < 0:
		return fmt.Sprintf("document: %v", e.Err)
	case e.Name != "":
		return fmt.Sprintf("diagram %d (%s): %v", e.Index+1, e.Name, e.Err)
	default:
		return fmt.Sprintf("diagram %d: %v", e.Index+1, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// stateSpec is the long form of a state entry.
type stateSpec struct {
	On        map[string]string `mapstructure:"on"`
	Accepting bool              `mapstructure:"accepting"`
}

// sampleSpec configures random string generation for a diagram. Pattern must
// match the whole word; it is anchored before compiling.
type sampleSpec struct {
	Count   int    `yaml:"count"`
	Length  int    `yaml:"length"`
	Pattern string `yaml:"pattern"`
}

// Select returns the diagram called name, or the first one when name is empty.
func Select(diagrams []Diagram, name string) (Diagram, error) {
	if len(diagrams) == 0 {
		return Diagram{}, fmt.Errorf("no diagrams loaded")
	}
	if name == "" {
		return diagrams[0], nil
	}
	for _, d := range diagrams {
		if d.Name == name {
			return d, nil
		}
	}
	return Diagram{}, fmt.Errorf("no diagram named %q", name)
}
