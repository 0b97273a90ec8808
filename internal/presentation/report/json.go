package report

import (
	"encoding/json"
	"io"

	"github.com/aretw0/fae/pkg/domain"
)

// JSON writes each result as an indented JSON document.
type JSON struct {
	enc *json.Encoder
}

// NewJSON creates a JSON reporter.
func NewJSON(w io.Writer) *JSON {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &JSON{enc: enc}
}

// Report implements automaton.Reporter.
func (j *JSON) Report(r *domain.Result) error {
	return j.enc.Encode(r)
}
