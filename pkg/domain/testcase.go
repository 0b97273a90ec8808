package domain

// TestCase pairs a word with the acceptance the designer expects for it.
type TestCase struct {
	Value    Word `json:"value"`
	Expected bool `json:"expected"`
}

// NewTestCase builds a test case from a plain string, one symbol per rune.
func NewTestCase(value string, expected bool) TestCase {
	return TestCase{Value: ParseWord(value), Expected: expected}
}

// Predicate is a membership oracle labelling words as in or out of the
// intended language.
type Predicate func(Word) bool
