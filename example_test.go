package fae_test

import (
	"context"
	"fmt"

	"github.com/aretw0/fae"
	"github.com/aretw0/fae/pkg/adapters/memory"
)

func Example() {
	doc := []byte(`
- name: two_as
  language: a, b
  description: at least two a's
  states:
    A: a -> B, b -> A
    B: a -> C, b -> B
    C: a -> C, b -> C, accepting
  strings:
    aa: valid
    bab: valid
`)

	checker := fae.New(fae.WithStore(memory.NewStore()))
	reports, err := checker.Check(context.Background(), doc)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, r := range reports {
		fmt.Printf("%s passed=%v\n", r.Name, r.Passed())
		for _, m := range r.Result.Mismatches {
			fmt.Printf("  %q expected valid=%v\n", m.Value.String(), m.Expected)
		}
	}
	// Output:
	// two_as passed=false
	//   "bab" expected valid=true
}
