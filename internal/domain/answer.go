package domain

import (
	"fmt"
	"time"
)

// Answer is one labelled number computed by a solver. Values optionally
// carries the list the number was derived from.
type Answer struct {
	Label  string
	Value  int
	Values []int
}

func (a Answer) String() string {
	if len(a.Values) > 0 {
		return fmt.Sprintf("%s %v: %d", a.Label, a.Values, a.Value)
	}
	return fmt.Sprintf("%s: %d", a.Label, a.Value)
}

// Result is the outcome of running a single day.
type Result struct {
	Day      int
	Name     string
	Answers  []Answer
	Duration time.Duration
}
