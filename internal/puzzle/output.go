package puzzle

import (
	"fmt"
	"io"

	"github.com/povarna/advent-of-code-go/internal/domain"
)

// WriteResult prints a day header followed by one "label: value" line per answer.
func WriteResult(w io.Writer, res domain.Result) error {
	if _, err := fmt.Fprintf(w, "AoC 2022, Day %02d (%s)\n", res.Day, res.Name); err != nil {
		return err
	}
	for _, a := range res.Answers {
		if _, err := fmt.Fprintf(w, "  %s\n", a); err != nil {
			return err
		}
	}
	return nil
}
