package utils

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// ToInt parses a decimal integer, ignoring surrounding whitespace.
func ToInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("unable to convert %q to int: %w", s, err)
	}

	return n, nil
}

func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// TopN returns the n largest values in descending order. Equal values keep
// their input order. Fewer than n values are returned when nums is short.
func TopN[T constraints.Ordered](nums []T, n int) []T {
	sorted := slices.Clone(nums)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return cmp.Compare(b, a)
	})

	if n < 0 {
		n = 0
	}
	return sorted[:min(n, len(sorted))]
}
