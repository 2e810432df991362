package aoc2022day04

import (
	"fmt"
	"strings"

	"github.com/povarna/advent-of-code-go/internal/domain"
	"github.com/povarna/advent-of-code-go/utils"
)

const Day = 4

// Range is an inclusive span of section IDs.
type Range struct {
	Start int
	End   int
}

// Contains reports whether o lies entirely inside r.
func (r Range) Contains(o Range) bool {
	return r.Start <= o.Start && o.End <= r.End
}

// Overlaps reports whether r and o share at least one section.
func (r Range) Overlaps(o Range) bool {
	return r.Start <= o.End && o.Start <= r.End
}

func ParseRange(s string) (Range, error) {
	start, end, ok := strings.Cut(s, "-")
	if !ok {
		return Range{}, fmt.Errorf("range %q is not in start-end form", s)
	}

	x, err := utils.ToInt(start)
	if err != nil {
		return Range{}, err
	}
	y, err := utils.ToInt(end)
	if err != nil {
		return Range{}, err
	}
	if x > y {
		return Range{}, fmt.Errorf("range %q starts after it ends", s)
	}

	return Range{Start: x, End: y}, nil
}

// Pairing is the pair of section assignments on one line.
type Pairing struct {
	First  Range
	Second Range
}

func (p Pairing) FullOverlap() bool {
	return p.First.Contains(p.Second) || p.Second.Contains(p.First)
}

func (p Pairing) PartialOverlap() bool {
	return p.First.Overlaps(p.Second)
}

func ParsePairing(line domain.Line) (Pairing, error) {
	parts := strings.Split(strings.TrimSpace(line.Text), ",")
	if len(parts) != 2 {
		return Pairing{}, domain.Malformed(Day, line, "expected 2 ranges, got %d", len(parts))
	}

	first, err := ParseRange(parts[0])
	if err != nil {
		return Pairing{}, domain.Malformed(Day, line, "%v", err)
	}
	second, err := ParseRange(parts[1])
	if err != nil {
		return Pairing{}, domain.Malformed(Day, line, "%v", err)
	}

	return Pairing{First: first, Second: second}, nil
}

type Solver struct{}

func NewSolver() *Solver {
	return &Solver{}
}

func (s *Solver) Day() int {
	return Day
}

func (s *Solver) Name() string {
	return "Camp Cleanup"
}

func (s *Solver) Solve(lines []domain.Line) ([]domain.Answer, error) {
	pairings := []Pairing{}
	for _, line := range domain.NonBlank(lines) {
		p, err := ParsePairing(line)
		if err != nil {
			return nil, err
		}
		pairings = append(pairings, p)
	}
	if len(pairings) == 0 {
		return nil, domain.Malformed(Day, domain.Line{}, "input has no section assignment pairs")
	}

	return []domain.Answer{
		{Label: "pairs where one range contains the other", Value: part1(pairings)},
		{Label: "pairs that overlap", Value: part2(pairings)},
	}, nil
}

func part1(pairings []Pairing) int {
	total := 0
	for _, p := range pairings {
		if p.FullOverlap() {
			total += 1
		}
	}
	return total
}

func part2(pairings []Pairing) int {
	total := 0
	for _, p := range pairings {
		if p.PartialOverlap() {
			total += 1
		}
	}
	return total
}
