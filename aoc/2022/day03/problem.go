package aoc2022day03

import (
	"math/bits"
	"strings"

	"github.com/povarna/advent-of-code-go/internal/chunk"
	"github.com/povarna/advent-of-code-go/internal/domain"
)

const Day = 3

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Priority returns the 1-based position of item in a..zA..Z, or 0 when the
// item is not a letter.
func Priority(item byte) int {
	return strings.IndexByte(letters, item) + 1
}

// itemSet has bit p set when the item with priority p is present.
type itemSet uint64

func newItemSet(items string) itemSet {
	var s itemSet
	for i := 0; i < len(items); i++ {
		s |= 1 << Priority(items[i])
	}
	return s
}

func (s itemSet) single() (byte, bool) {
	if bits.OnesCount64(uint64(s)) != 1 {
		return 0, false
	}
	return letters[bits.TrailingZeros64(uint64(s))-1], true
}

func (s itemSet) String() string {
	var b strings.Builder
	for p := 1; p <= len(letters); p++ {
		if s&(1<<p) != 0 {
			b.WriteByte(letters[p-1])
		}
	}
	return b.String()
}

type Rucksack struct {
	Items string
	line  domain.Line
}

func ParseRucksack(line domain.Line) (Rucksack, error) {
	items := strings.TrimSpace(line.Text)
	if len(items)%2 != 0 {
		return Rucksack{}, domain.Malformed(Day, line, "odd number of items (%d)", len(items))
	}
	for i := 0; i < len(items); i++ {
		if Priority(items[i]) == 0 {
			return Rucksack{}, domain.Malformed(Day, line, "item %q at position %d is not a letter", items[i], i+1)
		}
	}

	return Rucksack{Items: items, line: line}, nil
}

// Compartments splits the rucksack into its two equally sized halves.
func (r Rucksack) Compartments() (string, string) {
	half := len(r.Items) / 2
	return r.Items[:half], r.Items[half:]
}

// CommonItem returns the one item type packed in both compartments.
func (r Rucksack) CommonItem() (byte, error) {
	first, second := r.Compartments()
	common := newItemSet(first) & newItemSet(second)

	item, ok := common.single()
	if !ok {
		return 0, domain.Violation(Day, r.line, "expected exactly one item in both compartments, found %q", common.String())
	}
	return item, nil
}

// Badge returns the one item type carried by every rucksack in the group.
func Badge(group []Rucksack) (byte, error) {
	if len(group) == 0 {
		return 0, domain.Violation(Day, domain.Line{}, "empty group has no badge")
	}

	common := ^itemSet(0)
	for _, r := range group {
		common &= newItemSet(r.Items)
	}

	item, ok := common.single()
	if !ok {
		return 0, domain.Violation(Day, group[0].line, "expected exactly one badge across %d rucksacks, found %q", len(group), common.String())
	}
	return item, nil
}

type Solver struct {
	groupSize int
}

// NewSolver returns the Rucksack Reorganization solver; groupSize is the
// number of consecutive rucksacks that share a badge.
func NewSolver(groupSize int) *Solver {
	return &Solver{groupSize: groupSize}
}

func (s *Solver) Day() int {
	return Day
}

func (s *Solver) Name() string {
	return "Rucksack Reorganization"
}

func (s *Solver) Solve(lines []domain.Line) ([]domain.Answer, error) {
	rucksacks := []Rucksack{}
	for _, line := range domain.NonBlank(lines) {
		r, err := ParseRucksack(line)
		if err != nil {
			return nil, err
		}
		rucksacks = append(rucksacks, r)
	}
	if len(rucksacks) == 0 {
		return nil, domain.Malformed(Day, domain.Line{}, "input has no rucksacks")
	}

	total1, err := part1(rucksacks)
	if err != nil {
		return nil, err
	}
	total2, err := part2(rucksacks, s.groupSize)
	if err != nil {
		return nil, err
	}

	return []domain.Answer{
		{Label: "sum of common item priorities", Value: total1},
		{Label: "sum of group badge priorities", Value: total2},
	}, nil
}

func part1(rucksacks []Rucksack) (int, error) {
	total := 0
	for _, r := range rucksacks {
		item, err := r.CommonItem()
		if err != nil {
			return 0, err
		}
		total += Priority(item)
	}
	return total, nil
}

func part2(rucksacks []Rucksack, groupSize int) (int, error) {
	total := 0
	for group := range chunk.Chunks(rucksacks, groupSize) {
		if len(group.Items) != groupSize {
			return 0, domain.Malformed(Day, group.Items[0].line, "incomplete group of %d rucksacks, want %d", len(group.Items), groupSize)
		}

		item, err := Badge(group.Items)
		if err != nil {
			return 0, err
		}
		total += Priority(item)
	}
	return total, nil
}
