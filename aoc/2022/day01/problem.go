package aoc2022day01

import (
	"fmt"
	"slices"

	"github.com/povarna/advent-of-code-go/internal/domain"
	"github.com/povarna/advent-of-code-go/utils"
)

const Day = 1

// Group is the list of calories carried by one elf.
type Group struct {
	Calories []int
}

func (g Group) Total() int {
	return utils.Sum(g.Calories...)
}

type Solver struct {
	top int
}

// NewSolver returns the Calorie Counting solver. top is how many of the
// largest groups part two adds up.
func NewSolver(top int) *Solver {
	return &Solver{top: top}
}

func (s *Solver) Day() int {
	return Day
}

func (s *Solver) Name() string {
	return "Calorie Counting"
}

func (s *Solver) Solve(lines []domain.Line) ([]domain.Answer, error) {
	groups, err := ParseGroups(lines)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, domain.Malformed(Day, domain.Line{}, "input has no calorie groups")
	}

	top, total := part2(groups, s.top)

	return []domain.Answer{
		{Label: "max calories", Value: part1(groups)},
		{Label: fmt.Sprintf("top %d calories", s.top), Value: total, Values: top},
	}, nil
}

// ParseGroups splits lines into groups separated by blank lines. The last
// group needs no trailing blank line, and runs of blank lines never produce
// empty groups.
func ParseGroups(lines []domain.Line) ([]Group, error) {
	groups := []Group{}
	calories := []int{}

	for _, line := range lines {
		if line.Blank() {
			if len(calories) > 0 {
				groups = append(groups, Group{Calories: calories})
				calories = []int{}
			}
			continue
		}

		c, err := utils.ToInt(line.Text)
		if err != nil {
			return nil, domain.Malformed(Day, line, "calories must be an integer")
		}
		calories = append(calories, c)
	}

	if len(calories) > 0 {
		groups = append(groups, Group{Calories: calories})
	}
	return groups, nil
}

func totals(groups []Group) []int {
	acc := make([]int, 0, len(groups))
	for _, g := range groups {
		acc = append(acc, g.Total())
	}
	return acc
}

func part1(groups []Group) int {
	return slices.Max(totals(groups))
}

func part2(groups []Group, n int) ([]int, int) {
	top := utils.TopN(totals(groups), n)
	return top, utils.Sum(top...)
}
