package aoc2022day02

import (
	"strings"

	"github.com/povarna/advent-of-code-go/internal/domain"
)

const Day = 2

// Shape values are also the points a shape is worth.
type Shape int

const (
	Rock     Shape = 1
	Paper    Shape = 2
	Scissors Shape = 3
)

func (s Shape) String() string {
	switch s {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	}
	return "unknown"
}

// Outcome values are the points the player earns for the round.
type Outcome int

const (
	Lose Outcome = 0
	Tie  Outcome = 3
	Win  Outcome = 6
)

func (o Outcome) String() string {
	switch o {
	case Lose:
		return "lose"
	case Tie:
		return "tie"
	case Win:
		return "win"
	}
	return "unknown"
}

// beats maps each shape to the shape it defeats.
var beats = map[Shape]Shape{
	Rock:     Scissors,
	Scissors: Paper,
	Paper:    Rock,
}

// beatenBy is the inverse of beats.
var beatenBy = map[Shape]Shape{
	Scissors: Rock,
	Paper:    Scissors,
	Rock:     Paper,
}

var opponentShapes = map[string]Shape{
	"A": Rock,
	"B": Paper,
	"C": Scissors,
}

var playerShapes = map[string]Shape{
	"X": Rock,
	"Y": Paper,
	"Z": Scissors,
}

var desiredOutcomes = map[string]Outcome{
	"X": Lose,
	"Y": Tie,
	"Z": Win,
}

// OutcomeOf returns the result of the round for the player.
func OutcomeOf(opponent, player Shape) Outcome {
	switch {
	case opponent == player:
		return Tie
	case beats[player] == opponent:
		return Win
	default:
		return Lose
	}
}

// ShapeFor returns the shape the player must throw against opponent to get want.
func ShapeFor(opponent Shape, want Outcome) Shape {
	switch want {
	case Win:
		return beatenBy[opponent]
	case Lose:
		return beats[opponent]
	default:
		return opponent
	}
}

func Score(player Shape, outcome Outcome) int {
	return int(player) + int(outcome)
}

// Round is one line of the strategy guide. The second column is kept in
// both of its readings.
type Round struct {
	Opponent Shape
	Player   Shape
	Want     Outcome
}

func ParseRound(line domain.Line) (Round, error) {
	fields := strings.Fields(line.Text)
	if len(fields) != 2 {
		return Round{}, domain.Malformed(Day, line, "expected 2 tokens, got %d", len(fields))
	}

	opponent, ok := opponentShapes[fields[0]]
	if !ok {
		return Round{}, domain.Malformed(Day, line, "unknown opponent token %q", fields[0])
	}
	player, ok := playerShapes[fields[1]]
	if !ok {
		return Round{}, domain.Malformed(Day, line, "unknown response token %q", fields[1])
	}

	return Round{
		Opponent: opponent,
		Player:   player,
		Want:     desiredOutcomes[fields[1]],
	}, nil
}

type Solver struct{}

func NewSolver() *Solver {
	return &Solver{}
}

func (s *Solver) Day() int {
	return Day
}

func (s *Solver) Name() string {
	return "Rock Paper Scissors"
}

func (s *Solver) Solve(lines []domain.Line) ([]domain.Answer, error) {
	rounds := []Round{}
	for _, line := range domain.NonBlank(lines) {
		round, err := ParseRound(line)
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, round)
	}
	if len(rounds) == 0 {
		return nil, domain.Malformed(Day, domain.Line{}, "input has no rounds")
	}

	return []domain.Answer{
		{Label: "score playing the second column as a shape", Value: part1(rounds)},
		{Label: "score playing for the second column outcome", Value: part2(rounds)},
	}, nil
}

func part1(rounds []Round) int {
	total := 0
	for _, r := range rounds {
		total += Score(r.Player, OutcomeOf(r.Opponent, r.Player))
	}
	return total
}

func part2(rounds []Round) int {
	total := 0
	for _, r := range rounds {
		total += Score(ShapeFor(r.Opponent, r.Want), r.Want)
	}
	return total
}
