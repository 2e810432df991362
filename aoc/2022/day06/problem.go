package aoc2022day06

import (
	"fmt"
	"unicode/utf8"

	"github.com/povarna/advent-of-code-go/internal/domain"
)

const Day = 6

// NotFound is returned by FindMarker when no window qualifies.
const NotFound = 0

// FindMarker returns the number of characters processed before the first
// window of size distinct characters is complete, that is the smallest i >= size
// such that stream[i-size:i] has no repeats. Each byte counts as one character;
// Solve rejects streams that are not ASCII.
func FindMarker(stream string, size int) int {
	if size <= 0 {
		return NotFound
	}

	var lastSeen [256]int // index+1 of the previous occurrence, 0 when unseen
	start := 0
	for i := 0; i < len(stream); i++ {
		c := stream[i]
		if prev := lastSeen[c]; prev > start {
			start = prev
		}
		lastSeen[c] = i + 1

		if i+1-start >= size {
			return i + 1
		}
	}

	return NotFound
}

type Solver struct {
	packetSize  int
	messageSize int
}

func NewSolver(packetSize, messageSize int) *Solver {
	return &Solver{
		packetSize:  packetSize,
		messageSize: messageSize,
	}
}

func (s *Solver) Day() int {
	return Day
}

func (s *Solver) Name() string {
	return "Tuning Trouble"
}

func (s *Solver) Solve(lines []domain.Line) ([]domain.Answer, error) {
	streams := domain.NonBlank(lines)
	if len(streams) == 0 {
		return nil, domain.Malformed(Day, domain.Line{}, "input has no datastream")
	}
	if len(streams) > 1 {
		return nil, domain.Malformed(Day, streams[1], "expected a single datastream line, got %d", len(streams))
	}

	line := streams[0]
	for i := 0; i < len(line.Text); i++ {
		if line.Text[i] >= utf8.RuneSelf {
			return nil, domain.Malformed(Day, line, "non-ASCII byte at position %d", i+1)
		}
	}
	packet, err := marker(line, s.packetSize)
	if err != nil {
		return nil, err
	}
	message, err := marker(line, s.messageSize)
	if err != nil {
		return nil, err
	}

	return []domain.Answer{
		{Label: fmt.Sprintf("characters before start-of-packet marker (window %d)", s.packetSize), Value: packet},
		{Label: fmt.Sprintf("characters before start-of-message marker (window %d)", s.messageSize), Value: message},
	}, nil
}

func marker(line domain.Line, size int) (int, error) {
	idx := FindMarker(line.Text, size)
	if idx == NotFound {
		return 0, domain.Violation(Day, domain.Line{Number: line.Number}, "no window of %d distinct characters in %d-character datastream", size, len(line.Text))
	}
	return idx, nil
}
