package puzzle

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/povarna/advent-of-code-go/internal/domain"
	"github.com/rs/zerolog"
)

var ErrUnknownDay = errors.New("unknown day")

type Runner struct {
	solvers map[int]Solver
	logger  *zerolog.Logger
}

// NewRunner registers solvers by day. Two solvers claiming the same day is an error.
func NewRunner(solvers []Solver, logger *zerolog.Logger) (*Runner, error) {
	byDay := make(map[int]Solver, len(solvers))
	for _, s := range solvers {
		day := s.Day()
		if existing, ok := byDay[day]; ok {
			return nil, fmt.Errorf("day %d registered twice (%s, %s)", day, existing.Name(), s.Name())
		}
		byDay[day] = s
	}

	return &Runner{
		solvers: byDay,
		logger:  logger,
	}, nil
}

// Days returns the registered days in ascending order.
func (r *Runner) Days() []int {
	return slices.Sorted(maps.Keys(r.solvers))
}

func (r *Runner) Solver(day int) (Solver, bool) {
	s, ok := r.solvers[day]
	return s, ok
}

// Run solves a single day over lines that have already been read.
func (r *Runner) Run(ctx context.Context, day int, lines []domain.Line) (domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return domain.Result{}, err
	}

	solver, ok := r.solvers[day]
	if !ok {
		return domain.Result{}, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}

	now := time.Now()
	answers, err := solver.Solve(lines)
	duration := time.Since(now)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int("day", day).
			Str("puzzle", solver.Name()).
			Msg("Solve failed")
		return domain.Result{}, err
	}

	r.logger.Info().
		Int("day", day).
		Str("puzzle", solver.Name()).
		Int("lines", len(lines)).
		Int("answers", len(answers)).
		Dur("duration", duration).
		Msg("Solved")

	return domain.Result{
		Day:      day,
		Name:     solver.Name(),
		Answers:  answers,
		Duration: duration,
	}, nil
}

// RunAll loads and solves each day in order, stopping at the first failure.
// An empty days list runs every registered day.
func (r *Runner) RunAll(ctx context.Context, days []int, loader InputLoader) ([]domain.Result, error) {
	if len(days) == 0 {
		days = r.Days()
	}

	results := make([]domain.Result, 0, len(days))
	for _, day := range days {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		if _, ok := r.solvers[day]; !ok {
			return results, fmt.Errorf("%w: %d", ErrUnknownDay, day)
		}

		lines, err := loader.Load(day)
		if err != nil {
			return results, fmt.Errorf("day %02d: %w", day, err)
		}

		res, err := r.Run(ctx, day, lines)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}

	return results, nil
}
