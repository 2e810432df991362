package puzzle

import "github.com/povarna/advent-of-code-go/internal/domain"

//go:generate mockgen -source=solver.go -destination=mocks/mock_solver.go -package=mocks

// Solver computes the answers for one day from its input lines.
type Solver interface {
	Day() int
	Name() string
	Solve(lines []domain.Line) ([]domain.Answer, error)
}

// InputLoader fetches the input lines for a day.
type InputLoader interface {
	Load(day int) ([]domain.Line, error)
}
