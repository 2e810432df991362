package input

import (
	"github.com/povarna/advent-of-code-go/internal/domain"
	"github.com/rs/zerolog"
)

// PathResolver maps a day number to the file holding its input.
type PathResolver func(day int) string

// FileLoader loads a day's input from the file chosen by its resolver.
type FileLoader struct {
	resolve PathResolver
	logger  *zerolog.Logger
}

func NewFileLoader(resolve PathResolver, logger *zerolog.Logger) *FileLoader {
	return &FileLoader{
		resolve: resolve,
		logger:  logger,
	}
}

// Path returns the file Load reads for day.
func (l *FileLoader) Path(day int) string {
	return l.resolve(day)
}

func (l *FileLoader) Load(day int) ([]domain.Line, error) {
	path := l.resolve(day)
	l.logger.Info().Int("day", day).Str("file", path).Msg("Loading input")

	return ReadFile(path, l.logger)
}
