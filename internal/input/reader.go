package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/povarna/advent-of-code-go/internal/domain"
	"github.com/rs/zerolog"
)

// maxLineSize bounds a single input line. Datastream inputs are one long line.
const maxLineSize = 1024 * 1024

type Reader struct {
	r      io.Reader
	logger *zerolog.Logger
}

func NewReader(r io.Reader, logger *zerolog.Logger) *Reader {
	return &Reader{
		r:      r,
		logger: logger,
	}
}

// ReadAll returns every line of the input numbered from 1. Trailing carriage
// returns are stripped so CRLF files parse like LF files.
func (r *Reader) ReadAll() ([]domain.Line, error) {
	scanner := bufio.NewScanner(r.r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []domain.Line
	number := 0
	for scanner.Scan() {
		number++
		lines = append(lines, domain.Line{
			Number: number,
			Text:   strings.TrimRight(scanner.Text(), "\r"),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read line %d: %w", number+1, err)
	}

	r.logger.Debug().Int("lines", len(lines)).Msg("input read")
	return lines, nil
}

// ReadFile opens path and reads all of its lines. The file is closed on
// every return path. A file that cannot be opened is reported as
// domain.ErrMissingInput.
func ReadFile(path string, logger *zerolog.Logger) ([]domain.Line, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMissingInput, err)
	}
	defer f.Close()

	logger.Debug().Str("file", path).Msg("reading input file")
	return NewReader(f, logger).ReadAll()
}
