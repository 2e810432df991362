package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/povarna/advent-of-code-go/internal/domain"
	"github.com/povarna/advent-of-code-go/internal/input"
	"github.com/povarna/advent-of-code-go/internal/puzzle"
)

func runCmd(opts *options) *cobra.Command {
	var inputPath string

	c := &cobra.Command{
		Use:   "run [day...]",
		Short: "Solve the given days (all implemented days when none are given)",
		Example: `  aoc run
  aoc run 3 4
  aoc run 6 --input signal.txt
  cat pairs.txt | aoc run 4 --input -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := parseDays(args)
			if err != nil {
				return err
			}

			deps, err := bootstrap(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if inputPath == "" {
				results, err := deps.Runner.RunAll(cmd.Context(), days, deps.Loader)
				for _, res := range results {
					if werr := puzzle.WriteResult(out, res); werr != nil {
						return werr
					}
				}
				return err
			}

			if len(days) != 1 {
				return fmt.Errorf("--input needs exactly one day, got %d", len(days))
			}

			lines, err := readInput(inputPath, cmd.InOrStdin(), deps.Logger)
			if err != nil {
				return err
			}

			res, err := deps.Runner.Run(cmd.Context(), days[0], lines)
			if err != nil {
				return err
			}
			return puzzle.WriteResult(out, res)
		},
	}

	c.Flags().StringVarP(&inputPath, "input", "i", "", "Input file for a single day; '-' reads stdin")
	return c
}

func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))
	for _, arg := range args {
		day, err := strconv.Atoi(arg)
		if err != nil || day < 1 || day > 25 {
			return nil, fmt.Errorf("invalid day %q: expected a number between 1 and 25", arg)
		}
		days = append(days, day)
	}
	return days, nil
}

func readInput(path string, stdin io.Reader, logger *zerolog.Logger) ([]domain.Line, error) {
	if path == "-" {
		logger.Info().Msg("Reading from stdin")
		return input.NewReader(stdin, logger).ReadAll()
	}
	return input.ReadFile(path, logger)
}
