package setup

import (
	"fmt"
	"os"

	day01 "github.com/povarna/advent-of-code-go/aoc/2022/day01"
	day02 "github.com/povarna/advent-of-code-go/aoc/2022/day02"
	day03 "github.com/povarna/advent-of-code-go/aoc/2022/day03"
	day04 "github.com/povarna/advent-of-code-go/aoc/2022/day04"
	day06 "github.com/povarna/advent-of-code-go/aoc/2022/day06"
	"github.com/povarna/advent-of-code-go/internal/config"
	"github.com/povarna/advent-of-code-go/internal/input"
	"github.com/povarna/advent-of-code-go/internal/puzzle"
	"github.com/rs/zerolog"
)

type Config struct {
	LogLevel   string
	InputDir   string
	ConfigPath string
}

type Dependencies struct {
	Runner  *puzzle.Runner
	Loader  *input.FileLoader
	Puzzles *config.Config
	Logger  *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		LogLevel:   getEnv("AOC_LOG_LEVEL", "info"),
		InputDir:   getEnv("AOC_INPUT_DIR", "inputs"),
		ConfigPath: getEnv("AOC_CONFIG_PATH", ""),
	}
}

// Wire loads the puzzle configuration and builds the solver registry.
func Wire(cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	path, required := cfg.ConfigPath, true
	if path == "" {
		path, required = config.DefaultPath, false
	}

	puzzles, err := config.Load(path, required)
	if err != nil {
		return nil, fmt.Errorf("failed to load puzzle config: %w", err)
	}

	logger.Debug().
		Str("config", path).
		Str("input_dir", cfg.InputDir).
		Int("inputs", len(puzzles.Inputs)).
		Msg("Puzzle config loaded")

	runner, err := puzzle.NewRunner(Solvers(puzzles), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to register solvers: %w", err)
	}

	loader := input.NewFileLoader(func(day int) string {
		return puzzles.InputPath(day, cfg.InputDir)
	}, logger)

	return &Dependencies{
		Runner:  runner,
		Loader:  loader,
		Puzzles: puzzles,
		Logger:  logger,
	}, nil
}

// Solvers returns every implemented day configured from cfg.
func Solvers(cfg *config.Config) []puzzle.Solver {
	return []puzzle.Solver{
		day01.NewSolver(cfg.Calories.Top),
		day02.NewSolver(),
		day03.NewSolver(cfg.Rucksacks.GroupSize),
		day04.NewSolver(),
		day06.NewSolver(cfg.Signal.PacketWindow, cfg.Signal.MessageWindow),
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}
