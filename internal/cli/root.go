package cli

import (
	"context"
	"io"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/povarna/advent-of-code-go/internal/setup"
	"github.com/povarna/advent-of-code-go/internal/setup/logger"
)

type options struct {
	configPath string
	inputDir   string
	logLevel   string
}

// Execute runs the root command with args. Cobra has already printed the
// error when one is returned.
func Execute(ctx context.Context, args []string) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "aoc",
		Short:        "Advent of Code 2022 puzzle solvers",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Puzzle config file (default $AOC_CONFIG_PATH or configs/aoc.yaml)")
	cmd.PersistentFlags().StringVar(&opts.inputDir, "input-dir", "", "Directory holding dayNN.txt inputs (default $AOC_INPUT_DIR or inputs)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (default $AOC_LOG_LEVEL or info)")

	cmd.AddCommand(runCmd(opts))
	cmd.AddCommand(listCmd(opts))
	return cmd
}

// bootstrap resolves configuration from .env, the environment and flags,
// in increasing order of precedence, and wires the solvers. Logs go to errOut.
func bootstrap(opts *options, errOut io.Writer) (*setup.Dependencies, error) {
	envErr := godotenv.Load()

	cfg := setup.LoadConfig()
	if opts.configPath != "" {
		cfg.ConfigPath = opts.configPath
	}
	if opts.inputDir != "" {
		cfg.InputDir = opts.inputDir
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	log := logger.NewConsole(cfg.LogLevel, errOut)
	if envErr != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	return setup.Wire(cfg, &log)
}
