package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/advent2018/internal/config"
	"github.com/oshokin/advent2018/internal/puzzle"
	"github.com/oshokin/advent2018/internal/service/solver"
	"github.com/oshokin/advent2018/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// inputPath overrides the input file of a single day ("-" reads stdin).
	inputPath string
	// format selects text or json output.
	format string
	// logLevel overrides the configured log level.
	logLevel string
	// noRecord skips the answers history.
	noRecord bool

	// rootCmd solves the days given as arguments, or every day.
	rootCmd = &cobra.Command{
		Use:   "advent [day...]",
		Short: "Solve Advent of Code 2018 puzzles.",
		Long: `Solves the Advent of Code 2018 puzzles implemented so far and prints both answers per day.

Days can be given as 4, 04 or day04; without arguments every implemented day runs.
Inputs are read from <input_dir>/dayNN.txt (see the settings file), or from --input
when a single day is selected. Answers are appended to the answers history and a
warning is logged when an answer differs from the previously recorded one.`,
		Args:         validateDays,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := parseDays(args)
			if err != nil {
				return err
			}

			return run(cmd, days)
		},
	}

	// dayCmd solves exactly one day.
	dayCmd = &cobra.Command{
		Use:          "day <n>",
		Short:        "Solve a single day.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := puzzle.ParseDay(args[0])
			if err != nil {
				return err
			}

			return run(cmd, []int{day})
		},
	}

	// allCmd solves every implemented day.
	allCmd = &cobra.Command{
		Use:          "all",
		Short:        "Solve every implemented day concurrently.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, nil)
		},
	}
)

// Execute runs the advent CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// run builds solver options from the flags and runs them with a
// signal-aware context.
func run(cmd *cobra.Command, days []int) error {
	// Setup graceful shutdown handling.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// An untouched --config means the default file, which may be absent.
	path := configPath
	if !cmd.Flags().Changed("config") {
		path = ""
	}

	options := &solver.Options{
		ConfigPath: path,
		Days:       days,
		InputPath:  inputPath,
		Format:     format,
		LogLevel:   logLevel,
		NoRecord:   noRecord,
		Stdin:      cmd.InOrStdin(),
		Stdout:     cmd.OutOrStdout(),
	}

	return solver.Run(ctx, options)
}

// validateDays accepts any number of day arguments. Without it cobra
// treats the first one as an unknown subcommand.
func validateDays(_ *cobra.Command, args []string) error {
	_, err := parseDays(args)

	return err
}

func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))

	for _, arg := range args {
		day, err := puzzle.ParseDay(arg)
		if err != nil {
			return nil, fmt.Errorf("parse day argument: %w", err)
		}

		days = append(days, day)
	}

	return days, nil
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	flags.StringVarP(&format, "format", "f", solver.FormatText, "output format: text or json")
	flags.StringVarP(&logLevel, "log-level", "l", "", "log level override: debug, info, warn, error")
	flags.BoolVar(&noRecord, "no-record", false, "do not read or write the answers history")

	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", `input file for a single day, "-" for stdin`)
	dayCmd.Flags().StringVarP(&inputPath, "input", "i", "", `input file, "-" for stdin`)

	rootCmd.AddCommand(dayCmd, allCmd)
}
