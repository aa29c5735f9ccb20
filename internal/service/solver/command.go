package solver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/oshokin/advent2018/internal/config"
	"github.com/oshokin/advent2018/internal/domain/answer"
	"github.com/oshokin/advent2018/internal/logger"
	"github.com/oshokin/advent2018/internal/puzzle"
	"github.com/oshokin/advent2018/internal/repository/answers"
)

// Output formats accepted by Options.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// StdinPath as Options.InputPath reads the input from Options.Stdin.
const StdinPath = "-"

// Options controls which days run and where their input and output go.
type Options struct {
	// ConfigPath is the settings YAML file; empty means the optional default file.
	ConfigPath string
	// Days lists the days to solve; empty means every registered day.
	Days []int
	// InputPath overrides the input file. Only valid with a single day.
	InputPath string
	// Format is FormatText (default) or FormatJSON.
	Format string
	// LogLevel overrides the configured log level when set.
	LogLevel string
	// NoRecord skips reading and writing the answers history.
	NoRecord bool
	// Registry supplies the solvers; nil means DefaultRegistry.
	Registry *puzzle.Registry
	// Stdin is read when InputPath is StdinPath; nil means os.Stdin.
	Stdin io.Reader
	// Stdout receives the answers; nil means os.Stdout.
	Stdout io.Writer
}

var (
	// errInputNeedsSingleDay is returned when an input override is combined with several days.
	errInputNeedsSingleDay = errors.New("--input can only be used with a single day")
	// errUnknownFormat is returned for an unsupported output format.
	errUnknownFormat = errors.New("unknown output format")
	// errUnknownLogLevel is returned for an unsupported log level override.
	errUnknownLogLevel = errors.New("unknown log level")
)

// Run solves the requested days. Nothing is printed or recorded unless
// every day succeeds.
//
//nolint:cyclop // Linear setup steps; splitting them hides the flow.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name and run id for tracking.
	runID := uuid.New().String()
	ctx = logger.WithName(ctx, "advent")
	ctx = logger.WithKV(ctx, "run_id", runID)

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if err = applyLogLevel(cfg.LogLevel, opts.LogLevel); err != nil {
		return err
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}

	registry := opts.Registry
	if registry == nil {
		registry = DefaultRegistry()
	}

	days := opts.Days
	if len(days) == 0 {
		days = registry.Days()
	}

	if opts.InputPath != "" && len(days) != 1 {
		return errInputNeedsSingleDay
	}

	solvers := make([]puzzle.Solver, len(days))
	for i, day := range days {
		if solvers[i], err = registry.Lookup(day); err != nil {
			return err
		}
	}

	inputs, err := readInputs(cfg, days, opts)
	if err != nil {
		return err
	}

	logger.DebugKV(ctx, "Solving", "days", days, "input_dir", cfg.InputDir)

	started := time.Now()

	records, err := solveAll(ctx, runID, solvers, inputs)
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Solved", "days", days, "elapsed", time.Since(started).String())

	if !opts.NoRecord {
		recordAnswers(ctx, answers.NewFileRepository(cfg.AnswersFile), records)
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	return printRecords(stdout, format, records)
}

// applyLogLevel sets the global level from the override or the configuration.
func applyLogLevel(configured, override string) error {
	name := configured
	if override != "" {
		name = override
	}

	level, ok := logger.ParseLogLevel(name)
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, name)
	}

	logger.SetLevel(level)

	return nil
}

// readInputs loads every day's input before any solving starts.
func readInputs(cfg *config.Config, days []int, opts *Options) ([]string, error) {
	inputs := make([]string, len(days))

	for i, day := range days {
		var (
			data []byte
			err  error
		)

		switch path := opts.InputPath; path {
		case StdinPath:
			stdin := opts.Stdin
			if stdin == nil {
				stdin = os.Stdin
			}

			data, err = io.ReadAll(stdin)
		case "":
			data, err = os.ReadFile(cfg.InputPath(day))
		default:
			data, err = os.ReadFile(filepath.Clean(path))
		}

		if err != nil {
			return nil, fmt.Errorf("read input for day %d: %w", day, err)
		}

		inputs[i] = string(data)
	}

	return inputs, nil
}

// solveAll runs solvers concurrently, solvers[i] on inputs[i], and returns
// records in the same order.
func solveAll(ctx context.Context, runID string, solvers []puzzle.Solver, inputs []string) ([]*answer.Record, error) {
	records := make([]*answer.Record, len(solvers))

	eg, egCtx := errgroup.WithContext(ctx)

	for i, s := range solvers {
		day := s.Day()

		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			dayCtx := logger.WithKV(egCtx, "day", day)
			started := time.Now()

			result, err := s.Solve(dayCtx, inputs[i])
			if err != nil {
				return fmt.Errorf("day %d: %w", day, err)
			}

			records[i] = &answer.Record{
				RunID:    runID,
				Day:      day,
				Part1:    result.Part1,
				Part2:    result.Part2,
				SolvedAt: time.Now().UTC(),
				Duration: time.Since(started),
			}

			logger.DebugKV(dayCtx, "Day solved", "duration", records[i].Duration.String())

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return records, nil
}

// recordAnswers appends records to the history and warns when an answer differs
// from the last one stored for the same day. History problems are logged,
// not fatal: the answers are still printed.
func recordAnswers(ctx context.Context, repo answers.Repository, records []*answer.Record) {
	for _, r := range records {
		previous, err := repo.Last(ctx, r.Day)

		switch {
		case err == nil:
			if !previous.SameAnswers(r) {
				logger.WarnKV(ctx, "Answer changed since last run",
					"day", r.Day,
					"previous_run_id", previous.RunID,
					"previous", strings.Join(previous.Lines(), "; "),
					"current", strings.Join(r.Lines(), "; "))
			}
		case errors.Is(err, answers.ErrNotFound):
			// First time this day is solved.
		default:
			logger.ErrorKV(ctx, "Read answers history failed", "error", err)

			return
		}

		if err = repo.Append(ctx, r); err != nil {
			logger.ErrorKV(ctx, "Record answer failed", "day", r.Day, "error", err)

			return
		}
	}
}

// printRecords writes records in the chosen format.
func printRecords(w io.Writer, format string, records []*answer.Record) error {
	for _, r := range records {
		if format == FormatJSON {
			s, err := answers.ToStruct(r)
			if err != nil {
				return err
			}

			data, err := protojson.Marshal(s)
			if err != nil {
				return fmt.Errorf("encode answer: %w", err)
			}

			if _, err = fmt.Fprintln(w, string(data)); err != nil {
				return fmt.Errorf("write answer: %w", err)
			}

			continue
		}

		for _, line := range r.Lines() {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return fmt.Errorf("write answer: %w", err)
			}
		}
	}

	return nil
}
