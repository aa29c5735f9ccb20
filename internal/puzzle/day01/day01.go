// Package day01 tracks a device's frequency drift.
package day01

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/oshokin/advent2018/internal/logger"
	"github.com/oshokin/advent2018/internal/puzzle"
)

// Day is the puzzle day this package solves.
const Day = 1

// MaxCycles bounds how many passes over the change list FirstRepeat makes.
const MaxCycles = 100_000

// Solver solves day 1.
type Solver struct{}

// New returns the day 1 solver.
func New() *Solver {
	return new(Solver)
}

// Day implements puzzle.Solver.
func (*Solver) Day() int {
	return Day
}

// Solve reports the resulting frequency and the first frequency reached twice.
func (*Solver) Solve(ctx context.Context, input string) (*puzzle.Answer, error) {
	changes, err := ParseChanges(input)
	if err != nil {
		return nil, err
	}

	repeat, err := FirstRepeat(changes)
	if err != nil {
		return nil, err
	}

	logger.DebugKV(ctx, "Frequencies parsed", "changes", len(changes))

	return &puzzle.Answer{
		Day:   Day,
		Part1: strconv.FormatInt(Sum(changes), 10),
		Part2: strconv.FormatInt(repeat, 10),
	}, nil
}

// ParseChanges reads one signed integer per line, e.g. "+3" or "-4".
func ParseChanges(input string) ([]int64, error) {
	lines := puzzle.Lines(input)
	changes := make([]int64, 0, len(lines))

	for i, line := range lines {
		n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d %q: %w", puzzle.ErrInvalidInput, i+1, line, err)
		}

		changes = append(changes, n)
	}

	return changes, nil
}

// Sum returns the frequency after applying every change once.
func Sum(changes []int64) int64 {
	var total int64
	for _, n := range changes {
		total += n
	}

	return total
}

// FirstRepeat cycles through changes from a start of zero and returns the
// first running frequency seen twice. Zero itself counts as seen.
func FirstRepeat(changes []int64) (int64, error) {
	if len(changes) == 0 {
		return 0, fmt.Errorf("%w: no frequency changes", puzzle.ErrNoSolution)
	}

	var current int64

	seen := map[int64]struct{}{0: {}}

	for range MaxCycles {
		for _, n := range changes {
			current += n
			if _, ok := seen[current]; ok {
				return current, nil
			}

			seen[current] = struct{}{}
		}
	}

	return 0, fmt.Errorf("%w: no frequency repeats within %d cycles", puzzle.ErrNoSolution, MaxCycles)
}
