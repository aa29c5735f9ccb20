package day04

import (
	"context"
	"fmt"
	"strconv"

	"github.com/oshokin/advent2018/internal/logger"
	"github.com/oshokin/advent2018/internal/puzzle"
)

// Day is the puzzle day this package solves.
const Day = 4

// Solver solves day 4.
type Solver struct{}

// New returns the day 4 solver.
func New() *Solver {
	return new(Solver)
}

// Day implements puzzle.Solver.
func (*Solver) Day() int {
	return Day
}

// Solve parses and folds the log. Part 1 is the sleepiest guard times the
// minute that guard sleeps most; part 2 is guard times minute for the pair
// most frequently asleep.
func (*Solver) Solve(ctx context.Context, input string) (*puzzle.Answer, error) {
	events, err := ParseEvents(input)
	if err != nil {
		return nil, err
	}

	history, err := Reduce(events)
	if err != nil {
		return nil, err
	}

	part1, err := StrategyOne(history)
	if err != nil {
		return nil, err
	}

	part2, err := StrategyTwo(history)
	if err != nil {
		return nil, err
	}

	logger.DebugKV(ctx, "Schedule reduced", "events", len(events), "guards", len(history.totals))

	return &puzzle.Answer{
		Day:   Day,
		Part1: strconv.FormatUint(part1, 10),
		Part2: strconv.FormatUint(part2, 10),
	}, nil
}

// StrategyOne multiplies the busiest guard by its favorite minute.
func StrategyOne(h *History) (uint64, error) {
	guard, _, err := h.BusiestGuard()
	if err != nil {
		return 0, err
	}

	minute, _, ok := h.FavoriteMinute(guard)
	if !ok {
		return 0, fmt.Errorf("%w: guard #%d has no recorded minutes", ErrEmptyHistory, guard)
	}

	return uint64(guard) * uint64(minute), nil
}

// StrategyTwo multiplies the guard and minute of the most frequent sleep.
func StrategyTwo(h *History) (uint64, error) {
	key, _, err := h.MostFrequentMinute()
	if err != nil {
		return 0, err
	}

	return uint64(key.Guard) * uint64(key.Minute), nil
}
