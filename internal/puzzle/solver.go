package puzzle

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Answer is what one day produces.
type Answer struct {
	// Day is the puzzle day number.
	Day int
	// Part1 is the first answer.
	Part1 string
	// Part2 is the second answer; empty when the day has none.
	Part2 string
}

// Solver solves one day's puzzle from its raw text input.
type Solver interface {
	Day() int
	Solve(ctx context.Context, input string) (*Answer, error)
}

// Registry maps day numbers to solvers. It is filled once at startup and
// read concurrently afterwards.
type Registry struct {
	solvers map[int]Solver
}

// NewRegistry returns a registry holding the given solvers.
func NewRegistry(solvers ...Solver) (*Registry, error) {
	r := &Registry{
		solvers: make(map[int]Solver, len(solvers)),
	}

	for _, s := range solvers {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Register adds s, refusing a second solver for the same day.
func (r *Registry) Register(s Solver) error {
	if _, ok := r.solvers[s.Day()]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateDay, s.Day())
	}

	r.solvers[s.Day()] = s

	return nil
}

// Lookup returns the solver for day.
//
//nolint:ireturn // Solvers are heterogeneous by nature.
func (r *Registry) Lookup(day int) (Solver, error) {
	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}

	return s, nil
}

// Days returns the registered day numbers in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.solvers))
	for day := range r.solvers {
		days = append(days, day)
	}

	slices.Sort(days)

	return days
}

// ParseDay accepts "4", "04", "day4" or "day04".
func ParseDay(s string) (int, error) {
	trimmed := s
	if len(trimmed) > 3 && trimmed[:3] == "day" {
		trimmed = trimmed[3:]
	}

	if trimmed == "" || strings.ContainsFunc(trimmed, func(r rune) bool { return r < '0' || r > '9' }) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDay, s)
	}

	day, err := strconv.Atoi(trimmed)
	if err != nil || day < 1 || day > 25 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDay, s)
	}

	return day, nil
}
