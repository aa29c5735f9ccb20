// Package day05 simulates polymer reactions: adjacent units of the same
// type and opposite polarity (a/A) destroy each other.
package day05

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/oshokin/advent2018/internal/logger"
	"github.com/oshokin/advent2018/internal/puzzle"
)

// Day is the puzzle day this package solves.
const Day = 5

// reacts reports whether a and b are the same letter in opposite case.
func reacts(a, b byte) bool {
	return a != b && a|0x20 == b|0x20 && isLetter(a)
}

func isLetter(c byte) bool {
	c |= 0x20

	return c >= 'a' && c <= 'z'
}

// React fully reduces the polymer in one pass: each unit either cancels the
// unit on top of the stack or is pushed.
func React(polymer string) string {
	stack := make([]byte, 0, len(polymer))

	for i := range len(polymer) {
		c := polymer[i]
		if n := len(stack); n > 0 && reacts(stack[n-1], c) {
			stack = stack[:n-1]

			continue
		}

		stack = append(stack, c)
	}

	return string(stack)
}

// Remove drops every unit of the given type, both polarities.
func Remove(polymer string, unit byte) string {
	lower := unit | 0x20

	return strings.Map(func(r rune) rune {
		if r < 0x80 && byte(r)|0x20 == lower {
			return -1
		}

		return r
	}, polymer)
}

// Shortest removes each unit type in turn and returns the type whose
// removal leaves the shortest reacted polymer, with that length. Ties go to
// the alphabetically first type.
func Shortest(polymer string) (byte, int, error) {
	var present [26]bool

	for i := range len(polymer) {
		if c := polymer[i]; isLetter(c) {
			present[(c|0x20)-'a'] = true
		}
	}

	var (
		best   byte
		length int
		found  bool
	)

	for i, ok := range present {
		if !ok {
			continue
		}

		unit := byte('a' + i)

		n := len(React(Remove(polymer, unit)))
		if !found || n < length {
			best, length, found = unit, n, true
		}
	}

	if !found {
		return 0, 0, fmt.Errorf("%w: polymer has no units", puzzle.ErrNoSolution)
	}

	return best, length, nil
}

// Solver solves day 5.
type Solver struct{}

// New returns the day 5 solver.
func New() *Solver {
	return new(Solver)
}

// Day implements puzzle.Solver.
func (*Solver) Day() int {
	return Day
}

// Solve returns the reacted length and the best length after removing one type.
func (*Solver) Solve(ctx context.Context, input string) (*puzzle.Answer, error) {
	polymer := strings.TrimSpace(input)

	for i := range len(polymer) {
		if !isLetter(polymer[i]) {
			return nil, fmt.Errorf("%w: polymer unit %q at offset %d is not a letter",
				puzzle.ErrInvalidInput, polymer[i], i)
		}
	}

	unit, length, err := Shortest(polymer)
	if err != nil {
		return nil, err
	}

	logger.DebugKV(ctx, "Polymer reacted", "units", len(polymer), "removed", string(unit))

	return &puzzle.Answer{
		Day:   Day,
		Part1: strconv.Itoa(len(React(polymer))),
		Part2: strconv.Itoa(length),
	}, nil
}
