// Package day02 checks warehouse box IDs.
package day02

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/oshokin/advent2018/internal/logger"
	"github.com/oshokin/advent2018/internal/puzzle"
)

// Day is the puzzle day this package solves.
const Day = 2

// Solver solves day 2.
type Solver struct{}

// New returns the day 2 solver.
func New() *Solver {
	return new(Solver)
}

// Day implements puzzle.Solver.
func (*Solver) Day() int {
	return Day
}

// Solve returns the ID checksum and the letters shared by the two
// near-identical IDs.
func (*Solver) Solve(ctx context.Context, input string) (*puzzle.Answer, error) {
	ids := puzzle.Lines(input)
	for i, id := range ids {
		ids[i] = strings.TrimSpace(id)
	}

	common, err := CommonLetters(ids)
	if err != nil {
		return nil, err
	}

	logger.DebugKV(ctx, "Box IDs read", "ids", len(ids))

	return &puzzle.Answer{
		Day:   Day,
		Part1: strconv.Itoa(Checksum(ids)),
		Part2: common,
	}, nil
}

// TwoOrThree reports whether some letter occurs exactly twice and whether
// some letter occurs exactly three times in id.
func TwoOrThree(id string) (two, three bool) {
	counts := make(map[rune]int, len(id))
	for _, r := range id {
		counts[r]++
	}

	for _, n := range counts {
		switch n {
		case 2:
			two = true
		case 3:
			three = true
		}
	}

	return two, three
}

// Checksum multiplies the number of IDs with a doubled letter by the number
// with a tripled letter.
func Checksum(ids []string) int {
	var twos, threes int

	for _, id := range ids {
		two, three := TwoOrThree(id)
		if two {
			twos++
		}

		if three {
			threes++
		}
	}

	return twos * threes
}

// DiffCount counts positions where a and b differ, up to the shorter length.
func DiffCount(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	var n int

	for i := range min(len(ra), len(rb)) {
		if ra[i] != rb[i] {
			n++
		}
	}

	return n
}

// FindPair returns the first pair of distinct IDs differing in exactly one position.
func FindPair(ids []string) (string, string, bool) {
	for _, a := range ids {
		for _, b := range ids {
			if a != b && DiffCount(a, b) == 1 {
				return a, b, true
			}
		}
	}

	return "", "", false
}

// CommonLetters returns the letters the near-identical pair has in common.
func CommonLetters(ids []string) (string, error) {
	a, b, ok := FindPair(ids)
	if !ok {
		return "", fmt.Errorf("%w: no pair of IDs differs by one letter", puzzle.ErrNoSolution)
	}

	ra, rb := []rune(a), []rune(b)

	var sb strings.Builder

	for i := range min(len(ra), len(rb)) {
		if ra[i] == rb[i] {
			sb.WriteRune(ra[i])
		}
	}

	return sb.String(), nil
}
