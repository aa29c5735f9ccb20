// Package day03 finds overlapping fabric claims.
package day03

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/oshokin/advent2018/internal/logger"
	"github.com/oshokin/advent2018/internal/puzzle"
)

// Day is the puzzle day this package solves.
const Day = 3

// Square is one square inch of fabric.
type Square struct {
	Left, Top uint32
}

// Claim is an elf's rectangle, e.g. "#1 @ 1,3: 4x4".
type Claim struct {
	ID     int
	Left   uint32
	Top    uint32
	Width  uint32
	Height uint32
}

// Squares calls fn for every square the claim covers.
func (c Claim) Squares(fn func(Square)) {
	for x := c.Left; x < c.Left+c.Width; x++ {
		for y := c.Top; y < c.Top+c.Height; y++ {
			fn(Square{Left: x, Top: y})
		}
	}
}

var claimRx = regexp.MustCompile(`^#(\d+) @ (\d+),(\d+): (\d+)x(\d+)$`)

// ParseClaim parses one claim line.
func ParseClaim(line string) (Claim, error) {
	m := claimRx.FindStringSubmatch(line)
	if m == nil {
		return Claim{}, fmt.Errorf("%w: claim %q does not match %s", puzzle.ErrInvalidInput, line, claimRx)
	}

	id, err := strconv.Atoi(m[1])
	if err != nil {
		return Claim{}, fmt.Errorf("%w: claim %q id: %w", puzzle.ErrInvalidInput, line, err)
	}

	var fields [4]uint32

	for i := range fields {
		n, err := strconv.ParseUint(m[i+2], 10, 16)
		if err != nil {
			return Claim{}, fmt.Errorf("%w: claim %q field %q: %w", puzzle.ErrInvalidInput, line, m[i+2], err)
		}

		fields[i] = uint32(n)
	}

	return Claim{
		ID:     id,
		Left:   fields[0],
		Top:    fields[1],
		Width:  fields[2],
		Height: fields[3],
	}, nil
}

// ParseClaims parses one claim per line.
func ParseClaims(input string) ([]Claim, error) {
	lines := puzzle.Lines(input)
	claims := make([]Claim, 0, len(lines))

	for i, line := range lines {
		c, err := ParseClaim(strings.TrimSpace(line))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		claims = append(claims, c)
	}

	return claims, nil
}

// coverage counts how many claims cover each square.
func coverage(claims []Claim) map[Square]int {
	covered := make(map[Square]int)
	for _, c := range claims {
		c.Squares(func(s Square) { covered[s]++ })
	}

	return covered
}

// CountOverlaps returns the number of squares inside two or more claims.
func CountOverlaps(claims []Claim) int {
	var n int

	for _, count := range coverage(claims) {
		if count > 1 {
			n++
		}
	}

	return n
}

// Isolated returns the ID of the only claim that overlaps no other. It is
// an error if no claim, or more than one, stands alone.
func Isolated(claims []Claim) (int, error) {
	covered := coverage(claims)

	var ids []int

	for _, c := range claims {
		alone := true

		c.Squares(func(s Square) {
			if covered[s] > 1 {
				alone = false
			}
		})

		if alone {
			ids = append(ids, c.ID)
		}
	}

	if len(ids) != 1 {
		return 0, fmt.Errorf("%w: %d claims overlap nothing, want exactly one", puzzle.ErrNoSolution, len(ids))
	}

	return ids[0], nil
}

// Solver solves day 3.
type Solver struct{}

// New returns the day 3 solver.
func New() *Solver {
	return new(Solver)
}

// Day implements puzzle.Solver.
func (*Solver) Day() int {
	return Day
}

// Solve counts contested squares and finds the isolated claim.
func (*Solver) Solve(ctx context.Context, input string) (*puzzle.Answer, error) {
	claims, err := ParseClaims(input)
	if err != nil {
		return nil, err
	}

	id, err := Isolated(claims)
	if err != nil {
		return nil, err
	}

	logger.DebugKV(ctx, "Claims parsed", "claims", len(claims))

	return &puzzle.Answer{
		Day:   Day,
		Part1: strconv.Itoa(CountOverlaps(claims)),
		Part2: strconv.Itoa(id),
	}, nil
}
