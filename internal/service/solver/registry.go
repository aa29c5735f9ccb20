package solver

import (
	"github.com/oshokin/advent2018/internal/puzzle"
	"github.com/oshokin/advent2018/internal/puzzle/day01"
	"github.com/oshokin/advent2018/internal/puzzle/day02"
	"github.com/oshokin/advent2018/internal/puzzle/day03"
	"github.com/oshokin/advent2018/internal/puzzle/day04"
	"github.com/oshokin/advent2018/internal/puzzle/day05"
)

// DefaultRegistry returns a registry with every implemented day.
func DefaultRegistry() *puzzle.Registry {
	r, err := puzzle.NewRegistry(
		day01.New(),
		day02.New(),
		day03.New(),
		day04.New(),
		day05.New(),
	)
	if err != nil {
		// Day numbers are constants; a clash is a programming error.
		panic(err)
	}

	return r
}
