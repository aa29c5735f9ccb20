package day04

import (
	"fmt"

	"github.com/oshokin/advent2018/internal/puzzle"
)

var (
	// ErrFormat is returned for lines that do not match the log grammar.
	ErrFormat = fmt.Errorf("%w: malformed log line", puzzle.ErrInvalidInput)
	// ErrOutOfOrder is returned when an event is impossible in the current state.
	ErrOutOfOrder = fmt.Errorf("%w: events out of order", puzzle.ErrInvalidInput)
	// ErrArithmetic is returned when minute arithmetic underflows or overflows.
	ErrArithmetic = fmt.Errorf("%w: minute arithmetic out of range", puzzle.ErrInvalidInput)
	// ErrEmptyHistory is returned by queries when no guard ever slept.
	ErrEmptyHistory = fmt.Errorf("%w: nobody slept", puzzle.ErrNoSolution)
)
