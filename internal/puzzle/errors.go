package puzzle

import "errors"

var (
	// ErrInvalidInput is the root of every parse or consistency failure
	// caused by puzzle text.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoSolution is returned when well-formed input has no answer.
	ErrNoSolution = errors.New("no solution")
	// ErrUnknownDay is returned by Registry.Lookup for days without a solver.
	ErrUnknownDay = errors.New("unknown day")
	// ErrDuplicateDay is returned when two solvers claim the same day.
	ErrDuplicateDay = errors.New("day already registered")
)
