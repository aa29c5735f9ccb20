package answer

import (
	"fmt"
	"time"
)

// Record is one solved day within one run.
type Record struct {
	// RunID ties together every day solved by one invocation.
	RunID string
	// Day is the puzzle day number.
	Day int
	// Part1 is the first answer.
	Part1 string
	// Part2 is the second answer, empty when the day has none.
	Part2 string
	// SolvedAt is when the answer was produced.
	SolvedAt time.Time
	// Duration is how long parsing and solving took.
	Duration time.Duration
}

// SameAnswers reports whether r and other carry identical answers.
func (r *Record) SameAnswers(other *Record) bool {
	return r.Part1 == other.Part1 && r.Part2 == other.Part2
}

// Lines renders the record the way the runner prints it:
//
//	Day 04 part 1: 240
//	Day 04 part 2: 4455
func (r *Record) Lines() []string {
	lines := []string{fmt.Sprintf("Day %02d part 1: %s", r.Day, r.Part1)}
	if r.Part2 != "" {
		lines = append(lines, fmt.Sprintf("Day %02d part 2: %s", r.Day, r.Part2))
	}

	return lines
}
