package day01

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/advent2018/internal/puzzle"
)

// TestSum covers the part 1 examples.
func TestSum(t *testing.T) {
	t.Parallel()

	cases := map[string]int64{
		"+1\n-2\n+3\n+1\n": 3,
		"+1\n+1\n+1\n":     3,
		"+1\n+1\n-2\n":     0,
		"-1\n-2\n-3\n":     -6,
	}

	for input, want := range cases {
		changes, err := ParseChanges(input)
		require.NoError(t, err)
		require.Equal(t, want, Sum(changes), input)
	}
}

// TestFirstRepeat covers the part 2 examples.
func TestFirstRepeat(t *testing.T) {
	t.Parallel()

	cases := map[string]int64{
		"+1\n-1\n":             0,
		"+3\n+3\n+4\n-2\n-4\n": 10,
		"-6\n+3\n+8\n+5\n-6\n": 5,
		"+7\n+7\n-2\n-7\n-4\n": 14,
		"+1\n-2\n+3\n+1\n":     2,
	}

	for input, want := range cases {
		changes, err := ParseChanges(input)
		require.NoError(t, err)

		got, err := FirstRepeat(changes)
		require.NoError(t, err)
		require.Equal(t, want, got, input)
	}
}

// TestFirstRepeat_NoSolution checks the bounded search and the empty list.
func TestFirstRepeat_NoSolution(t *testing.T) {
	t.Parallel()

	_, err := FirstRepeat(nil)
	require.ErrorIs(t, err, puzzle.ErrNoSolution)

	_, err = FirstRepeat([]int64{1, 1})
	require.ErrorIs(t, err, puzzle.ErrNoSolution)
}

// TestParseChanges_Rejects asserts bad lines are reported with their number.
func TestParseChanges_Rejects(t *testing.T) {
	t.Parallel()

	_, err := ParseChanges("+1\nplus two\n")
	require.ErrorIs(t, err, puzzle.ErrInvalidInput)
	require.Contains(t, err.Error(), "line 2")
}

// TestSolve runs the solver end to end.
func TestSolve(t *testing.T) {
	t.Parallel()

	answer, err := New().Solve(context.Background(), "+3\n+3\n+4\n-2\n-4\n")
	require.NoError(t, err)
	require.Equal(t, &puzzle.Answer{Day: 1, Part1: "4", Part2: "10"}, answer)
}
