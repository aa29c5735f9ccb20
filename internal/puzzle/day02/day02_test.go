package day02

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/advent2018/internal/puzzle"
)

// TestTwoOrThree covers the letter frequency examples.
func TestTwoOrThree(t *testing.T) {
	t.Parallel()

	cases := []struct {
		id         string
		two, three bool
	}{
		{id: "abcdef"},
		{id: "bababc", two: true, three: true},
		{id: "abbcde", two: true},
		{id: "abcccd", three: true},
		{id: "aabcdd", two: true},
		{id: "abcdee", two: true},
		{id: "ababab", three: true},
	}

	for _, tc := range cases {
		two, three := TwoOrThree(tc.id)
		require.Equal(t, tc.two, two, tc.id)
		require.Equal(t, tc.three, three, tc.id)
	}
}

// TestChecksum covers the part 1 example.
func TestChecksum(t *testing.T) {
	t.Parallel()

	ids := puzzle.Lines("abcdef\nbababc\nabbcde\nabcccd\naabcdd\nabcdee\nababab\n")
	require.Equal(t, 12, Checksum(ids))
}

// TestDiffCount checks positional differences.
func TestDiffCount(t *testing.T) {
	t.Parallel()

	require.Equal(t, 2, DiffCount("abcde", "axcye"))
	require.Equal(t, 1, DiffCount("fghij", "fguij"))
	require.Zero(t, DiffCount("abc", "abcd"))
}

// TestCommonLetters covers the part 2 example and the no-pair case.
func TestCommonLetters(t *testing.T) {
	t.Parallel()

	ids := []string{"abcde", "fghij", "klmno", "pqrst", "fguij", "axcye", "wvxyz"}

	a, b, ok := FindPair(ids)
	require.True(t, ok)
	require.Equal(t, "fghij", a)
	require.Equal(t, "fguij", b)

	common, err := CommonLetters(ids)
	require.NoError(t, err)
	require.Equal(t, "fgij", common)

	_, err = CommonLetters([]string{"abc", "xyz", "abc"})
	require.ErrorIs(t, err, puzzle.ErrNoSolution)
}

// TestSolve runs the solver end to end.
func TestSolve(t *testing.T) {
	t.Parallel()

	answer, err := New().Solve(context.Background(), "abcdef\nbababc\nabbcde\nabcccd\naabcdd\nabcdee\nababab\nabcdeg\n")
	require.NoError(t, err)
	require.Equal(t, &puzzle.Answer{Day: 2, Part1: "12", Part2: "abcde"}, answer)
}
