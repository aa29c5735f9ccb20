package puzzle

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeSolver answers with its own day number.
type fakeSolver int

func (f fakeSolver) Day() int { return int(f) }

func (f fakeSolver) Solve(context.Context, string) (*Answer, error) {
	return &Answer{Day: int(f)}, nil
}

// TestLines covers split-terminator semantics.
func TestLines(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: nil},
		{name: "single newline", in: "\n", want: []string{""}},
		{name: "terminated", in: "a\nb\n", want: []string{"a", "b"}},
		{name: "unterminated", in: "a\nb", want: []string{"a", "b"}},
		{name: "inner blank kept", in: "a\n\nb\n", want: []string{"a", "", "b"}},
		{name: "crlf", in: "a\r\nb\r\n", want: []string{"a", "b"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Lines(tc.in))
		})
	}
}

// TestChecked verifies overflow and underflow detection.
func TestChecked(t *testing.T) {
	t.Parallel()

	sum, ok := CheckedAdd[uint32](40, 2)
	require.True(t, ok)
	require.Equal(t, uint32(42), sum)

	_, ok = CheckedAdd[uint32](math.MaxUint32, 1)
	require.False(t, ok)

	_, ok = CheckedAdd[uint8](200, 56)
	require.False(t, ok)

	diff, ok := CheckedSub[uint32](25, 5)
	require.True(t, ok)
	require.Equal(t, uint32(20), diff)

	diff, ok = CheckedSub[uint32](5, 5)
	require.True(t, ok)
	require.Zero(t, diff)

	_, ok = CheckedSub[uint32](5, 25)
	require.False(t, ok)
}

// TestRegistry checks registration, duplicate rejection and ordered listing.
func TestRegistry(t *testing.T) {
	t.Parallel()

	r, err := NewRegistry(fakeSolver(5), fakeSolver(1), fakeSolver(3))
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 5}, r.Days())

	s, err := r.Lookup(3)
	require.NoError(t, err)
	require.Equal(t, 3, s.Day())

	_, err = r.Lookup(2)
	require.ErrorIs(t, err, ErrUnknownDay)

	require.ErrorIs(t, r.Register(fakeSolver(1)), ErrDuplicateDay)

	_, err = NewRegistry(fakeSolver(2), fakeSolver(2))
	require.ErrorIs(t, err, ErrDuplicateDay)
}

// TestParseDay accepts the spellings the CLI allows.
func TestParseDay(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"4", "04", "day4", "day04"} {
		day, err := ParseDay(s)
		require.NoError(t, err, s)
		require.Equal(t, 4, day, s)
	}

	for _, s := range []string{"", "0", "26", "day", "four", "-1", "+4", "day+4", " 4", "4 "} {
		_, err := ParseDay(s)
		require.ErrorIs(t, err, ErrUnknownDay, s)
	}
}
