package day04

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/advent2018/internal/puzzle"
)

// TestParseEvent covers the three message kinds and the minute extraction.
func TestParseEvent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		line string
		want Event
	}{
		{
			line: "[1518-11-01 00:00] Guard #10 begins shift",
			want: Event{Kind: ShiftStart, Guard: 10, Minute: 0, Line: 7},
		},
		{
			line: "[1518-11-01 00:05] falls asleep",
			want: Event{Kind: FallsAsleep, Minute: 5, Line: 7},
		},
		{
			line: "[1518-11-01 00:25] wakes up   ",
			want: Event{Kind: Wakes, Minute: 25, Line: 7},
		},
		{
			line: "[1518-11-01 23:58] Guard #99 begins shift",
			want: Event{Kind: ShiftStart, Guard: 99, Minute: 58, Line: 7},
		},
	}

	for _, tc := range cases {
		got, err := ParseEvent(tc.line, 7)
		require.NoError(t, err, tc.line)
		require.Equal(t, tc.want, got, tc.line)
	}
}

// TestParseEvent_Rejects asserts malformed lines yield ErrFormat rather than a default event.
func TestParseEvent_Rejects(t *testing.T) {
	t.Parallel()

	lines := []string{
		"not a valid line",
		"",
		"[1518-11-01 00:05]",
		"[1518-11-01 0:05] falls asleep",
		"[1518-1-01 00:05] falls asleep",
		"[1518-11-01 00:5] falls asleep",
		"[1518-11-01 00:xx] falls asleep",
		"1518-11-01 00:05 falls asleep",
		"[1518-11-01 00:05] falls  asleep",
		"[1518-11-01 00:05] snores",
		"[1518-11-01 00:05] Guard #abc begins shift",
		"[1518-11-01 00:05] Guard # begins shift",
		"[1518-11-01 00:05] Guard #10 ends shift",
		"[1518-11-01 00:05] Guard #99999999999 begins shift",
		"[1518-11-01 00:60] falls asleep",
		"[1518-13-45 99:99] falls asleep",
		"[1518-00-01 00:05] wakes up",
		"[1518-11-00 00:05] wakes up",
		"[1518-11-01 24:05] wakes up",
	}

	for _, line := range lines {
		_, err := ParseEvent(line, 1)
		require.ErrorIs(t, err, ErrFormat, line)
		require.ErrorIs(t, err, puzzle.ErrInvalidInput, line)
	}
}

// TestParseEvents_SortsChronologically verifies the lexical sort and original line numbers.
func TestParseEvents_SortsChronologically(t *testing.T) {
	t.Parallel()

	input := "[1518-11-01 00:25] wakes up\n" +
		"[1518-11-01 00:00] Guard #10 begins shift\n" +
		"[1518-11-01 00:05] falls asleep\n"

	events, err := ParseEvents(input)
	require.NoError(t, err)
	require.Equal(t, []Event{
		{Kind: ShiftStart, Guard: 10, Minute: 0, Line: 2},
		{Kind: FallsAsleep, Minute: 5, Line: 3},
		{Kind: Wakes, Minute: 25, Line: 1},
	}, events)
}

// TestParseEvents_Empty checks that empty input parses to no events.
func TestParseEvents_Empty(t *testing.T) {
	t.Parallel()

	events, err := ParseEvents("")
	require.NoError(t, err)
	require.Empty(t, events)
}

// TestParseEvents_ReportsLine ensures the failing input line number is in the error.
func TestParseEvents_ReportsLine(t *testing.T) {
	t.Parallel()

	_, err := ParseEvents("[1518-11-01 00:00] Guard #10 begins shift\ngarbage\n")
	require.ErrorIs(t, err, ErrFormat)
	require.Contains(t, err.Error(), "line 2")
}

// TestMinuteChecked exercises the Minute helpers.
func TestMinuteChecked(t *testing.T) {
	t.Parallel()

	d, ok := Minute(25).CheckedSub(5)
	require.True(t, ok)
	require.Equal(t, Minute(20), d)

	_, ok = Minute(5).CheckedSub(25)
	require.False(t, ok)

	_, ok = Minute(^uint32(0)).CheckedAdd(1)
	require.False(t, ok)
}

// TestKindString checks the human-readable kind names.
func TestKindString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "shift start", ShiftStart.String())
	require.Equal(t, "falls asleep", FallsAsleep.String())
	require.Equal(t, "wakes up", Wakes.String())
	require.Equal(t, "Kind(9)", Kind(9).String())
}
