package day04

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/oshokin/advent2018/internal/puzzle"
)

// Guard identifies a guard.
type Guard uint32

// Minute is a minute past midnight.
type Minute uint32

// CheckedAdd returns m+n, or ok=false on overflow.
func (m Minute) CheckedAdd(n Minute) (Minute, bool) {
	return puzzle.CheckedAdd(m, n)
}

// CheckedSub returns m-n, or ok=false when n is later than m.
func (m Minute) CheckedSub(n Minute) (Minute, bool) {
	return puzzle.CheckedSub(m, n)
}

// Kind tells which of the three log messages an event came from.
type Kind int

const (
	// ShiftStart is "Guard #N begins shift".
	ShiftStart Kind = iota + 1
	// FallsAsleep is "falls asleep".
	FallsAsleep
	// Wakes is "wakes up".
	Wakes
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case ShiftStart:
		return "shift start"
	case FallsAsleep:
		return "falls asleep"
	case Wakes:
		return "wakes up"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Event is one parsed log line.
type Event struct {
	// Kind is the event type.
	Kind Kind
	// Guard is set for ShiftStart only.
	Guard Guard
	// Minute is the minute field of the timestamp.
	Minute Minute
	// Line is the 1-based line number in the unsorted input, for messages.
	Line int
}

const (
	fallsAsleepText = "falls asleep"
	wakesUpText     = "wakes up"
)

var (
	// lineRx fixes the timestamp width; non-padded fields would sort wrong.
	lineRx  = regexp.MustCompile(`^\[(\d{4})-(\d{2})-(\d{2}) (\d{2}):(\d{2})\] (.+)$`)
	shiftRx = regexp.MustCompile(`^Guard #(\d+) begins shift$`)

	// timestampFields bounds the month, day, hour and minute submatches.
	timestampFields = [...]struct {
		name   string
		lo, hi uint64
	}{
		{"month", 1, 12},
		{"day", 1, 31},
		{"hour", 0, 23},
		{"minute", 0, 59},
	}
)

// ParseEvent parses a single log line. Only the minute of the timestamp is
// kept. Surrounding whitespace is ignored.
func ParseEvent(line string, lineNumber int) (Event, error) {
	line = strings.TrimSpace(line)

	m := lineRx.FindStringSubmatch(line)
	if m == nil {
		return Event{}, fmt.Errorf("%w: line %d %q", ErrFormat, lineNumber, line)
	}

	var values [len(timestampFields)]uint64

	for i, field := range timestampFields {
		raw := m[i+2]

		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || v < field.lo || v > field.hi {
			return Event{}, fmt.Errorf("%w: line %d %s %q out of range [%d,%d]",
				ErrFormat, lineNumber, field.name, raw, field.lo, field.hi)
		}

		values[i] = v
	}

	event := Event{
		Minute: Minute(values[len(values)-1]),
		Line:   lineNumber,
	}

	switch text := m[6]; text {
	case fallsAsleepText:
		event.Kind = FallsAsleep
	case wakesUpText:
		event.Kind = Wakes
	default:
		g := shiftRx.FindStringSubmatch(text)
		if g == nil {
			return Event{}, fmt.Errorf("%w: line %d unknown message %q", ErrFormat, lineNumber, text)
		}

		id, err := strconv.ParseUint(g[1], 10, 32)
		if err != nil {
			return Event{}, fmt.Errorf("%w: line %d guard id %q: %w", ErrFormat, lineNumber, g[1], err)
		}

		event.Kind = ShiftStart
		event.Guard = Guard(id)
	}

	return event, nil
}

// ParseEvents sorts the log lines chronologically and parses them.
func ParseEvents(text string) ([]Event, error) {
	type numbered struct {
		text   string
		number int
	}

	raw := puzzle.Lines(text)
	lines := make([]numbered, len(raw))

	for i, line := range raw {
		lines[i] = numbered{
			text:   strings.TrimSpace(line),
			number: i + 1,
		}
	}

	slices.SortStableFunc(lines, func(a, b numbered) int {
		return cmp.Compare(a.text, b.text)
	})

	events := make([]Event, 0, len(lines))

	for _, line := range lines {
		event, err := ParseEvent(line.text, line.number)
		if err != nil {
			return nil, err
		}

		events = append(events, event)
	}

	return events, nil
}
