package day04

import (
	"fmt"
	"maps"
)

// GuardMinute keys per-minute sleep counts.
type GuardMinute struct {
	Guard  Guard
	Minute Minute
}

// History accumulates sleep statistics over a chronologically ordered
// event sequence. The zero value is not usable; call NewHistory.
//
// asleepSince is only ever set while current is set, and at most one sleep
// interval is open at a time.
type History struct {
	// current is the guard on duty, nil before the first shift starts.
	current *Guard
	// asleepSince is when the current guard fell asleep, nil while awake.
	asleepSince *Minute
	// totals is the cumulative minutes asleep per guard.
	totals map[Guard]Minute
	// perMinute counts the sleep intervals of a guard covering a minute.
	perMinute map[GuardMinute]int
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{
		totals:    make(map[Guard]Minute),
		perMinute: make(map[GuardMinute]int),
	}
}

// Reduce folds events into a fresh history, stopping at the first event
// the current state does not allow.
func Reduce(events []Event) (*History, error) {
	h := NewHistory()

	for _, e := range events {
		if err := h.Apply(e); err != nil {
			return nil, fmt.Errorf("line %d (%s): %w", e.Line, e.Kind, err)
		}
	}

	return h, nil
}

// Apply performs the transition for e. Every precondition is checked
// before anything is written, so on error h is left as it was.
func (h *History) Apply(e Event) error {
	switch e.Kind {
	case ShiftStart:
		if h.asleepSince != nil {
			return fmt.Errorf("%w: guard #%d begins shift while guard #%d is asleep",
				ErrOutOfOrder, e.Guard, *h.current)
		}

		g := e.Guard
		h.current = &g

		return nil

	case FallsAsleep:
		if h.current == nil {
			return fmt.Errorf("%w: falls asleep before any shift began", ErrOutOfOrder)
		}

		if h.asleepSince != nil {
			return fmt.Errorf("%w: guard #%d falls asleep twice without waking",
				ErrOutOfOrder, *h.current)
		}

		m := e.Minute
		h.asleepSince = &m

		return nil

	case Wakes:
		return h.wake(e.Minute)

	default:
		return fmt.Errorf("%w: unknown event kind %d", ErrFormat, e.Kind)
	}
}

func (h *History) wake(at Minute) error {
	if h.current == nil {
		return fmt.Errorf("%w: wakes up before any shift began", ErrOutOfOrder)
	}

	if h.asleepSince == nil {
		return fmt.Errorf("%w: guard #%d wakes up without being asleep", ErrOutOfOrder, *h.current)
	}

	guard, since := *h.current, *h.asleepSince

	elapsed, ok := at.CheckedSub(since)
	if !ok {
		return fmt.Errorf("%w: guard #%d wakes at minute %d before falling asleep at %d",
			ErrArithmetic, guard, at, since)
	}

	total, ok := h.totals[guard].CheckedAdd(elapsed)
	if !ok {
		return fmt.Errorf("%w: guard #%d total sleep overflows", ErrArithmetic, guard)
	}

	for m := since; m < at; m++ {
		h.perMinute[GuardMinute{Guard: guard, Minute: m}]++
	}

	h.totals[guard] = total
	h.asleepSince = nil

	return nil
}

// OnDuty returns the guard currently on duty.
func (h *History) OnDuty() (Guard, bool) {
	if h.current == nil {
		return 0, false
	}

	return *h.current, true
}

// Asleep reports whether the guard on duty is asleep.
func (h *History) Asleep() bool {
	return h.asleepSince != nil
}

// Total returns the minutes g spent asleep.
func (h *History) Total(g Guard) Minute {
	return h.totals[g]
}

// Totals returns a copy of the per-guard sleep totals.
func (h *History) Totals() map[Guard]Minute {
	return maps.Clone(h.totals)
}

// Count returns how many sleep intervals of g covered minute m.
func (h *History) Count(g Guard, m Minute) int {
	return h.perMinute[GuardMinute{Guard: g, Minute: m}]
}

// Clone returns an independent copy of h.
func (h *History) Clone() *History {
	c := &History{
		totals:    maps.Clone(h.totals),
		perMinute: maps.Clone(h.perMinute),
	}

	if h.current != nil {
		g := *h.current
		c.current = &g
	}

	if h.asleepSince != nil {
		m := *h.asleepSince
		c.asleepSince = &m
	}

	return c
}

// BusiestGuard returns the guard with the most minutes asleep and that
// total. Ties go to the smallest guard id. Guards whose recorded sleep adds
// up to zero minutes do not count as having slept.
func (h *History) BusiestGuard() (Guard, Minute, error) {
	var (
		best  Guard
		most  Minute
		found bool
	)

	for g, total := range h.totals {
		if total == 0 {
			continue
		}

		if !found || total > most || (total == most && g < best) {
			best, most, found = g, total, true
		}
	}

	if !found {
		return 0, 0, ErrEmptyHistory
	}

	return best, most, nil
}

// FavoriteMinute returns the minute g was most often asleep and how many
// times. Ties go to the earliest minute. ok is false if g never slept.
func (h *History) FavoriteMinute(g Guard) (minute Minute, count int, ok bool) {
	for key, n := range h.perMinute {
		if key.Guard != g {
			continue
		}

		if !ok || n > count || (n == count && key.Minute < minute) {
			minute, count, ok = key.Minute, n, true
		}
	}

	return minute, count, ok
}

// MostFrequentMinute returns the guard and minute with the highest
// per-minute sleep count across all guards. Ties go to the smallest guard,
// then the earliest minute.
func (h *History) MostFrequentMinute() (GuardMinute, int, error) {
	var (
		best  GuardMinute
		count int
		found bool
	)

	for key, n := range h.perMinute {
		if !found || n > count || (n == count && less(key, best)) {
			best, count, found = key, n, true
		}
	}

	if !found {
		return GuardMinute{}, 0, ErrEmptyHistory
	}

	return best, count, nil
}

func less(a, b GuardMinute) bool {
	if a.Guard != b.Guard {
		return a.Guard < b.Guard
	}

	return a.Minute < b.Minute
}
