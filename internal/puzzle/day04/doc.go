// Package day04 reconstructs guard sleep schedules from a shuffled log.
//
// Lines look like "[1518-11-01 00:05] falls asleep". The timestamp is a
// fixed-width, zero-padded prefix, so sorting lines as plain strings puts
// them in chronological order; the parser rejects any line whose timestamp
// does not have that exact shape, since it would sort to the wrong place.
//
// Parsed events are folded, in order, into a single History accumulator
// that tracks which guard is on duty, whether that guard is asleep, total
// minutes asleep per guard and how often each guard was asleep during each
// minute. Sleep intervals are half-open: a guard falling asleep at :05 and
// waking at :25 slept minutes 5 through 24.
package day04
