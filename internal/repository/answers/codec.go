package answers

import (
	"errors"
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/oshokin/advent2018/internal/domain/answer"
)

const (
	keyRunID      = "run_id"
	keyDay        = "day"
	keyPart1      = "part1"
	keyPart2      = "part2"
	keySolvedAt   = "solved_at"
	keyDurationMS = "duration_ms"
)

// errMalformedRecord is returned when a stored record lacks a field or has the wrong type.
var errMalformedRecord = errors.New("malformed answer record")

// ToStruct converts a record into its protobuf Struct form.
func ToStruct(r *answer.Record) (*structpb.Struct, error) {
	fields := map[string]any{
		keyRunID:      r.RunID,
		keyDay:        r.Day,
		keyPart1:      r.Part1,
		keyPart2:      r.Part2,
		keyDurationMS: float64(r.Duration) / float64(time.Millisecond),
	}

	if !r.SolvedAt.IsZero() {
		fields[keySolvedAt] = r.SolvedAt.UTC().Format(time.RFC3339Nano)
	}

	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}

	return s, nil
}

// FromStruct converts the protobuf Struct form back into a record.
func FromStruct(s *structpb.Struct) (*answer.Record, error) {
	fields := s.GetFields()

	day, ok := fields[keyDay].GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errMalformedRecord, keyDay)
	}

	r := &answer.Record{
		RunID:    fields[keyRunID].GetStringValue(),
		Day:      int(day.NumberValue),
		Part1:    fields[keyPart1].GetStringValue(),
		Part2:    fields[keyPart2].GetStringValue(),
		Duration: time.Duration(fields[keyDurationMS].GetNumberValue() * float64(time.Millisecond)),
	}

	if ts := fields[keySolvedAt].GetStringValue(); ts != "" {
		solvedAt, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", errMalformedRecord, keySolvedAt, err)
		}

		r.SolvedAt = solvedAt
	}

	return r, nil
}
