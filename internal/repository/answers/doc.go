// Package answers persists the history of solved answers as JSON on disk.
//
// Records are encoded through protobuf's structpb/protojson so the file and
// the runner's JSON output share one representation.
package answers
