// Package formatter parses comma-separated trip-data lines into records.
//
// # Overview
//
// A Formatter holds one captured header and classifies every incoming line
// against it. Two fixed column layouts are recognized: the modern
// snake_case layout (ride_id, rideable_type, started_at, ...) and the
// legacy spaced layout (tripduration, starttime, "start station name",
// ...). The layout is never declared by the input; it is implied by the
// captured header.
//
// # Header Handling
//
// The header is single-assignment: SetHeader captures it once, a repeat
// call with an equal header is a no-op, and a repeat call with a different
// header is an error. When a multi-file sequence repeats the same header
// row at the top of every file, ParseEvent recognizes those rows (by
// equality with the active header, or by the legacy column-name heuristic)
// and skips them instead of yielding data.
//
// # Usage
//
//	f := formatter.New()
//	if err := f.SetHeader(headerFields); err != nil { ... }
//
//	record, ok, err := f.ParseEvent(line)
//	if err != nil { ... }  // setup or shape-mismatch
//	if !ok { continue }    // header row, skip
//
//	ts, err := f.EventTimestamp(record) // Unix milliseconds
//	kind := f.EventType(record)         // "classic_bike", "Subscriber", ...
package formatter
