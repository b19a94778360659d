package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yskta/OpenCEP-Project/errors"
	"github.com/yskta/OpenCEP-Project/pkg/timestamp"
)

// Record is one parsed data row as a column-name to value mapping.
// Latitude/longitude columns hold float64, everything else holds string.
type Record map[string]any

// Datetime layouts tried in order when extracting an event timestamp.
const (
	timeLayoutFraction = "2006-01-02 15:04:05.999999"
	timeLayoutPlain    = "2006-01-02 15:04:05"
)

// Formatter parses comma-separated trip-data lines against a single
// captured header. The header is set at most once per instance; duplicate
// header rows encountered in later files are recognized and suppressed,
// never re-captured. Not safe for concurrent use.
type Formatter struct {
	header []string
	schema Schema
}

// New creates a Formatter with no header captured yet.
func New() *Formatter {
	return &Formatter{}
}

// SetHeader captures the column names for subsequent parsing. A second
// call with a textually equal header is a no-op; a second call with a
// different header returns a setup error, it never silently overwrites.
func (f *Formatter) SetHeader(header []string) error {
	if len(header) == 0 {
		return errors.WrapKind(errors.KindSetup, errors.ErrHeaderNotSet,
			"Formatter", "SetHeader", "capture empty header")
	}
	if f.header != nil {
		if fieldsEqual(f.header, header) {
			return nil
		}
		return errors.WrapKind(errors.KindSetup, errors.ErrHeaderMismatch,
			"Formatter", "SetHeader", "overwrite established header")
	}
	f.header = append([]string(nil), header...)
	f.schema = detectSchema(f.header)
	return nil
}

// Header returns the captured column names, or nil before capture.
func (f *Formatter) Header() []string {
	if f.header == nil {
		return nil
	}
	return append([]string(nil), f.header...)
}

// Schema returns the layout implied by the captured header.
func (f *Formatter) Schema() Schema {
	return f.schema
}

// IsHeader reports whether the line is a header row: either it equals the
// active header field-for-field, or at least five of its fields are known
// legacy column names (case-sensitive, position-independent).
func (f *Formatter) IsHeader(line string) bool {
	return f.isHeaderFields(splitLine(line))
}

func (f *Formatter) isHeaderFields(fields []string) bool {
	if f.header != nil && fieldsEqual(f.header, fields) {
		return true
	}
	hits := 0
	for _, field := range fields {
		if legacyColumns[field] {
			hits++
			if hits >= legacyHeaderThreshold {
				return true
			}
		}
	}
	return false
}

// ParseEvent parses one comma-separated line into a Record. Header rows
// return (nil, false, nil): skipped, not an error. Data rows return
// (record, true, nil). Parsing a data row before any header is captured is
// a setup error; a field count differing from the header's is a
// shape-mismatch error naming both counts.
//
// The line is split on the raw comma only. Quoted fields containing commas
// are split apart; this matches the lossy line representation produced by
// the file stream and is a known limitation, not handled here.
func (f *Formatter) ParseEvent(line string) (Record, bool, error) {
	fields := splitLine(line)

	if f.isHeaderFields(fields) {
		return nil, false, nil
	}

	if f.header == nil {
		return nil, false, errors.WrapKind(errors.KindSetup, errors.ErrHeaderNotSet,
			"Formatter", "ParseEvent", "parse before header capture")
	}

	if len(fields) != len(f.header) {
		return nil, false, errors.WrapKind(errors.KindShapeMismatch,
			fmt.Errorf("expected %d values but got %d: %w", len(f.header), len(fields), errors.ErrShapeMismatch),
			"Formatter", "ParseEvent", "match row shape")
	}

	record := make(Record, len(f.header))
	for i, col := range f.header {
		value := fields[i]
		if numericColumns[col] {
			if num, err := strconv.ParseFloat(value, 64); err == nil {
				record[col] = num
				continue
			}
		}
		record[col] = value
	}
	return record, true, nil
}

// EventTimestamp extracts the record's start time as Unix milliseconds.
// The layout with fractional seconds is tried first, then the plain one;
// if both fail the error is classified as a bad timestamp.
func (f *Formatter) EventTimestamp(record Record) (int64, error) {
	col := f.timeColumn()
	raw, ok := record[col].(string)
	if !ok || raw == "" {
		return 0, errors.WrapKind(errors.KindBadTimestamp,
			fmt.Errorf("no %s value in record: %w", col, errors.ErrMissingField),
			"Formatter", "EventTimestamp", "read start time")
	}

	if t, err := time.Parse(timeLayoutFraction, raw); err == nil {
		return timestamp.ToUnixMs(t), nil
	}
	if t, err := time.Parse(timeLayoutPlain, raw); err == nil {
		return timestamp.ToUnixMs(t), nil
	}
	return 0, errors.WrapKind(errors.KindBadTimestamp,
		fmt.Errorf("invalid timestamp format %q: %w", raw, errors.ErrBadTimestamp),
		"Formatter", "EventTimestamp", "parse start time")
}

// EventType extracts the record's classification field, "unknown" when absent.
func (f *Formatter) EventType(record Record) string {
	if value, ok := record[f.typeColumn()].(string); ok {
		return value
	}
	return "unknown"
}

func (f *Formatter) timeColumn() string {
	if f.schema == SchemaLegacy {
		return legacyTimeColumn
	}
	return modernTimeColumn
}

func (f *Formatter) typeColumn() string {
	if f.schema == SchemaLegacy {
		return legacyTypeColumn
	}
	return modernTypeColumn
}

// splitLine trims surrounding whitespace and splits on the raw comma.
func splitLine(line string) []string {
	return strings.Split(strings.TrimSpace(line), ",")
}

func fieldsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
