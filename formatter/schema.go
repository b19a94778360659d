package formatter

// Schema identifies which of the two known trip-data column layouts a
// captured header belongs to. The schema is never declared by the input;
// it is implied by whichever header is captured first.
type Schema int

const (
	// SchemaUnknown means no captured header matched a known layout.
	SchemaUnknown Schema = iota
	// SchemaModern is the snake_case layout (ride_id, rideable_type,
	// started_at, ...) used by trip exports from 2021 onward.
	SchemaModern
	// SchemaLegacy is the spaced layout (tripduration, starttime,
	// "start station latitude", ...) used by older trip exports.
	SchemaLegacy
)

// String returns the string representation of Schema.
func (s Schema) String() string {
	switch s {
	case SchemaModern:
		return "modern"
	case SchemaLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// legacyColumns is the full set of column names in the legacy layout.
// A line whose fields hit at least legacyHeaderThreshold of these names is
// treated as a header row regardless of position in the file.
var legacyColumns = map[string]bool{
	"tripduration":            true,
	"starttime":               true,
	"stoptime":                true,
	"start station id":        true,
	"start station name":      true,
	"start station latitude":  true,
	"start station longitude": true,
	"end station id":          true,
	"end station name":        true,
	"end station latitude":    true,
	"end station longitude":   true,
	"bikeid":                  true,
	"usertype":                true,
	"birth year":              true,
	"gender":                  true,
}

// legacyHeaderThreshold is the minimum number of known legacy column names
// a line must contain to be classified as a header by heuristic.
const legacyHeaderThreshold = 5

// numericColumns lists the columns coerced to float64 during parsing,
// covering the latitude/longitude fields of both layouts. Coercion falls
// back to the raw text value when the field does not parse as a number.
var numericColumns = map[string]bool{
	"start_lat":               true,
	"start_lng":               true,
	"end_lat":                 true,
	"end_lng":                 true,
	"start station latitude":  true,
	"start station longitude": true,
	"end station latitude":    true,
	"end station longitude":   true,
}

// Per-schema field names for event timestamp and classification.
const (
	modernTimeColumn = "started_at"
	legacyTimeColumn = "starttime"
	modernTypeColumn = "rideable_type"
	legacyTypeColumn = "usertype"
)

// detectSchema infers the layout from a captured header.
func detectSchema(header []string) Schema {
	for _, col := range header {
		switch col {
		case modernTimeColumn:
			return SchemaModern
		case legacyTimeColumn:
			return SchemaLegacy
		}
	}
	return SchemaUnknown
}
