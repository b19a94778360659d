// Package event defines the typed record handed to downstream consumers.
//
// An Event carries the classification, start timestamp (Unix milliseconds),
// and parsed payload of one trip record, plus the raw line it came from.
// Construction delegates parsing, timestamp extraction, and classification
// to the record formatter, so an Event exists only for lines that parsed
// cleanly as data.
//
// The Handler interface is the boundary to the collaborators outside this
// module: the statistics collector and the pattern-matching engine both
// receive events through HandleEvent, once per successfully parsed,
// non-header record.
package event
