package event

import (
	"github.com/google/uuid"

	"github.com/yskta/OpenCEP-Project/formatter"
)

// Event is one typed record ready for the downstream processing engine.
// Events are immutable after creation: all fields are set during
// construction and never modified afterwards.
type Event struct {
	id        string
	eventType string
	timestamp int64 // Unix milliseconds
	payload   formatter.Record
	raw       string
}

// New builds an Event from a raw line using the formatter's parsing,
// timestamp extraction, and type classification. Header lines return
// ok=false with no event and no error. Parse, shape, and timestamp
// failures propagate unchanged.
func New(line string, f *formatter.Formatter) (*Event, bool, error) {
	payload, ok, err := f.ParseEvent(line)
	if err != nil || !ok {
		return nil, false, err
	}

	ts, err := f.EventTimestamp(payload)
	if err != nil {
		return nil, false, err
	}

	return &Event{
		id:        uuid.New().String(),
		eventType: f.EventType(payload),
		timestamp: ts,
		payload:   payload,
		raw:       line,
	}, true, nil
}

// ID returns the unique event identifier.
func (e *Event) ID() string {
	return e.id
}

// Type returns the event classification ("classic_bike", "Subscriber", ...).
func (e *Event) Type() string {
	return e.eventType
}

// Timestamp returns the event start time as Unix milliseconds.
func (e *Event) Timestamp() int64 {
	return e.timestamp
}

// Payload returns the parsed record backing this event.
func (e *Event) Payload() formatter.Record {
	return e.payload
}

// Raw returns the original line the event was parsed from.
func (e *Event) Raw() string {
	return e.raw
}

// Handler receives each successfully parsed, non-header event. The
// statistics collector and the pattern-matching engine plug in here.
type Handler interface {
	HandleEvent(*Event) error
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(*Event) error

// HandleEvent calls the underlying function.
func (fn HandlerFunc) HandleEvent(e *Event) error {
	return fn(e)
}
