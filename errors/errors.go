package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure so callers can pattern-match
// recovery (skip a directory) versus propagation (abort or report).
type Kind int

const (
	// KindUnknown is the zero value for unclassified errors.
	KindUnknown Kind = iota
	// KindNoMatchingFiles means a directory/pattern pair matched zero files.
	// Fatal at multi-file stream construction, recovered at directory level.
	KindNoMatchingFiles
	// KindShapeMismatch means a row's field count differs from the header's.
	KindShapeMismatch
	// KindSetup means an operation ran before its required setup, such as
	// parsing a row before any header was captured.
	KindSetup
	// KindBadTimestamp means a record's start-time field matched none of
	// the known datetime layouts.
	KindBadTimestamp
	// KindIO covers filesystem failures: permissions, vanished files,
	// disk errors. Propagated as-is, never retried.
	KindIO
	// KindConfig means the configuration is missing or invalid.
	KindConfig
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindNoMatchingFiles:
		return "no_matching_files"
	case KindShapeMismatch:
		return "shape_mismatch"
	case KindSetup:
		return "setup"
	case KindBadTimestamp:
		return "bad_timestamp"
	case KindIO:
		return "io"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions
var (
	// Stream errors
	ErrNoMatchingFiles = errors.New("no matching files")
	ErrStreamClosed    = errors.New("stream closed")

	// Formatter errors
	ErrHeaderNotSet   = errors.New("headers must be set before parsing")
	ErrHeaderMismatch = errors.New("header already set to a different value")
	ErrShapeMismatch  = errors.New("row shape does not match header")
	ErrBadTimestamp   = errors.New("unparseable timestamp")
	ErrMissingField   = errors.New("required field missing")

	// Sink errors
	ErrSinkClosed = errors.New("sink closed")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrMissingConfig = errors.New("missing required configuration")
)

// ClassifiedError wraps an error with its kind and origin context.
type ClassifiedError struct {
	Kind      Kind
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// KindOf returns the classification of an error. Classified errors report
// their stored kind; known sentinels are mapped to their taxonomy kind;
// everything else is KindUnknown.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Kind
	}

	switch {
	case errors.Is(err, ErrNoMatchingFiles):
		return KindNoMatchingFiles
	case errors.Is(err, ErrShapeMismatch):
		return KindShapeMismatch
	case errors.Is(err, ErrHeaderNotSet), errors.Is(err, ErrHeaderMismatch):
		return KindSetup
	case errors.Is(err, ErrBadTimestamp), errors.Is(err, ErrMissingField):
		return KindBadTimestamp
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrMissingConfig):
		return KindConfig
	}

	return KindUnknown
}

// IsNoMatchingFiles reports whether the error means a glob matched nothing.
// The multi-directory stream uses this to decide that a directory is
// skippable rather than fatal.
func IsNoMatchingFiles(err error) bool {
	return KindOf(err) == KindNoMatchingFiles
}

// IsShapeMismatch reports whether the error is a row/header count mismatch.
func IsShapeMismatch(err error) bool {
	return KindOf(err) == KindShapeMismatch
}

// IsSetup reports whether the error is a setup-order violation.
func IsSetup(err error) bool {
	return KindOf(err) == KindSetup
}

// IsBadTimestamp reports whether the error is an unparseable timestamp.
func IsBadTimestamp(err error) bool {
	return KindOf(err) == KindBadTimestamp
}

// newClassified creates a new classified error.
// Internal helper - use WrapKind or the kind-specific wrappers instead.
func newClassified(kind Kind, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Kind:      kind,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapKind wraps an error with an explicit kind and origin context.
func WrapKind(kind Kind, err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(kind, wrappedErr, component, method, wrappedErr.Error())
}

// WrapIO wraps a filesystem error with context.
func WrapIO(err error, component, method, action string) error {
	return WrapKind(KindIO, err, component, method, action)
}

// WrapConfig wraps a configuration error with context.
func WrapConfig(err error, component, method, action string) error {
	return WrapKind(KindConfig, err, component, method, action)
}
