// Package errors provides standardized error handling for the ingestion pipeline.
//
// # Overview
//
// The errors package implements the failure taxonomy shared by the stream
// layers, the record formatter, and the output sink. Every failure belongs
// to one of six kinds: NoMatchingFiles (glob matched nothing), ShapeMismatch
// (row/header field count disagreement), Setup (operation before required
// setup), BadTimestamp (no datetime layout matched), IO (filesystem failure),
// and Config (missing or invalid configuration).
//
// Classification lets callers pattern-match recovery versus propagation:
// the multi-directory stream recovers from NoMatchingFiles by skipping the
// directory, while every other kind is surfaced to the caller, who decides
// whether to log-and-continue or abort. No kind is ever retried.
//
// # Quick Start
//
// Return standard error variables for known conditions:
//
//	if len(matches) == 0 {
//	    return errors.ErrNoMatchingFiles
//	}
//
// Wrap errors with context for debugging:
//
//	if err := os.Open(path); err != nil {
//	    return errors.WrapIO(err, "FileStream", "Next", "open input file")
//	}
//
// Check classification for recovery decisions:
//
//	if err := openDirectory(dir); err != nil {
//	    if errors.IsNoMatchingFiles(err) {
//	        continue // skip empty directory
//	    }
//	    return err
//	}
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// This format enables consistent log parsing and debugging across the
// pipeline. The Wrap family of functions applies the pattern while
// preserving classification through the chain, and all error types support
// errors.Is, errors.As, and error wrapping chains from the standard library.
package errors
