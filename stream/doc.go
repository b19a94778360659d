// Package stream implements the three-level lazy pipeline that turns a tree
// of CSV files into one ordered sequence of lines.
//
// # Layers
//
// FileStream reads a single file, one physical line per Next call. The file
// handle is not opened until the first pull, and is released exactly once,
// either on natural exhaustion or on explicit Close.
//
// MultiFileStream chains FileStreams over every file matching a glob
// pattern in one directory, in sorted filename order. The file list is
// fixed at construction; construction fails with a no-matching-files error
// when the pattern matches nothing.
//
// MultiDirStream chains MultiFileStreams across directories in caller
// order. Directories whose pattern matches no files are skipped silently;
// every other failure propagates.
//
// # Ordering
//
// Records are yielded in strict file-then-row order within a directory and
// strict directory order across directories: deterministic and repeatable
// given the same filesystem state.
//
// # Header Handling
//
// The first file of a multi-file sequence has its header row captured into
// the shared formatter instead of being yielded. Later files are opened
// with header capture disabled; header rows they repeat are recognized by
// the formatter and suppressed, so each data row is emitted exactly once
// across the whole pipeline.
//
// # Line Representation
//
// Each pull parses one CSV record and rejoins its fields with a plain
// comma. The rejoined line does not re-escape embedded delimiters, so a
// quoted field containing a comma is lossy in the output representation.
// Downstream consumers depend on this representation; it is a stated
// limitation, not handled here.
package stream
