// Package testutil provides testing utilities for the ingestion pipeline.
//
// # Overview
//
// The testutil package contains trip-data fixtures in both known CSV
// layouts and helpers that lay temp directory trees out on disk, so stream
// and pipeline tests can build realistic multi-file, multi-directory inputs
// with a few lines of setup.
//
// # Usage
//
//	dir := t.TempDir()
//	testutil.WriteFile(t, dir, "202101-tripdata.csv", testutil.ModernCSV)
//
// or compose a file from the fixture header and rows:
//
//	testutil.WriteCSV(t, dir, "a.csv", testutil.ModernHeader, testutil.ModernRows[:2])
package testutil
