// Package config loads and validates the ingestion configuration.
//
// Configuration is a single JSON document naming the input directories (in
// processing order), the glob pattern, header handling, error policy, and
// the output sink. Load reads the file over DefaultConfig, so omitted
// fields keep their defaults, then validates the result.
package config
