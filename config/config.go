package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/yskta/OpenCEP-Project/errors"
	"github.com/yskta/OpenCEP-Project/sink"
)

// Config represents the complete ingestion configuration.
type Config struct {
	// Directories are processed strictly in the order listed here.
	Directories []string `json:"directories"`
	// Pattern is the glob matched against each directory.
	Pattern string `json:"pattern"`
	// HasHeader marks the inputs as header-first CSV files.
	HasHeader bool `json:"has_header"`
	// ContinueOnError keeps the run going past malformed rows instead of
	// aborting on the first one.
	ContinueOnError bool         `json:"continue_on_error"`
	Output          OutputConfig `json:"output"`
}

// OutputConfig configures the plain-text output sink. An empty Directory
// disables the sink entirely.
type OutputConfig struct {
	Directory string `json:"directory"`
	FileName  string `json:"file_name"`
	Mode      string `json:"mode"` // write_through or buffered
}

// Enabled reports whether an output sink should be created.
func (o OutputConfig) Enabled() bool {
	return o.Directory != ""
}

// DefaultConfig returns the default ingestion configuration.
func DefaultConfig() Config {
	return Config{
		Pattern:   "*.csv",
		HasHeader: true,
		Output: OutputConfig{
			Directory: "./output",
			FileName:  "events.txt",
			Mode:      "buffered",
		},
	}
}

// Load reads a JSON configuration file over the defaults, so omitted
// fields keep their default values.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.WrapConfig(err, "Config", "Load", "read config file")
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.WrapConfig(err, "Config", "Load", "parse config file")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if len(c.Directories) == 0 {
		return errors.WrapConfig(errors.ErrMissingConfig, "Config", "Validate",
			"at least one input directory is required")
	}
	for i, dir := range c.Directories {
		if dir == "" {
			return errors.WrapConfig(errors.ErrInvalidConfig, "Config", "Validate",
				fmt.Sprintf("directory %d is empty", i))
		}
	}
	if c.Pattern == "" {
		return errors.WrapConfig(errors.ErrMissingConfig, "Config", "Validate",
			"glob pattern is required")
	}

	if c.Output.Enabled() {
		if c.Output.FileName == "" {
			return errors.WrapConfig(errors.ErrMissingConfig, "Config", "Validate",
				"output file name is required when output is enabled")
		}
		if _, err := sink.ParseMode(c.Output.Mode); err != nil {
			return err
		}
	}
	return nil
}
