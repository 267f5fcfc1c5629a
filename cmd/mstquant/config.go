package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the TOML configuration of a run. Command-line flags override
// the values read from file.
//
//	clusters = 16
//	workers  = 4
//
//	[logging]
//	logfile      = "/var/log/mstquant.log"
//	max_log_size = 100
//	max_log_age  = 7
//
//	[metrics]
//	textfile = "/var/lib/node_exporter/mstquant.prom"
type Config struct {
	Clusters int
	Workers  int
	Logging  LogConfig
	Metrics  MetricsConfig
}

// MetricsConfig names the Prometheus text file written after a run.
// An empty Textfile disables the dump.
type MetricsConfig struct {
	Textfile string
}

// DefaultConfig returns the settings used when no file or flag says otherwise.
func DefaultConfig() Config {
	return Config{
		Clusters: 16,
		Workers:  1,
	}
}

// LoadConfig decodes the TOML file at filename over DefaultConfig.
func LoadConfig(filename string) (Config, error) {
	c := DefaultConfig()
	if filename == "" {
		return c, nil
	}
	if _, err := toml.DecodeFile(filename, &c); err != nil {
		return c, fmt.Errorf("could not decode TOML config %q: %w", filename, err)
	}

	return c, nil
}

// Validate rejects settings the pipeline cannot run with.
func (c Config) Validate() error {
	if c.Clusters < 1 {
		return fmt.Errorf("clusters must be at least 1, got %d", c.Clusters)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}

	return nil
}
