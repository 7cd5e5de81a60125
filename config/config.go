package config

import (
	"fmt"
	"io"

	"github.com/opendaylight/vtn-sub010/physical"
	"github.com/opendaylight/vtn-sub010/std/log"
	"github.com/opendaylight/vtn-sub010/std/utils/toolutils"
)

// Config represents the configuration of the decoder tools.
type Config struct {
	// Logging level
	LogLevel string `json:"log_level"`
	// Display names of controller types, keyed by canonical name
	VendorNames map[string]string `json:"vendor_names"`
	// Directory of the capture store; required by the capture commands
	StoreDir string `json:"store_dir"`

	logLevel log.Level
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:    "INFO",
		VendorNames: map[string]string{},
		logLevel:    log.LevelInfo,
	}
}

// Read decodes a YAML configuration on top of the defaults and validates it.
func Read(r io.Reader) (*Config, error) {
	c := DefaultConfig()
	if err := toolutils.DecodeYaml(c, r); err != nil {
		return nil, err
	}
	if err := c.Parse(); err != nil {
		return nil, err
	}
	return c, nil
}

// Parse validates the configuration and computes derived values.
func (c *Config) Parse() (err error) {
	if c.logLevel, err = log.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	seen := map[string]string{}
	for canonical, display := range c.VendorNames {
		if display == "" {
			return fmt.Errorf("vendor name for %s must not be empty", canonical)
		}
		if other, ok := seen[display]; ok {
			return fmt.Errorf("vendor name %q used for both %s and %s", display, other, canonical)
		}
		seen[display] = canonical
	}
	return nil
}

func (c *Config) Level() log.Level {
	return c.logLevel
}

func (c *Config) Vendors() physical.VendorNames {
	return physical.VendorNames(c.VendorNames)
}
