package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMerge(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateMerge() error {
	if c.Merge.Threshold <= 0 || c.Merge.Threshold > 1 {
		return errors.New("merge.threshold must be greater than 0 and at most 1")
	}
	switch c.Merge.Destination {
	case DestinationSubfolder:
		if c.Merge.SubfolderName == "" {
			return errors.New("merge.subfolder_name must be set when merge.destination is \"subfolder\"")
		}
		if strings.ContainsAny(c.Merge.SubfolderName, `/\`) {
			return errors.New("merge.subfolder_name must be a bare directory name")
		}
	case DestinationSource:
	default:
		return fmt.Errorf("merge.destination must be %q or %q", DestinationSubfolder, DestinationSource)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error", "":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
