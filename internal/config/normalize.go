package config

import "strings"

// normalize expands path fields and trims string settings before validation.
func (c *Config) normalize() error {
	logDir, err := expandPath(c.Paths.LogDir)
	if err != nil {
		return err
	}
	c.Paths.LogDir = logDir

	c.Merge.Destination = strings.ToLower(strings.TrimSpace(c.Merge.Destination))
	c.Merge.SubfolderName = strings.TrimSpace(c.Merge.SubfolderName)
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	return nil
}
