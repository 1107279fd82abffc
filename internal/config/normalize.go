package config

import "strings"

func (c *Config) normalize() error {
	if strings.TrimSpace(c.Encoder.Binary) == "" {
		c.Encoder.Binary = defaultCwebpBinary
	} else {
		c.Encoder.Binary = strings.TrimSpace(c.Encoder.Binary)
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}
