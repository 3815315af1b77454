// Package config handles configuration for the tracker, including defaults,
// a JSON overlay and command-line flags.
package config

import (
	"time"
)

// DefaultCategories is the category set used when none is configured.
var DefaultCategories = []string{"Critical", "Goals", "Quick Tasks", "Backlog"}

// Config holds runtime settings.
//
// Fields:
//   - DatabaseDSN: SQLite file path or DSN (":memory:" for throwaway runs).
//   - Categories: ordered category set; items must use one of them.
//   - HighlightCategory: category rendered in the alert colour on the calendar.
//   - UpcomingDays: horizon of the approaching-deadlines list.
//   - QueryTimeout: upper bound applied to every store operation.
//   - SecretKey / SessionValidityDuration: HS256 key and lifetime of saved sessions.
//   - LogLevel / LogFormat: slog level and handler ("text" or "json").
//   - S3*: object storage used by the export command; export is disabled
//     while S3Bucket is empty.
type Config struct {
	DatabaseDSN             string
	Categories              []string
	HighlightCategory       string
	UpcomingDays            int
	QueryTimeout            time.Duration
	SecretKey               string
	SessionValidityDuration time.Duration
	LogLevel                string
	LogFormat               string
	S3AccessKey             string
	S3SecretKey             string
	S3Bucket                string
	S3Region                string
	S3BaseEndpoint          string
}

// LoadDefaults populates Config with development defaults.
// NOTE: SecretKey must be overridden outside of local use.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "tracker.db"
	c.Categories = append([]string(nil), DefaultCategories...)
	c.HighlightCategory = "Critical"
	c.UpcomingDays = 7
	c.QueryTimeout = 5 * time.Second
	c.SecretKey = "secretKey"
	c.SessionValidityDuration = 7 * 24 * time.Hour
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.S3AccessKey = ""
	c.S3SecretKey = ""
	c.S3Bucket = ""
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = ""
}

// ExportEnabled reports whether an export bucket is configured.
func (c *Config) ExportEnabled() bool {
	return c.S3Bucket != ""
}

// LoadConfig builds a Config by applying defaults, then the JSON file named
// by -c/-config (if any), then flags. Later sources win. args are the
// program arguments without the binary name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
