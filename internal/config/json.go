package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/dailytracker/internal/flagx"
	"github.com/dmitrijs2005/dailytracker/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations
// accept both "90s"-style strings and integer nanoseconds.
type JsonConfig struct {
	DatabaseDSN             string         `json:"database_dsn"`
	Categories              []string       `json:"categories"`
	HighlightCategory       string         `json:"highlight_category"`
	UpcomingDays            int            `json:"upcoming_days"`
	QueryTimeout            timex.Duration `json:"query_timeout"`
	SecretKey               string         `json:"secret_key"`
	SessionValidityDuration timex.Duration `json:"session_validity_duration"`
	LogLevel                string         `json:"log_level"`
	LogFormat               string         `json:"log_format"`
	S3AccessKey             string         `json:"s3_access_key"`
	S3SecretKey             string         `json:"s3_secret_key"`
	S3Bucket                string         `json:"s3_bucket"`
	S3Region                string         `json:"s3_region"`
	S3BaseEndpoint          string         `json:"s3_base_endpoint"`
}

// parseJson overlays values from the JSON file passed with -c/-config.
// Keys missing from the file keep their current value.
func parseJson(config *Config, args []string) error {
	path := flagx.JsonConfigFlags(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&config.DatabaseDSN, c.DatabaseDSN)
	if len(c.Categories) > 0 {
		config.Categories = c.Categories
	}
	setString(&config.HighlightCategory, c.HighlightCategory)
	if c.UpcomingDays > 0 {
		config.UpcomingDays = c.UpcomingDays
	}
	if c.QueryTimeout.Duration > 0 {
		config.QueryTimeout = c.QueryTimeout.Duration
	}
	setString(&config.SecretKey, c.SecretKey)
	if c.SessionValidityDuration.Duration > 0 {
		config.SessionValidityDuration = c.SessionValidityDuration.Duration
	}
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogFormat, c.LogFormat)
	setString(&config.S3AccessKey, c.S3AccessKey)
	setString(&config.S3SecretKey, c.S3SecretKey)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
