package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/dailytracker/internal/flagx"
)

var knownFlags = []string{"-d", "-s", "-t", "-u", "-q", "-l", "-f", "-k", "-p", "-b", "-g", "-e"}

// parseFlags overlays Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   database DSN
//	-s string   session signing key
//	-t int      session validity, hours
//	-u int      approaching-deadlines horizon, days
//	-q int      store operation timeout, seconds
//	-l string   log level (debug, info, warn, error)
//	-f string   log format (text, json)
//	-k string   S3 access key
//	-p string   S3 secret key
//	-b string   S3 bucket for exports
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g. "http://127.0.0.1:9000")
//
// Arguments not listed above are filtered out first so cobra subcommands
// and their flags can share the same command line.
func parseFlags(config *Config, args []string) error {
	fs := flag.NewFlagSet("tracker", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "session signing key")
	sessionHours := fs.Int("t", int(config.SessionValidityDuration.Hours()), "session validity (in hours)")
	fs.IntVar(&config.UpcomingDays, "u", config.UpcomingDays, "approaching deadlines horizon (in days)")
	timeoutSeconds := fs.Int("q", int(config.QueryTimeout.Seconds()), "store operation timeout (in seconds)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format")
	fs.StringVar(&config.S3AccessKey, "k", config.S3AccessKey, "S3 access key")
	fs.StringVar(&config.S3SecretKey, "p", config.S3SecretKey, "S3 secret key")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return err
	}

	// Durations are only replaced when given explicitly, so sub-unit values
	// from JSON survive the int conversion above.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.SessionValidityDuration = time.Duration(*sessionHours) * time.Hour
		case "q":
			config.QueryTimeout = time.Duration(*timeoutSeconds) * time.Second
		}
	})
	return nil
}
