package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    func(c *Config)
		wantErr bool
	}{
		{
			name: "all flags",
			args: []string{
				"-d", "my.db", "-s", "secret", "-t", "2", "-u", "3", "-q", "10",
				"-l", "debug", "-f", "json", "-k", "key", "-p", "pass", "-b", "bucket",
				"-g", "eu-west-1", "-e", "http://endpoint",
			},
			want: func(c *Config) {
				c.DatabaseDSN = "my.db"
				c.SecretKey = "secret"
				c.SessionValidityDuration = 2 * time.Hour
				c.UpcomingDays = 3
				c.QueryTimeout = 10 * time.Second
				c.LogLevel = "debug"
				c.LogFormat = "json"
				c.S3AccessKey = "key"
				c.S3SecretKey = "pass"
				c.S3Bucket = "bucket"
				c.S3Region = "eu-west-1"
				c.S3BaseEndpoint = "http://endpoint"
			},
		},
		{
			name: "subcommand args are ignored",
			args: []string{"seed", "--days", "10", "-d", "seed.db"},
			want: func(c *Config) { c.DatabaseDSN = "seed.db" },
		},
		{
			name:    "bad int",
			args:    []string{"-u", "many"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := &Config{}
			got.LoadDefaults()

			err := parseFlags(got, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			want := &Config{}
			want.LoadDefaults()
			tt.want(want)
			assert.Empty(t, cmp.Diff(want, got))
		})
	}
}

func TestParseFlags_KeepsSubSecondTimeoutWhenFlagAbsent(t *testing.T) {
	c := &Config{QueryTimeout: 500 * time.Millisecond, SessionValidityDuration: 90 * time.Minute}

	require.NoError(t, parseFlags(c, []string{"-d", "x.db"}))

	assert.Equal(t, 500*time.Millisecond, c.QueryTimeout)
	assert.Equal(t, 90*time.Minute, c.SessionValidityDuration)
}
