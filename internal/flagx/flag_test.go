package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	allowed := []string{"-d", "-l"}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "separate value",
			args: []string{"-d", "tracker.db", "seed", "--days", "10"},
			want: []string{"-d", "tracker.db"},
		},
		{
			name: "equals form",
			args: []string{"-l=debug", "-x=1"},
			want: []string{"-l=debug"},
		},
		{
			name: "order preserved",
			args: []string{"-l", "info", "-d=a.db", "-d", "b.db"},
			want: []string{"-l", "info", "-d=a.db", "-d", "b.db"},
		},
		{
			name: "unknown flags and positionals dropped",
			args: []string{"-x", "1", "version", "--days=3"},
			want: []string{},
		},
		{
			name: "value that looks like a flag is not consumed",
			args: []string{"-d", "-l", "warn"},
			want: []string{"-d", "-l", "warn"},
		},
		{
			name: "trailing flag without value",
			args: []string{"-d"},
			want: []string{"-d"},
		},
		{
			name: "nil input",
			args: nil,
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, allowed)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"-c", "a.json"}, "a.json"},
		{"long", []string{"-config", "b.json"}, "b.json"},
		{"double dash equals", []string{"--config=c.json", "-d", "x.db"}, "c.json"},
		{"absent", []string{"-d", "x.db"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JsonConfigFlags(tt.args))
		})
	}
}
