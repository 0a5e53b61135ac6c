package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitArgs(t *testing.T) {
	owned := []string{"-d", "-driver"}

	tests := []struct {
		name        string
		args        []string
		wantMatched []string
		wantRest    []string
	}{
		{
			name:        "separate value",
			args:        []string{"-d", "app.db", "createsuperuser"},
			wantMatched: []string{"-d", "app.db"},
			wantRest:    []string{"createsuperuser"},
		},
		{
			name:        "equals form",
			args:        []string{"createuser", "-driver=sqlite", "-email", "a@b.c"},
			wantMatched: []string{"-driver=sqlite"},
			wantRest:    []string{"createuser", "-email", "a@b.c"},
		},
		{
			name:        "owned flag followed by another flag keeps no value",
			args:        []string{"-d", "-driver", "pgx"},
			wantMatched: []string{"-d", "-driver", "pgx"},
			wantRest:    []string{},
		},
		{
			name:        "nothing owned",
			args:        []string{"migrate", "-x=1"},
			wantMatched: []string{},
			wantRest:    []string{"migrate", "-x=1"},
		},
		{
			name:        "empty",
			args:        nil,
			wantMatched: []string{},
			wantRest:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, rest := SplitArgs(tt.args, owned)
			assert.Equal(t, tt.wantMatched, matched)
			assert.Equal(t, tt.wantRest, rest)

			assert.Equal(t, tt.wantMatched, FilterArgs(tt.args, owned))
			assert.Equal(t, tt.wantRest, StripArgs(tt.args, owned))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"bin", "-c", "conf.json", "migrate"}, "conf.json"},
		{"long equals", []string{"bin", "migrate", "-config=alt.json"}, "alt.json"},
		{"absent", []string{"bin", "createsuperuser", "-email", "x@y.z"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			assert.Equal(t, tt.want, ConfigFileFlag())
		})
	}
}
