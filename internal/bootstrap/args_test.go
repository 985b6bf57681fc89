package bootstrap

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantFlags []string
		wantQuery string
		version   bool
		help      bool
	}{
		{
			name:      "plain words",
			args:      []string{"rent", "OR", "milk"},
			wantQuery: "rent OR milk",
		},
		{
			name:      "NOT prefix stays a query word",
			args:      []string{"rent", "-draft"},
			wantQuery: "rent -draft",
		},
		{
			name:      "value flag with separate value",
			args:      []string{"--log-level", "debug", "rent"},
			wantFlags: []string{"--log-level", "debug"},
			wantQuery: "rent",
		},
		{
			name:      "value flag with equals",
			args:      []string{"--dir=/tmp/tasks", "amount:>5"},
			wantFlags: []string{"--dir=/tmp/tasks"},
			wantQuery: "amount:>5",
		},
		{
			name:      "bool flag",
			args:      []string{"--include-completed=false", "taxes"},
			wantFlags: []string{"--include-completed=false"},
			wantQuery: "taxes",
		},
		{
			name:      "double dash ends flags",
			args:      []string{"--style", "notty", "--", "--dir", "-v"},
			wantFlags: []string{"--style", "notty"},
			wantQuery: "--dir -v",
		},
		{
			name:    "version",
			args:    []string{"--version"},
			version: true,
		},
		{
			name:    "short version",
			args:    []string{"-v"},
			version: true,
		},
		{
			name: "help",
			args: []string{"-h"},
			help: true,
		},
		{
			name: "nothing",
			args: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := ParseArgs(tt.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(inv.FlagArgs, tt.wantFlags) {
				t.Errorf("FlagArgs = %q, want %q", inv.FlagArgs, tt.wantFlags)
			}
			if got := inv.Query(); got != tt.wantQuery {
				t.Errorf("Query() = %q, want %q", got, tt.wantQuery)
			}
			if inv.ShowVersion != tt.version {
				t.Errorf("ShowVersion = %v, want %v", inv.ShowVersion, tt.version)
			}
			if inv.ShowHelp != tt.help {
				t.Errorf("ShowHelp = %v, want %v", inv.ShowHelp, tt.help)
			}
		})
	}
}

func TestParseArgsMissingValue(t *testing.T) {
	_, err := ParseArgs([]string{"rent", "--dir"})
	if !errors.Is(err, ErrMissingFlagValue) {
		t.Fatalf("expected ErrMissingFlagValue, got %v", err)
	}
}
