package bootstrap

import (
	"errors"
	"fmt"
	"strings"
)

// command line splitting: known flags go to the config layer, everything else
// is a query word. words like "-draft" are NOT-prefixed query terms, not flags.

// Invocation is the command line split into flags and query words.
type Invocation struct {
	FlagArgs    []string
	QueryWords  []string
	ShowVersion bool
	ShowHelp    bool
}

// Query joins the query words with single spaces.
func (inv Invocation) Query() string {
	return strings.Join(inv.QueryWords, " ")
}

// ErrMissingFlagValue is returned when a value flag ends the command line.
var ErrMissingFlagValue = errors.New("missing flag value")

// valueFlags take a value either as --flag=value or as the next argument.
var valueFlags = map[string]bool{
	"--log-level": true,
	"--dir":       true,
	"--style":     true,
}

// ParseArgs splits args (without the program name) into known flags and query words.
func ParseArgs(args []string) (Invocation, error) {
	var inv Invocation

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			inv.QueryWords = append(inv.QueryWords, args[i+1:]...)
			break
		}

		switch {
		case arg == "-v" || arg == "--version":
			inv.ShowVersion = true
			continue
		case arg == "-h" || arg == "--help":
			inv.ShowHelp = true
			continue
		case arg == "--include-completed" || strings.HasPrefix(arg, "--include-completed="):
			inv.FlagArgs = append(inv.FlagArgs, arg)
			continue
		}

		name, _, hasValue := strings.Cut(arg, "=")
		if valueFlags[name] {
			if hasValue {
				inv.FlagArgs = append(inv.FlagArgs, arg)
				continue
			}
			if i+1 >= len(args) {
				return Invocation{}, fmt.Errorf("%w: %s", ErrMissingFlagValue, arg)
			}
			inv.FlagArgs = append(inv.FlagArgs, arg, args[i+1])
			i++
			continue
		}

		inv.QueryWords = append(inv.QueryWords, arg)
	}

	return inv, nil
}
