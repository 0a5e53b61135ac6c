// Package flagx lets several components share one command line: each parses
// only the flags it owns and hands the remainder on.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// SplitArgs partitions args into the arguments belonging to flags listed in
// owned (with their values) and everything else, preserving order.
//
// Both "-f value" and "-f=value" forms are recognized. A value is only
// consumed from the next argument if it does not itself look like a flag.
func SplitArgs(args []string, owned []string) (matched, rest []string) {
	set := make(map[string]struct{}, len(owned))
	for _, f := range owned {
		set[f] = struct{}{}
	}

	matched = make([]string, 0, len(args))
	rest = make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := set[name]; ok {
				matched = append(matched, arg)
			} else {
				rest = append(rest, arg)
			}
			continue
		}

		if _, ok := set[arg]; !ok {
			rest = append(rest, arg)
			continue
		}

		matched = append(matched, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			matched = append(matched, args[i+1])
			i++
		}
	}

	return matched, rest
}

// FilterArgs returns only the owned flags (and their values) from args.
func FilterArgs(args []string, owned []string) []string {
	matched, _ := SplitArgs(args, owned)
	return matched
}

// StripArgs returns args with the owned flags (and their values) removed.
func StripArgs(args []string, owned []string) []string {
	_, rest := SplitArgs(args, owned)
	return rest
}

// ConfigFileFlag returns the JSON config path given with -c or -config on the
// process command line, or "" when neither is present.
func ConfigFileFlag() string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(os.Args[1:], ConfigFileFlags))

	return path
}

// ConfigFileFlags lists the flags consumed by ConfigFileFlag.
var ConfigFileFlags = []string{"-c", "-config"}
