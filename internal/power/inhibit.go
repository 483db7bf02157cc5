package power

import (
	"strings"
)

// systemdWhat returns the systemd-inhibit --what list for s, or "" when
// s requests nothing.
func systemdWhat(s State) string {
	var what []string
	if s.Has(DisplayRequired) {
		what = append(what, "idle")
	}
	if s.Has(SystemRequired) || s.Has(AwayModeRequired) {
		what = append(what, "sleep")
	}
	return strings.Join(what, ":")
}

// caffeinateFlags returns the caffeinate assertion flags for s, or nil
// when s requests nothing.
func caffeinateFlags(s State) []string {
	var flags []string
	if s.Has(DisplayRequired) {
		// -d: prevent display sleep
		flags = append(flags, "-d")
	}
	if s.Has(SystemRequired) || s.Has(AwayModeRequired) {
		// -i: prevent idle sleep
		flags = append(flags, "-i")
	}
	return flags
}
