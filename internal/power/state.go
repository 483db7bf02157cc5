package power

import "fmt"

// State is a thread execution state bit set, using the same bit values
// as the Windows ES_* flags.
type State uint32

const (
	// SystemRequired holds the system idle timer at zero.
	SystemRequired State = 0x00000001
	// DisplayRequired holds the display idle timer at zero.
	DisplayRequired State = 0x00000002
	// UserPresent is a legacy flag. It is never valid as input.
	UserPresent State = 0x00000004
	// AwayModeRequired enables away mode on platforms that support it.
	AwayModeRequired State = 0x00000040
	// Continuous keeps a request in effect until the next call replaces it.
	Continuous State = 0x80000000

	// Baseline is "no request from this process".
	Baseline = Continuous
)

// installable is every bit that may be forwarded to a platform.
const installable = Continuous | SystemRequired | DisplayRequired | AwayModeRequired

// Unrecognized is the label for any state Describe does not know.
const Unrecognized = "Unrecognized"

// Has reports whether every bit of flag is set in s.
func (s State) Has(flag State) bool {
	return s&flag == flag
}

// String returns the Describe label.
func (s State) String() string {
	return Describe(s)
}

// Hex renders the raw value, e.g. 0x80000001.
func (s State) Hex() string {
	return fmt.Sprintf("0x%08x", uint32(s))
}

// Describe returns a stable label for s, or Unrecognized.
func Describe(s State) string {
	switch s {
	case Continuous:
		return "Continuous"
	case SystemRequired:
		return "SystemRequired"
	case DisplayRequired:
		return "DisplayRequired"
	case Continuous | SystemRequired:
		return "Continuous|SystemRequired"
	case Continuous | DisplayRequired:
		return "Continuous|DisplayRequired"
	case Continuous | SystemRequired | DisplayRequired:
		return "Continuous|SystemRequired|DisplayRequired"
	}
	return Unrecognized
}

// Intent is what the caller asked for.
type Intent int

const (
	// KeepSystemAwake prevents sleep but lets the display turn off.
	KeepSystemAwake Intent = iota
	// KeepSystemAndDisplayAwake prevents sleep and keeps the display on.
	KeepSystemAndDisplayAwake
)

func (i Intent) String() string {
	if i == KeepSystemAndDisplayAwake {
		return "display"
	}
	return "system"
}

// Resolve maps an intent to the state to install. The result always
// carries Continuous and SystemRequired.
func Resolve(i Intent) State {
	s := Continuous | SystemRequired
	if i == KeepSystemAndDisplayAwake {
		s |= DisplayRequired
	}
	return s
}
