// Copyright: This file is part of boundcheck, released under https://github.com/korrel8r/boundcheck/blob/main/LICENSE

package bound

import (
	"fmt"
	"strings"
)

// Mode is the quantifier applied to a capability set.
type Mode int

const (
	// All requires every capability to be satisfied.
	All Mode = iota
	// Any requires at least one capability to be satisfied.
	Any
	// One requires exactly one capability to be satisfied.
	One
)

var modeNames = [...]string{All: "all", Any: "any", One: "one"}

// Modes lists the canonical mode names.
func Modes() []string { return modeNames[:] }

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Quantifier is the phrase used in diagnostics: "all of", "any of", "exactly one of".
func (m Mode) Quantifier() string {
	switch m {
	case Any:
		return "any of"
	case One:
		return "exactly one of"
	default:
		return "all of"
	}
}

// ParseMode parses a mode name. "exactly-one" and "exactly_one" are accepted for One.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "all":
		return All, nil
	case "any":
		return Any, nil
	case "one", "exactly-one", "exactly_one":
		return One, nil
	}
	return All, fmt.Errorf("invalid mode %q, expected one of %v", s, Modes())
}

func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *Mode) UnmarshalText(b []byte) (err error) {
	*m, err = ParseMode(string(b))
	return err
}
