// Copyright: This file is part of boundcheck, released under https://github.com/korrel8r/boundcheck/blob/main/LICENSE

// Package enumflag is a flag value restricted to a list of allowed strings.
// Implements standard flag.Value and cobra pflag.Value
package enumflag

import (
	"fmt"
	"slices"
	"strings"
)

type Value struct {
	Value   string
	Allowed []string
}

// New returns a Value with a default, allowed values are listed in the order given.
func New(value string, allowed ...string) *Value {
	return &Value{Allowed: allowed, Value: value}
}

func (v *Value) String() string { return v.Value }

func (v *Value) Set(x string) error {
	if !slices.Contains(v.Allowed, x) {
		return fmt.Errorf("expected one of: %v", strings.Join(v.Allowed, ", "))
	}
	v.Value = x
	return nil
}

func (v *Value) Type() string { return strings.Join(v.Allowed, "|") }

// DocString is a flag usage string listing allowed values.
func (v *Value) DocString(msg string) string {
	if msg == "" {
		return fmt.Sprintf("One of %v", strings.Join(v.Allowed, ", "))
	}
	return fmt.Sprintf("%v: one of %v", msg, strings.Join(v.Allowed, ", "))
}
