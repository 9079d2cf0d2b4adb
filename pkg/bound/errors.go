// Copyright: This file is part of boundcheck, released under https://github.com/korrel8r/boundcheck/blob/main/LICENSE

package bound

import (
	"fmt"
	"strings"
)

// UnsatisfiedBoundError means a well-formed assertion does not hold.
type UnsatisfiedBoundError struct {
	Mode         Mode
	Target       string
	Capabilities []string
	Satisfied    []string // Satisfied capabilities, in listed order.
}

func (e *UnsatisfiedBoundError) Error() string {
	w := &strings.Builder{}
	fmt.Fprintf(w, "%v does not satisfy %v [%v]", e.Target, e.Mode.Quantifier(), strings.Join(e.Capabilities, ", "))
	switch e.Mode {
	case All:
		fmt.Fprintf(w, ": missing [%v]", strings.Join(e.missing(), ", "))
	case One:
		if len(e.Satisfied) == 0 {
			w.WriteString(": satisfies none")
		} else {
			fmt.Fprintf(w, ": satisfies [%v]", strings.Join(e.Satisfied, ", "))
		}
	}
	return w.String()
}

// missing lists capabilities not in Satisfied, allowing for duplicates.
func (e *UnsatisfiedBoundError) missing() []string {
	left := map[string]int{}
	for _, s := range e.Satisfied {
		left[s]++
	}
	var missing []string
	for _, c := range e.Capabilities {
		if left[c] > 0 {
			left[c]--
			continue
		}
		missing = append(missing, c)
	}
	return missing
}
