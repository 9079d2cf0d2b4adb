// Copyright: This file is part of boundcheck, released under https://github.com/korrel8r/boundcheck/blob/main/LICENSE

// Package bound decides whether a Go type satisfies a set of capabilities.
//
// A capability is an interface type: an ordinary method-set interface, an
// instantiated generic interface such as From[string], or a constraint
// interface such as comparable or interface{ ~int | ~string }.
//
// An [Assertion] quantifies over its capabilities with a [Mode]:
// all of them, any of them, or exactly one of them.
// Nothing here creates a value of the target type; only the type checker's
// view of the type is consulted, so interface, slice, map and function types
// are checked as readily as named structs.
package bound

import (
	"errors"
	"fmt"
	"go/types"
)

// Capability is a constraint that a type may or may not satisfy.
type Capability struct {
	Expr string     // Expr is the source expression, used in messages.
	Type types.Type // Type is the resolved interface type.
}

func (c Capability) String() string {
	if c.Expr != "" {
		return c.Expr
	}
	return types.TypeString(c.Type, nil)
}

// Assertion declares that Target relates to Capabilities according to Mode.
type Assertion struct {
	Mode         Mode
	Target       string     // Target is the source expression for TargetType.
	TargetType   types.Type // TargetType is the type under test.
	Capabilities []Capability
}

func (a Assertion) target() string {
	if a.Target != "" {
		return a.Target
	}
	return types.TypeString(a.TargetType, nil)
}

// Result records which capabilities were satisfied.
type Result struct {
	Assertion Assertion
	Satisfied []bool // Satisfied[i] is true if Assertion.Capabilities[i] is satisfied.
}

// Count is the number of satisfied capabilities.
// Capabilities listed twice are counted twice.
func (r *Result) Count() int {
	n := 0
	for _, ok := range r.Satisfied {
		if ok {
			n++
		}
	}
	return n
}

// OK is true if the assertion holds. An unknown mode never holds.
func (r *Result) OK() bool {
	n := r.Count()
	switch r.Assertion.Mode {
	case All:
		return n == len(r.Satisfied)
	case Any:
		return n > 0
	case One:
		return n == 1
	default:
		return false
	}
}

// Names returns capability names with satisfied == want.
func (r *Result) Names(want bool) []string {
	var names []string
	for i, ok := range r.Satisfied {
		if ok == want {
			names = append(names, r.Assertion.Capabilities[i].String())
		}
	}
	return names
}

var (
	ErrNoCapabilities = errors.New("no capabilities")
	ErrNotInterface   = errors.New("not an interface")
	ErrGeneric        = errors.New("generic type requires instantiation")
	ErrConstraint     = errors.New("constraint interface cannot be a target")
	ErrMode           = errors.New("invalid mode")
)

// Check evaluates an assertion.
//
// If the relationship does not hold the returned error is an *UnsatisfiedBoundError
// and the Result is also returned. Any other error means the assertion is malformed.
func Check(a Assertion) (*Result, error) {
	if a.Mode < All || a.Mode > One {
		return nil, fmt.Errorf("%v: %w %v", a.target(), ErrMode, a.Mode)
	}
	if len(a.Capabilities) == 0 {
		return nil, fmt.Errorf("%v: %w", a.target(), ErrNoCapabilities)
	}
	if err := checkTarget(a.TargetType); err != nil {
		return nil, fmt.Errorf("%v: %w", a.target(), err)
	}
	r := &Result{Assertion: a, Satisfied: make([]bool, len(a.Capabilities))}
	for i, c := range a.Capabilities {
		ok, err := Satisfies(a.TargetType, c.Type)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", c, err)
		}
		r.Satisfied[i] = ok
	}
	if !r.OK() {
		return r, &UnsatisfiedBoundError{
			Mode:         a.Mode,
			Target:       a.target(),
			Capabilities: r.names(),
			Satisfied:    r.Names(true),
		}
	}
	return r, nil
}

func (r *Result) names() []string {
	names := make([]string, len(r.Assertion.Capabilities))
	for i, c := range r.Assertion.Capabilities {
		names[i] = c.String()
	}
	return names
}

// Satisfies reports whether target satisfies the capability interface.
//
// Method-set interfaces use [types.Implements], so the method set is exactly
// that of target as written: T and *T may differ.
// Constraint interfaces use [types.Satisfies].
func Satisfies(target, capability types.Type) (bool, error) {
	if err := checkTarget(target); err != nil {
		return false, err
	}
	if capability == nil || capability == types.Typ[types.Invalid] {
		return false, fmt.Errorf("invalid capability type")
	}
	if isGeneric(capability) {
		return false, ErrGeneric
	}
	iface, ok := capability.Underlying().(*types.Interface)
	if !ok {
		return false, fmt.Errorf("%v: %w", types.TypeString(capability, nil), ErrNotInterface)
	}
	if iface.IsMethodSet() {
		return types.Implements(target, iface), nil
	}
	return types.Satisfies(target, iface), nil
}

func checkTarget(t types.Type) error {
	if t == nil || t == types.Typ[types.Invalid] {
		return fmt.Errorf("invalid target type")
	}
	if isGeneric(t) {
		return ErrGeneric
	}
	if iface, ok := t.Underlying().(*types.Interface); ok && !iface.IsMethodSet() {
		return ErrConstraint
	}
	return nil
}

// isGeneric is true for a generic named type with no type arguments.
func isGeneric(t types.Type) bool {
	n, ok := types.Unalias(t).(*types.Named)
	return ok && n.TypeParams().Len() > 0 && n.TypeArgs().Len() == 0
}
