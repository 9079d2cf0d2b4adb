// Copyright: This file is part of boundcheck, released under https://github.com/korrel8r/boundcheck/blob/main/LICENSE

package boundcheck

import (
	"errors"
	"fmt"
	"go/token"

	"github.com/korrel8r/boundcheck/pkg/bound"
)

// Category classifies a finding.
type Category string

const (
	Satisfied   Category = "satisfied"   // The assertion holds.
	Unsatisfied Category = "unsatisfied" // The assertion is well formed but does not hold.
	Invalid     Category = "invalid"     // The assertion could not be parsed or resolved.
)

// Finding is the outcome of checking one assertion.
type Finding struct {
	Category     Category `json:"category"`
	File         string   `json:"file,omitempty"`
	Line         int      `json:"line,omitempty"`
	Column       int      `json:"column,omitempty"`
	Source       string   `json:"source,omitempty"` // Source is set for configured assertions.
	Package      string   `json:"package"`
	Directive    string   `json:"directive,omitempty"`
	Mode         string   `json:"mode,omitempty"`
	Target       string   `json:"target,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
	Satisfied    []string `json:"satisfied,omitempty"`
	Message      string   `json:"message,omitempty"`

	pos token.Pos
	err error
}

// Failed is true unless the assertion holds.
func (f *Finding) Failed() bool { return f.Category != Satisfied }

// Pos is the position of the directive, or of the package clause that resolved a configured assertion.
func (f *Finding) Pos() token.Pos { return f.pos }

// Err is nil for satisfied findings.
// Unsatisfied findings wrap a *bound.UnsatisfiedBoundError.
func (f *Finding) Err() error { return f.err }

// Position formats file:line:column, or the configuration source.
func (f *Finding) Position() string {
	if f.Source != "" {
		return f.Source
	}
	return token.Position{Filename: f.File, Line: f.Line, Column: f.Column}.String()
}

func (f *Finding) String() string {
	if f.Message != "" {
		return fmt.Sprintf("%v: %v", f.Position(), f.Message)
	}
	return fmt.Sprintf("%v: %v: %v", f.Position(), f.Category, f.Directive)
}

func (f *Finding) setPos(fset *token.FileSet, pos token.Pos) {
	f.pos = pos
	if pos.IsValid() {
		p := fset.Position(pos)
		f.File, f.Line, f.Column = p.Filename, p.Line, p.Column
	}
}

func (f *Finding) setResult(r *bound.Result, err error) {
	if r != nil {
		f.Satisfied = r.Names(true)
	}
	f.err = err
	var ue *bound.UnsatisfiedBoundError
	switch {
	case err == nil:
		f.Category = Satisfied
	case errors.As(err, &ue):
		f.Category = Unsatisfied
		f.Message = err.Error()
	default:
		f.Category = Invalid
		f.Message = fmt.Sprintf("invalid bound assertion: %v", err)
	}
}

// key identifies the same assertion seen through different variants of one package.
// A test variant has the same package path as the package it extends.
func (f *Finding) key() string {
	return fmt.Sprintf("%v|%v|%v|%v", f.Package, f.Position(), f.Directive, f.Category)
}
