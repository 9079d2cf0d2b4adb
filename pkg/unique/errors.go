// Copyright: This file is part of boundcheck, released under https://github.com/korrel8r/boundcheck/blob/main/LICENSE

package unique

import "errors"

// Errors joins errors, dropping any whose message was already added.
// The zero value is ready to use.
type Errors struct {
	err  error
	seen Set[string]
}

// Err returns the joined errors, or nil.
func (e *Errors) Err() error { return e.err }

// Add err if non-nil and not a repeat. Returns true if added.
func (e *Errors) Add(err error) bool {
	if err == nil {
		return false
	}
	if e.seen == nil {
		e.seen = Set[string]{}
	}
	msg := err.Error()
	if e.seen.Has(msg) {
		return false
	}
	e.seen.Add(msg)
	e.err = errors.Join(e.err, err)
	return true
}
