// Copyright: This file is part of boundcheck, released under https://github.com/korrel8r/boundcheck/blob/main/LICENSE

// package must turns errors into panics for command code that recovers them in main.
package must

import "fmt"

// Must panics if err != nil.
// If format is provided, the panic value is fmt.Errorf(format, args...) wrapping nothing else.
func Must(err error, format ...any) {
	if err == nil {
		return
	}
	if len(format) > 0 {
		err = fmt.Errorf(format[0].(string), format[1:]...)
	}
	panic(err)
}

// Must1 calls Must(err), then returns v.
func Must1[T any](v T, err error) T { Must(err); return v }
