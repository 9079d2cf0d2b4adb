// Copyright: This file is part of boundcheck, released under https://github.com/korrel8r/boundcheck/blob/main/LICENSE

// package text prints findings as aligned text tables for the command line.
package text

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/korrel8r/boundcheck/pkg/boundcheck"
)

func WriteString(print func(io.Writer)) string {
	w := &strings.Builder{}
	print(w)
	return w.String()
}

func newTabWriter(w io.Writer) *tabwriter.Writer { return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) }

// Table prints one finding per row, with an optional header.
func Table(w io.Writer, findings []*boundcheck.Finding, header bool) {
	tw := newTabWriter(w)
	defer func() { _ = tw.Flush() }()
	if header {
		fmt.Fprintln(tw, "POSITION\tCATEGORY\tASSERTION\tMESSAGE")
	}
	for _, f := range findings {
		assertion := f.Directive
		if f.Mode != "" {
			assertion = fmt.Sprintf("%v %v: %v", f.Mode, f.Target, strings.Join(f.Capabilities, ", "))
		}
		fmt.Fprintf(tw, "%v\t%v\t%v\t%v\n", f.Position(), f.Category, assertion, f.Message)
	}
}

// Summary prints the count of findings in each category, in a fixed order.
func Summary(w io.Writer, summary map[boundcheck.Category]int) {
	tw := newTabWriter(w)
	defer func() { _ = tw.Flush() }()
	for _, c := range []boundcheck.Category{boundcheck.Satisfied, boundcheck.Unsatisfied, boundcheck.Invalid} {
		fmt.Fprintf(tw, "%v\t%v\n", c, summary[c])
	}
}
