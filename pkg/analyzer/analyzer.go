// Copyright: This file is part of boundcheck, released under https://github.com/korrel8r/boundcheck/blob/main/LICENSE

// Package analyzer provides boundcheck as a [analysis.Analyzer].
//
// It can run under go vet, gopls, golangci-lint or any multichecker.
// Failed and malformed assertions are reported as diagnostics with category
// "unsatisfied" or "invalid"; satisfied assertions are only returned in the
// analyzer result.
package analyzer

import (
	"reflect"
	"sync"

	"github.com/korrel8r/boundcheck/pkg/boundcheck"
	"github.com/korrel8r/boundcheck/pkg/config"
	"github.com/korrel8r/boundcheck/pkg/directive"
	"golang.org/x/tools/go/analysis"
)

const doc = `check bound assertion directives

Directive comments assert that a type satisfies all, any, or exactly one of
a list of interfaces:

	//bound:all  *File: io.Reader, io.Closer
	//bound:any  Buffer: io.ReaderFrom, io.WriterTo
	//bound:one  Mode: fmt.Stringer, error

The directive is a comment, so it has no effect on the compiled program.
A diagnostic is reported for each assertion that does not hold,
and for each directive that cannot be parsed or resolved.`

// Analyzer reports unsatisfied bound assertions.
var Analyzer = New()

// New creates an analyzer with its own flags.
func New() *analysis.Analyzer {
	r := &runner{}
	a := &analysis.Analyzer{
		Name:       "boundcheck",
		Doc:        doc,
		URL:        "https://pkg.go.dev/github.com/korrel8r/boundcheck/pkg/analyzer",
		Run:        r.run,
		ResultType: reflect.TypeOf([]*boundcheck.Finding(nil)),
	}
	a.Flags.StringVar(&r.prefix, "prefix", "", "directive comment prefix (default \""+directive.DefaultPrefix+"\")")
	a.Flags.StringVar(&r.config, "config", "", "configuration file or URL")
	return a
}

type runner struct {
	prefix, config string

	once sync.Once
	opts boundcheck.Options
	err  error
}

// options loads configuration once, the flags are fixed before the first run.
func (r *runner) options() (boundcheck.Options, error) {
	r.once.Do(func() {
		if r.config != "" {
			var configs config.Configs
			if configs, r.err = config.Load(r.config); r.err != nil {
				return
			}
			var m *config.Merged
			if m, r.err = configs.Merge(); r.err != nil {
				return
			}
			r.opts = boundcheck.NewOptions(m)
		}
		if r.prefix != "" {
			r.opts.Prefix = r.prefix
		}
	})
	return r.opts, r.err
}

func (r *runner) run(pass *analysis.Pass) (any, error) {
	opts, err := r.options()
	if err != nil {
		return nil, err
	}
	findings := boundcheck.Scan(pass.Fset, pass.Pkg, pass.Files, opts)
	for _, f := range findings {
		if f.Failed() {
			pass.Report(analysis.Diagnostic{
				Pos:      f.Pos(),
				Category: string(f.Category),
				Message:  message(f),
			})
		}
	}
	return findings, nil
}

func message(f *boundcheck.Finding) string {
	if f.Source != "" {
		return f.Source + ": " + f.Message
	}
	return f.Message
}
