// Copyright: This file is part of boundcheck, released under https://github.com/korrel8r/boundcheck/blob/main/LICENSE

// Package boundcheck finds bound assertions in type-checked Go packages and checks them.
//
// Assertions come from directive comments (see package directive) or from
// configuration (see package config). Type expressions in a directive are
// resolved in the innermost scope enclosing the comment, so the file's
// imports and any earlier local declarations are visible.
package boundcheck

import (
	"cmp"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"slices"

	"github.com/korrel8r/boundcheck/internal/pkg/logging"
	"github.com/korrel8r/boundcheck/pkg/bound"
	"github.com/korrel8r/boundcheck/pkg/config"
	"github.com/korrel8r/boundcheck/pkg/directive"
)

var log = logging.Log()

// Options control scanning.
type Options struct {
	// Prefix for directive comments, default directive.DefaultPrefix.
	Prefix string
	// Aliases maps alias names to capability expressions.
	Aliases map[string][]string
	// Assertions configured outside of source, applied to the package named in each.
	// An assertion with no package applies to every scanned package.
	Assertions []config.Assertion
	// SkipDirectives ignores directive comments, only Assertions are checked.
	SkipDirectives bool
	// Tests loads test files and test packages, used by Load.
	Tests bool
	// Dir is the directory for resolving package patterns, used by Load.
	Dir string
}

// NewOptions creates options from merged configuration.
func NewOptions(m *config.Merged) Options {
	return Options{Prefix: m.Prefix, Aliases: m.Aliases, Assertions: m.Assertions, Tests: m.Tests}
}

func (o Options) prefix() string {
	if o.Prefix == "" {
		return directive.DefaultPrefix
	}
	return o.Prefix
}

// Scan checks all directives in files, and configured assertions for pkg.
// Findings are sorted by position.
func Scan(fset *token.FileSet, pkg *types.Package, files []*ast.File, opts Options) []*Finding {
	var findings []*Finding
	for _, file := range files {
		if opts.SkipDirectives {
			break
		}
		for _, cg := range file.Comments {
			for _, c := range cg.List {
				if f := scanComment(fset, pkg, c, opts); f != nil {
					findings = append(findings, f)
				}
			}
		}
	}
	for _, a := range opts.Assertions {
		if a.Package == "" || a.Package == pkg.Path() {
			findings = append(findings, checkConfigured(fset, pkg, files, a, opts))
		}
	}
	sortFindings(findings)
	log.V(3).Info("scanned package", "package", pkg.Path(), "findings", len(findings))
	return findings
}

func scanComment(fset *token.FileSet, pkg *types.Package, c *ast.Comment, opts Options) *Finding {
	d, err := directive.Parse(opts.prefix(), c.Text)
	if errors.Is(err, directive.ErrNotDirective) {
		return nil
	}
	f := &Finding{Package: pkg.Path(), Directive: c.Text}
	f.setPos(fset, c.Pos())
	if err != nil {
		f.setResult(nil, err)
		return f
	}
	f.describe(d)
	a, err := resolve(fset, pkg, c.Pos(), d, opts.Aliases)
	if err != nil {
		f.setResult(nil, err)
		return f
	}
	f.setResult(bound.Check(a))
	log.V(4).Info("checked directive", "position", f.Position(), "directive", d.String(), "category", f.Category)
	return f
}

// checkConfigured resolves a configured assertion in the scope of each file in turn,
// using the first file where every expression resolves.
func checkConfigured(fset *token.FileSet, pkg *types.Package, files []*ast.File, ca config.Assertion, opts Options) *Finding {
	f := &Finding{Package: pkg.Path(), Source: ca.Source}
	d, err := directive.New(ca.Mode, ca.Type, config.Expand(opts.Aliases, ca.Capabilities)...)
	if err != nil {
		f.setResult(nil, err)
		return f
	}
	f.describe(d)
	f.Directive = d.Comment(opts.prefix())
	files = slices.SortedFunc(slices.Values(files), func(a, b *ast.File) int {
		return cmp.Compare(fset.Position(a.Package).Filename, fset.Position(b.Package).Filename)
	})
	var firstErr error
	for _, file := range files {
		a, err := resolve(fset, pkg, file.Package, d, nil)
		if err != nil {
			firstErr = cmp.Or(firstErr, err)
			continue
		}
		f.setPos(fset, file.Package)
		f.setResult(bound.Check(a))
		return f
	}
	if firstErr == nil {
		firstErr = fmt.Errorf("package %v has no files", pkg.Path())
	}
	f.setResult(nil, firstErr)
	if len(files) > 0 {
		f.setPos(fset, files[0].Package)
	}
	return f
}

func (f *Finding) describe(d *directive.Directive) {
	f.Mode = d.Mode.String()
	f.Target = d.Target
	f.Capabilities = d.Capabilities
}

// resolve evaluates directive expressions as types in the scope enclosing pos.
func resolve(fset *token.FileSet, pkg *types.Package, pos token.Pos, d *directive.Directive, aliases map[string][]string) (bound.Assertion, error) {
	a := bound.Assertion{Mode: d.Mode, Target: d.Target}
	var err error
	if a.TargetType, err = evalType(fset, pkg, pos, d.Target); err != nil {
		return a, err
	}
	for _, expr := range config.Expand(aliases, d.Capabilities) {
		t, err := evalType(fset, pkg, pos, expr)
		if err != nil {
			return a, err
		}
		a.Capabilities = append(a.Capabilities, bound.Capability{Expr: expr, Type: t})
	}
	return a, nil
}

func evalType(fset *token.FileSet, pkg *types.Package, pos token.Pos, expr string) (types.Type, error) {
	tv, err := types.Eval(fset, pkg, pos, expr)
	if err != nil {
		var te types.Error
		if errors.As(err, &te) { // Drop the position within the expression.
			err = errors.New(te.Msg)
		}
		return nil, fmt.Errorf("%v: %w", expr, err)
	}
	if !tv.IsType() {
		return nil, fmt.Errorf("%v is not a type", expr)
	}
	return tv.Type, nil
}

func sortFindings(findings []*Finding) {
	slices.SortStableFunc(findings, func(a, b *Finding) int {
		return cmp.Or(
			cmp.Compare(a.Source, b.Source),
			cmp.Compare(a.File, b.File),
			cmp.Compare(a.Line, b.Line),
			cmp.Compare(a.Column, b.Column),
		)
	})
}
