// Copyright: This file is part of boundcheck, released under https://github.com/korrel8r/boundcheck/blob/main/LICENSE

package boundcheck

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"runtime"

	"github.com/korrel8r/boundcheck/pkg/unique"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"
)

// LoadMode is the go/packages mode needed to scan a package.
const LoadMode = packages.NeedName | packages.NeedFiles | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo

// Load loads packages matching patterns and scans them concurrently.
//
// Packages that fail to load are reported as an error, no findings are returned.
// Findings from a package and its test variant are reported once.
func Load(ctx context.Context, opts Options, patterns ...string) ([]*Finding, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}
	conf := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
		Dir:     opts.Dir,
		Tests:   opts.Tests,
		ParseFile: func(fset *token.FileSet, filename string, src []byte) (*ast.File, error) {
			return parser.ParseFile(fset, filename, src, parser.ParseComments|parser.AllErrors)
		},
	}
	pkgs, err := packages.Load(conf, patterns...)
	if err != nil {
		return nil, err
	}
	log.V(1).Info("loaded packages", "patterns", patterns, "count", len(pkgs))
	var errs unique.Errors
	for _, p := range pkgs {
		for _, e := range p.Errors {
			errs.Add(fmt.Errorf("%v: %v", p.PkgPath, e))
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	results := make([][]*Finding, len(pkgs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range pkgs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Scan(p.Fset, p.Types, p.Syntax, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	findings := unique.NewList((*Finding).key)
	for _, r := range results {
		findings.Append(r...)
	}
	sortFindings(findings.List)
	return findings.List, nil
}

// Summary counts findings by category.
func Summary(findings []*Finding) map[Category]int {
	s := map[Category]int{}
	for _, f := range findings {
		s[f.Category]++
	}
	return s
}
