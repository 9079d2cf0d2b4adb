// Copyright: This file is part of boundcheck, released under https://github.com/korrel8r/boundcheck/blob/main/LICENSE

package main

import (
	"fmt"
	"os"

	"github.com/korrel8r/boundcheck/internal/pkg/must"
	"github.com/korrel8r/boundcheck/internal/pkg/text"
	"github.com/korrel8r/boundcheck/pkg/boundcheck"
	"github.com/korrel8r/boundcheck/pkg/config"
	"github.com/korrel8r/boundcheck/pkg/directive"
	"github.com/spf13/cobra"
)

var (
	checkCmd = &cobra.Command{
		Use:   "check [PACKAGE...]",
		Short: "Check bound assertions in packages, default ./...",
		Run: func(cmd *cobra.Command, args []string) {
			opts := options()
			if cmd.Flags().Changed("tests") {
				opts.Tests = *testsFlag
			}
			report(must.Must1(boundcheck.Load(cmd.Context(), opts, args...)))
		},
	}
	testsFlag, allFlag, summaryFlag *bool

	assertCmd = &cobra.Command{
		Use:   "assert 'MODE TYPE: CAPABILITY, ...'",
		Short: "Check a single assertion in the scope of a package",
		Long: `Check a single assertion in the scope of a package.

MODE is all, any or one. TYPE and each CAPABILITY are Go type expressions,
resolved in the scope of a file in the package selected by --package, so
qualified names must use packages that file imports. For example:

	boundcheck assert --package bytes 'any *Buffer: io.ReaderFrom, io.ByteScanner'
`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			d := must.Must1(directive.ParseString(args[0]))
			opts := options()
			opts.SkipDirectives = true
			opts.Assertions = []config.Assertion{{
				Mode:         d.Mode,
				Type:         d.Target,
				Capabilities: d.Capabilities,
				Source:       "command line",
			}}
			report(must.Must1(boundcheck.Load(cmd.Context(), opts, *packageFlag)))
		},
	}
	packageFlag *string
)

func init() {
	testsFlag = checkCmd.Flags().Bool("tests", false, "Include test files, overrides configuration")
	summaryFlag = rootCmd.PersistentFlags().Bool("summary", false, "Print a count of findings by category to stderr")
	allFlag = rootCmd.PersistentFlags().Bool("all", false, "Print satisfied assertions as well as failures")
	packageFlag = assertCmd.Flags().StringP("package", "p", ".", "Package pattern for resolving type names")
	rootCmd.AddCommand(checkCmd, assertCmd)
}

// report prints findings and fails if any assertion failed.
func report(findings []*boundcheck.Finding) {
	p := newPrinter(os.Stdout)
	failed := 0
	for _, f := range findings {
		if f.Failed() {
			failed++
		}
		if f.Failed() || *allFlag {
			p.Print(f)
		}
	}
	p.Close()
	summary := boundcheck.Summary(findings)
	log.V(1).Info("checked", "summary", summary)
	if *summaryFlag {
		text.Summary(os.Stderr, summary)
	}
	if failed > 0 {
		must.Must(fmt.Errorf("%v of %v bound assertions failed", failed, len(findings)))
	}
}
