// Copyright: This file is part of boundcheck, released under https://github.com/korrel8r/boundcheck/blob/main/LICENSE

/*
Copyright © 2022 Alan Conway

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command boundcheck checks that Go types satisfy the interfaces asserted in
// //bound:all, //bound:any and //bound:one directive comments.
package main

import (
	"fmt"
	"os"

	"github.com/korrel8r/boundcheck/internal/pkg/enumflag"
	"github.com/korrel8r/boundcheck/internal/pkg/logging"
	"github.com/korrel8r/boundcheck/internal/pkg/must"
	"github.com/korrel8r/boundcheck/pkg/boundcheck"
	"github.com/korrel8r/boundcheck/pkg/build"
	"github.com/korrel8r/boundcheck/pkg/config"
	"github.com/spf13/cobra"
)

const configEnv = "BOUNDCHECK_CONFIG"

var (
	rootCmd = &cobra.Command{
		Use:   "boundcheck",
		Short: "Check bound assertions: types that must satisfy all, any or exactly one of a set of interfaces",
		Long: `Check bound assertions: types that must satisfy all, any or exactly one of a set of interfaces.

Assertions are comments, so they cost nothing in the compiled program:

	//bound:all  *File: io.Reader, io.Closer
	//bound:any  Buffer: io.ReaderFrom, io.WriterTo
	//bound:one  Mode: fmt.Stringer, error
`,
		Version: build.Version,
	}
	log = logging.Log()

	// Global Flags
	outputFlag    = enumflag.New("text", "text", "json", "json-pretty", "ndjson", "yaml", "table", "template")
	templateFlag  *string
	noHeadersFlag *bool
	verboseFlag   *int
	configFlag    *string
	prefixFlag    *string
	dirFlag       *string
	panicOnErr    *bool
)

func init() {
	pf := rootCmd.PersistentFlags()
	panicOnErr = pf.Bool("panic", false, "panic on error instead of exit code 1")
	pf.VarP(outputFlag, "output", "o", outputFlag.DocString("Output format"))
	templateFlag = pf.String("template", "{{.}}", "Go template for each finding with -o template, sprig functions available")
	noHeadersFlag = pf.Bool("no-headers", false, "Omit headers from -o table")
	verboseFlag = pf.IntP("verbose", "v", 0, "Verbosity for logging")
	configFlag = pf.StringP("config", "c", defaultConfig(), "Configuration file or URL")
	prefixFlag = pf.String("prefix", "", "Directive comment prefix, overrides configuration")
	dirFlag = pf.StringP("dir", "C", "", "Directory in which to resolve package patterns")

	cobra.OnInitialize(func() { logging.Init(*verboseFlag) }) // After flags are parsed
}

// defaultConfig uses the environment or a .boundcheck.yaml in the working directory.
func defaultConfig() string {
	if s := os.Getenv(configEnv); s != "" {
		return s
	}
	if _, err := os.Stat(".boundcheck.yaml"); err == nil {
		return ".boundcheck.yaml"
	}
	return ""
}

// options builds scan options from configuration and flags.
func options() boundcheck.Options {
	configs := config.Configs{}
	if *configFlag != "" {
		configs = must.Must1(config.Load(*configFlag))
	}
	m := must.Must1(configs.Merge())
	log.V(1).Info("configuration", "sources", len(configs), "prefix", m.Prefix, "assertions", len(m.Assertions))
	log.V(2).Info("merged configuration", "config", logging.JSON(m))
	opts := boundcheck.NewOptions(m)
	if *prefixFlag != "" {
		opts.Prefix = *prefixFlag
	}
	opts.Dir = *dirFlag
	return opts
}

func main() {
	// Code in this package panics with an error to exit.
	defer func() {
		r := recover()
		profiler.Stop()
		if r != nil {
			fmt.Fprintln(os.Stderr, r)
			if *panicOnErr {
				panic(r)
			}
			os.Exit(1)
		}
		os.Exit(0)
	}()
	must.Must(rootCmd.Execute())
}
