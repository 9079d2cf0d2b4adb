// Copyright: This file is part of boundcheck, released under https://github.com/korrel8r/boundcheck/blob/main/LICENSE

// Command boundvet runs the boundcheck analyzer as a standalone vet tool.
//
//	go vet -vettool=$(which boundvet) ./...
package main

import (
	"github.com/korrel8r/boundcheck/pkg/analyzer"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() { singlechecker.Main(analyzer.Analyzer) }
