// Copyright: This file is part of boundcheck, released under https://github.com/korrel8r/boundcheck/blob/main/LICENSE

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/davecgh/go-spew/spew"
	"github.com/korrel8r/boundcheck/internal/pkg/must"
	"github.com/korrel8r/boundcheck/internal/pkg/text"
	"github.com/korrel8r/boundcheck/pkg/boundcheck"
	"sigs.k8s.io/yaml"
)

type printer interface {
	Print(*boundcheck.Finding)
	Close()
}

type textPrinter struct{ io.Writer }

func (p textPrinter) Print(f *boundcheck.Finding) { fmt.Fprintln(p, f) }
func (p textPrinter) Close()                      {}

type jsonPrinter struct {
	appender
	*json.Encoder
}

func (p *jsonPrinter) Close() { _ = p.Encode(p.list()) }

type ndJSONPrinter struct{ *json.Encoder }

func (p ndJSONPrinter) Print(f *boundcheck.Finding) { _ = p.Encode(f) }
func (p ndJSONPrinter) Close()                      {}

type yamlPrinter struct {
	io.Writer
	appender
}

func (p *yamlPrinter) Close() { b, _ := yaml.Marshal(p.list()); _, _ = p.Write(b) }

type tablePrinter struct {
	io.Writer
	appender
}

func (p *tablePrinter) Close() { text.Table(p.Writer, p.list(), !*noHeadersFlag) }

type templatePrinter struct {
	io.Writer
	*template.Template
}

func (p templatePrinter) Print(f *boundcheck.Finding) {
	must.Must(p.Execute(p.Writer, f))
	fmt.Fprintln(p.Writer)
}
func (p templatePrinter) Close() {}

func newTemplate(text string) (*template.Template, error) {
	funcs := sprig.TxtFuncMap()
	funcs["dump"] = spew.Sdump
	return template.New("finding").Funcs(funcs).Parse(text)
}

func newPrinter(w io.Writer) printer {
	switch outputFlag.String() {
	case "text":
		return textPrinter{Writer: w}

	case "json":
		return &jsonPrinter{Encoder: json.NewEncoder(w)}

	case "json-pretty":
		p := &jsonPrinter{Encoder: json.NewEncoder(w)}
		p.SetIndent("", "  ")
		return p

	case "ndjson":
		return ndJSONPrinter{json.NewEncoder(w)}

	case "yaml":
		return &yamlPrinter{Writer: w}

	case "table":
		return &tablePrinter{Writer: w}

	case "template":
		return templatePrinter{Writer: w, Template: must.Must1(newTemplate(*templateFlag))}

	default:
		must.Must(fmt.Errorf("invalid output type: %v", outputFlag))
		return nil
	}
}

type appender []*boundcheck.Finding

func (a *appender) Print(f *boundcheck.Finding) { *a = append(*a, f) }

// list is never nil, so an empty result prints as [] not null.
func (a *appender) list() []*boundcheck.Finding {
	if *a == nil {
		return []*boundcheck.Finding{}
	}
	return *a
}
