// Copyright: This file is part of boundcheck, released under https://github.com/korrel8r/boundcheck/blob/main/LICENSE

package config

import "github.com/korrel8r/boundcheck/pkg/bound"

// Config defines the configuration for boundcheck.
// Configuration files may be JSON or YAML.
type Config struct {
	// Prefix for directive comments, default "bound" for //bound:all.
	Prefix string `json:"prefix,omitempty"`

	// Tests includes _test.go files and test packages when loading.
	Tests bool `json:"tests,omitempty"`

	// Aliases are short names for lists of capabilities.
	// An alias may be used wherever a capability is expected,
	// in configured assertions and in directive comments.
	Aliases []Alias `json:"aliases,omitempty"`

	// Assertions are checked in addition to directives found in source.
	Assertions []Assertion `json:"assertions,omitempty"`

	// Include lists additional configuration files or URLs to include.
	Include []string `json:"include,omitempty"`
}

// Alias names a list of capabilities.
type Alias struct {
	// Name is used in place of the capability list. It may not contain '.' or brackets.
	Name string `json:"name"`
	// Capabilities are type expressions or other alias names.
	Capabilities []string `json:"capabilities"`
}

// Assertion is an out-of-source bound assertion.
type Assertion struct {
	// Package is the import path of the package whose scope resolves Type and Capabilities.
	Package string `json:"package"`
	// Mode is all, any or one. Default is all.
	Mode bound.Mode `json:"mode,omitempty"`
	// Type is the target type expression.
	Type string `json:"type"`
	// Capabilities are type expressions or alias names.
	Capabilities []string `json:"capabilities"`

	// Source identifies where the assertion was configured, set by Merge.
	Source string `json:"-"`
}
