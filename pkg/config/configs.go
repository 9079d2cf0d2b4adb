// Copyright: This file is part of boundcheck, released under https://github.com/korrel8r/boundcheck/blob/main/LICENSE

// Package config loads boundcheck configuration files.
package config

import (
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/korrel8r/boundcheck/internal/pkg/logging"
	"github.com/korrel8r/boundcheck/pkg/directive"
	"sigs.k8s.io/yaml"
)

var log = logging.Log()

// Configs is a map of config files by their source file/url.
type Configs map[string]*Config

// Load loads all configurations from a file or URL.
//
// If a configuration has an Include section, also loads all referenced configurations.
// Relative paths in Include are relative to the location of file containing them.
func Load(fileOrURL string) (Configs, error) {
	configs := Configs{}
	return configs, load(fileOrURL, configs)
}

func load(source string, configs Configs) (err error) {
	if _, ok := configs[source]; ok {
		return nil // Already loaded
	}
	b, err := readFileOrURL(source)
	if err != nil {
		return fmt.Errorf("%v: %w", source, err)
	}
	c := &Config{}
	if err := yaml.UnmarshalStrict(b, c); err != nil {
		return fmt.Errorf("%v: %w", source, err)
	}
	configs[source] = c
	log.V(2).Info("loaded configuration", "source", source, "assertions", len(c.Assertions), "include", c.Include)
	for _, s := range c.Include {
		if err := load(resolve(source, s), configs); err != nil {
			return err
		}
	}
	return nil
}

// Merged is the combined result of a set of configurations.
type Merged struct {
	Prefix     string
	Tests      bool
	Aliases    map[string][]string // Aliases fully expanded to type expressions.
	Assertions []Assertion         // Assertions with aliases expanded.
}

// Merge validates and combines configurations, in order of source name.
func (configs Configs) Merge() (*Merged, error) {
	m := &Merged{Aliases: map[string][]string{}}
	raw := map[string][]string{}
	sources := slices.Sorted(maps.Keys(configs))
	for _, source := range sources {
		c := configs[source]
		if c.Prefix != "" {
			if m.Prefix != "" && m.Prefix != c.Prefix {
				return nil, fmt.Errorf("%v: prefix %q conflicts with %q", source, c.Prefix, m.Prefix)
			}
			m.Prefix = c.Prefix
		}
		m.Tests = m.Tests || c.Tests
		for _, a := range c.Aliases {
			if a.Name == "" || strings.ContainsAny(a.Name, ".[]() ") {
				return nil, fmt.Errorf("%v: invalid alias name %q", source, a.Name)
			}
			if len(a.Capabilities) == 0 {
				return nil, fmt.Errorf("%v: alias %q: no capabilities", source, a.Name)
			}
			if _, ok := raw[a.Name]; ok {
				return nil, fmt.Errorf("%v: alias %q: duplicate alias name", source, a.Name)
			}
			raw[a.Name] = a.Capabilities
		}
	}
	if m.Prefix == "" {
		m.Prefix = directive.DefaultPrefix
	}
	for name := range raw {
		expanded, err := expand(raw, name, nil)
		if err != nil {
			return nil, err
		}
		m.Aliases[name] = expanded
	}
	for _, source := range sources {
		for i, a := range configs[source].Assertions {
			a.Source = fmt.Sprintf("%v: assertions[%v]", source, i)
			if a.Package == "" {
				return nil, fmt.Errorf("%v: no package", a.Source)
			}
			a.Capabilities = Expand(m.Aliases, a.Capabilities)
			if _, err := directive.New(a.Mode, a.Type, a.Capabilities...); err != nil {
				return nil, fmt.Errorf("%v: %w", a.Source, err)
			}
			m.Assertions = append(m.Assertions, a)
		}
	}
	return m, nil
}

// Expand replaces alias names in capabilities with the capabilities they stand for.
func Expand(aliases map[string][]string, capabilities []string) []string {
	var result []string
	for _, c := range capabilities {
		if caps, ok := aliases[c]; ok {
			result = append(result, caps...)
		} else {
			result = append(result, c)
		}
	}
	return result
}

func expand(raw map[string][]string, name string, path []string) ([]string, error) {
	if slices.Contains(path, name) {
		return nil, fmt.Errorf("alias %q: cycle %v", name, strings.Join(append(path, name), " -> "))
	}
	var result []string
	for _, c := range raw[name] {
		if _, ok := raw[c]; ok {
			more, err := expand(raw, c, append(path, name))
			if err != nil {
				return nil, err
			}
			result = append(result, more...)
		} else {
			result = append(result, c)
		}
	}
	return result, nil
}

func readFileOrURL(source string) ([]byte, error) {
	u, err := url.Parse(source)
	if err != nil {
		return nil, err
	}
	if u.IsAbs() && u.Scheme != "file" {
		resp, err := http.Get(u.String())
		if err != nil {
			return nil, err
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode/100 != 2 {
			return nil, fmt.Errorf("%v", resp.Status)
		}
		return io.ReadAll(resp.Body)
	}
	return os.ReadFile(u.Path)
}

func resolve(base, ref string) string {
	if filepath.IsAbs(ref) {
		return ref
	}
	if r, err := url.Parse(ref); err == nil {
		if r.IsAbs() {
			return ref
		}
		if b, err := url.Parse(base); err == nil && b.IsAbs() {
			return b.ResolveReference(r).String()
		}
	}
	return filepath.Join(filepath.Dir(base), ref)
}
