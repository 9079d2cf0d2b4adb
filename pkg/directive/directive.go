// Copyright: This file is part of boundcheck, released under https://github.com/korrel8r/boundcheck/blob/main/LICENSE

// Package directive parses bound assertion directives.
//
// A directive is a line comment with no space after the slashes, like a //go: directive:
//
//	//bound:all  TYPE: CAPABILITY, ...
//	//bound:any  TYPE: CAPABILITY, ...
//	//bound:one  TYPE: CAPABILITY, ...
//
// TYPE and each CAPABILITY are Go type expressions. Commas and colons nested
// inside brackets, braces or parentheses do not split, so generic
// instantiations like Pair[int, string] and literal types like
// func(a, b int) are written as usual. A trailing comma is allowed,
// and a trailing // comment is ignored.
package directive

import (
	"errors"
	"fmt"
	"go/parser"
	"go/scanner"
	"go/token"
	"strings"
	"unicode"

	"github.com/korrel8r/boundcheck/pkg/bound"
)

// DefaultPrefix is the directive prefix used when none is configured.
const DefaultPrefix = "bound"

// ErrNotDirective is returned by [Parse] for comments that are not directives.
var ErrNotDirective = errors.New("not a directive")

// Directive is a parsed assertion, not yet resolved to types.
type Directive struct {
	Mode         bound.Mode
	Target       string
	Capabilities []string
}

// New returns a validated directive.
func New(mode bound.Mode, target string, capabilities ...string) (*Directive, error) {
	d := &Directive{Mode: mode, Target: strings.TrimSpace(target)}
	for _, c := range capabilities {
		d.Capabilities = append(d.Capabilities, strings.TrimSpace(c))
	}
	return d, d.Validate()
}

// Validate checks that the target and every capability is a Go expression.
func (d *Directive) Validate() error {
	if d.Target == "" {
		return errors.New("missing target type")
	}
	if len(d.Capabilities) == 0 {
		return fmt.Errorf("%v: no capabilities", d.Target)
	}
	for _, s := range append([]string{d.Target}, d.Capabilities...) {
		if s == "" {
			return fmt.Errorf("%v: empty capability", d.Target)
		}
		if _, err := parser.ParseExpr(s); err != nil {
			return fmt.Errorf("invalid type expression %q: %w", s, err)
		}
	}
	return nil
}

// String returns the directive body: "MODE TYPE: CAP, ...".
func (d *Directive) String() string {
	return fmt.Sprintf("%v %v: %v", d.Mode, d.Target, strings.Join(d.Capabilities, ", "))
}

// Comment returns the directive as a comment with the given prefix.
func (d *Directive) Comment(prefix string) string {
	return fmt.Sprintf("//%v:%v", prefix, d)
}

// Parse parses comment text including the leading "//".
// Returns ErrNotDirective if the comment does not start with "//prefix:".
func Parse(prefix, comment string) (*Directive, error) {
	rest, ok := strings.CutPrefix(comment, "//"+prefix+":")
	if !ok {
		return nil, ErrNotDirective
	}
	d, err := ParseString(rest)
	if err != nil {
		return nil, fmt.Errorf("invalid directive %q: %w", comment, err)
	}
	return d, nil
}

// ParseString parses "MODE TYPE: CAP, ...".
func ParseString(s string) (*Directive, error) {
	s = strings.TrimSpace(s)
	word, body := s, ""
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		word, body = s[:i], s[i:]
	}
	mode, err := bound.ParseMode(word)
	if err != nil {
		return nil, err
	}
	target, caps, err := split(body)
	if err != nil {
		return nil, err
	}
	return New(mode, target, caps...)
}

// split separates "TYPE: CAP, CAP" at top-level punctuation.
func split(body string) (target string, caps []string, err error) {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(body))
	var errs scanner.ErrorList
	var s scanner.Scanner
	s.Init(file, []byte(body), func(pos token.Position, msg string) { errs.Add(pos, msg) }, 0)

	var (
		depth      int
		start, end int // Current piece is body[start:end]
		colon      = false
	)
	piece := func() string { return strings.TrimSpace(body[start:end]) }
	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		if tok == token.SEMICOLON && lit == "\n" {
			continue // Automatic semicolon.
		}
		off := file.Offset(pos)
		switch tok {
		case token.LPAREN, token.LBRACK, token.LBRACE:
			depth++
		case token.RPAREN, token.RBRACK, token.RBRACE:
			if depth--; depth < 0 {
				return "", nil, fmt.Errorf("unbalanced %q", tok)
			}
		case token.COLON:
			if depth == 0 {
				if colon {
					return "", nil, errors.New("unexpected ':' after capabilities")
				}
				colon = true
				target = piece()
				start, end = off+1, off+1
				continue
			}
		case token.COMMA:
			if depth == 0 && colon {
				if piece() == "" {
					return "", nil, errors.New("empty capability")
				}
				caps = append(caps, piece())
				start, end = off+1, off+1
				continue
			}
		}
		end = off + tokenLen(tok, lit)
	}
	if errs.Len() > 0 {
		return "", nil, errs.Err()
	}
	if depth != 0 {
		return "", nil, errors.New("unbalanced brackets")
	}
	if !colon {
		if target = piece(); target == "" {
			return "", nil, errors.New("missing target type")
		}
		return "", nil, fmt.Errorf("missing ':' after %q", target)
	}
	if last := piece(); last != "" {
		caps = append(caps, last)
	}
	return target, caps, nil
}

func tokenLen(tok token.Token, lit string) int {
	if lit != "" {
		return len(lit)
	}
	return len(tok.String())
}
