// Copyright: This file is part of boundcheck, released under https://github.com/korrel8r/boundcheck/blob/main/LICENSE

package bound_test

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"github.com/korrel8r/boundcheck/pkg/bound"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const src = `package p

type A interface{ a() }
type B interface{ b() }
type C interface{ c() }

type OnlyB struct{}

func (OnlyB) b() {}

type AB struct{}

func (AB) a() {}
func (AB) b() {}

type None struct{}

type PtrA struct{}

func (*PtrA) a() {}

type From[T any] interface{ From(T) }

type Str struct{}

func (Str) From(string) {}

type Seq[E any] interface{ Each(func(E) bool) }

type Bytes []byte

func (Bytes) Each(func(byte) bool) {}

type Reader interface{ Read([]byte) (int, error) }
type ReadCloser interface {
	Reader
	Close() error
}

type Number interface{ ~int | ~float64 }
type MyInt int
type Funcs struct{ f func() }
type List[T any] []T
`

type fixture struct {
	fset *token.FileSet
	pkg  *types.Package
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "p.go", src, 0)
	require.NoError(t, err)
	pkg, err := (&types.Config{}).Check("p", fset, []*ast.File{f}, nil)
	require.NoError(t, err)
	return &fixture{fset: fset, pkg: pkg}
}

func (f *fixture) typ(t *testing.T, expr string) types.Type {
	t.Helper()
	tv, err := types.Eval(f.fset, f.pkg, token.NoPos, expr)
	require.NoError(t, err, expr)
	require.True(t, tv.IsType(), expr)
	return tv.Type
}

func (f *fixture) assertion(t *testing.T, mode bound.Mode, target string, caps ...string) bound.Assertion {
	t.Helper()
	a := bound.Assertion{Mode: mode, Target: target, TargetType: f.typ(t, target)}
	for _, c := range caps {
		a.Capabilities = append(a.Capabilities, bound.Capability{Expr: c, Type: f.typ(t, c)})
	}
	return a
}

func permutations(s []string) [][]string {
	if len(s) <= 1 {
		return [][]string{append([]string(nil), s...)}
	}
	var all [][]string
	for i := range s {
		rest := append(append([]string(nil), s[:i]...), s[i+1:]...)
		for _, p := range permutations(rest) {
			all = append(all, append([]string{s[i]}, p...))
		}
	}
	return all
}

func TestCheck(t *testing.T) {
	f := newFixture(t)
	for _, x := range []struct {
		mode   bound.Mode
		target string
		caps   []string
		ok     bool
	}{
		{bound.All, "AB", []string{"A", "B"}, true},
		{bound.All, "OnlyB", []string{"A", "B"}, false},
		{bound.All, "None", []string{"any"}, true},
		{bound.Any, "OnlyB", []string{"A", "B", "C"}, true},
		{bound.Any, "None", []string{"A", "B", "C"}, false},
		{bound.One, "OnlyB", []string{"B"}, true},
		{bound.One, "None", []string{"A"}, false},
		{bound.One, "OnlyB", []string{"B", "B"}, false},
		{bound.All, "PtrA", []string{"A"}, false},
		{bound.All, "*PtrA", []string{"A"}, true},
		{bound.All, "Str", []string{"From[string]"}, true},
		{bound.All, "Str", []string{"From[int]"}, false},
		{bound.One, "Str", []string{"From[int]", "From[string]"}, true},
		{bound.All, "Bytes", []string{"Seq[byte]"}, true},
		{bound.All, "ReadCloser", []string{"Reader"}, true},
		{bound.All, "Reader", []string{"ReadCloser"}, false},
		{bound.All, "[]byte", []string{"any"}, true},
		{bound.All, "MyInt", []string{"Number", "comparable"}, true},
		{bound.Any, "Funcs", []string{"comparable", "Number"}, false},
		{bound.All, "Reader", []string{"comparable"}, true},
		{bound.All, "List[int]", []string{"any"}, true},
	} {
		t.Run(x.mode.String()+" "+x.target+": "+strings.Join(x.caps, ", "), func(t *testing.T) {
			r, err := bound.Check(f.assertion(t, x.mode, x.target, x.caps...))
			require.NotNil(t, r)
			assert.Equal(t, x.ok, r.OK())
			if x.ok {
				assert.NoError(t, err)
			} else {
				var ue *bound.UnsatisfiedBoundError
				require.ErrorAs(t, err, &ue)
				assert.Equal(t, x.target, ue.Target)
				assert.Equal(t, x.mode, ue.Mode)
			}
		})
	}
}

func TestCheck_exactlyOnePermutations(t *testing.T) {
	f := newFixture(t)
	perms := permutations([]string{"A", "B", "C"})
	require.Len(t, perms, 6)
	for _, p := range perms {
		t.Run(strings.Join(p, ","), func(t *testing.T) {
			_, err := bound.Check(f.assertion(t, bound.One, "OnlyB", p...))
			assert.NoError(t, err)
			_, err = bound.Check(f.assertion(t, bound.One, "AB", p...))
			assert.Error(t, err)
			_, err = bound.Check(f.assertion(t, bound.One, "None", p...))
			assert.Error(t, err)
		})
	}
}

func TestCheck_singleCapabilityOne(t *testing.T) {
	f := newFixture(t)
	for _, target := range []string{"OnlyB", "AB", "None", "*PtrA"} {
		for _, c := range []string{"A", "B"} {
			one, errOne := bound.Check(f.assertion(t, bound.One, target, c))
			all, errAll := bound.Check(f.assertion(t, bound.All, target, c))
			assert.Equal(t, all.OK(), one.OK(), "%v: %v", target, c)
			assert.Equal(t, errAll == nil, errOne == nil, "%v: %v", target, c)
		}
	}
}

func TestCheck_malformed(t *testing.T) {
	f := newFixture(t)
	_, err := bound.Check(bound.Assertion{Target: "AB", TargetType: f.typ(t, "AB")})
	assert.ErrorIs(t, err, bound.ErrNoCapabilities)

	_, err = bound.Check(f.assertion(t, bound.All, "AB", "MyInt"))
	assert.ErrorIs(t, err, bound.ErrNotInterface)

	_, err = bound.Check(f.assertion(t, bound.All, "Number", "any"))
	assert.ErrorIs(t, err, bound.ErrConstraint)

	generic := f.pkg.Scope().Lookup("From").Type()
	_, err = bound.Check(bound.Assertion{
		Target:       "Str",
		TargetType:   f.typ(t, "Str"),
		Capabilities: []bound.Capability{{Expr: "From", Type: generic}},
	})
	assert.ErrorIs(t, err, bound.ErrGeneric)

	var ue *bound.UnsatisfiedBoundError
	assert.False(t, errors.As(err, &ue))

	_, err = bound.Check(f.assertion(t, bound.Mode(7), "AB", "A"))
	assert.ErrorIs(t, err, bound.ErrMode)
	assert.EqualError(t, err, "AB: invalid mode Mode(7)")
	assert.False(t, errors.As(err, &ue))

	r := &bound.Result{Assertion: bound.Assertion{Mode: bound.Mode(-1)}, Satisfied: []bool{true}}
	assert.False(t, r.OK())
}

func TestUnsatisfiedBoundError(t *testing.T) {
	f := newFixture(t)
	for _, x := range []struct {
		mode   bound.Mode
		target string
		caps   []string
		want   string
	}{
		{bound.All, "OnlyB", []string{"A", "B", "C"}, "OnlyB does not satisfy all of [A, B, C]: missing [A, C]"},
		{bound.Any, "None", []string{"A", "B"}, "None does not satisfy any of [A, B]"},
		{bound.One, "AB", []string{"C", "B", "A"}, "AB does not satisfy exactly one of [C, B, A]: satisfies [B, A]"},
		{bound.One, "None", []string{"A", "B"}, "None does not satisfy exactly one of [A, B]: satisfies none"},
	} {
		t.Run(x.want, func(t *testing.T) {
			_, err := bound.Check(f.assertion(t, x.mode, x.target, x.caps...))
			assert.EqualError(t, err, x.want)
		})
	}
}

func TestParseMode(t *testing.T) {
	for s, want := range map[string]bound.Mode{
		"all": bound.All, "any": bound.Any, "one": bound.One,
		"exactly-one": bound.One, "exactly_one": bound.One, "ALL": bound.All,
	} {
		m, err := bound.ParseMode(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, m, s)
	}
	_, err := bound.ParseMode("some")
	assert.Error(t, err)

	var m bound.Mode
	require.NoError(t, m.UnmarshalText([]byte("exactly-one")))
	assert.Equal(t, bound.One, m)
	b, _ := m.MarshalText()
	assert.Equal(t, "one", string(b))
	assert.Equal(t, "Mode(7)", bound.Mode(7).String())
}
