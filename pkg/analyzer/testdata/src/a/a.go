package a

import (
	"fmt"
	"io"
)

type A interface{ a() }
type B interface{ b() }
type C interface{ c() }

//bound:one OnlyB: A, B, C
//bound:one OnlyB: C, B, A
//bound:one OnlyB: B
type OnlyB struct{}

func (OnlyB) b() {}

//bound:one AB: A, B, C // want `AB does not satisfy exactly one of \[A, B, C\]: satisfies \[A, B\]`
//bound:one AB: C, B, A // want `AB does not satisfy exactly one of \[C, B, A\]: satisfies \[B, A\]`
//bound:any AB: C, fmt.Stringer // want `AB does not satisfy any of \[C, fmt.Stringer\]`
type AB struct{}

func (AB) a() {}
func (AB) b() {}

//bound:all *Buf: io.Reader, io.Writer
//bound:all Buf: io.Reader // want `Buf does not satisfy all of \[io.Reader\]: missing \[io.Reader\]`
type Buf struct{}

func (*Buf) Read([]byte) (int, error)  { return 0, nil }
func (*Buf) Write([]byte) (int, error) { return 0, nil }

var _ io.ReadWriter = (*Buf)(nil)

func describe(v any) string {
	//bound:all io.ReadWriter: io.Reader
	return fmt.Sprint(v)
}

//bound:all Buf: Unknown // want `invalid bound assertion: Unknown: undefined: Unknown`
//bound:all Buf io.Reader // want `invalid bound assertion: invalid directive`
