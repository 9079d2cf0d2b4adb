package files

import (
	"fmt"
	"io"
)

//bound:all *File: io.Reader, io.Writer, io.Closer
//bound:any File: io.Reader, fmt.Stringer
//bound:all File: io.Reader
type File struct{}

func (*File) Read([]byte) (int, error)  { return 0, nil }
func (*File) Write([]byte) (int, error) { return 0, nil }
func (*File) Close() error              { return nil }
func (File) String() string             { return "file" }

var _ io.ReadWriteCloser = (*File)(nil)

//bound:one Mode: fmt.Stringer, error
type Mode int

func (m Mode) String() string { return fmt.Sprint(int(m)) }
