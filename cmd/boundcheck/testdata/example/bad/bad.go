package bad

import "io"

// Sink discards everything written to it.
type Sink struct{}

func (Sink) Write(p []byte) (int, error) { return len(p), nil }

var _ io.Writer = Sink{}

//bound:all Sink: io.Writer, io.Closer
//bound:any Sink: io.Writer, io.Reader
//bound:one Sink: io.Writer, UnknownType
