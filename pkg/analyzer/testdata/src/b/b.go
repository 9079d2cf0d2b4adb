package b

type From[T any] interface{ From(T) }
type Seq[E any] interface{ Each(func(E) bool) }

//bound:all Str: From[string]
//bound:one Str: From[int], From[string], From[[]byte]
type Str struct{}

func (Str) From(string) {}

//bound:all Bytes: Seq[byte]
//bound:all Seq[byte]: Seq[byte]
//bound:any Bytes: comparable // want `Bytes does not satisfy any of \[comparable\]`
type Bytes []byte

func (b Bytes) Each(yield func(byte) bool) {
	for _, x := range b {
		if !yield(x) {
			return
		}
	}
}

//bound:all func(): any
//bound:all map[string]int: any
//bound:all From: any // want `instantiation`
