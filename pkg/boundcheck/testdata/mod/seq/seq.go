// Package seq has element sequences with no fixed size.
package seq

import "iter"

// Seq is implemented by types that can yield elements of type E.
type Seq[E any] interface{ All() iter.Seq[E] }

//bound:all Bytes: Seq[byte]
//bound:all Seq[byte]: Seq[byte]
//bound:any Bytes: Seq[int], Seq[byte]
//bound:one Bytes: Seq[int], Seq[string]
type Bytes []byte

func (b Bytes) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for _, x := range b {
			if !yield(x) {
				return
			}
		}
	}
}
