// Copyright: This file is part of boundcheck, released under https://github.com/korrel8r/boundcheck/blob/main/LICENSE

// Package unique removes duplicates while keeping first-seen order.
//
// Packages loaded with their test variants share source files, so the same
// directive can be reported more than once; these types collapse such repeats.
package unique

// Set of comparable values.
type Set[T comparable] map[T]struct{}

func NewSet[T comparable](vs ...T) Set[T] {
	s := Set[T]{}
	for _, v := range vs {
		s.Add(v)
	}
	return s
}

func (s Set[T]) Has(v T) bool { _, ok := s[v]; return ok }
func (s Set[T]) Add(v T)      { s[v] = struct{}{} }

// List keeps values whose key has not been seen before, in order.
type List[K comparable, V any] struct {
	key  func(V) K
	seen Set[K]
	List []V
}

// NewList uses key to identify duplicate values.
func NewList[K comparable, V any](key func(V) K) *List[K, V] {
	return &List[K, V]{key: key, seen: Set[K]{}}
}

// Add v unless a value with the same key was already added.
// Returns true if v was added.
func (l *List[K, V]) Add(v V) bool {
	k := l.key(v)
	if l.seen.Has(k) {
		return false
	}
	l.seen.Add(k)
	l.List = append(l.List, v)
	return true
}

func (l *List[K, V]) Append(vs ...V) {
	for _, v := range vs {
		_ = l.Add(v)
	}
}
