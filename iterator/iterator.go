// Copyright (C) 2024-2026, Tilework, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package iterator models a finite, forward-only, one-shot sequence.
//
// Iterators returned by this module are fully materialized before the
// first element is yielded; the interface exists so that callers can
// consume results incrementally and so that single-pass sources can be
// sampled without knowing their length in advance.
package iterator

import "github.com/tilework/sampling/utils"

// Iterator is a one-shot view over a sequence of elements. Once Next
// has returned false, or Release has been called, the iterator is
// exhausted and cannot be restarted.
type Iterator[T any] interface {
	// Next advances to the next element, reporting whether one exists.
	Next() bool
	// Value returns the current element. It is only valid after a call
	// to Next that returned true.
	Value() T
	// Release drops any references held by the iterator. Callers that
	// abandon iteration early should call Release.
	Release()
}

// Empty returns an iterator with no elements.
func Empty[T any]() Iterator[T] {
	return &empty[T]{}
}

type empty[T any] struct{}

func (empty[T]) Next() bool {
	return false
}

func (empty[T]) Value() T {
	return utils.Zero[T]()
}

func (empty[T]) Release() {}

// FromSlice returns an iterator over [elts].
//
// The iterator takes ownership of the provided slice: Release zeroes
// it, so callers must not reuse it after iteration.
func FromSlice[T any](elts ...T) Iterator[T] {
	return &slice[T]{elts: elts}
}

type slice[T any] struct {
	elts []T
	idx  int
}

func (i *slice[T]) Next() bool {
	i.idx++
	return i.idx <= len(i.elts)
}

func (i *slice[T]) Value() T {
	return i.elts[i.idx-1]
}

func (i *slice[T]) Release() {
	utils.ZeroSlice(i.elts)
	i.elts = nil
	i.idx = 0
}

// ToSlice drains [it] into a slice and releases it.
func ToSlice[T any](it Iterator[T]) []T {
	defer it.Release()

	var elts []T
	for it.Next() {
		elts = append(elts, it.Value())
	}
	return elts
}
