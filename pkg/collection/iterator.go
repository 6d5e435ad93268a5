// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package collection

import "iter"

// IndexedContainer is positional access to a collection.
type IndexedContainer[T any] interface {
	Get(index int) (T, bool)
	Set(index int, item T) (bool, error)
	Delete(index int) (bool, error)
	Has(index int) bool
}

// SequenceIterable is forward iteration over a collection.
type SequenceIterable[T any] interface {
	All() iter.Seq2[int, T]
	Values() iter.Seq[T]
	Iterator() *Iterator[T]
}

var (
	_ IndexedContainer[any] = (*Collection[any])(nil)
	_ SequenceIterable[any] = (*Collection[any])(nil)
)

// All returns an iterator over (index, element) pairs. Each range over the
// result starts at index 0. The live elements are walked directly, so the
// collection must not be structurally modified during a traversal.
func (c *Collection[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < len(c.items); i++ {
			if !yield(i, c.items[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements.
func (c *Collection[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(c.items); i++ {
			if !yield(c.items[i]) {
				return
			}
		}
	}
}

// FromSeq creates a collection from the values of seq.
func FromSeq[T any](seq iter.Seq[T], opts ...Option[T]) *Collection[T] {
	var items []T
	for v := range seq {
		items = append(items, v)
	}
	return New(items, opts...)
}

// Iterator is an explicit cursor over a collection.
//
//	for it := c.Iterator(); it.Valid(); it.Next() {
//	    fmt.Println(it.Key(), it.Current())
//	}
type Iterator[T any] struct {
	c   *Collection[T]
	pos int
}

// Iterator returns a cursor positioned at the first element.
func (c *Collection[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{c: c}
}

// Rewind moves the cursor back to the first element.
func (it *Iterator[T]) Rewind() {
	it.pos = 0
}

// Valid reports whether the cursor addresses an element.
func (it *Iterator[T]) Valid() bool {
	return it.pos >= 0 && it.pos < len(it.c.items)
}

// Key returns the cursor position.
func (it *Iterator[T]) Key() int {
	return it.pos
}

// Current returns the element under the cursor, or the zero value when the
// cursor is not valid.
func (it *Iterator[T]) Current() T {
	v, _ := it.c.Get(it.pos)
	return v
}

// Next advances the cursor.
func (it *Iterator[T]) Next() {
	it.pos++
}
