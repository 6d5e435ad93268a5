// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package collection

import (
	"slices"

	"github.com/vulntor/eventkit/pkg/event"
)

// Visitor is called by Each. Returning false stops the iteration.
type Visitor[T any] func(item T, index int, c *Collection[T]) bool

// Predicate selects elements for Filter.
type Predicate[T any] func(item T, index int, c *Collection[T]) bool

// Each calls fn for every element in order until fn returns false.
func (c *Collection[T]) Each(fn Visitor[T]) *Collection[T] {
	for i := 0; i < len(c.items); i++ {
		if !fn(c.items[i], i, c) {
			break
		}
	}
	return c
}

// Filter returns a new collection of the elements for which pred is true,
// in their original order.
func (c *Collection[T]) Filter(pred Predicate[T]) *Collection[T] {
	var kept []T
	for i, item := range c.items {
		if pred(item, i, c) {
			kept = append(kept, item)
		}
	}
	return c.derive(kept)
}

// Skip returns a collection without the first n elements. Skip(0) returns c
// itself. n must be within [0, Count()]. The receiver is not modified.
func (c *Collection[T]) Skip(n int) (*Collection[T], error) {
	if n < 0 || n > len(c.items) {
		return nil, event.NewInvalidArgumentError("n", "expected value within [0, length]")
	}
	if n == 0 {
		return c, nil
	}
	return c.derive(c.items[n:]), nil
}

// Limit returns a collection of the first n elements. Limit(NoLimit) and
// Limit(Count()) return c itself. Any other n must be within [0, Count()].
func (c *Collection[T]) Limit(n int) (*Collection[T], error) {
	if n == NoLimit || n == len(c.items) {
		return c, nil
	}
	if n < 0 || n > len(c.items) {
		return nil, event.NewInvalidArgumentError("n", "expected value within [0, length]")
	}
	return c.derive(c.items[:n]), nil
}

// Sort returns a new collection ordered by cmp, or by Compare when cmp is nil.
// Equal elements keep their relative order. With ascending false the sorted
// result is reversed.
func (c *Collection[T]) Sort(cmp Comparator[T], ascending bool) *Collection[T] {
	if cmp == nil {
		cmp = c.Compare
	}
	sorted := slices.Clone(c.items)
	slices.SortStableFunc(sorted, cmp)
	if !ascending {
		slices.Reverse(sorted)
	}
	return c.derive(sorted)
}

// Unique returns a new collection keeping the first occurrence of every
// element; later elements comparing equal (by cmp, or Compare when nil) to a
// kept one are dropped.
//
// Unlike Filter and Sort, the result is a plain collection: it carries the
// comparator but not the decorate hooks, and elements are not re-decorated.
func (c *Collection[T]) Unique(cmp Comparator[T]) *Collection[T] {
	if cmp == nil {
		cmp = c.Compare
	}
	kept := make([]T, 0, len(c.items))
	for _, item := range c.items {
		dup := slices.ContainsFunc(kept, func(k T) bool {
			return cmp(k, item) == 0
		})
		if !dup {
			kept = append(kept, item)
		}
	}
	return New(kept, WithComparator(c.compare), withPlainLogger[T](c))
}

// withPlainLogger reuses the component logger of src.
func withPlainLogger[T any](src *Collection[T]) Option[T] {
	return func(c *Collection[T]) {
		c.logger = src.logger
	}
}
