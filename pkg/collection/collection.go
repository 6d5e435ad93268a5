// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package collection provides an ordered, observable container.
//
// A Collection embeds an *event.Emitter. Structural changes fire a
// cancellable "before" event and, once applied, an "after" event:
//
//	before-add(item)               add(item)
//	before-set(index, item, old)   set(index, item)
//	before-remove(item, index)     remove(item, index)
//
// A listener of a "before" event vetoes the change by stopping propagation.
// Bulk operations (Filter, Sort, Unique, Skip, Limit) never modify the
// receiver; they return a new collection, or the receiver itself when the
// result would be identical.
package collection

import (
	"github.com/rs/zerolog"

	"github.com/vulntor/eventkit/pkg/event"
)

// Event names fired by a Collection.
const (
	EventBeforeAdd    = "before-add"
	EventAdd          = "add"
	EventBeforeSet    = "before-set"
	EventSet          = "set"
	EventBeforeRemove = "before-remove"
	EventRemove       = "remove"
)

// Append is the index sentinel that makes Set append to the collection.
const Append = -1

// NoLimit makes Limit return the collection unchanged.
const NoLimit = -1

// Hook transforms an element entering or leaving a collection.
type Hook[T any] func(item T) T

// Collection is an ordered sequence of T with positional access, lookup by
// comparator and mutation events. It is not safe for concurrent use.
type Collection[T any] struct {
	*event.Emitter

	items      []T
	compare    Comparator[T]
	decorate   Hook[T]
	undecorate Hook[T]
	logger     zerolog.Logger
}

// Option configures a Collection.
type Option[T any] func(*Collection[T])

// WithComparator installs cmp as the collection comparator.
// A nil comparator keeps DefaultCompare.
func WithComparator[T any](cmp Comparator[T]) Option[T] {
	return func(c *Collection[T]) {
		c.compare = cmp
	}
}

// WithDecorator sets the hook applied to every element before it is stored.
func WithDecorator[T any](h Hook[T]) Option[T] {
	return func(c *Collection[T]) {
		c.decorate = h
	}
}

// WithUndecorator sets the hook applied to every element after it is removed
// or overwritten.
func WithUndecorator[T any](h Hook[T]) Option[T] {
	return func(c *Collection[T]) {
		c.undecorate = h
	}
}

// WithLogger sets the logger for the collection and its emitter.
func WithLogger[T any](logger zerolog.Logger) Option[T] {
	return func(c *Collection[T]) {
		c.logger = logger.With().Str("component", "collection").Logger()
		c.Emitter = event.NewEmitter(event.WithLogger(logger))
	}
}

// New creates a collection holding items, each passed through the decorate
// hook. The slice is copied; a nil slice yields an empty collection.
func New[T any](items []T, opts ...Option[T]) *Collection[T] {
	c := &Collection[T]{
		Emitter: event.NewEmitter(),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.items = make([]T, 0, len(items))
	for _, item := range items {
		c.items = append(c.items, c.decorateItem(item))
	}
	return c
}

// derive builds a collection of the same kind as c: same comparator, hooks
// and logger, no listeners. items are already decorated and are copied as
// they are; the hooks only apply to later insertions and removals.
func (c *Collection[T]) derive(items []T) *Collection[T] {
	return &Collection[T]{
		Emitter:    event.NewEmitter(),
		items:      append(make([]T, 0, len(items)), items...),
		compare:    c.compare,
		decorate:   c.decorate,
		undecorate: c.undecorate,
		logger:     c.logger,
	}
}

func (c *Collection[T]) decorateItem(item T) T {
	if c.decorate == nil {
		return item
	}
	return c.decorate(item)
}

func (c *Collection[T]) undecorateItem(item T) T {
	if c.undecorate == nil {
		return item
	}
	return c.undecorate(item)
}

// Count returns the number of elements.
func (c *Collection[T]) Count() int {
	return len(c.items)
}

// Len is an alias for Count.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// Slice returns a copy of the elements.
func (c *Collection[T]) Slice() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Compare orders a and b with the installed comparator, or DefaultCompare.
func (c *Collection[T]) Compare(a, b T) int {
	if c.compare != nil {
		return c.compare(a, b)
	}
	return DefaultCompare(a, b)
}

// SetCompareFunction installs cmp as the collection comparator.
func (c *Collection[T]) SetCompareFunction(cmp Comparator[T]) error {
	if cmp == nil {
		return event.NewInvalidArgumentError("cmp", "expected callable comparator")
	}
	c.compare = cmp
	return nil
}

// IndexOf returns the index of the first element comparing equal to item,
// or -1.
func (c *Collection[T]) IndexOf(item T) int {
	for i, el := range c.items {
		if c.Compare(item, el) == 0 {
			return i
		}
	}
	return -1
}

// Contains reports whether an element compares equal to item.
func (c *Collection[T]) Contains(item T) bool {
	return c.IndexOf(item) != -1
}

// At returns the element at index.
func (c *Collection[T]) At(index int) (T, error) {
	if index < 0 || index >= len(c.items) {
		var zero T
		return zero, &IndexError{Index: index, Length: len(c.items)}
	}
	return c.items[index], nil
}

// First returns the first element; false when the collection is empty.
func (c *Collection[T]) First() (T, bool) {
	return c.Get(0)
}

// Last returns the last element; false when the collection is empty.
func (c *Collection[T]) Last() (T, bool) {
	return c.Get(len(c.items) - 1)
}
