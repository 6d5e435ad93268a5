// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package event provides a synchronous publish-subscribe emitter whose events
// can be cancelled by listeners.
//
// An Emitter keeps an ordered list of listeners per event name. Fire invokes
// them in registration order on the caller's goroutine and hands every
// listener the same *Event. A listener may call StopPropagation on it, which
// prevents the remaining listeners from running and lets the code that fired
// the event treat the occurrence as cancelled:
//
//	ev, err := emitter.Fire("before-add", item)
//	if err != nil {
//	    return false, err
//	}
//	if ev.IsPropagationStopped() {
//	    return false, nil // vetoed by a listener
//	}
package event

import (
	"slices"
	"sort"
)

// Event describes one firing of a named event. It is created by the Emitter
// when Fire is called and is shared by every listener invoked for that firing.
type Event struct {
	name    string
	args    []any
	stopped bool
}

// New creates an event with the given name and arguments.
// The name must not be empty.
func New(name string, args ...any) (*Event, error) {
	return Create(name, args)
}

// Create creates an event from an argument slice. A nil slice yields an event
// without arguments. The slice is copied.
func Create(name string, args []any) (*Event, error) {
	if name == "" {
		return nil, NewInvalidArgumentError("name", "expected non-empty string")
	}
	if args == nil {
		args = []any{}
	}
	return &Event{name: name, args: slices.Clone(args)}, nil
}

// CreateIndexed creates an event from sparse, index-keyed arguments. The
// arguments are re-indexed densely in ascending key order.
func CreateIndexed(name string, args map[int]any) (*Event, error) {
	keys := make([]int, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	dense := make([]any, 0, len(keys))
	for _, k := range keys {
		dense = append(dense, args[k])
	}
	return Create(name, dense)
}

// StopPropagation prevents listeners that have not run yet from receiving
// the event. Stopping an event twice returns ErrAlreadyStopped.
func (e *Event) StopPropagation() error {
	if e.stopped {
		return ErrAlreadyStopped
	}
	e.stopped = true
	return nil
}

// IsPropagationStopped reports whether a listener stopped the event.
// It is safe to call on a nil event, which Fire returns when nobody listens.
func (e *Event) IsPropagationStopped() bool {
	return e != nil && e.stopped
}

// Name returns the event name.
func (e *Event) Name() string {
	return e.name
}

// Args returns a copy of the event arguments.
func (e *Event) Args() []any {
	return slices.Clone(e.args)
}

// Arg returns the argument at index i. The second result is false when the
// event carries no argument at that position.
func (e *Event) Arg(i int) (any, bool) {
	if i < 0 || i >= len(e.args) {
		return nil, false
	}
	return e.args[i], true
}

// NumArgs returns the number of arguments passed to Fire.
func (e *Event) NumArgs() int {
	return len(e.args)
}
