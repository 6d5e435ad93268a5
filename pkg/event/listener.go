// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package event

import "reflect"

// Listener handles a fired event. Returning an error aborts the dispatch and
// makes Fire return a *DispatchError.
type Listener interface {
	Handle(e *Event) error
}

// ListenerFunc adapts an ordinary function to the Listener interface.
type ListenerFunc func(e *Event) error

// Handle calls f(e).
func (f ListenerFunc) Handle(e *Event) error {
	return f(e)
}

// subscriber is one registration of a listener for an event name.
type subscriber struct {
	listener Listener
	tag      reflect.Value
	once     bool
	fireID   uint64 // last dispatch the subscriber took part in
}

func newSubscriber(l Listener, once bool) *subscriber {
	return &subscriber{
		listener: l,
		tag:      reflect.ValueOf(l),
		once:     once,
	}
}

// validListener reports whether l can be invoked.
func validListener(l Listener) bool {
	if l == nil {
		return false
	}
	v := reflect.ValueOf(l)
	switch v.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Interface:
		return !v.IsNil()
	}
	return true
}

// matches reports whether the subscriber was registered with a listener equal
// to l. Function listeners compare by code pointer, so two closures created
// by the same function literal are considered equal. Other listeners compare
// with == when their dynamic type is comparable.
func (s *subscriber) matches(l Listener) bool {
	other := reflect.ValueOf(l)
	if s.tag.Type() != other.Type() {
		return false
	}
	if s.tag.Kind() == reflect.Func {
		return s.tag.Pointer() == other.Pointer()
	}
	if !s.tag.Type().Comparable() {
		return false
	}
	return s.tag.Equal(other)
}
