// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package event

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"
)

// Emitter is a registry of listeners keyed by event name.
//
// Dispatch is synchronous and re-entrant: a listener may register or remove
// listeners, or fire further events, on the same Emitter while it runs. An
// Emitter is not safe for concurrent use by multiple goroutines.
//
// The zero value is ready to use.
type Emitter struct {
	events    map[string][]*subscriber
	fireID    uint64
	removeAll bool
	logger    *zerolog.Logger
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithLogger sets the logger used for dispatch tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Emitter) {
		l := logger.With().Str("component", "event").Logger()
		e.logger = &l
	}
}

// WithRemoveAllMatches makes Off remove every registration of the given
// listener in one call instead of only the earliest one.
func WithRemoveAllMatches() Option {
	return func(e *Emitter) {
		e.removeAll = true
	}
}

// NewEmitter creates an Emitter.
func NewEmitter(opts ...Option) *Emitter {
	e := &Emitter{events: make(map[string][]*subscriber)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// nopLogger backs emitters created without WithLogger.
var nopLogger = zerolog.Nop()

func (e *Emitter) log() *zerolog.Logger {
	if e.logger != nil {
		return e.logger
	}
	return &nopLogger
}

// On registers a listener that is invoked every time name is fired.
// The same listener may be registered more than once.
func (e *Emitter) On(name string, l Listener) error {
	return e.subscribe(name, l, false)
}

// Once registers a listener that is removed after the first dispatch it
// completes without error.
func (e *Emitter) Once(name string, l Listener) error {
	return e.subscribe(name, l, true)
}

func (e *Emitter) subscribe(name string, l Listener, once bool) error {
	if name == "" {
		return NewInvalidArgumentError("name", "expected non-empty string")
	}
	if !validListener(l) {
		return NewInvalidArgumentError("listener", "expected callable listener")
	}
	if e.events == nil {
		e.events = make(map[string][]*subscriber)
	}
	e.events[name] = append(e.events[name], newSubscriber(l, once))
	return nil
}

// Off removes a listener registered for name. With a nil listener every
// listener of name is removed. Otherwise the earliest matching registration
// is removed (or all of them with WithRemoveAllMatches); see the subscriber
// matching rules on Listener equality. Removing an unknown listener is a no-op.
func (e *Emitter) Off(name string, l Listener) error {
	if name == "" {
		return NewInvalidArgumentError("name", "expected non-empty string")
	}
	subs, ok := e.events[name]
	if !ok {
		return nil
	}
	if l == nil {
		delete(e.events, name)
		return nil
	}

	for i := 0; i < len(subs); {
		if !subs[i].matches(l) {
			i++
			continue
		}
		subs = slices.Delete(subs, i, i+1)
		if !e.removeAll {
			break
		}
	}
	e.store(name, subs)
	return nil
}

// OffAll removes every listener registered for name.
func (e *Emitter) OffAll(name string) error {
	return e.Off(name, nil)
}

// Listeners returns the number of listeners registered for name.
func (e *Emitter) Listeners(name string) int {
	return len(e.events[name])
}

// store replaces the listener list of name, dropping the key once empty.
func (e *Emitter) store(name string, subs []*subscriber) {
	if len(subs) == 0 {
		delete(e.events, name)
		return
	}
	e.events[name] = subs
}

// Fire invokes the listeners of name with a new Event built from args, in
// registration order, until one stops propagation. It returns a nil event and
// no error when name has no listeners.
//
// Listeners run over a snapshot of the list taken when Fire starts, so Off
// calls made by a listener only affect later dispatches. After the loop,
// once-listeners that ran during this dispatch are removed; once-listeners
// registered mid-dispatch did not run and stay registered.
//
// A listener error or panic aborts the dispatch and is returned as a
// *DispatchError.
func (e *Emitter) Fire(name string, args ...any) (*Event, error) {
	if name == "" {
		return nil, NewInvalidArgumentError("name", "expected non-empty string")
	}
	subs := e.events[name]
	if len(subs) == 0 {
		return nil, nil
	}

	ev, err := Create(name, args)
	if err != nil {
		return nil, err
	}

	e.fireID++
	fireID := e.fireID
	snapshot := slices.Clone(subs)

	e.log().Trace().
		Str("event", name).
		Uint64("fire_id", fireID).
		Int("listeners", len(snapshot)).
		Msg("dispatching event")

	for _, s := range snapshot {
		s.fireID = fireID
		if err := invoke(s.listener, ev); err != nil {
			e.log().Debug().Err(err).Str("event", name).Msg("listener failed, dispatch aborted")
			return ev, &DispatchError{Event: name, Err: err}
		}
		if ev.IsPropagationStopped() {
			e.log().Trace().Str("event", name).Msg("propagation stopped")
			break
		}
	}

	e.pruneOnce(name, fireID)
	return ev, nil
}

// pruneOnce removes once-listeners of name tagged with fireID from the live list.
func (e *Emitter) pruneOnce(name string, fireID uint64) {
	subs, ok := e.events[name]
	if !ok {
		return
	}
	kept := slices.DeleteFunc(slices.Clone(subs), func(s *subscriber) bool {
		return s.once && s.fireID == fireID
	})
	if len(kept) != len(subs) {
		e.log().Trace().
			Str("event", name).
			Int("removed", len(subs)-len(kept)).
			Msg("removed fired once-listeners")
	}
	e.store(name, kept)
}

func invoke(l Listener, ev *Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrListenerPanic, r)
		}
	}()
	return l.Handle(ev)
}
