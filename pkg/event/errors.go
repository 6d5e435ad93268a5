// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package event

import (
	"errors"
	"fmt"
)

// Common errors returned by events and emitters.
var (
	// ErrInvalidArgument is returned when an argument has the wrong shape:
	// an empty event name, a nil listener, an out-of-range count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAlreadyStopped is returned when StopPropagation is called on an
	// event that is already stopped.
	ErrAlreadyStopped = errors.New("event is already stopped")

	// ErrDispatch is returned by Fire when a listener fails.
	ErrDispatch = errors.New("error firing event")

	// ErrListenerPanic is wrapped by a DispatchError when a listener panics.
	ErrListenerPanic = errors.New("listener panicked")
)

// InvalidArgumentError wraps ErrInvalidArgument with the offending argument.
type InvalidArgumentError struct {
	Argument string // Argument name, e.g. "name", "listener"
	Reason   string // Why validation failed
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	if e.Argument != "" {
		return fmt.Sprintf("invalid argument %q: %s", e.Argument, e.Reason)
	}
	return fmt.Sprintf("invalid argument: %s", e.Reason)
}

// Unwrap returns the underlying error.
func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// Is checks if the error matches ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// DispatchError reports a listener failure during Fire. Listeners after the
// failing one were not invoked.
type DispatchError struct {
	Event string // Name of the event being fired
	Err   error  // Error returned (or panic recovered) from the listener
}

// Error implements the error interface.
func (e *DispatchError) Error() string {
	return fmt.Sprintf("error firing event %s: %v", e.Event, e.Err)
}

// Unwrap returns the listener error.
func (e *DispatchError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches ErrDispatch.
func (e *DispatchError) Is(target error) bool {
	return target == ErrDispatch
}

// NewInvalidArgumentError creates an InvalidArgumentError.
func NewInvalidArgumentError(argument, reason string) error {
	return &InvalidArgumentError{
		Argument: argument,
		Reason:   reason,
	}
}

// IsInvalidArgument checks if an error is or wraps ErrInvalidArgument.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsAlreadyStopped checks if an error is or wraps ErrAlreadyStopped.
func IsAlreadyStopped(err error) bool {
	return errors.Is(err, ErrAlreadyStopped)
}

// IsDispatch checks if an error is or wraps ErrDispatch.
func IsDispatch(err error) bool {
	return errors.Is(err, ErrDispatch)
}
