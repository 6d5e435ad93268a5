// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package model

import (
	"errors"
	"fmt"

	"github.com/vulntor/eventkit/pkg/event"
)

// Common errors returned by models and mappers.
var (
	// ErrInvalidKey is returned when a property name is neither a non-empty
	// string nor a non-negative integer. It also matches event.ErrInvalidArgument.
	ErrInvalidKey = errors.New("invalid property name")

	// ErrNotFound is returned when a mapper holds no model for an id.
	ErrNotFound = errors.New("not found")

	// ErrCancelled is returned when a listener vetoes a mapper operation.
	ErrCancelled = errors.New("operation cancelled by listener")
)

// InvalidKeyError reports the rejected property name.
type InvalidKeyError struct {
	Key any
}

// Error implements the error interface.
func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid property name %#v: expected non-empty string or non-negative integer", e.Key)
}

// Unwrap returns event.ErrInvalidArgument.
func (e *InvalidKeyError) Unwrap() error {
	return event.ErrInvalidArgument
}

// Is checks if the error matches ErrInvalidKey.
func (e *InvalidKeyError) Is(target error) bool {
	return target == ErrInvalidKey
}

// NotFoundError wraps ErrNotFound with the requested id.
type NotFoundError struct {
	ID string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("model not found: %s", e.ID)
}

// Unwrap returns the underlying error.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(id string) error {
	return &NotFoundError{ID: id}
}

// IsNotFound checks if an error is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidKey checks if an error is or wraps ErrInvalidKey.
func IsInvalidKey(err error) bool {
	return errors.Is(err, ErrInvalidKey)
}

// IsCancelled checks if an error is or wraps ErrCancelled.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
