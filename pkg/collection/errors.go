// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package collection

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfBounds is returned by At when the index addresses no element.
var ErrIndexOutOfBounds = errors.New("index out of bounds")

// IndexError wraps ErrIndexOutOfBounds with the offending index.
type IndexError struct {
	Index  int
	Length int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("index out of bounds: %d (length %d)", e.Index, e.Length)
}

// Unwrap returns the underlying error.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfBounds
}

// IsIndexOutOfBounds checks if an error is or wraps ErrIndexOutOfBounds.
func IsIndexOutOfBounds(err error) bool {
	return errors.Is(err, ErrIndexOutOfBounds)
}
