// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package collection

import (
	"cmp"
	"reflect"
	"strings"
)

// Comparator is a three-way ordering function: negative when a sorts before
// b, zero when they are equal, positive otherwise.
type Comparator[T any] func(a, b T) int

// DefaultCompare is the comparator used when a collection has none installed.
//
// Equal values compare 0. Two strings compare lexicographically. Two numbers
// (any integer or floating point kind, named types included) compare by the
// sign of their difference, so int(2) and float64(2) are equal. Every other
// pair, including mixed string/number pairs, compares -1: a < b.
//
// The fallback makes the ordering asymmetric for mixed types (a < b and b < a
// both hold). Sorting a collection of mixed kinds therefore gives an order
// that depends on the input order.
func DefaultCompare(a, b any) int {
	if equal(a, b) {
		return 0
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case va.Kind() == reflect.String && vb.Kind() == reflect.String:
		return strings.Compare(va.String(), vb.String())
	case isNumber(va) && isNumber(vb):
		return compareNumbers(va, vb)
	}
	return -1
}

func equal(a, b any) (eq bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if !ta.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	// A comparable type can still hold an uncomparable value in an
	// interface field, which makes == panic.
	defer func() {
		if recover() != nil {
			eq = reflect.DeepEqual(a, b)
		}
	}()
	return a == b
}

func isNumber(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func compareNumbers(a, b reflect.Value) int {
	if a.CanInt() && b.CanInt() {
		return cmp.Compare(a.Int(), b.Int())
	}
	if a.CanUint() && b.CanUint() {
		return cmp.Compare(a.Uint(), b.Uint())
	}
	return cmp.Compare(toFloat(a), toFloat(b))
}

func toFloat(v reflect.Value) float64 {
	switch {
	case v.CanInt():
		return float64(v.Int())
	case v.CanUint():
		return float64(v.Uint())
	}
	return v.Float()
}
