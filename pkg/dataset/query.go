// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package dataset

import (
	"fmt"
	"strings"

	"github.com/vulntor/eventkit/pkg/collection"
	"github.com/vulntor/eventkit/pkg/event"
)

// Condition matches items whose Field equals Value under
// collection.DefaultCompare.
type Condition struct {
	Field string
	Value any
}

// ParseCondition parses "field=value". The value is converted with
// ParseScalar, so "port=80" matches the integer 80.
func ParseCondition(expr string) (Condition, error) {
	field, value, ok := strings.Cut(expr, "=")
	field = strings.TrimSpace(field)
	if !ok || field == "" {
		return Condition{}, event.NewInvalidArgumentError("where", fmt.Sprintf("expected field=value, got %q", expr))
	}
	return Condition{Field: field, Value: ParseScalar(strings.TrimSpace(value))}, nil
}

// Match reports whether item satisfies the condition.
func (c Condition) Match(item any) bool {
	v, ok := Field(item, c.Field)
	return ok && collection.DefaultCompare(v, c.Value) == 0
}

// Query is a collection pipeline: filter, sort, unique, skip, then limit.
type Query struct {
	Where []Condition

	// SortBy is a dotted field path. Empty compares whole items.
	SortBy    string
	Sort      bool
	Ascending bool

	// Unique drops items equal to an earlier one under the SortBy key.
	Unique bool

	Skip int
	// Limit caps the result size; collection.NoLimit disables it.
	Limit int
}

// NewQuery returns a query that keeps every item in its original order.
func NewQuery() Query {
	return Query{Ascending: true, Limit: collection.NoLimit}
}

// Validate checks the skip and limit bounds.
func (q Query) Validate() error {
	if q.Skip < 0 {
		return event.NewInvalidArgumentError("skip", "expected non-negative value")
	}
	if q.Limit < collection.NoLimit {
		return event.NewInvalidArgumentError("limit", "expected non-negative value or NoLimit")
	}
	return nil
}

// Run applies the query to src and returns the resulting collection. src is
// left unchanged. Skip and Limit are clamped to the number of items left.
func (q Query) Run(src *collection.Collection[any]) (*collection.Collection[any], error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	out := src
	if len(q.Where) > 0 {
		out = out.Filter(func(item any, _ int, _ *collection.Collection[any]) bool {
			for _, cond := range q.Where {
				if !cond.Match(item) {
					return false
				}
			}
			return true
		})
	}

	byKey := q.comparator()
	if q.Sort {
		out = out.Sort(byKey, q.Ascending)
	}
	if q.Unique {
		out = out.Unique(byKey)
	}

	var err error
	if out, err = out.Skip(min(q.Skip, out.Count())); err != nil {
		return nil, err
	}
	if q.Limit != collection.NoLimit {
		if out, err = out.Limit(min(q.Limit, out.Count())); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (q Query) comparator() collection.Comparator[any] {
	if q.SortBy == "" {
		return nil
	}
	return func(a, b any) int {
		va, _ := Field(a, q.SortBy)
		vb, _ := Field(b, q.SortBy)
		return collection.DefaultCompare(va, vb)
	}
}
