// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package model provides a property bag whose writes can be observed and
// vetoed through an embedded event emitter, and the Mapper contract used to
// persist such models.
package model

import (
	"maps"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vulntor/eventkit/pkg/collection"
	"github.com/vulntor/eventkit/pkg/event"
)

// Event names fired by a Model.
const (
	// EventBeforeSet fires with (name, new value, old value). Stopping it
	// cancels the write.
	EventBeforeSet = "before-set"
	// EventSet fires with (name, value) after a write.
	EventSet = "set"
)

// IDKey is the property holding a model's identity.
const IDKey = "id"

var validate = validator.New()

// Model is a named-property bag. Property names are non-empty strings or
// non-negative ints. It is not safe for concurrent use.
type Model struct {
	*event.Emitter

	properties map[any]any
}

// New creates a model holding data. A nil map yields an empty model.
func New(data map[any]any) (*Model, error) {
	m := &Model{
		Emitter:    event.NewEmitter(),
		properties: make(map[any]any, len(data)),
	}
	for k, v := range data {
		key, err := normalizeKey(k)
		if err != nil {
			return nil, err
		}
		m.properties[key] = v
	}
	return m, nil
}

// FromMap creates a model from string-keyed data.
func FromMap(data map[string]any) (*Model, error) {
	converted := make(map[any]any, len(data))
	for k, v := range data {
		converted[k] = v
	}
	return New(converted)
}

// normalizeKey validates k and converts integer kinds to int.
func normalizeKey(k any) (any, error) {
	switch v := k.(type) {
	case string:
		if err := validate.Var(v, "required"); err != nil {
			return nil, &InvalidKeyError{Key: k}
		}
		return v, nil
	case int:
		if err := validate.Var(v, "min=0"); err != nil {
			return nil, &InvalidKeyError{Key: k}
		}
		return v, nil
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return normalizeKey(toInt(v))
	}
	return nil, &InvalidKeyError{Key: k}
}

func toInt(v any) int {
	switch n := v.(type) {
	case int8:
		return int(n)
	case int16:
		return int(n)
	case int32:
		return int(n)
	case int64:
		return int(n)
	case uint:
		return int(n)
	case uint8:
		return int(n)
	case uint16:
		return int(n)
	case uint32:
		return int(n)
	case uint64:
		return int(n)
	}
	return -1
}

// Get returns the value of name, or nil when the property is not set.
func (m *Model) Get(name any) (any, error) {
	key, err := normalizeKey(name)
	if err != nil {
		return nil, err
	}
	return m.properties[key], nil
}

// Set writes value to name. A before-set listener can cancel the write, in
// which case Set reports false.
func (m *Model) Set(name any, value any) (bool, error) {
	key, err := normalizeKey(name)
	if err != nil {
		return false, err
	}

	ev, err := m.Fire(EventBeforeSet, key, value, m.properties[key])
	if err != nil {
		return false, err
	}
	if ev.IsPropagationStopped() {
		return false, nil
	}

	m.properties[key] = value

	if _, err := m.Fire(EventSet, key, value); err != nil {
		return true, err
	}
	return true, nil
}

// Has reports whether name is set. Invalid names are never set.
func (m *Model) Has(name any) bool {
	key, err := normalizeKey(name)
	if err != nil {
		return false
	}
	_, ok := m.properties[key]
	return ok
}

// ID returns the string identity of the model, if any.
func (m *Model) ID() (string, bool) {
	id, ok := m.properties[IDKey].(string)
	return id, ok && id != ""
}

// Keys returns the property names: integers ascending, then strings in
// lexicographic order.
func (m *Model) Keys() []any {
	keys := collection.FromSeq(maps.Keys(m.properties))
	return keys.Sort(compareKeys, true).Slice()
}

// Properties returns a copy of the property map.
func (m *Model) Properties() map[any]any {
	return maps.Clone(m.properties)
}

func compareKeys(a, b any) int {
	as, aIsString := a.(string)
	bs, bIsString := b.(string)
	switch {
	case aIsString && bIsString:
		return strings.Compare(as, bs)
	case aIsString:
		return 1
	case bIsString:
		return -1
	}
	return a.(int) - b.(int)
}
