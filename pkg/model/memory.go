// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package model

import (
	"context"
	"fmt"
	"maps"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vulntor/eventkit/pkg/collection"
	"github.com/vulntor/eventkit/pkg/event"
)

// Event names fired by a MemoryMapper. Each carries the model as argument;
// stopping a "before" event makes the operation return ErrCancelled.
const (
	EventBeforeSave   = "before-save"
	EventSave         = "save"
	EventBeforeRemove = "before-remove"
	EventRemove       = "remove"
)

// MemoryMapper is an in-memory Mapper. Models are stored as property
// snapshots, so fetched models are independent copies. It is not safe for
// concurrent use.
type MemoryMapper struct {
	*event.Emitter

	records map[string]map[any]any
	ids     *collection.Collection[string]
	logger  zerolog.Logger
}

var _ Mapper = (*MemoryMapper)(nil)

// NewMemoryMapper creates an empty MemoryMapper that does not log.
func NewMemoryMapper() *MemoryMapper {
	return NewMemoryMapperWithLogger(zerolog.Nop())
}

// NewMemoryMapperWithLogger creates an empty MemoryMapper logging to logger.
func NewMemoryMapperWithLogger(logger zerolog.Logger) *MemoryMapper {
	return &MemoryMapper{
		Emitter: event.NewEmitter(event.WithLogger(logger)),
		records: make(map[string]map[any]any),
		ids:     collection.New[string](nil, collection.WithLogger[string](logger)),
		logger:  logger.With().Str("component", "model.mapper").Logger(),
	}
}

// Save stores a snapshot of m. A model without id is assigned a random UUID
// through m.Set once before-save has passed, so the model's own before-set
// listeners can veto it and a cancelled save leaves m untouched.
func (mm *MemoryMapper) Save(ctx context.Context, m *Model) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m == nil {
		return event.NewInvalidArgumentError("model", "expected non-nil model")
	}

	if m.Has(IDKey) {
		if _, ok := m.ID(); !ok {
			return event.NewInvalidArgumentError(IDKey, "expected non-empty string id")
		}
	}

	ev, err := mm.Fire(EventBeforeSave, m)
	if err != nil {
		return err
	}
	if ev.IsPropagationStopped() {
		return fmt.Errorf("save: %w", ErrCancelled)
	}

	id, err := mm.ensureID(m)
	if err != nil {
		return err
	}

	mm.records[id] = maps.Clone(m.properties)
	if !mm.ids.Contains(id) {
		if _, err := mm.ids.Add(id); err != nil {
			return err
		}
	}
	mm.logger.Debug().Str("id", id).Msg("model saved")

	_, err = mm.Fire(EventSave, m)
	return err
}

func (mm *MemoryMapper) ensureID(m *Model) (string, error) {
	if id, ok := m.ID(); ok {
		return id, nil
	}

	id := uuid.NewString()
	applied, err := m.Set(IDKey, id)
	if err != nil {
		return "", err
	}
	if !applied {
		return "", fmt.Errorf("assign id: %w", ErrCancelled)
	}
	return id, nil
}

// Fetch returns fresh copies of the stored models matching criteria, in the
// order they were first saved. A skip or limit larger than the match count is
// clamped; negative values are invalid.
func (mm *MemoryMapper) Fetch(ctx context.Context, criteria Criteria, skip, limit *int) (*collection.Collection[*Model], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if skip != nil && *skip < 0 {
		return nil, event.NewInvalidArgumentError("skip", "expected non-negative value")
	}
	if limit != nil && *limit < 0 {
		return nil, event.NewInvalidArgumentError("limit", "expected non-negative value")
	}

	var matches []*Model
	for id := range mm.ids.Values() {
		props := mm.records[id]
		if !matchesCriteria(props, criteria) {
			continue
		}
		m, err := New(maps.Clone(props))
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}

	result := collection.New(matches, collection.WithComparator(compareByID))
	if skip != nil {
		var err error
		if result, err = result.Skip(min(*skip, result.Count())); err != nil {
			return nil, err
		}
	}
	if limit != nil {
		var err error
		if result, err = result.Limit(min(*limit, result.Count())); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// FetchByID returns a fresh copy of the model stored under id.
func (mm *MemoryMapper) FetchByID(ctx context.Context, id string) (*Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	props, ok := mm.records[id]
	if !ok {
		return nil, NewNotFoundError(id)
	}
	return New(maps.Clone(props))
}

// Remove deletes the model stored under m's id.
func (mm *MemoryMapper) Remove(ctx context.Context, m *Model) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m == nil {
		return event.NewInvalidArgumentError("model", "expected non-nil model")
	}
	id, ok := m.ID()
	if !ok {
		return event.NewInvalidArgumentError(IDKey, "model has no id")
	}
	if _, stored := mm.records[id]; !stored {
		return NewNotFoundError(id)
	}

	ev, err := mm.Fire(EventBeforeRemove, m)
	if err != nil {
		return err
	}
	if ev.IsPropagationStopped() {
		return fmt.Errorf("remove %s: %w", id, ErrCancelled)
	}

	delete(mm.records, id)
	if _, err := mm.ids.Remove(id); err != nil {
		return err
	}
	mm.logger.Debug().Str("id", id).Msg("model removed")

	_, err = mm.Fire(EventRemove, m)
	return err
}

// Count returns the number of stored models.
func (mm *MemoryMapper) Count() int {
	return mm.ids.Count()
}

func matchesCriteria(props map[any]any, criteria Criteria) bool {
	for name, want := range criteria {
		got, ok := props[name]
		if !ok || collection.DefaultCompare(got, want) != 0 {
			return false
		}
	}
	return true
}

func compareByID(a, b *Model) int {
	ida, _ := a.ID()
	idb, _ := b.ID()
	return collection.DefaultCompare(ida, idb)
}
