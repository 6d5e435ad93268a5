// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package model

import (
	"context"

	"github.com/vulntor/eventkit/pkg/collection"
)

// Criteria selects models whose properties equal the given values.
// Values are matched with collection.DefaultCompare.
type Criteria map[string]any

// Mapper persists models.
type Mapper interface {
	// Save stores the model, assigning an id when it has none.
	Save(ctx context.Context, m *Model) error

	// Fetch returns the models matching criteria in storage order. skip and
	// limit bound the result; nil disables either bound.
	Fetch(ctx context.Context, criteria Criteria, skip, limit *int) (*collection.Collection[*Model], error)

	// FetchByID returns the model stored under id, or a *NotFoundError.
	FetchByID(ctx context.Context, id string) (*Model, error)

	// Remove deletes the stored model with the same id as m.
	Remove(ctx context.Context, m *Model) error
}
