// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package dataset loads item sequences from YAML or JSON documents into
// collections and runs query pipelines over them.
//
// A document is either a top-level sequence or a mapping with an "items"
// sequence:
//
//	items:
//	  - {name: web, port: 80}
//	  - {name: ssh, port: 22}
//
// Mappings are normalized to map[string]any so items can be addressed with
// dotted field paths.
package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/vulntor/eventkit/pkg/collection"
)

// ErrInvalidDocument is returned when a document holds neither a sequence
// nor a mapping with an "items" sequence.
var ErrInvalidDocument = errors.New("invalid dataset document")

// Decode reads a YAML or JSON document from r and returns its items.
// An empty document yields no items.
func Decode(r io.Reader) ([]any, error) {
	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []any{}, nil
		}
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	switch v := normalize(doc).(type) {
	case nil:
		return []any{}, nil
	case []any:
		return v, nil
	case map[string]any:
		items, ok := v["items"]
		if !ok {
			return nil, fmt.Errorf("%w: mapping without items key", ErrInvalidDocument)
		}
		seq, ok := items.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: items is %T, expected sequence", ErrInvalidDocument, items)
		}
		return seq, nil
	default:
		return nil, fmt.Errorf("%w: top-level %T", ErrInvalidDocument, v)
	}
}

// DecodeBytes is Decode over an in-memory document.
func DecodeBytes(data []byte) ([]any, error) {
	return Decode(bytes.NewReader(data))
}

// Load reads the document at path into a new collection built with opts.
func Load(path string, opts ...collection.Option[any]) (*collection.Collection[any], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	items, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return collection.New(items, opts...), nil
}

// normalize converts nested mappings to map[string]any.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalize(val)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[cast.ToString(k)] = normalize(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = normalize(val)
		}
		return t
	}
	return v
}

// Field resolves a dotted path such as "service.port" against item. An empty
// path returns item itself.
func Field(item any, path string) (any, bool) {
	if path == "" {
		return item, true
	}
	cur := item
	for _, part := range strings.Split(path, ".") {
		m, err := cast.ToStringMapE(cur)
		if err != nil {
			return nil, false
		}
		next, ok := m[part]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// ParseScalar converts a command-line value to the most specific scalar it
// represents: integer, float, boolean, then string.
func ParseScalar(s string) any {
	if i, err := cast.ToInt64E(s); err == nil {
		return i
	}
	if f, err := cast.ToFloat64E(s); err == nil {
		return f
	}
	switch strings.ToLower(s) {
	case "true", "false":
		return cast.ToBool(s)
	case "null", "~":
		return nil
	}
	return s
}
