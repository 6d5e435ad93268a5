// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package collection

import (
	"slices"

	"github.com/vulntor/eventkit/pkg/event"
)

// Add appends item unless a before-add listener cancels. The boolean reports
// whether the item was appended. An error from a before-add listener means
// nothing was appended; an error from an add listener means the item was.
func (c *Collection[T]) Add(item T) (bool, error) {
	ev, err := c.Fire(EventBeforeAdd, item)
	if err != nil {
		return false, err
	}
	if ev.IsPropagationStopped() {
		c.logger.Debug().Msg("add cancelled by listener")
		return false, nil
	}

	stored := c.decorateItem(item)
	c.items = append(c.items, stored)

	if _, err := c.Fire(EventAdd, stored); err != nil {
		return true, err
	}
	return true, nil
}

// Remove deletes the first element comparing equal to item. It reports
// false, without error, when no element matches or a listener cancels.
func (c *Collection[T]) Remove(item T) (bool, error) {
	i := c.IndexOf(item)
	if i == -1 {
		return false, nil
	}
	return c.Delete(i)
}

// Get returns the element at index; false when index is out of bounds.
func (c *Collection[T]) Get(index int) (T, bool) {
	if index < 0 || index >= len(c.items) {
		var zero T
		return zero, false
	}
	return c.items[index], true
}

// Has reports whether index addresses an element.
func (c *Collection[T]) Has(index int) bool {
	return index >= 0 && index < len(c.items)
}

// Set stores item at index. Index Append or Count() appends through Add.
// An index inside the collection overwrites the element: the old element is
// undecorated and the new one decorated. Any other index is an invalid
// argument.
func (c *Collection[T]) Set(index int, item T) (bool, error) {
	if index == Append || index == len(c.items) {
		return c.Add(item)
	}
	if index < 0 || index > len(c.items) {
		return false, event.NewInvalidArgumentError("index", "expected index within collection or append position")
	}

	old := c.items[index]
	ev, err := c.Fire(EventBeforeSet, index, item, old)
	if err != nil {
		return false, err
	}
	if ev.IsPropagationStopped() {
		c.logger.Debug().Int("index", index).Msg("set cancelled by listener")
		return false, nil
	}
	if index >= len(c.items) {
		return false, nil
	}

	c.undecorateItem(c.items[index])
	stored := c.decorateItem(item)
	c.items[index] = stored

	if _, err := c.Fire(EventSet, index, stored); err != nil {
		return true, err
	}
	return true, nil
}

// Delete removes the element at index. Out-of-bounds indexes are a no-op.
func (c *Collection[T]) Delete(index int) (bool, error) {
	if !c.Has(index) {
		return false, nil
	}

	item := c.items[index]
	ev, err := c.Fire(EventBeforeRemove, item, index)
	if err != nil {
		return false, err
	}
	if ev.IsPropagationStopped() {
		c.logger.Debug().Int("index", index).Msg("remove cancelled by listener")
		return false, nil
	}

	// A before-remove listener may have mutated the collection.
	index = c.locate(item, index)
	if index == -1 {
		return false, nil
	}
	c.items = slices.Delete(c.items, index, index+1)
	removed := c.undecorateItem(item)

	if _, err := c.Fire(EventRemove, removed, index); err != nil {
		return true, err
	}
	return true, nil
}

// locate returns hint when it still addresses item, else the first index
// comparing equal to item.
func (c *Collection[T]) locate(item T, hint int) int {
	if hint < len(c.items) && c.Compare(item, c.items[hint]) == 0 {
		return hint
	}
	return c.IndexOf(item)
}
