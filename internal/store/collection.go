// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Collection is a list of records of type T kept as one JSON array under a
// single key of a KeyValueStore.
//
// Every mutation is a read-modify-write of the whole array. Two writers
// racing on the same key lose one of the updates.
type Collection[T any] struct {
	store KeyValueStore
	key   string
}

// NewCollection binds a collection of T to key in kv.
func NewCollection[T any](kv KeyValueStore, key string) *Collection[T] {
	return &Collection[T]{store: kv, key: key}
}

// Key returns the store key the collection lives under.
func (c *Collection[T]) Key() string {
	return c.key
}

// LoadAll returns every stored record. An absent key yields an empty slice.
func (c *Collection[T]) LoadAll(ctx context.Context) ([]T, error) {
	raw, err := c.store.Get(ctx, c.key)
	if errors.Is(err, ErrKeyNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.key, err)
	}

	var items []T
	if err = json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptedCollection, c.key, err)
	}
	if items == nil {
		items = []T{}
	}

	return items, nil
}

// AppendAndSave loads the collection, appends item and writes it back.
func (c *Collection[T]) AppendAndSave(ctx context.Context, item T) error {
	items, err := c.LoadAll(ctx)
	if err != nil {
		return err
	}

	return c.SaveAll(ctx, append(items, item))
}

// SaveAll replaces the stored collection with items.
func (c *Collection[T]) SaveAll(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}

	if err = c.store.Set(ctx, c.key, string(raw)); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}

	return nil
}
