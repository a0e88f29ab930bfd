// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history provides the bounded, newest-first conversion history.
package history

import (
	"fmt"
	"strconv"
	"sync"
)

// DefaultCapacity is the number of entries a history keeps.
const DefaultCapacity = 10

// EmptyMessage is shown in place of an empty history.
const EmptyMessage = "No conversions yet."

// Buffer is a fixed-capacity ring of entries, newest first. Recording into
// a full buffer drops the oldest entry. It is safe for concurrent use.
type Buffer[T any] struct {
	mu    sync.Mutex
	ring  []T
	head  int // index of the newest entry
	count int
}

// New returns an empty buffer. A capacity below 1 uses DefaultCapacity.
func New[T any](capacity int) *Buffer[T] {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Buffer[T]{ring: make([]T, capacity), head: -1}
}

// Record inserts entry as the newest.
func (b *Buffer[T]) Record(entry T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.head = (b.head + 1) % len(b.ring)
	b.ring[b.head] = entry
	if b.count < len(b.ring) {
		b.count++
	}
}

// Clear removes every entry.
func (b *Buffer[T]) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	clear(b.ring)
	b.head = -1
	b.count = 0
}

// Snapshot returns a copy of the entries, newest first.
func (b *Buffer[T]) Snapshot() []T {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]T, b.count)
	for i := 0; i < b.count; i++ {
		idx := (b.head - i + len(b.ring)) % len(b.ring)
		out[i] = b.ring[idx]
	}
	return out
}

// Len returns the number of stored entries.
func (b *Buffer[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}

// Cap returns the capacity.
func (b *Buffer[T]) Cap() int {
	return len(b.ring)
}

// Numbered renders entries as "1. first", "2. second", ...
func Numbered[T fmt.Stringer](entries []T) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = strconv.Itoa(i+1) + ". " + e.String()
	}
	return out
}
