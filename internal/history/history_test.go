// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type label string

func (l label) String() string { return string(l) }

func TestBuffer_NewestFirst(t *testing.T) {
	b := New[int](10)
	for i := 1; i <= 3; i++ {
		b.Record(i)
	}
	assert.Equal(t, []int{3, 2, 1}, b.Snapshot())
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, 10, b.Cap())
}

func TestBuffer_KeepsLastTen(t *testing.T) {
	b := New[int](DefaultCapacity)
	for i := 1; i <= 15; i++ {
		b.Record(i)
		assert.LessOrEqual(t, b.Len(), DefaultCapacity)
	}

	assert.Equal(t, []int{15, 14, 13, 12, 11, 10, 9, 8, 7, 6}, b.Snapshot())
}

func TestBuffer_EleventhEvictsFirst(t *testing.T) {
	b := New[string](DefaultCapacity)
	for i := 1; i <= 11; i++ {
		b.Record("r" + strconv.Itoa(i))
	}

	snap := b.Snapshot()
	require.Len(t, snap, 10)
	assert.Equal(t, "r11", snap[0])
	assert.Equal(t, "r2", snap[9])
	assert.NotContains(t, snap, "r1")
}

func TestBuffer_Clear(t *testing.T) {
	b := New[int](4)
	b.Clear()
	assert.Empty(t, b.Snapshot())

	for i := 0; i < 6; i++ {
		b.Record(i)
	}
	b.Clear()
	assert.Empty(t, b.Snapshot())
	assert.Equal(t, 0, b.Len())

	b.Clear()
	b.Record(42)
	assert.Equal(t, []int{42}, b.Snapshot())
}

func TestBuffer_SnapshotIsCopy(t *testing.T) {
	b := New[int](3)
	b.Record(1)
	snap := b.Snapshot()
	snap[0] = 99
	assert.Equal(t, []int{1}, b.Snapshot())
}

func TestNew_DefaultCapacity(t *testing.T) {
	assert.Equal(t, DefaultCapacity, New[int](0).Cap())
	assert.Equal(t, DefaultCapacity, New[int](-5).Cap())
}

func TestBuffer_Concurrent(t *testing.T) {
	b := New[int](10)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				b.Record(g*1000 + i)
				_ = b.Snapshot()
			}
		}(g)
	}
	wg.Wait()
	assert.Equal(t, 10, b.Len())
}

func TestNumbered(t *testing.T) {
	got := Numbered([]label{"newest", "older"})
	assert.Equal(t, []string{"1. newest", "2. older"}, got)
	assert.Empty(t, Numbered([]label{}))
}
