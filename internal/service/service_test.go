// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/unitconv/internal/catalog"
	"github.com/jeranaias/unitconv/internal/config"
	"github.com/jeranaias/unitconv/internal/convert"
	"github.com/jeranaias/unitconv/internal/history"
	"github.com/jeranaias/unitconv/internal/session"
	"github.com/jeranaias/unitconv/internal/units"
)

type memJournal struct {
	mu      sync.Mutex
	entries map[string][]convert.Record
	err     error
}

func newMemJournal() *memJournal {
	return &memJournal{entries: make(map[string][]convert.Record)}
}

func (j *memJournal) Record(_ context.Context, sessionID string, rec convert.Record) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.err != nil {
		return j.err
	}
	j.entries[sessionID] = append(j.entries[sessionID], rec)
	return nil
}

func (j *memJournal) count(sessionID string) int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries[sessionID])
}

func newTestService(j Journal) *Service {
	return New(convert.New(units.NewRegistry()), catalog.Default(), j)
}

func TestConvert_RecordsHistoryAndJournal(t *testing.T) {
	ctx := context.Background()
	j := newMemJournal()
	svc := newTestService(j)
	sess := session.New(10)

	rec, err := svc.Convert(ctx, sess, convert.Request{
		Category: catalog.Temperature, From: "celsius", To: "fahrenheit", Value: 25,
	})
	require.NoError(t, err)
	assert.Equal(t, "25.0 celsius = 77.0000 fahrenheit", rec.String())

	rec, err = svc.Convert(ctx, sess, convert.Request{
		Category: catalog.Length, From: "kilometer", To: "meter", Value: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "1.0 kilometer = 1000.0000 meter", rec.String())

	assert.Equal(t, []string{
		"1. 1.0 kilometer = 1000.0000 meter",
		"2. 25.0 celsius = 77.0000 fahrenheit",
	}, svc.History(sess))
	assert.Equal(t, 2, j.count(sess.ID()))
}

func TestConvert_FailureLeavesHistoryUntouched(t *testing.T) {
	ctx := context.Background()
	j := newMemJournal()
	svc := newTestService(j)
	sess := session.New(10)

	_, err := svc.Convert(ctx, sess, convert.Request{
		Category: catalog.Length, From: "meter", To: "second", Value: 1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, convert.ErrNotPossible))
	assert.Equal(t, convert.UserMessage, convert.UserFacing(err))

	_, err = svc.Convert(ctx, sess, convert.Request{
		Category: catalog.Length, From: "meter", To: "foot", Value: -1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, convert.ErrInvalidRequest))

	assert.Empty(t, sess.History())
	assert.Equal(t, 0, j.count(sess.ID()))
}

func TestConvert_UnknownCategory(t *testing.T) {
	svc := newTestService(nil)
	_, err := svc.Convert(context.Background(), session.New(10), convert.Request{
		Category: "Luck", From: "meter", To: "foot", Value: 1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, convert.ErrInvalidRequest))
}

func TestConvert_EmptyCategoryUsesRegistry(t *testing.T) {
	svc := newTestService(nil)
	rec, err := svc.Convert(context.Background(), session.New(10), convert.Request{
		From: "bar", To: "pascal", Value: 1,
	})
	require.NoError(t, err)
	assert.InDelta(t, 100000, rec.Output, 1e-6)
}

func TestConvert_JournalFailureDoesNotFail(t *testing.T) {
	j := newMemJournal()
	j.err = errors.New("disk full")
	svc := newTestService(j)
	sess := session.New(10)

	_, err := svc.Convert(context.Background(), sess, convert.Request{
		Category: catalog.Mass, From: "kilogram", To: "gram", Value: 2,
	})
	require.NoError(t, err)
	assert.Len(t, sess.History(), 1)
}

func TestConvert_HistoryCapacity(t *testing.T) {
	svc := newTestService(nil)
	sess := session.New(10)

	for i := 1; i <= 11; i++ {
		_, err := svc.Convert(context.Background(), sess, convert.Request{
			Category: catalog.Length, From: "meter", To: "meter", Value: float64(i),
		})
		require.NoError(t, err)
	}

	hist := sess.History()
	require.Len(t, hist, 10)
	assert.Equal(t, 11.0, hist[0].Value)
	assert.Equal(t, 2.0, hist[9].Value)
}

func TestClearHistory(t *testing.T) {
	j := newMemJournal()
	svc := newTestService(j)
	sess := session.New(10)

	_, err := svc.Convert(context.Background(), sess, convert.Request{
		Category: catalog.Time, From: "hour", To: "minute", Value: 1,
	})
	require.NoError(t, err)

	svc.ClearHistory(context.Background(), sess)
	svc.ClearHistory(context.Background(), sess)
	assert.Empty(t, svc.History(sess))
	assert.Equal(t, 1, j.count(sess.ID()), "journal keeps cleared conversions")

	svc.ClearHistory(context.Background(), nil)
	assert.Nil(t, svc.History(nil))
}

func TestInferCategory(t *testing.T) {
	svc := newTestService(nil)

	tests := []struct {
		from, to string
		want     catalog.Category
		ok       bool
	}{
		{"celsius", "fahrenheit", catalog.Temperature, true},
		{"meter", "foot", catalog.Length, true},
		{"meter/second", "mile/hour", catalog.Speed, true},
		{"gigabyte", "psi", "", false},
		{"psi", "ounce", "", false},
		{"celsius", "meter", "", false},
		{"meter", "celsius", "", false},
		{"psi", "bar", "", false},
	}
	for _, tt := range tests {
		got, ok := svc.InferCategory(tt.from, tt.to)
		assert.Equal(t, tt.ok, ok, "%s -> %s", tt.from, tt.to)
		assert.Equal(t, tt.want, got, "%s -> %s", tt.from, tt.to)
	}
}

func TestConvert_InferredMixedPairFails(t *testing.T) {
	ctx := context.Background()
	j := newMemJournal()
	svc := newTestService(j)
	sess := session.New(10)

	pairs := [][2]string{{"celsius", "meter"}, {"meter", "celsius"}, {"kelvin", "kilogram"}}
	for _, p := range pairs {
		cat, _ := svc.InferCategory(p[0], p[1])
		_, err := svc.Convert(ctx, sess, convert.Request{
			Category: cat, From: p[0], To: p[1], Value: 5,
		})
		require.Error(t, err, "%s -> %s", p[0], p[1])
		assert.True(t, errors.Is(err, convert.ErrNotPossible), "%s -> %s", p[0], p[1])
		assert.Equal(t, convert.UserMessage, convert.UserFacing(err))
	}

	assert.Empty(t, sess.History())
	assert.Equal(t, 0, j.count(sess.ID()))
}

func TestSetPrecision(t *testing.T) {
	svc := newTestService(nil)
	svc.SetPrecision(2)
	assert.Equal(t, 2, svc.Converter().Precision())

	rec, err := svc.Convert(context.Background(), session.New(10), convert.Request{
		Category: catalog.Temperature, From: "fahrenheit", To: "celsius", Value: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, "100.0 fahrenheit = 37.78 celsius", rec.String())
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Converter.Precision = 1
	cfg.Units = []config.UnitConfig{{Name: "furlong", Factor: 220, Reference: "yard", Symbols: []string{"fur"}}}
	cfg.Categories = map[string][]string{"Racing": {"furlong", "mile", "meter"}}

	svc, err := FromConfig(cfg, nil)
	require.NoError(t, err)
	assert.False(t, svc.HasJournal())

	cats := svc.Categories()
	assert.Equal(t, catalog.Category("Racing"), cats[len(cats)-1])

	rec, err := svc.Convert(context.Background(), session.New(10), convert.Request{
		Category: "Racing", From: "mile", To: "furlong", Value: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "1.0 mile = 8.0 furlong", rec.String())
}

func TestFromConfig_Errors(t *testing.T) {
	cfg := config.Default()
	cfg.Units = []config.UnitConfig{{Name: "meter", Reference: "foot"}}
	_, err := FromConfig(cfg, nil)
	assert.Error(t, err)

	cfg = config.Default()
	cfg.Categories = map[string][]string{"Mixed": {"meter", "second"}}
	_, err = FromConfig(cfg, nil)
	assert.Error(t, err)

	cfg = config.Default()
	cfg.Categories = map[string][]string{"Bogus": {"flurble"}}
	_, err = FromConfig(cfg, nil)
	assert.Error(t, err)
}

func TestConvert_ConcurrentSessions(t *testing.T) {
	j := newMemJournal()
	svc := newTestService(j)

	var wg sync.WaitGroup
	sessions := make([]*session.Session, 8)
	for i := range sessions {
		sessions[i] = session.New(history.DefaultCapacity)
		wg.Add(1)
		go func(sess *session.Session) {
			defer wg.Done()
			for k := 0; k < 25; k++ {
				_, err := svc.Convert(context.Background(), sess, convert.Request{
					Category: catalog.Area, From: "hectare", To: "acre", Value: float64(k),
				})
				assert.NoError(t, err)
			}
		}(sessions[i])
	}
	wg.Wait()

	for _, sess := range sessions {
		assert.Len(t, sess.History(), history.DefaultCapacity)
		assert.Equal(t, 25, j.count(sess.ID()))
	}
}
