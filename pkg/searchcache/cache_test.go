// Catalog Engine
// Copyright (c) 2026 The Dealgrotto Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Catalog Engine.
//
// Catalog Engine is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Catalog Engine is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Catalog Engine.  If not, see <http://www.gnu.org/licenses/>.

package searchcache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/dealgrotto/catalog-engine/pkg/catalog"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func scoredFixture(id string, score float64) []catalog.ScoredItem {
	return []catalog.ScoredItem{
		{Item: &catalog.Item{ID: id, Name: id}, Score: score},
	}
}

func TestNewKey_NormalizesQuery(t *testing.T) {
	a := NewKey("UK", "EN", "  Samsung   PHONE!  ", catalog.KindProduct)
	b := NewKey("uk", "en", "samsung phone", catalog.KindProduct)

	assert.Equal(t, a, b, "spelling variants of the same query share one entry")
	assert.Equal(t, "uk|en|samsung phone|product", a.String())
}

func TestGetOrCompute_HitWithinTTL(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := New(5*time.Minute, clock)
	key := NewKey("uk", "en", "samsung", catalog.KindAny)

	var calls atomic.Int64
	compute := func() ([]catalog.ScoredItem, error) {
		calls.Add(1)
		return scoredFixture("s24", 800), nil
	}

	first, err := c.GetOrCompute(key, compute)
	require.NoError(t, err)
	second, err := c.GetOrCompute(key, compute)
	require.NoError(t, err)

	assert.Equal(t, int64(1), calls.Load(), "second lookup within the TTL is a hit")
	assert.Equal(t, first, second)
}

func TestGetOrCompute_RecomputesAfterTTL(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := New(5*time.Minute, clock)
	key := NewKey("uk", "en", "samsung", catalog.KindAny)

	var calls atomic.Int64
	compute := func() ([]catalog.ScoredItem, error) {
		calls.Add(1)
		return scoredFixture("s24", 800), nil
	}

	_, err := c.GetOrCompute(key, compute)
	require.NoError(t, err)

	clock.Advance(5*time.Minute + time.Second)

	_, err = c.GetOrCompute(key, compute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), calls.Load(), "an expired entry is never served")
	assert.Equal(t, 1, c.Len(), "recompute overwrites the stale entry in place")
}

func TestGetOrCompute_ErrorsNotCached(t *testing.T) {
	c := New(time.Minute, clockwork.NewFakeClock())
	key := NewKey("uk", "en", "flaky", catalog.KindAny)
	boom := errors.New("store unavailable")

	var calls atomic.Int64
	_, err := c.GetOrCompute(key, func() ([]catalog.ScoredItem, error) {
		calls.Add(1)
		return nil, boom
	})
	require.ErrorIs(t, err, boom, "compute errors are wrapped, not swallowed")
	assert.Equal(t, 0, c.Len(), "failed computes leave no entry behind")

	got, err := c.GetOrCompute(key, func() ([]catalog.ScoredItem, error) {
		calls.Add(1)
		return scoredFixture("ok", 100), nil
	})
	require.NoError(t, err, "the next lookup retries instead of replaying the error")
	assert.Len(t, got, 1)
	assert.Equal(t, int64(2), calls.Load())
}

func TestGetOrCompute_ConcurrentMissesCollapse(t *testing.T) {
	c := New(time.Minute, clockwork.NewFakeClock())
	key := NewKey("uk", "en", "samsung", catalog.KindAny)

	var calls atomic.Int64
	release := make(chan struct{})
	compute := func() ([]catalog.ScoredItem, error) {
		calls.Add(1)
		<-release
		return scoredFixture("s24", 800), nil
	}

	const waiters = 8
	var wg sync.WaitGroup
	results := make([][]catalog.ScoredItem, waiters)
	for i := range waiters {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := c.GetOrCompute(key, compute)
			assert.NoError(t, err)
			results[i] = got
		}()
	}

	// Let every goroutine reach the flight group before the compute returns.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int64(1), calls.Load(), "concurrent misses on one key compute once")
	for i := 1; i < waiters; i++ {
		assert.Equal(t, results[0], results[i], "every waiter sees the same result")
	}
}

func TestGetOrCompute_IndependentKeys(t *testing.T) {
	c := New(time.Minute, clockwork.NewFakeClock())

	var calls atomic.Int64
	compute := func() ([]catalog.ScoredItem, error) {
		calls.Add(1)
		return scoredFixture("x", 1), nil
	}

	_, err := c.GetOrCompute(NewKey("uk", "en", "samsung", catalog.KindAny), compute)
	require.NoError(t, err)
	_, err = c.GetOrCompute(NewKey("de", "de", "samsung", catalog.KindAny), compute)
	require.NoError(t, err)
	_, err = c.GetOrCompute(NewKey("uk", "en", "samsung", catalog.KindStore), compute)
	require.NoError(t, err)

	assert.Equal(t, int64(3), calls.Load(), "region, language, and kind are all part of the key")
	assert.Equal(t, 3, c.Len())
}

func TestInvalidate(t *testing.T) {
	c := New(time.Minute, clockwork.NewFakeClock())
	key := NewKey("uk", "en", "samsung", catalog.KindAny)

	var calls atomic.Int64
	compute := func() ([]catalog.ScoredItem, error) {
		calls.Add(1)
		return scoredFixture("s24", 800), nil
	}

	_, err := c.GetOrCompute(key, compute)
	require.NoError(t, err)

	c.Invalidate(key)
	assert.Equal(t, 0, c.Len())

	_, err = c.GetOrCompute(key, compute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), calls.Load(), "invalidation forces the next lookup to recompute")
}

func TestInvalidateRegion(t *testing.T) {
	c := New(time.Minute, clockwork.NewFakeClock())

	compute := func() ([]catalog.ScoredItem, error) {
		return scoredFixture("x", 1), nil
	}
	keys := []Key{
		NewKey("uk", "en", "samsung", catalog.KindAny),
		NewKey("uk", "en", "apple", catalog.KindAny),
		NewKey("de", "de", "samsung", catalog.KindAny),
	}
	for _, k := range keys {
		_, err := c.GetOrCompute(k, compute)
		require.NoError(t, err)
	}

	c.InvalidateRegion("UK", "EN")

	assert.Equal(t, 1, c.Len(), "only the named locale is dropped")
	fresh := 0
	_, err := c.GetOrCompute(keys[2], func() ([]catalog.ScoredItem, error) {
		fresh++
		return nil, errors.New("unexpected recompute")
	})
	require.NoError(t, err)
	assert.Zero(t, fresh, "other locales keep their entries")
}

func TestClear(t *testing.T) {
	c := New(time.Minute, clockwork.NewFakeClock())

	compute := func() ([]catalog.ScoredItem, error) {
		return scoredFixture("x", 1), nil
	}
	for _, q := range []string{"samsung", "apple", "sony", "lg"} {
		_, err := c.GetOrCompute(NewKey("uk", "en", q, catalog.KindAny), compute)
		require.NoError(t, err)
	}
	require.Equal(t, 4, c.Len())

	c.Clear()

	assert.Equal(t, 0, c.Len())
}

func TestNew_Defaults(t *testing.T) {
	c := New(0, nil)

	require.NotNil(t, c)
	assert.Equal(t, DefaultTTL, c.ttl, "non-positive TTL falls back to the default")
	assert.NotNil(t, c.clock, "nil clock falls back to the real clock")
}
