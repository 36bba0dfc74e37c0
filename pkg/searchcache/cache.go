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

// Package searchcache holds ranked result sets per region/locale for a
// bounded time window so repeated queries skip recomputation.
//
// The cache is the only mutable shared state in the engine. It is sharded
// so readers of unrelated keys never contend, and uses singleflight so a
// cold key is computed exactly once no matter how many goroutines miss on
// it concurrently.
package searchcache

import (
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"

	"github.com/dealgrotto/catalog-engine/pkg/catalog"
	"github.com/dealgrotto/catalog-engine/pkg/catalog/attrs"
	"github.com/dealgrotto/catalog-engine/pkg/helpers/syncutil"
)

// DefaultTTL is the freshness window applied when New is given a
// non-positive TTL.
const DefaultTTL = 5 * time.Minute

const shardCount = 16

// Key identifies one cached result set. Query is stored normalized so
// trivially different spellings of the same query share an entry.
type Key struct {
	Region   string
	Language string
	Query    string
	Kind     catalog.Kind
}

// NewKey builds a Key with the query normalized.
func NewKey(region, language, query string, kind catalog.Kind) Key {
	return Key{
		Region:   strings.ToLower(region),
		Language: strings.ToLower(language),
		Query:    attrs.Normalize(query),
		Kind:     kind,
	}
}

func (k Key) String() string {
	return fmt.Sprintf("%s|%s|%s|%s", k.Region, k.Language, k.Query, k.Kind)
}

type entry struct {
	createdAt time.Time
	results   []catalog.ScoredItem
}

type shard struct {
	entries map[Key]entry
	mu      syncutil.RWMutex
}

// Cache is a TTL-bounded result cache with explicit invalidation. Entries
// are evicted lazily on lookup; an entry older than the TTL is never
// served. A stored entry is only visible once its full result vector is
// written, so readers never observe a torn entry.
type Cache struct {
	clock  clockwork.Clock
	shards [shardCount]*shard
	group  singleflight.Group
	ttl    time.Duration
}

// New creates a Cache with the given TTL. A nil clock falls back to the
// real clock; tests inject a fake one to step through TTL expiry.
func New(ttl time.Duration, clock clockwork.Clock) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	c := &Cache{ttl: ttl, clock: clock}
	for i := range c.shards {
		c.shards[i] = &shard{entries: make(map[Key]entry)}
	}
	return c
}

func (c *Cache) shardFor(k Key) *shard {
	h := fnv.New64a()
	_, _ = h.Write([]byte(k.String()))
	return c.shards[h.Sum64()%shardCount]
}

// GetOrCompute returns the cached results for key when a fresh entry
// exists, otherwise runs compute, stores its result, and returns it.
//
// Concurrent misses on the same key are collapsed to a single compute call;
// misses on different keys compute independently. Compute errors are
// returned to every waiter and never cached.
func (c *Cache) GetOrCompute(key Key, compute func() ([]catalog.ScoredItem, error)) ([]catalog.ScoredItem, error) {
	sh := c.shardFor(key)

	sh.mu.RLock()
	e, ok := sh.entries[key]
	sh.mu.RUnlock()
	if ok && c.fresh(e) {
		return e.results, nil
	}

	results, err, _ := c.group.Do(key.String(), func() (any, error) {
		// Another waiter may have stored the entry while this goroutine
		// queued on the flight group.
		sh.mu.RLock()
		e, ok := sh.entries[key]
		sh.mu.RUnlock()
		if ok && c.fresh(e) {
			return e.results, nil
		}

		computed, err := compute()
		if err != nil {
			return nil, fmt.Errorf("compute results for %q: %w", key.String(), err)
		}

		sh.mu.Lock()
		sh.entries[key] = entry{results: computed, createdAt: c.clock.Now()}
		sh.mu.Unlock()

		return computed, nil
	})
	if err != nil {
		return nil, err
	}

	scored, _ := results.([]catalog.ScoredItem)
	return scored, nil
}

func (c *Cache) fresh(e entry) bool {
	return c.clock.Now().Sub(e.createdAt) < c.ttl
}

// Invalidate removes a single entry.
func (c *Cache) Invalidate(key Key) {
	sh := c.shardFor(key)
	sh.mu.Lock()
	delete(sh.entries, key)
	sh.mu.Unlock()
}

// InvalidateRegion removes every entry for a region/language pair. The
// storage collaborator calls this after writes that touch one locale.
func (c *Cache) InvalidateRegion(region, language string) {
	region = strings.ToLower(region)
	language = strings.ToLower(language)

	for _, sh := range c.shards {
		sh.mu.Lock()
		for k := range sh.entries {
			if k.Region == region && k.Language == language {
				delete(sh.entries, k)
			}
		}
		sh.mu.Unlock()
	}
}

// Clear removes every entry.
func (c *Cache) Clear() {
	for _, sh := range c.shards {
		sh.mu.Lock()
		sh.entries = make(map[Key]entry)
		sh.mu.Unlock()
	}
}

// Len returns the number of stored entries, including any not yet lazily
// evicted. Intended for tests.
func (c *Cache) Len() int {
	total := 0
	for _, sh := range c.shards {
		sh.mu.RLock()
		total += len(sh.entries)
		sh.mu.RUnlock()
	}
	return total
}
