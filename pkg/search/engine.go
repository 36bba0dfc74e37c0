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

// Package search is the engine facade the storefront calls: it normalizes
// catalog batches, parses queries into intents, ranks items, and fronts the
// ranking with the per-region result cache.
//
// The engine performs no I/O. Catalog records arrive already fetched by the
// storage collaborator, and ranked results go back to the calling surface.
package search

import (
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/dealgrotto/catalog-engine/pkg/catalog"
	"github.com/dealgrotto/catalog-engine/pkg/catalog/attrs"
	"github.com/dealgrotto/catalog-engine/pkg/config"
	"github.com/dealgrotto/catalog-engine/pkg/intent"
	"github.com/dealgrotto/catalog-engine/pkg/ranker"
	"github.com/dealgrotto/catalog-engine/pkg/searchcache"
)

// Engine ties the normalization, intent, ranking, and caching layers
// together. It is safe for concurrent use; the cache is its only mutable
// state.
type Engine struct {
	cache *searchcache.Cache
	cfg   config.Values
}

// Result is one search response: the ranked window plus optional
// did-you-mean corrections when the window came up short.
type Result struct {
	Items       []catalog.ScoredItem
	Suggestions []ranker.Suggestion
}

// NewEngine creates an Engine. A nil clock uses the real clock; tests
// inject a fake one to exercise cache expiry.
func NewEngine(cfg config.Values, clock clockwork.Clock) *Engine {
	return &Engine{
		cfg:   cfg,
		cache: searchcache.New(cfg.Cache.TTL(), clock),
	}
}

// NormalizeBatch runs attribute extraction over a catalog snapshot,
// returning items with Attrs populated. Each item normalizes independently,
// so an interrupted batch leaves every processed item valid and the pass
// can simply be restarted.
func (e *Engine) NormalizeBatch(items []catalog.Item) []catalog.Item {
	normalized := make([]catalog.Item, len(items))
	for i, item := range items {
		item.Attrs = attrs.Extract(item.Name, "")
		normalized[i] = item
	}
	log.Debug().Int("count", len(items)).Msg("catalog batch normalized")
	return normalized
}

// Search ranks items against query, serving from the cache when a fresh
// entry exists for (region, language, query, kind). An empty item list
// yields an empty result, not an error.
func (e *Engine) Search(
	region, language, query string,
	kind catalog.Kind,
	items []catalog.Searchable,
) ([]catalog.ScoredItem, error) {
	key := searchcache.NewKey(region, language, query, kind)

	return e.cache.GetOrCompute(key, func() ([]catalog.ScoredItem, error) {
		it := intent.Parse(query)
		return ranker.Rank(filterKind(items, kind), it, e.cfg.Search.ResultLimit), nil
	})
}

// SearchWithSuggestions is Search plus did-you-mean corrections, attached
// only when the primary result set has fewer than the configured floor of
// items. The suggestion vocabulary is the display text of the searched
// items.
func (e *Engine) SearchWithSuggestions(
	region, language, query string,
	kind catalog.Kind,
	items []catalog.Searchable,
) (Result, error) {
	ranked, err := e.Search(region, language, query, kind, items)
	if err != nil {
		return Result{}, err
	}

	res := Result{Items: ranked}
	if len(ranked) < e.cfg.Search.SuggestionFloor {
		res.Suggestions = ranker.Suggestions(query, vocabulary(items), e.cfg.Search.SuggestionLimit)
	}
	return res, nil
}

// Invalidate drops all cached results for a region/language pair. The
// storage collaborator calls this after catalog writes.
func (e *Engine) Invalidate(region, language string) {
	e.cache.InvalidateRegion(region, language)
}

// InvalidateAll drops the entire cache.
func (e *Engine) InvalidateAll() {
	e.cache.Clear()
}

func filterKind(items []catalog.Searchable, kind catalog.Kind) []catalog.Searchable {
	if kind == catalog.KindAny {
		return items
	}
	filtered := make([]catalog.Searchable, 0, len(items))
	for _, item := range items {
		if item.ItemKind() == kind {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// vocabulary collects the word set of the items' display texts for the
// suggestion path.
func vocabulary(items []catalog.Searchable) []string {
	seen := make(map[string]bool)
	var words []string
	for _, item := range items {
		for _, w := range splitWords(item.DisplayText()) {
			if !seen[w] {
				seen[w] = true
				words = append(words, w)
			}
		}
	}
	return words
}

func splitWords(text string) []string {
	return strings.Fields(attrs.Normalize(text))
}
