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

// Package ranker scores catalog items against a parsed query intent using
// an additive, auditable multi-signal function and returns a stable,
// descending ordering. Scoring is pure; the package holds no state.
package ranker

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/dealgrotto/catalog-engine/pkg/catalog"
	"github.com/dealgrotto/catalog-engine/pkg/catalog/attrs"
	"github.com/dealgrotto/catalog-engine/pkg/intent"
	"github.com/dealgrotto/catalog-engine/pkg/textmetric"
)

// Relevance bonuses. All signals are additive, never multiplicative, so a
// final score decomposes into its contributing bonuses. The values are
// empirical tuning constants; their relative ordering (exact > prefix >
// contains > combined > fuzzy) is load-bearing and pinned by tests, so
// re-tune only against those fixtures.
const (
	scoreExactMatch    = 1000
	scorePrefixMatch   = 800
	scoreContainsMatch = 600
	scoreCombinedMatch = 400
	scorePerTerm       = 100

	fuzzyMaxBonus        = 200
	fuzzyMinTokenLen     = 3
	fuzzySimilarityFloor = 0.7

	bonusCapacity = 30
	bonusColor    = 25
	bonusSize     = 20

	bonusFeatured  = 50
	bonusExclusive = 30
	bonusVerified  = 20

	popularityDivisor = 10
	popularityCap     = 100
	relatedFactor     = 2
	relatedCap        = 50
)

// DefaultLimit is the result window used when the caller passes limit <= 0.
const DefaultLimit = 50

// Rank scores items against the intent, drops zero scores, sorts descending
// with stable tie order, and truncates to limit. Truncation happens only
// after the full set is scored and sorted; a late item can legitimately
// outscore an early one.
//
// An empty query degrades to a deterministic default ordering by business
// signals in which nothing is excluded.
func Rank(items []catalog.Searchable, it intent.Intent, limit int) []catalog.ScoredItem {
	if limit <= 0 {
		limit = DefaultLimit
	}

	if it.Normalized == "" {
		return defaultOrder(items, limit)
	}

	scored := make([]catalog.ScoredItem, 0, len(items))
	for _, item := range items {
		if score := scoreItem(item, it); score > 0 {
			scored = append(scored, catalog.ScoredItem{Item: item, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// scoreItem computes the additive relevance score of one item. Missing
// fields contribute zero to their sub-scores; malformed items never fail.
func scoreItem(item catalog.Searchable, it intent.Intent) float64 {
	name := attrs.Normalize(item.DisplayText())
	combined := combinedText(item, name)
	query := it.Normalized

	var score float64

	// Containment tiers are mutually exclusive; an exact match is not also
	// rewarded as a prefix and substring match.
	switch {
	case name == query:
		score += scoreExactMatch
	case strings.HasPrefix(name, query):
		score += scorePrefixMatch
	case strings.Contains(name, query):
		score += scoreContainsMatch
	case strings.Contains(combined, query):
		score += scoreCombinedMatch
	default:
		score += fuzzyFallback(name, query)
	}

	// Expanded-term overlap, uncapped: a query matching many synonyms
	// legitimately ranks higher.
	for _, term := range it.Terms {
		if term != query && strings.Contains(combined, term) {
			score += scorePerTerm
		}
	}

	score += attributeBonuses(item, it, combined)
	score += businessScore(item)

	return score
}

// fuzzyFallback handles single-token queries with no containment anywhere:
// typo recovery against the tokens of the primary display text, gated by a
// similarity floor so noise never outranks real matches.
func fuzzyFallback(name, query string) float64 {
	if strings.ContainsRune(query, ' ') || utf8.RuneCountInString(query) < fuzzyMinTokenLen {
		return 0
	}

	bestSim := 0.0
	bestToken := ""
	for _, token := range strings.Fields(name) {
		if sim := textmetric.SimilarityRatio(query, token); sim > bestSim {
			bestSim = sim
			bestToken = token
		}
	}

	if bestSim < fuzzySimilarityFloor {
		return 0
	}

	log.Debug().
		Str("query", query).
		Str("token", bestToken).
		Float64("similarity", bestSim).
		Msg("fuzzy fallback fired")

	return float64(textmetric.MatchScore(query, bestToken)) * fuzzyMaxBonus / 100
}

// attributeBonuses rewards items whose extracted attributes (or raw text)
// match the attribute hints parsed from the query.
func attributeBonuses(item catalog.Searchable, it intent.Intent, combined string) float64 {
	a := item.Attributes()

	var bonus float64
	if hintMatches(it.Capacity, a.Capacity, combined) {
		bonus += bonusCapacity
	}
	if hintMatches(it.Color, a.Color, combined) {
		bonus += bonusColor
	}
	if hintMatches(it.Size, a.Size, combined) {
		bonus += bonusSize
	}
	return bonus
}

func hintMatches(hint, extracted, combined string) bool {
	if hint == "" {
		return false
	}
	if strings.EqualFold(hint, extracted) {
		return true
	}
	return strings.Contains(combined, strings.ToLower(hint))
}

// businessScore sums the non-text signals: flags, scaled popularity, and
// scaled related-entity count, each capped to keep any one signal from
// dominating text relevance.
func businessScore(item catalog.Searchable) float64 {
	var score float64

	flags := item.ItemFlags()
	if flags.Featured {
		score += bonusFeatured
	}
	if flags.Exclusive {
		score += bonusExclusive
	}
	if flags.Verified {
		score += bonusVerified
	}

	popularity := float64(item.PopularityScore()) / popularityDivisor
	if popularity > popularityCap {
		popularity = popularityCap
	}
	if popularity > 0 {
		score += popularity
	}

	related := float64(len(item.RelatedNames()) * relatedFactor)
	if related > relatedCap {
		related = relatedCap
	}
	score += related

	return score
}

// defaultOrder ranks an empty query: business signals only, every item
// included regardless of score, stable order on ties.
func defaultOrder(items []catalog.Searchable, limit int) []catalog.ScoredItem {
	scored := make([]catalog.ScoredItem, 0, len(items))
	for _, item := range items {
		scored = append(scored, catalog.ScoredItem{Item: item, Score: businessScore(item)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// combinedText joins every searchable field of an item into one normalized
// haystack: display text, secondary text, tags, and related entity names.
func combinedText(item catalog.Searchable, normalizedName string) string {
	parts := make([]string, 0, 2+len(item.SearchTags())+len(item.RelatedNames()))
	parts = append(parts, normalizedName)
	if secondary := item.SecondaryText(); secondary != "" {
		parts = append(parts, attrs.Normalize(secondary))
	}
	for _, tag := range item.SearchTags() {
		parts = append(parts, attrs.Normalize(tag))
	}
	for _, related := range item.RelatedNames() {
		parts = append(parts, attrs.Normalize(related))
	}
	return strings.Join(parts, " ")
}
