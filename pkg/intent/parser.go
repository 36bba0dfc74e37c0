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

// Package intent turns a raw query string into the structured object the
// ranker consumes: an expanded term set, attribute and price hints, and a
// category guess. Parsing is total; an unrecognizable query yields an
// intent with only the raw query in it.
package intent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dealgrotto/catalog-engine/pkg/catalog/attrs"
)

// termPrefixLen is the length of word prefixes added to the term set as a
// cheap recall booster for partially typed words.
const termPrefixLen = 4

// Package-level compiled regexes for price patterns. Range patterns take
// precedence over ceiling patterns when both could match.
var (
	rePriceBetween = regexp.MustCompile(`(?i)\bbetween\s+\$?(\d+(?:\.\d+)?)\s+and\s+\$?(\d+(?:\.\d+)?)`)
	rePriceFromTo  = regexp.MustCompile(`(?i)\bfrom\s+\$?(\d+(?:\.\d+)?)\s+to\s+\$?(\d+(?:\.\d+)?)`)
	rePriceCeiling = regexp.MustCompile(`(?i)\b(?:under|below|less\s+than|cheaper\s+than)\s+\$?(\d+(?:\.\d+)?)`)
)

// Intent is the structured form of one query. Created fresh per query and
// discarded after ranking; never shared between calls.
type Intent struct {
	RawQuery   string
	Normalized string
	Terms      []string
	Brand      string
	Capacity   string
	Color      string
	Size       string
	Category   string
	PriceMin   float64
	PriceMax   float64
	HasPrice   bool
}

// Parse builds an Intent from a raw query string.
//
// The term set contains the normalized query itself, per-word synonyms,
// 4-character prefixes of longer words, and sibling brand aliases when a
// word matches the brand dictionary. Attribute hints delegate to the
// attribute extractor on the raw query text.
func Parse(query string) Intent {
	normalized := attrs.Normalize(query)

	it := Intent{
		RawQuery:   query,
		Normalized: normalized,
	}

	it.Terms = expandTerms(normalized)
	it.PriceMin, it.PriceMax, it.HasPrice = parsePrice(query)

	extracted := attrs.Extract(query, "")
	it.Brand = extracted.Brand
	it.Capacity = extracted.Capacity
	it.Color = extracted.Color
	it.Size = extracted.Size

	it.Category = matchCategory(normalized)

	return it
}

// HasPriceRange reports whether the query carried any price constraint.
func (it Intent) HasPriceRange() bool { return it.HasPrice }

// expandTerms builds the deduplicated, order-stable term set for a
// normalized query.
func expandTerms(normalized string) []string {
	if normalized == "" {
		return nil
	}

	terms := make([]string, 0, 8)
	seen := make(map[string]bool)
	add := func(t string) {
		if t != "" && !seen[t] {
			seen[t] = true
			terms = append(terms, t)
		}
	}

	add(normalized)

	for _, word := range strings.Fields(normalized) {
		add(word)

		for _, syn := range synonymTable[word] {
			add(syn)
		}

		if runes := []rune(word); len(runes) > termPrefixLen {
			add(string(runes[:termPrefixLen]))
		}

		if brand, ok := attrs.BrandForAlias(word); ok {
			add(strings.ToLower(brand))
			for _, alias := range attrs.AliasesForBrand(brand) {
				add(alias)
			}
		}
	}

	return terms
}

// parsePrice extracts a price range or ceiling from the raw query. The
// first matching pattern wins; range patterns are tried before ceilings.
func parsePrice(query string) (minPrice, maxPrice float64, ok bool) {
	for _, re := range []*regexp.Regexp{rePriceBetween, rePriceFromTo} {
		if m := re.FindStringSubmatch(query); m != nil {
			lo, errLo := strconv.ParseFloat(m[1], 64)
			hi, errHi := strconv.ParseFloat(m[2], 64)
			if errLo != nil || errHi != nil {
				continue
			}
			if lo > hi {
				lo, hi = hi, lo
			}
			return lo, hi, true
		}
	}

	if m := rePriceCeiling.FindStringSubmatch(query); m != nil {
		if hi, err := strconv.ParseFloat(m[1], 64); err == nil {
			return 0, hi, true
		}
	}

	return 0, 0, false
}

// matchCategory returns the first category whose keyword list intersects
// the normalized query, or empty when none does.
func matchCategory(normalized string) string {
	words := make(map[string]bool)
	for _, w := range strings.Fields(normalized) {
		words[w] = true
	}

	for _, entry := range categoryTable {
		for _, kw := range entry.Keywords {
			if words[kw] {
				return entry.Name
			}
		}
	}
	return ""
}
