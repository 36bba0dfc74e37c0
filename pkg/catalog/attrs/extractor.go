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

// Package attrs extracts canonical product attributes (brand, model,
// capacity, color, size) from free-text item names using ordered pattern
// tables and alias dictionaries. Extraction is total: unrecognized input
// yields empty fields, never an error.
package attrs

import (
	"regexp"
	"strings"
)

// Package-level compiled regexes for attribute patterns.
// These are compiled once at initialization.
var (
	reCapacity = regexp.MustCompile(`\b(\d+)\s*(tb|terabytes?|gb|gigabytes?)\b`)
	reSizeDim  = regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*(inch(?:es)?|in|cm|mm)\b`)
)

// Attributes holds the canonical attributes extracted from one piece of
// free text. Empty string means the attribute was absent; absence is data,
// not an error.
type Attributes struct {
	Brand       string
	Model       string
	Capacity    string
	Color       string
	Size        string
	CanonicalID string
}

// Extract derives canonical attributes from free text. Attributes are
// resolved independently and in fixed order, first match wins per attribute,
// with one exception: model extraction only runs when a brand resolved,
// since the model tables are brand-specific.
//
// categoryHint may be empty; a fashion-type hint biases size extraction
// toward garment tokens over numeric dimensions.
func Extract(text, categoryHint string) Attributes {
	normalized := Normalize(text)
	lower := strings.ToLower(text)

	var a Attributes
	a.Brand = extractBrand(normalized)
	if a.Brand != "" {
		a.Model = extractModel(a.Brand, normalized)
	}
	a.Capacity = extractCapacity(lower)
	a.Color = extractColor(normalized)
	a.Size = extractSize(normalized, lower, categoryHint)
	a.CanonicalID = canonicalID(a)

	return a
}

// containsTokens reports whether needle appears in haystack on token
// boundaries. Plain substring containment would let short aliases like "hp"
// match inside unrelated words ("iphone").
func containsTokens(haystack, needle string) bool {
	return strings.Contains(" "+haystack+" ", " "+needle+" ")
}

func extractBrand(normalized string) string {
	for _, entry := range brandTable {
		for _, alias := range entry.Aliases {
			if containsTokens(normalized, alias) {
				return entry.Canonical
			}
		}
	}
	return ""
}

func extractModel(brand, normalized string) string {
	for _, entry := range modelTable[brand] {
		for _, alias := range entry.Aliases {
			if containsTokens(normalized, alias) {
				return entry.Canonical
			}
		}
	}
	return ""
}

// extractCapacity matches <number><unit> storage patterns against the
// lowercased raw text and normalizes to "<N>GB" or "<N>TB".
func extractCapacity(lower string) string {
	m := reCapacity.FindStringSubmatch(lower)
	if m == nil {
		return ""
	}
	unit := "GB"
	if strings.HasPrefix(m[2], "t") {
		unit = "TB"
	}
	return m[1] + unit
}

func extractColor(normalized string) string {
	for _, color := range colorTable {
		if containsTokens(normalized, color) {
			return titleCase(color)
		}
	}
	return ""
}

// extractSize resolves either a numeric dimension ("15.6 inch" → "15.6IN")
// or a garment size ("extra large" → "XL"). The dimension pattern runs
// against the raw lowercased text because normalization splits decimal
// points into spaces.
func extractSize(normalized, lower, categoryHint string) string {
	garmentFirst := fashionCategories[strings.ToLower(categoryHint)]

	if garmentFirst {
		if s := extractGarmentSize(normalized); s != "" {
			return s
		}
	}
	if m := reSizeDim.FindStringSubmatch(lower); m != nil {
		unit := map[byte]string{'i': "IN", 'c': "CM", 'm': "MM"}[m[2][0]]
		return m[1] + unit
	}
	if !garmentFirst {
		return extractGarmentSize(normalized)
	}
	return ""
}

func extractGarmentSize(normalized string) string {
	for _, gs := range garmentSizes {
		if containsTokens(normalized, gs.Token) {
			return gs.Normalized
		}
	}
	return ""
}

// canonicalID builds the deduplication slug brand-model-capacity-color with
// "unknown"/"generic" placeholders for missing fields. It identifies the
// same real-world item across sources and is never shown to users.
func canonicalID(a Attributes) string {
	brand := a.Brand
	if brand == "" {
		brand = "unknown"
	}
	model := a.Model
	if model == "" {
		model = "generic"
	}
	capacity := a.Capacity
	if capacity == "" {
		capacity = "generic"
	}
	color := a.Color
	if color == "" {
		color = "generic"
	}

	parts := []string{brand, model, capacity, color}
	for i, p := range parts {
		parts[i] = slugify(Normalize(p))
	}
	return strings.Join(parts, "-")
}

// NormalizedName joins whichever attributes are present into a canonical
// display name, or "Unknown Product" when nothing resolved.
func (a Attributes) NormalizedName() string {
	parts := make([]string, 0, 5)
	for _, p := range []string{a.Brand, a.Model, a.Capacity, a.Color, a.Size} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "Unknown Product"
	}
	return strings.Join(parts, " ")
}
