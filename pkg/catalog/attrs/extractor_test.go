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

package attrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		categoryHint string
		reason       string
		expected     Attributes
	}{
		{
			name: "full product name",
			text: "Apple iPhone 15 Pro — 256GB, Black",
			expected: Attributes{
				Brand:       "Apple",
				Model:       "iPhone 15 Pro",
				Capacity:    "256GB",
				Color:       "Black",
				CanonicalID: "apple-iphone-15-pro-256gb-black",
			},
			reason: "every attribute resolves from a well-formed listing title",
		},
		{
			name: "brand from product line alias",
			text: "Galaxy S24 Ultra 512GB Titanium",
			expected: Attributes{
				Brand:       "Samsung",
				Model:       "Galaxy S24 Ultra",
				Capacity:    "512GB",
				Color:       "Titanium",
				CanonicalID: "samsung-galaxy-s24-ultra-512gb-titanium",
			},
			reason: "galaxy implies Samsung without the manufacturer being named",
		},
		{
			name: "specific model wins over general",
			text: "apple iphone 15 pro max deal",
			expected: Attributes{
				Brand:       "Apple",
				Model:       "iPhone 15 Pro Max",
				CanonicalID: "apple-iphone-15-pro-max-generic-generic",
			},
			reason: "table order puts pro max before pro",
		},
		{
			name: "model extraction is brand-gated",
			text: "refurbished s24 ultra bargain bin",
			expected: Attributes{
				Brand:       "",
				Model:       "",
				CanonicalID: "unknown-generic-generic-generic",
			},
			reason: "without brand evidence the model tables are never consulted",
		},
		{
			name: "multi-word color wins over single word",
			text: "MacBook Air space gray",
			expected: Attributes{
				Brand:       "Apple",
				Model:       "MacBook Air",
				Color:       "Space Gray",
				CanonicalID: "apple-macbook-air-generic-space-gray",
			},
			reason: "space gray precedes gray in the color table",
		},
		{
			name: "terabyte capacity normalizes",
			text: "dell xps 2 terabytes ssd",
			expected: Attributes{
				Brand:       "Dell",
				Capacity:    "2TB",
				CanonicalID: "dell-generic-2tb-generic",
			},
			reason: "spelled-out units normalize to the short uppercase form",
		},
		{
			name:         "garment size with fashion hint",
			text:         "Nike Air Max 90 extra large",
			categoryHint: "fashion",
			expected: Attributes{
				Brand:       "Nike",
				Model:       "Air Max 90",
				Size:        "XL",
				CanonicalID: "nike-air-max-90-generic-generic",
			},
			reason: "fashion hint resolves garment tokens before numeric dimensions",
		},
		{
			name: "numeric dimension size",
			text: "LG gram 17 inch laptop",
			expected: Attributes{
				Brand:       "LG",
				Size:        "17IN",
				CanonicalID: "lg-generic-generic-generic",
			},
			reason: "dimension matches against the raw text with its decimal intact",
		},
		{
			name: "short brand alias does not match inside words",
			text: "sharp phone case",
			expected: Attributes{
				Brand:       "",
				CanonicalID: "unknown-generic-generic-generic",
			},
			reason: "hp must not match inside sharp; aliases match on token boundaries",
		},
		{
			name: "nothing recognizable",
			text: "mystery box bundle",
			expected: Attributes{
				CanonicalID: "unknown-generic-generic-generic",
			},
			reason: "absence is represented as empty fields, not an error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text, tt.categoryHint)
			assert.Equal(t, tt.expected.Brand, got.Brand, tt.reason)
			assert.Equal(t, tt.expected.Model, got.Model, tt.reason)
			assert.Equal(t, tt.expected.Capacity, got.Capacity, tt.reason)
			assert.Equal(t, tt.expected.Color, got.Color, tt.reason)
			assert.Equal(t, tt.expected.Size, got.Size, tt.reason)
			assert.Equal(t, tt.expected.CanonicalID, got.CanonicalID, tt.reason)
		})
	}
}

// TestNormalizedName_RoundTrip verifies that a name already in canonical
// attribute order survives extract-then-regenerate unchanged.
func TestNormalizedName_RoundTrip(t *testing.T) {
	canonical := "Apple iPhone 15 Pro 256GB Black"
	assert.Equal(t, canonical, Extract(canonical, "").NormalizedName())
}

func TestNormalizedName_Fallback(t *testing.T) {
	assert.Equal(t, "Unknown Product", Extract("mystery box", "").NormalizedName(),
		"no resolved attributes falls back to the placeholder name")
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		reason   string
	}{
		{
			name:     "punctuation and case",
			input:    "Apple iPhone 15 Pro — 256GB, Black!",
			expected: "apple iphone 15 pro 256gb black",
			reason:   "punctuation collapses to single spaces",
		},
		{
			name:     "diacritics fold",
			input:    "Pokémon Édition",
			expected: "pokemon edition",
			reason:   "accented letters normalize to ASCII",
		},
		{
			name:     "whitespace collapses",
			input:    "  too   many\tspaces  ",
			expected: "too many spaces",
			reason:   "runs of whitespace become one space, ends trimmed",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
			reason:   "empty input stays empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			assert.Equal(t, tt.expected, got, tt.reason)
			assert.Equal(t, got, Normalize(got), "Normalize must be idempotent")
		})
	}
}
