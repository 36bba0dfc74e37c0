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

// Package textmetric provides the pure string-similarity primitives the
// ranker builds on: edit distances, phonetic encodings, n-gram similarity,
// the blended 0-100 match score, and typo-variant generators.
//
// All functions case-fold internally, are side-effect free, and are total
// for UTF-8 input; empty strings return degenerate-but-defined values.
package textmetric

import (
	"strings"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// Levenshtein returns the classic edit distance between a and b
// (insert/delete/substitute, cost 1 each). Case-insensitive.
func Levenshtein(a, b string) int {
	return edlib.LevenshteinDistance(strings.ToLower(a), strings.ToLower(b))
}

// DamerauLevenshtein returns the transposition-aware edit distance between
// a and b. Brand misspellings are frequently adjacent transpositions
// ("zamsung", "smasung"), which plain Levenshtein double-counts.
func DamerauLevenshtein(a, b string) int {
	return edlib.DamerauLevenshteinDistance(strings.ToLower(a), strings.ToLower(b))
}

// SimilarityRatio maps Levenshtein distance into [0,1]:
// 1 - distance/max(len). Two empty strings are identical (1.0); one empty
// string has nothing in common with the other (0.0).
func SimilarityRatio(a, b string) float64 {
	return distanceRatio(a, b, Levenshtein)
}

// DamerauRatio is SimilarityRatio over the Damerau-Levenshtein distance.
func DamerauRatio(a, b string) float64 {
	return distanceRatio(a, b, DamerauLevenshtein)
}

func distanceRatio(a, b string, distance func(string, string) int) float64 {
	la := utf8.RuneCountInString(a)
	lb := utf8.RuneCountInString(b)
	if la == 0 && lb == 0 {
		return 1.0
	}
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	return 1.0 - float64(distance(a, b))/float64(maxLen)
}
