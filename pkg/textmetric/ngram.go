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

package textmetric

import "strings"

// nGrams creates overlapping n-rune chunks from a string. Strings shorter
// than n produce the whole string as a single gram, so short tokens still
// participate in similarity instead of degenerating to the empty set.
func nGrams(s string, n int) []string {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}
	if len(runes) < n {
		return []string{s}
	}

	grams := make([]string, 0, len(runes)-n+1)
	for i := 0; i+n <= len(runes); i++ {
		grams = append(grams, string(runes[i:i+n]))
	}
	return grams
}

// jaccard computes the Jaccard similarity coefficient between two string
// sets: |intersection| / |union|. Two empty sets are identical (1.0).
func jaccard(set1, set2 []string) float64 {
	if len(set1) == 0 && len(set2) == 0 {
		return 1.0
	}
	if len(set1) == 0 || len(set2) == 0 {
		return 0.0
	}

	union := make(map[string]bool, len(set1)+len(set2))
	intersection := make(map[string]bool)

	for _, elem := range set1 {
		union[elem] = true
	}
	for _, elem := range set2 {
		if union[elem] {
			intersection[elem] = true
		}
		union[elem] = true
	}

	return float64(len(intersection)) / float64(len(union))
}

// NGramSimilarity returns the Jaccard similarity of the contiguous n-rune
// substring sets of a and b in [0,1]. The ranker uses n=2 and n=3 to capture
// both tight and loose overlap. n <= 0 returns 0.
func NGramSimilarity(a, b string, n int) float64 {
	if n <= 0 {
		return 0.0
	}
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == "" && b == "" {
		return 1.0
	}
	return jaccard(nGrams(a, n), nGrams(b, n))
}
