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

import (
	"math"
	"strings"
)

// Short-circuit scores for trivially strong matches.
const (
	scoreExact     = 100
	scorePrefix    = 95
	scoreSubstring = 85
)

// Blend weights for the fuzzy path. Edit-distance signals outweigh phonetic
// ones because phonetic collisions are noisier. The blend is a contract:
// suggestion confidences and cached fixtures depend on these exact values,
// so they are tunable only together with the fixtures in fuzzy_test.go.
const (
	weightSimilarity = 30
	weightDamerau    = 25
	weightBigram     = 20
	weightTrigram    = 15
	weightPhonetic   = 10
)

// MatchScore rates how well query matches target on a 0-100 scale.
//
// Exact, prefix, and substring matches short-circuit to 100, 95, and 85.
// Everything else is a fixed linear blend of similarity ratio, Damerau
// ratio, 2-gram and 3-gram Jaccard similarity, and a phonetic signal,
// rounded to the nearest integer. Empty query or target scores 0.
func MatchScore(query, target string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	t := strings.ToLower(strings.TrimSpace(target))
	if q == "" || t == "" {
		return 0
	}

	switch {
	case q == t:
		return scoreExact
	case strings.HasPrefix(t, q):
		return scorePrefix
	case strings.Contains(t, q):
		return scoreSubstring
	}

	phonetic := 0.0
	if SoundsLike(q, t) {
		phonetic = 1.0
	}

	blend := SimilarityRatio(q, t)*weightSimilarity +
		DamerauRatio(q, t)*weightDamerau +
		NGramSimilarity(q, t, 2)*weightBigram +
		NGramSimilarity(q, t, 3)*weightTrigram +
		phonetic*weightPhonetic

	score := int(math.Round(blend))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
