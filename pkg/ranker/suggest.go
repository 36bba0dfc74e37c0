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

package ranker

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dealgrotto/catalog-engine/pkg/catalog/attrs"
	"github.com/dealgrotto/catalog-engine/pkg/textmetric"
)

// suggestionScoreFloor is the minimum blended match score (0-100) for a
// vocabulary word to be surfaced as a correction without single-edit
// corroboration.
const suggestionScoreFloor = 70

// Suggestion proposes a spelling correction for one query term. Confidence
// is the blended match score scaled to [0,1]. Suggestions are surfaced to
// the user, never applied silently.
type Suggestion struct {
	Term       string
	Suggested  string
	Confidence float64
}

// Suggestions proposes did-you-mean corrections for query tokens that have
// no containment match anywhere in the vocabulary. Callers typically invoke
// this only when the primary result set is small.
//
// A vocabulary word qualifies either by being a single edit or an adjacent
// keyboard slip away from the token, or by clearing the blended-score
// floor. Results are sorted by confidence, stable on ties, truncated to
// maxSuggestions.
func Suggestions(query string, vocabulary []string, maxSuggestions int) []Suggestion {
	if maxSuggestions <= 0 || len(vocabulary) == 0 {
		return nil
	}

	normalized := attrs.Normalize(query)
	if normalized == "" {
		return nil
	}

	lowerVocab := make([]string, len(vocabulary))
	for i, w := range vocabulary {
		lowerVocab[i] = strings.ToLower(w)
	}

	var suggestions []Suggestion
	for _, token := range strings.Fields(normalized) {
		if utf8.RuneCountInString(token) < fuzzyMinTokenLen || tokenInVocabulary(token, lowerVocab) {
			continue
		}

		variants := variantSet(token)
		for _, word := range lowerVocab {
			score := textmetric.MatchScore(token, word)
			if score < suggestionScoreFloor && !variants[word] {
				continue
			}
			suggestions = append(suggestions, Suggestion{
				Term:       token,
				Suggested:  word,
				Confidence: float64(score) / 100,
			})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Confidence > suggestions[j].Confidence
	})

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// tokenInVocabulary reports whether any vocabulary word contains the token.
// A contained token matched the normal search path and needs no correction.
func tokenInVocabulary(token string, vocabulary []string) bool {
	for _, word := range vocabulary {
		if strings.Contains(word, token) {
			return true
		}
	}
	return false
}

// variantSet collects the single-edit and keyboard-adjacency variants of a
// token for O(1) corroboration lookups.
func variantSet(token string) map[string]bool {
	set := make(map[string]bool)
	for _, v := range textmetric.EditVariants(token) {
		set[v] = true
	}
	for _, v := range textmetric.KeyboardVariants(token) {
		set[v] = true
	}
	return set
}
