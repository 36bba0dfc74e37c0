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
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeDiacritics strips diacritical marks so "Pokémon" and "pokemon"
// normalize to the same text.
func removeDiacritics(s string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	if normalized, _, err := transform.String(t, s); err == nil {
		return normalized
	}
	return s
}

// Normalize prepares free text for dictionary and pattern matching:
// lowercase, diacritics folded, punctuation reduced to single spaces,
// whitespace collapsed.
//
// Normalize is deterministic and idempotent:
//
//	Normalize(Normalize(x)) == Normalize(x)
func Normalize(text string) string {
	s := removeDiacritics(text)
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// slugify converts normalized text to a hyphen-separated slug for canonical
// identifiers. Input is expected to already be normalized.
func slugify(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), " ", "-")
}

// titleCase uppercases the first letter of each word. Used for display forms
// of matched colors and brands that are stored lowercase in the dictionaries.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
