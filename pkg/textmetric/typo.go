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

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// keyboardAdjacent maps each lowercase letter to its physical neighbors on a
// QWERTY layout. Used to generate plausible fat-finger substitutions.
var keyboardAdjacent = map[rune]string{
	'q': "wa", 'w': "qase", 'e': "wsdr", 'r': "edft", 't': "rfgy",
	'y': "tghu", 'u': "yhji", 'i': "ujko", 'o': "iklp", 'p': "ol",
	'a': "qwsz", 's': "awedxz", 'd': "serfcx", 'f': "drtgvc",
	'g': "ftyhbv", 'h': "gyujnb", 'j': "huikmn", 'k': "jiolm",
	'l': "kop", 'z': "asx", 'x': "zsdc", 'c': "xdfv", 'v': "cfgb",
	'b': "vghn", 'n': "bhjm", 'm': "njk",
}

// EditVariants returns the set of single-edit variants of token: deletions,
// adjacent transpositions, substitutions, and insertions over a-z. The set
// is deduplicated and generated in a fixed order, and never contains the
// token itself.
//
// Variants feed the did-you-mean path only; the query is never silently
// rewritten with them.
func EditVariants(token string) []string {
	token = strings.ToLower(token)
	runes := []rune(token)

	variants := make([]string, 0, len(runes)*(2*len(alphabet)+2))
	seen := map[string]bool{token: true}
	add := func(v string) {
		if !seen[v] {
			seen[v] = true
			variants = append(variants, v)
		}
	}

	// Deletions.
	for i := range runes {
		add(string(runes[:i]) + string(runes[i+1:]))
	}
	// Adjacent transpositions.
	for i := 0; i+1 < len(runes); i++ {
		swapped := make([]rune, len(runes))
		copy(swapped, runes)
		swapped[i], swapped[i+1] = swapped[i+1], swapped[i]
		add(string(swapped))
	}
	// Substitutions.
	for i := range runes {
		for _, c := range alphabet {
			if runes[i] == c {
				continue
			}
			add(string(runes[:i]) + string(c) + string(runes[i+1:]))
		}
	}
	// Insertions.
	for i := 0; i <= len(runes); i++ {
		for _, c := range alphabet {
			add(string(runes[:i]) + string(c) + string(runes[i:]))
		}
	}

	return variants
}

// KeyboardVariants returns the variants of token produced by replacing each
// letter with a physically adjacent QWERTY key. Deduplicated, fixed order,
// never contains the token itself.
func KeyboardVariants(token string) []string {
	token = strings.ToLower(token)
	runes := []rune(token)

	variants := make([]string, 0, len(runes)*4)
	seen := map[string]bool{token: true}

	for i, r := range runes {
		for _, adj := range keyboardAdjacent[r] {
			v := string(runes[:i]) + string(adj) + string(runes[i+1:])
			if !seen[v] {
				seen[v] = true
				variants = append(variants, v)
			}
		}
	}

	return variants
}
