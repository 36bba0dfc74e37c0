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
	"testing"

	"pgregory.net/rapid"
)

// tokenGen generates realistic query tokens: lowercase alphanumerics of
// catalog-word length.
func tokenGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-z0-9]{1,16}`)
}

func TestLevenshteinSymmetry(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := tokenGen().Draw(t, "a")
		b := tokenGen().Draw(t, "b")

		if Levenshtein(a, b) != Levenshtein(b, a) {
			t.Fatalf("levenshtein(%q,%q) != levenshtein(%q,%q)", a, b, b, a)
		}
	})
}

func TestSimilarityRatioSymmetryAndBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := tokenGen().Draw(t, "a")
		b := tokenGen().Draw(t, "b")

		ab := SimilarityRatio(a, b)
		ba := SimilarityRatio(b, a)
		if ab != ba {
			t.Fatalf("ratio not symmetric: %v vs %v", ab, ba)
		}
		if ab < 0 || ab > 1 {
			t.Fatalf("ratio out of [0,1]: %v", ab)
		}
	})
}

func TestMatchScoreBoundsAndIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := tokenGen().Draw(t, "a")
		b := tokenGen().Draw(t, "b")

		score := MatchScore(a, b)
		if score < 0 || score > 100 {
			t.Fatalf("MatchScore(%q,%q) = %d out of [0,100]", a, b, score)
		}
		if identity := MatchScore(a, a); identity != 100 {
			t.Fatalf("MatchScore(%q,%q) = %d, want 100", a, a, identity)
		}
	})
}

func TestSoundexShape(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringMatching(`[a-zA-Z]{1,20}`).Draw(t, "s")

		code := Soundex(s)
		if len(code) != 4 {
			t.Fatalf("Soundex(%q) = %q, want 4 characters", s, code)
		}
		if code[0] < 'A' || code[0] > 'Z' {
			t.Fatalf("Soundex(%q) = %q, first char must be a letter", s, code)
		}
	})
}

func TestMetaphoneLengthCap(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringMatching(`[a-zA-Z]{1,40}`).Draw(t, "s")

		if code := Metaphone(s); len(code) > metaphoneMaxLen {
			t.Fatalf("Metaphone(%q) = %q exceeds %d chars", s, code, metaphoneMaxLen)
		}
	})
}
