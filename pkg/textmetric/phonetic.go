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

const metaphoneMaxLen = 8

// soundexCodes maps consonants to their Soundex digit. Vowels and the
// letters h, w, y map to 0 and are skipped.
var soundexCodes = map[byte]byte{
	'b': '1', 'f': '1', 'p': '1', 'v': '1',
	'c': '2', 'g': '2', 'j': '2', 'k': '2', 'q': '2', 's': '2', 'x': '2', 'z': '2',
	'd': '3', 't': '3',
	'l': '4',
	'm': '5', 'n': '5',
	'r': '6',
}

// Soundex returns a 4-character Soundex code for s: the first letter
// (uppercased) followed by three digits, zero-padded. Input with no ASCII
// letters encodes to the empty string.
//
// This is the vowel-reset simplification: h and w clear the previous code
// like vowels do, so identical codes separated by h/w are emitted twice
// ("ashcraft" encodes to A226 where the archival algorithm gives A261). The
// encodings are a stable contract pinned by fixtures.
func Soundex(s string) string {
	letters := asciiLetters(s)
	if letters == "" {
		return ""
	}

	code := make([]byte, 0, 4)
	code = append(code, letters[0]-'a'+'A')

	prev := soundexCodes[letters[0]]
	for i := 1; i < len(letters) && len(code) < 4; i++ {
		digit := soundexCodes[letters[i]]
		if digit != 0 && digit != prev {
			code = append(code, digit)
		}
		prev = digit
	}

	for len(code) < 4 {
		code = append(code, '0')
	}
	return string(code)
}

// Metaphone returns a simplified Metaphone encoding of s, capped at 8
// characters. The rule set is a trimmed version of Philips' original
// transformation table; the exact output is a stable contract pinned by
// test fixtures, since suggestion confidence depends on it.
func Metaphone(s string) string {
	letters := strings.ToUpper(asciiLetters(s))
	if letters == "" {
		return ""
	}

	// Initial-cluster exceptions.
	switch {
	case strings.HasPrefix(letters, "AE"),
		strings.HasPrefix(letters, "GN"),
		strings.HasPrefix(letters, "KN"),
		strings.HasPrefix(letters, "PN"),
		strings.HasPrefix(letters, "WR"):
		letters = letters[1:]
	case strings.HasPrefix(letters, "WH"):
		letters = "W" + letters[2:]
	case letters[0] == 'X':
		letters = "S" + letters[1:]
	}

	var out strings.Builder
	n := len(letters)
	for i := 0; i < n && out.Len() < metaphoneMaxLen; i++ {
		c := letters[i]

		// Collapse doubled letters.
		if i > 0 && c == letters[i-1] {
			continue
		}

		next := byte(0)
		if i+1 < n {
			next = letters[i+1]
		}

		switch c {
		case 'A', 'E', 'I', 'O', 'U':
			if i == 0 {
				out.WriteByte(c)
			}
		case 'B':
			// Silent terminal B after M ("dumb").
			if !(i == n-1 && i > 0 && letters[i-1] == 'M') {
				out.WriteByte('B')
			}
		case 'C':
			switch {
			case next == 'H':
				out.WriteByte('X')
				i++
			case next == 'I' || next == 'E' || next == 'Y':
				out.WriteByte('S')
			default:
				out.WriteByte('K')
			}
		case 'D':
			if next == 'G' {
				out.WriteByte('J')
				i++
			} else {
				out.WriteByte('T')
			}
		case 'G':
			switch {
			case next == 'H':
				out.WriteByte('K')
				i++
			case next == 'I' || next == 'E' || next == 'Y':
				out.WriteByte('J')
			default:
				out.WriteByte('K')
			}
		case 'H':
			// Silent after a vowel with no vowel following ("ah", "oh").
			// ch/sh/th/ph/gh are consumed by the preceding consonant.
			if !(i > 0 && isVowelByte(letters[i-1]) && !isVowelByte(next)) {
				out.WriteByte('H')
			}
		case 'K':
			if !(i > 0 && letters[i-1] == 'C') {
				out.WriteByte('K')
			}
		case 'P':
			if next == 'H' {
				out.WriteByte('F')
				i++
			} else {
				out.WriteByte('P')
			}
		case 'Q':
			out.WriteByte('K')
		case 'S':
			if next == 'H' {
				out.WriteByte('X')
				i++
			} else {
				out.WriteByte('S')
			}
		case 'T':
			if next == 'H' {
				out.WriteByte('0')
				i++
			} else {
				out.WriteByte('T')
			}
		case 'V':
			out.WriteByte('F')
		case 'W', 'Y':
			if isVowelByte(next) {
				out.WriteByte(c)
			}
		case 'X':
			out.WriteByte('K')
			if out.Len() < metaphoneMaxLen {
				out.WriteByte('S')
			}
		case 'Z':
			out.WriteByte('S')
		default:
			out.WriteByte(c)
		}
	}

	return out.String()
}

// SoundsLike reports whether a and b share a phonetic encoding under either
// Soundex or Metaphone. Used to catch typos that edit distance alone misses.
func SoundsLike(a, b string) bool {
	sa, sb := Soundex(a), Soundex(b)
	if sa != "" && sa == sb {
		return true
	}
	ma, mb := Metaphone(a), Metaphone(b)
	return ma != "" && ma == mb
}

// asciiLetters lowercases s and strips everything but a-z.
func asciiLetters(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isVowelByte(c byte) bool {
	return c == 'A' || c == 'E' || c == 'I' || c == 'O' || c == 'U'
}
