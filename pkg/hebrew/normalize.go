// Package hebrew provides text normalization and matching for mixed
// Hebrew/English glossary terms. Comparisons are case-insensitive and
// ignore niqqud and cantillation marks.
package hebrew

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// hebrewMarks covers the Hebrew combining marks: cantillation (U+0591-U+05AF)
// and niqqud (U+05B0-U+05BC, U+05BF, U+05C1-U+05C2, U+05C4-U+05C5, U+05C7).
// The maqaf (U+05BE) is punctuation, not a mark, and is handled separately.
var hebrewMarks = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0591, Hi: 0x05BD, Stride: 1},
		{Lo: 0x05BF, Hi: 0x05BF, Stride: 1},
		{Lo: 0x05C1, Hi: 0x05C2, Stride: 1},
		{Lo: 0x05C4, Hi: 0x05C5, Stride: 1},
		{Lo: 0x05C7, Hi: 0x05C7, Stride: 1},
	},
}

// stripMarks replaces maqaf with a plain hyphen, then removes all Hebrew
// combining marks. The maqaf mapping must run first so it is not caught by
// adjacent ranges.
var stripMarks = transform.Chain(
	runes.Map(func(r rune) rune {
		if r == '־' {
			return '-'
		}
		return r
	}),
	runes.Remove(runes.In(hebrewMarks)),
)

// Normalize lowercases Latin letters, unifies the maqaf with the ASCII
// hyphen, and strips niqqud and cantillation. It is pure and idempotent;
// any input, including empty, yields a valid result.
func Normalize(s string) string {
	result, _, _ := transform.String(stripMarks, strings.ToLower(s))
	return result
}

// ContainsNormalized reports whether needle occurs in haystack once both
// are normalized. An empty needle matches everything.
func ContainsNormalized(haystack, needle string) bool {
	return strings.Contains(Normalize(haystack), Normalize(needle))
}
