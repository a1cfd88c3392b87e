// Package similarity computes the normalized textual closeness of two strings.
//
// Scores are integers in [0, 100] derived from the character-level (rune)
// Levenshtein distance normalized by the longer string:
//
//	score = round(100 * (maxLen - distance) / maxLen)
//
// Both inputs are brought to Unicode NFC first so that precomposed and
// decomposed Hangul (or accented Latin) compare as the same characters.
package similarity

import (
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/unicode/norm"
)

// Text is a string prepared for repeated scoring: NFC-normalized with its
// rune length cached.
type Text struct {
	s     string
	runes int
}

// Prepare normalizes s for scoring.
func Prepare(s string) Text {
	n := norm.NFC.String(s)
	return Text{s: n, runes: utf8.RuneCountInString(n)}
}

// String returns the normalized text.
func (t Text) String() string { return t.s }

// Len returns the number of runes in the normalized text.
func (t Text) Len() int { return t.runes }

// Score returns the similarity of a and b in [0, 100]. Equal strings, including
// two empty strings, score 100. Score is symmetric and never fails.
func Score(a, b string) int {
	if a == b {
		return 100
	}
	return ScoreText(Prepare(a), Prepare(b))
}

// ScoreText is Score for already prepared inputs.
func ScoreText(a, b Text) int {
	if a.s == b.s {
		return 100
	}
	maxLen := max(a.runes, b.runes)
	if maxLen == 0 {
		return 100
	}
	distance := edlib.LevenshteinDistance(a.s, b.s)
	return roundPercent(maxLen-distance, maxLen)
}

// UpperBound returns the highest score a and b could reach given only their
// lengths. The edit distance is at least the length difference, so
// Score(a, b) <= UpperBound(a, b) always holds.
func UpperBound(a, b Text) int {
	maxLen := max(a.runes, b.runes)
	if maxLen == 0 {
		return 100
	}
	return roundPercent(min(a.runes, b.runes), maxLen)
}

// roundPercent returns round(100*num/den) with halves rounded up, for 0 <= num <= den.
func roundPercent(num, den int) int {
	return (200*num + den) / (2 * den)
}
