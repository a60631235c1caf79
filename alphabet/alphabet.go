// SPDX-License-Identifier: MIT
// Package: preimage/alphabet
//
// alphabet.go — ordered candidate characters built from half-open ranges.
//
// Contract:
//   - A Range covers code points From ≤ c < To. The upper bound is excluded,
//     so the default ranges 0-9, A-Z, a-z yield 0..8, A..Y and a..y.
//   - New concatenates ranges in argument order. Overlaps are kept as
//     duplicates; inverted or empty ranges contribute nothing.
//   - Code points a Go string cannot hold (surrogate halves, values above
//     U+10FFFF) are skipped, so every character round-trips through string.
//   - An Alphabet is immutable once built; accessors never expose the
//     backing slice.
//   - In the text form, an endpoint that is ',', '\' or white space is
//     written with a leading '\', so FormatRanges output always parses back.

package alphabet

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Range is a half-open code-point interval [From, To).
type Range struct {
	From rune
	To   rune
}

// Len reports the width of r, before invalid code points are dropped.
func (r Range) Len() int {
	if r.To <= r.From {
		return 0
	}

	return int(r.To - r.From)
}

// String renders r in the "<from>-<to>" form accepted by ParseRanges.
func (r Range) String() string {
	return escape(r.From) + "-" + escape(r.To)
}

func escape(c rune) string {
	if c == ',' || c == '\\' || unicode.IsSpace(c) {
		return `\` + string(c)
	}

	return string(c)
}

// DefaultRanges returns the digit, upper-case and lower-case ranges.
func DefaultRanges() []Range {
	return []Range{{'0', '9'}, {'A', 'Z'}, {'a', 'z'}}
}

// Alphabet is an ordered, fixed sequence of candidate characters.
type Alphabet struct {
	runes []rune
}

// New builds the Alphabet for ranges, in order.
// Complexity: O(Σ Range.Len()).
func New(ranges ...Range) Alphabet {
	n := 0
	for _, r := range ranges {
		n += r.Len()
	}
	out := make([]rune, 0, n)
	for _, r := range ranges {
		for c := r.From; c < r.To; c++ {
			if utf8.ValidRune(c) {
				out = append(out, c)
			}
		}
	}

	return Alphabet{runes: out}
}

// Default returns New(DefaultRanges()...).
func Default() Alphabet {
	return New(DefaultRanges()...)
}

// Len returns the number of characters, duplicates included.
func (a Alphabet) Len() int { return len(a.runes) }

// At returns the i-th character. It panics if i is out of range, like a slice.
func (a Alphabet) At(i int) rune { return a.runes[i] }

// First returns the first character, or false for an empty alphabet.
func (a Alphabet) First() (rune, bool) {
	if len(a.runes) == 0 {
		return 0, false
	}

	return a.runes[0], true
}

// Runes returns a copy of the characters in order.
func (a Alphabet) Runes() []rune {
	out := make([]rune, len(a.runes))
	copy(out, a.runes)

	return out
}

// String returns the characters concatenated in order.
func (a Alphabet) String() string {
	return string(a.runes)
}

// ParseRanges parses a comma-separated list such as "0-9,A-Z,a-z".
// Each token must be exactly one rune, a '-', and one rune; white space
// around a token is ignored. A '\' makes the next rune literal, so "\,-/"
// is the range from ',' to '/'. Returns ErrNoRanges or a wrapped ErrBadRange.
func ParseRanges(s string) ([]Range, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%w: invalid UTF-8 in %q", ErrBadRange, s)
	}

	var (
		out     []Range
		tok     []unit
		escaped bool
	)
	flush := func() error {
		t := trimSpace(tok)
		tok = nil
		if len(t) == 0 {
			return nil
		}
		r, err := parseRange(t)
		if err != nil {
			return err
		}
		out = append(out, r)
		return nil
	}
	for _, c := range s {
		switch {
		case escaped:
			tok = append(tok, unit{c: c, literal: true})
			escaped = false
		case c == '\\':
			escaped = true
		case c == ',':
			if err := flush(); err != nil {
				return nil, err
			}
		default:
			tok = append(tok, unit{c: c})
		}
	}
	if escaped {
		return nil, fmt.Errorf("%w: dangling escape in %q", ErrBadRange, s)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNoRanges
	}

	return out, nil
}

// unit is one rune of a token; literal runes were escaped and never act as
// separators or trimmed space.
type unit struct {
	c       rune
	literal bool
}

func trimSpace(tok []unit) []unit {
	for len(tok) > 0 && !tok[0].literal && unicode.IsSpace(tok[0].c) {
		tok = tok[1:]
	}
	for len(tok) > 0 && !tok[len(tok)-1].literal && unicode.IsSpace(tok[len(tok)-1].c) {
		tok = tok[:len(tok)-1]
	}

	return tok
}

// parseRange reads positions rather than splitting on '-' so that "--/" and
// "+--" work.
func parseRange(tok []unit) (Range, error) {
	if len(tok) != 3 || tok[1].literal || tok[1].c != '-' {
		var b strings.Builder
		for _, u := range tok {
			if u.literal {
				b.WriteString(escape(u.c))
			} else {
				b.WriteRune(u.c)
			}
		}
		return Range{}, fmt.Errorf("%w: %q", ErrBadRange, b.String())
	}

	return Range{From: tok[0].c, To: tok[2].c}, nil
}

// FormatRanges is the inverse of ParseRanges.
func FormatRanges(ranges []Range) string {
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		parts[i] = r.String()
	}

	return strings.Join(parts, ",")
}
