// SPDX-License-Identifier: MIT
// Package: preimage/alphabet
//
// errors.go — sentinel errors for range parsing.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (offending token) is attached with %w at the call site.

package alphabet

import "errors"

// ErrNoRanges indicates that a range list was empty after trimming.
var ErrNoRanges = errors.New("alphabet: no ranges given")

// ErrBadRange indicates a token that is not of the form "<rune>-<rune>".
var ErrBadRange = errors.New("alphabet: malformed range")
