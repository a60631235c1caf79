// Package search holds the vocabulary shared by the depth-first and
// breadth-first collision engines: traversal modes, the result record and
// the sentinel errors both engines return.
package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/preimage/checksum"
)

// Sentinel errors shared by the engines.
var (
	// ErrSearchExhausted is returned when the step budget runs out, or a
	// bounded candidate space is fully explored, without a collision.
	ErrSearchExhausted = errors.New("search: exhausted without collision")

	// ErrEmptyAlphabet is returned when there is no character to extend with.
	ErrEmptyAlphabet = errors.New("search: alphabet is empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownMode is returned by ParseMode for unrecognised names.
	ErrUnknownMode = errors.New("search: unknown mode")
)

// Mode selects how an engine walks the candidate tree.
type Mode int

const (
	// Faithful reproduces the reference traversal: depth-first only ever
	// appends the first alphabet character, breadth-first never advances its
	// prefix past the empty string.
	Faithful Mode = iota

	// Exhaustive branches over every alphabet character at every depth.
	Exhaustive
)

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case Faithful:
		return "faithful"
	case Exhaustive:
		return "exhaustive"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == Faithful || m == Exhaustive
}

// ParseMode is the inverse of Mode.String, case-insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "faithful":
		return Faithful, nil
	case "exhaustive":
		return Exhaustive, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Result describes how an engine run ended.
//   - Found:     Candidate is a collision and Digest == Target.
//   - otherwise: Candidate is empty and the engine returned an error.
//
// Steps counts candidate tests after the first (depth-first: trampoline
// bounces) or in total (breadth-first: dequeues). Frontier is the number of
// queued candidates left when the breadth-first engine stopped.
type Result struct {
	Candidate string
	Digest    checksum.Digest
	Target    checksum.Digest
	Steps     int
	Found     bool
	Frontier  int
}

// Hit reports whether candidate digests to target under h.
func Hit(h checksum.Hasher, candidate string, target checksum.Digest) bool {
	return h.Sum(candidate) == target
}
