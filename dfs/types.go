// Package dfs defines options for the trampolined depth-first collision
// search, including cancellation, step and length limits, candidate
// filtering, a visit hook, and the traversal mode.
package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/preimage/alphabet"
	"github.com/katalvlaran/preimage/checksum"
	"github.com/katalvlaran/preimage/search"
)

// DefaultMaxSteps is the bounce budget applied when WithMaxSteps is not given.
const DefaultMaxSteps = 1_000_000

// Option configures optional behavior of FindCollision.
// Invalid values are recorded and surfaced as search.ErrOptionViolation.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for the depth-first search.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked once per trampoline bounce.
	Ctx context.Context

	// Alphabet supplies the extension characters. Defaults to alphabet.Default().
	Alphabet alphabet.Alphabet

	// Checksum digests candidates. Defaults to checksum.Default.
	// Candidates are digested incrementally through Hasher.Extend.
	Checksum checksum.Hasher

	// Mode selects the faithful single-path walk or exhaustive branching.
	Mode search.Mode

	// MaxSteps caps the number of trampoline bounces.
	// A value of 0 explicitly disables the cap (the search may never return).
	MaxSteps int

	// MaxLength bounds candidate length (in runes) for Exhaustive mode,
	// where it is required. Faithful mode ignores it when 0.
	MaxLength int

	// Filter, if non-nil, is consulted before a candidate is compared.
	// Returning false makes the candidate a miss; it is still extended.
	Filter func(candidate string) bool

	// OnVisit, if non-nil, is invoked for every tested candidate with its
	// length in runes. Returning an error aborts the search.
	OnVisit func(candidate string, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a DFSOptions with:
//   - Background context
//   - the default 0-9/A-Z/a-z alphabet and checksum.Default
//   - Faithful mode
//   - MaxSteps = DefaultMaxSteps, no length limit
//   - no filter and no hook
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:       context.Background(),
		Alphabet:  alphabet.Default(),
		Checksum:  checksum.Default,
		Mode:      search.Faithful,
		MaxSteps:  DefaultMaxSteps,
		MaxLength: 0,
	}
}

// WithContext sets the Context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithAlphabet sets the extension characters.
func WithAlphabet(a alphabet.Alphabet) Option {
	return func(o *DFSOptions) {
		o.Alphabet = a
	}
}

// WithChecksum replaces the hasher. A nil h is ignored; a zero Modular is
// an option violation.
func WithChecksum(h checksum.Hasher) Option {
	return func(o *DFSOptions) {
		if m, ok := h.(checksum.Modular); ok && !m.Valid() {
			o.err = fmt.Errorf("%w: zero modulus", search.ErrOptionViolation)
			return
		}
		if h != nil {
			o.Checksum = h
		}
	}
}

// WithMode selects the traversal mode.
func WithMode(m search.Mode) Option {
	return func(o *DFSOptions) {
		if !m.Valid() {
			o.err = fmt.Errorf("%w: %v", search.ErrOptionViolation, m)
			return
		}
		o.Mode = m
	}
}

// WithMaxSteps bounds the number of trampoline bounces.
//
//	n > 0: at most n bounces, then search.ErrSearchExhausted
//	n == 0: explicit no limit
//	n < 0: invalid option → search.ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *DFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", search.ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithMaxLength bounds candidate length; negative values are invalid.
func WithMaxLength(n int) Option {
	return func(o *DFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxLength cannot be negative (%d)", search.ErrOptionViolation, n)
			return
		}
		o.MaxLength = n
	}
}

// WithFilter installs a candidate filter; false turns a candidate into a miss.
func WithFilter(fn func(candidate string) bool) Option {
	return func(o *DFSOptions) {
		o.Filter = fn
	}
}

// WithOnVisit installs a hook called for every tested candidate.
func WithOnVisit(fn func(candidate string, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}
