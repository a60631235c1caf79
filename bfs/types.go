// Package bfs provides tunable options for the breadth-first collision search.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/preimage/alphabet"
	"github.com/katalvlaran/preimage/checksum"
	"github.com/katalvlaran/preimage/search"
)

// DefaultMaxSteps is the dequeue budget applied when WithMaxSteps is not given.
const DefaultMaxSteps = 1_000_000

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. negative budget), it will be recorded
// internally and surfaced as search.ErrOptionViolation when FindCollision is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize the search.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Alphabet supplies the extension characters.
	Alphabet alphabet.Alphabet

	// Checksum digests candidates incrementally.
	Checksum checksum.Hasher

	// Mode selects the faithful stale-prefix loop or true level-order expansion.
	Mode search.Mode

	// MaxSteps, if > 0, stops after that many dequeues.
	// A value of 0 explicitly disables any limit.
	MaxSteps int

	// MaxLength, if > 0, stops Exhaustive expansion beyond that many runes.
	// Faithful mode only ever builds one-rune candidates and ignores it.
	MaxLength int

	// Filter can reject a candidate by returning false; it is then a miss.
	Filter func(candidate string) bool

	// OnEnqueue is called when a candidate is appended to the frontier.
	OnEnqueue func(candidate string, depth int)

	// OnDequeue is called when a candidate is removed from the frontier.
	OnDequeue func(candidate string, depth int)

	// OnVisit is called when testing a candidate. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(candidate string, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - alphabet.Default() and checksum.Default
//   - Faithful mode
//   - MaxSteps == DefaultMaxSteps, no length limit
//   - accept-all filter and no-op hooks
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		Alphabet:  alphabet.Default(),
		Checksum:  checksum.Default,
		Mode:      search.Faithful,
		MaxSteps:  DefaultMaxSteps,
		MaxLength: 0,
		Filter:    func(string) bool { return true },
		OnEnqueue: func(string, int) {},
		OnDequeue: func(string, int) {},
		OnVisit:   func(string, int) error { return nil },
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithAlphabet sets the extension characters.
func WithAlphabet(a alphabet.Alphabet) Option {
	return func(o *BFSOptions) {
		o.Alphabet = a
	}
}

// WithChecksum replaces the hasher. A zero Modular is an option violation.
func WithChecksum(h checksum.Hasher) Option {
	return func(o *BFSOptions) {
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
	return func(o *BFSOptions) {
		if !m.Valid() {
			o.err = fmt.Errorf("%w: %v", search.ErrOptionViolation, m)
			return
		}
		o.Mode = m
	}
}

// WithMaxSteps stops the search after n dequeues.
//
//	n > 0: limit to n steps
//	n == 0: explicit no limit
//	n < 0: invalid option → search.ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *BFSOptions) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", search.ErrOptionViolation, n)
		default:
			o.MaxSteps = n
		}
	}
}

// WithMaxLength stops Exhaustive expansion beyond n runes (0 = no limit).
func WithMaxLength(n int) Option {
	return func(o *BFSOptions) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxLength cannot be negative (%d)", search.ErrOptionViolation, n)
		default:
			o.MaxLength = n
		}
	}
}

// WithFilter rejects candidates when fn returns false.
func WithFilter(fn func(candidate string) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.Filter = fn
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(candidate string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(candidate string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(candidate string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
