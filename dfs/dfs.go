// Package dfs implements the depth-first collision search on top of a
// trampoline, so the native call stack never grows with candidate length.
//
// Key features:
//   - FindCollision(target, opts...): look for a string digesting to target
//   - Faithful mode: extend with the first alphabet character only
//   - Exhaustive mode: pre-order branching over the whole alphabet, bounded by MaxLength
//   - Limits: MaxSteps (bounces), MaxLength (runes)
//   - Hooks: Filter, OnVisit with error aborts
//   - Cancellation via context.Context
//
// Errors:
//   - search.ErrOptionViolation   for invalid options
//   - search.ErrEmptyAlphabet     if there is nothing to extend with
//   - search.ErrSearchExhausted   if MaxSteps is spent or the bounded space runs out
//   - context.Canceled / DeadlineExceeded if ctx is done
//   - any error returned by OnVisit
package dfs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/preimage/checksum"
	"github.com/katalvlaran/preimage/search"
	"github.com/katalvlaran/preimage/trampoline"
)

// frame is a candidate together with its length and digest.
type frame struct {
	candidate string
	depth     int
	digest    checksum.Digest
}

// dfsWalker encapsulates state during the search.
type dfsWalker struct {
	opts   DFSOptions
	target checksum.Digest

	// faithful: every candidate is a prefix of path, a run of first
	first rune
	unit  int // byte length of first
	path  string

	// exhaustive: pending frames, top at the end
	chars []rune
	stack []frame
}

// FindCollision searches for a string whose digest equals target.
// The empty string is tested first; each further candidate costs one
// trampoline bounce. On failure the returned Result still reports Steps.
func FindCollision(target checksum.Digest, opts ...Option) (*search.Result, error) {
	// 1. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	// 2. Validate alphabet and mode requirements
	first, ok := dopts.Alphabet.First()
	if !ok {
		return nil, search.ErrEmptyAlphabet
	}
	if dopts.Mode == search.Exhaustive && dopts.MaxLength == 0 {
		return nil, fmt.Errorf("%w: exhaustive depth-first search needs MaxLength > 0", search.ErrOptionViolation)
	}

	w := &dfsWalker{opts: dopts, target: target}
	root := frame{digest: dopts.Checksum.Sum("")}

	// 3. Drive the trampoline from the empty candidate
	var start trampoline.Step[string]
	if dopts.Mode == search.Exhaustive {
		w.chars = dopts.Alphabet.Runes()
		start = w.branch(root)
	} else {
		w.first = first
		w.unit = len(string(first))
		start = w.single(root)
	}
	found, steps, err := trampoline.Run(dopts.Ctx, start, dopts.MaxSteps)

	// 4. Translate the landing
	res := &search.Result{Target: target, Steps: steps}
	switch {
	case errors.Is(err, trampoline.ErrBounceLimit):
		return res, fmt.Errorf("%w: %d steps", search.ErrSearchExhausted, steps)
	case err != nil:
		return res, err
	}
	res.Candidate = found
	res.Digest = dopts.Checksum.Sum(found)
	res.Found = true

	return res, nil
}

// visit runs the hook and filter and compares f's digest against the target.
func (w *dfsWalker) visit(f frame) (bool, error) {
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(f.candidate, f.depth); err != nil {
			return false, fmt.Errorf("dfs: OnVisit hook for %q: %w", f.candidate, err)
		}
	}
	if w.opts.Filter != nil && !w.opts.Filter(f.candidate) {
		return false, nil
	}

	return f.digest == w.target, nil
}

// single tests f and, on a miss, bounces to f extended by the first
// alphabet character. No other branch is ever tried.
func (w *dfsWalker) single(f frame) trampoline.Step[string] {
	hit, err := w.visit(f)
	if err != nil {
		return trampoline.Fail[string](err)
	}
	if hit {
		return trampoline.Done(f.candidate)
	}
	if w.opts.MaxLength > 0 && f.depth >= w.opts.MaxLength {
		return trampoline.Fail[string](fmt.Errorf("%w: single path reached length %d", search.ErrSearchExhausted, f.depth))
	}

	next := frame{
		candidate: w.prefix(f.depth + 1),
		depth:     f.depth + 1,
		digest:    w.opts.Checksum.Extend(f.digest, w.first),
	}

	return trampoline.Bounce(func() trampoline.Step[string] {
		return w.single(next)
	})
}

// prefix returns n copies of the first character, slicing a shared run
// that is doubled whenever it is too short.
func (w *dfsWalker) prefix(n int) string {
	need := n * w.unit
	if need > len(w.path) {
		grow := 2 * n
		if grow < 64 {
			grow = 64
		}
		w.path = strings.Repeat(string(w.first), grow)
	}

	return w.path[:need]
}

// branch tests f, pushes its children in reverse so the first alphabet
// character is popped next, and bounces to the top of the stack.
func (w *dfsWalker) branch(f frame) trampoline.Step[string] {
	hit, err := w.visit(f)
	if err != nil {
		return trampoline.Fail[string](err)
	}
	if hit {
		return trampoline.Done(f.candidate)
	}

	if f.depth < w.opts.MaxLength {
		for i := len(w.chars) - 1; i >= 0; i-- {
			c := w.chars[i]
			w.stack = append(w.stack, frame{
				candidate: f.candidate + string(c),
				depth:     f.depth + 1,
				digest:    w.opts.Checksum.Extend(f.digest, c),
			})
		}
	}
	if len(w.stack) == 0 {
		return trampoline.Fail[string](fmt.Errorf("%w: all candidates up to length %d tested", search.ErrSearchExhausted, w.opts.MaxLength))
	}

	top := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]

	return trampoline.Bounce(func() trampoline.Step[string] {
		return w.branch(top)
	})
}
