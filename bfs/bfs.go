// Package bfs provides the breadth-first collision search over candidate
// strings, driven by an explicit FIFO frontier.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/preimage/checksum"
	"github.com/katalvlaran/preimage/search"
)

// queueItem pairs a candidate with its length in runes and its digest.
type queueItem struct {
	candidate string
	depth     int
	digest    checksum.Digest
}

// walker encapsulates mutable search state.
type walker struct {
	opts   BFSOptions
	target checksum.Digest
	chars  []rune
	queue  []queueItem
	res    *search.Result

	// prefix seeds every faithful round; it is never advanced.
	prefix queueItem
}

// FindCollision runs breadth-first search for a string whose digest equals
// target, applying any number of functional Options.
// Returns search.ErrOptionViolation for bad options, search.ErrEmptyAlphabet
// when nothing can be enqueued, search.ErrSearchExhausted when the budget or
// the bounded frontier runs out, ctx.Err() on cancellation, or any
// user-supplied hook error. The Result is non-nil once the search has started.
func FindCollision(target checksum.Digest, opts ...Option) (*search.Result, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Alphabet.Len() == 0 {
		return nil, search.ErrEmptyAlphabet
	}

	// Prepare walker
	w := &walker{
		opts:   o,
		target: target,
		chars:  o.Alphabet.Runes(),
		queue:  make([]queueItem, 0, 2*o.Alphabet.Len()),
		res:    &search.Result{Target: target},
		prefix: queueItem{digest: o.Checksum.Sum("")},
	}

	// Main loop
	var err error
	if o.Mode == search.Exhaustive {
		w.expand(w.prefix)
		err = w.levelOrder()
	} else {
		err = w.staleRounds()
	}
	w.res.Frontier = len(w.queue)

	return w.res, err
}

// staleRounds reproduces the reference loop: every round enqueues the
// children of the empty prefix, then dequeues and tests one item. Only
// one-rune candidates are ever produced, and the frontier grows by
// len(alphabet)-1 per step.
func (w *walker) staleRounds() error {
	for {
		if err := w.checkBudget(); err != nil {
			return err
		}
		w.expand(w.prefix)

		item := w.dequeue()
		hit, err := w.visit(item)
		if err != nil || hit {
			return err
		}
	}
}

// levelOrder tests items in FIFO order and enqueues the children of each
// tested item while its depth is below MaxLength.
func (w *walker) levelOrder() error {
	for len(w.queue) > 0 {
		if err := w.checkBudget(); err != nil {
			return err
		}

		item := w.dequeue()
		hit, err := w.visit(item)
		if err != nil || hit {
			return err
		}
		if w.opts.MaxLength == 0 || item.depth < w.opts.MaxLength {
			w.expand(item)
		}
	}

	return fmt.Errorf("%w: all candidates up to length %d tested", search.ErrSearchExhausted, w.opts.MaxLength)
}

// checkBudget reports cancellation or a spent budget (once per loop).
func (w *walker) checkBudget() error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}
	if w.opts.MaxSteps > 0 && w.res.Steps >= w.opts.MaxSteps {
		return fmt.Errorf("%w: %d steps", search.ErrSearchExhausted, w.res.Steps)
	}

	return nil
}

// expand enqueues parent + c for every alphabet character, in order.
func (w *walker) expand(parent queueItem) {
	for _, c := range w.chars {
		w.enqueue(queueItem{
			candidate: parent.candidate + string(c),
			depth:     parent.depth + 1,
			digest:    w.opts.Checksum.Extend(parent.digest, c),
		})
	}
}

// enqueue calls OnEnqueue and appends item to the back of the queue.
func (w *walker) enqueue(item queueItem) {
	w.opts.OnEnqueue(item.candidate, item.depth)
	w.queue = append(w.queue, item)
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.candidate, item.depth)

	return item
}

// visit counts the step, calls OnVisit and tests item against the target.
// On a hit the result is filled in.
func (w *walker) visit(item queueItem) (bool, error) {
	w.res.Steps++
	if err := w.opts.OnVisit(item.candidate, item.depth); err != nil {
		return false, fmt.Errorf("bfs: OnVisit error at %q: %w", item.candidate, err)
	}
	if !w.opts.Filter(item.candidate) || item.digest != w.target {
		return false, nil
	}

	w.res.Candidate = item.candidate
	w.res.Digest = w.opts.Checksum.Sum(item.candidate)
	w.res.Found = true

	return true, nil
}
