// Package bfs provides a breadth-first preimage search for the weak
// code-point checksum, using an explicit FIFO frontier of candidate strings.
//
// What
//
//   - FindCollision(target, opts...) dequeues candidates in discovery order
//     and returns the first whose digest equals target.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (candidate appended to the frontier)
//   - OnDequeue (candidate removed from the frontier)
//   - OnVisit   (candidate tested; may abort with an error)
//   - Filter rejects individual candidates (e.g. the original key).
//   - Honors MaxSteps (dequeues) and, in Exhaustive mode, MaxLength.
//
// Modes
//
//   - search.Faithful (default): every round enqueues prefix+c for each
//     alphabet character, but prefix is never advanced from the empty string.
//     The engine therefore only ever tests one-rune candidates, cycling through
//     the alphabet, and the frontier grows by len(alphabet)-1 items per step.
//     It terminates only if a single character collides with the target.
//   - search.Exhaustive: the frontier is seeded with the one-rune level; each
//     dequeued item, once tested, enqueues its own children. This is true
//     level-order search and finds a shortest collision.
//
// Determinism
//
//	Children are enqueued in alphabet order and the frontier is strictly
//	FIFO, so the n-th candidate tested is always the n-th candidate enqueued.
//
// Complexity (A = alphabet size, S = steps)
//
//   - Faithful:   O(A) time per step, O(A·S) frontier memory.
//   - Exhaustive: O(A·L) time per step (string copies), frontier up to one full level.
//
// Usage
//
//	res, err := bfs.FindCollision(checksum.Sum("key"),
//	    bfs.WithMode(search.Exhaustive),
//	    bfs.WithMaxSteps(1_000_000),
//	    bfs.WithFilter(func(c string) bool { return c != "key" }),
//	)
//	if errors.Is(err, search.ErrSearchExhausted) {
//	    // not found within budget; res.Steps and res.Frontier are set
//	}
//
// Errors
//
//   - search.ErrOptionViolation  if invalid Option (e.g. negative MaxSteps).
//   - search.ErrEmptyAlphabet    if the alphabet has no characters.
//   - search.ErrSearchExhausted  when MaxSteps is spent or the bounded frontier empties.
//   - ctx.Err()                  on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
