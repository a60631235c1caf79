// Package dfs implements a depth-first preimage search for the weak
// code-point checksum, flattened onto a trampoline.
//
// What:
//
//   - FindCollision(target, opts...) looks for a string whose digest equals
//     target, starting from the empty string.
//   - Every step of the search is a trampoline.Step: either the landed
//     collision or a deferred "test the next candidate" thunk. The outer
//     trampoline.Run loop invokes thunks one at a time, so native stack depth
//     stays constant however long the candidate grows.
//
// Modes:
//
//   - search.Faithful (default): on a miss, only the first alphabet character
//     is ever appended. The walk is the single path c, cc, ccc, ... and ends
//     only when some run of c collides with the target, the budget is spent,
//     or MaxLength (if set) is reached.
//   - search.Exhaustive: true pre-order branching over every character at
//     every depth, children pushed onto an explicit stack carried between
//     bounces. An infinite tree has no backtracking point, so MaxLength > 0 is
//     required; when every candidate up to MaxLength has been tested the
//     search reports search.ErrSearchExhausted.
//
// Why:
//
//	Recursion depth equals candidate length, which is unbounded. Trampolining
//	turns that recursion into a loop with an explicit, inspectable
//	continuation value.
//
// Budget:
//
//	Steps are trampoline bounces. With WithMaxSteps(B) the search either
//	returns a true collision or search.ErrSearchExhausted after exactly B
//	bounces. WithMaxSteps(0) is the opt-in run-forever behaviour.
//
// Complexity (L = candidate length reached, A = alphabet size):
//
//   - Faithful:   O(1) per step; candidates are slices of one shared run and
//     digests are extended incrementally.
//   - Exhaustive: O(L) per step for the string copy; stack holds at most L·A frames.
//
// Options:
//
//   - WithContext(ctx)        cancellation, checked once per bounce.
//   - WithAlphabet(a)         extension characters (default 0-9, A-Z, a-z half-open).
//   - WithChecksum(h)         hasher (default checksum.Default).
//   - WithMode(m)             Faithful or Exhaustive.
//   - WithMaxSteps(n)         bounce budget (default DefaultMaxSteps, 0 = none).
//   - WithMaxLength(n)        longest candidate in runes.
//   - WithFilter(fn)          reject candidates (e.g. the original key).
//   - WithOnVisit(fn)         hook per tested candidate; error aborts.
package dfs
