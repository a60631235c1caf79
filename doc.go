// Package preimage is a small laboratory for second-preimage search against a
// deliberately weak checksum: the sum of a string's code points modulo 1024.
//
// What is in here?
//
//	checksum/   — the digest function, incremental Extend, custom moduli
//	alphabet/   — ordered candidate characters built from half-open ranges
//	trampoline/ — generic stack-safe step runner with limit and cancellation
//	search/     — shared Result, Mode and sentinel errors
//	dfs/        — depth-first search driven by the trampoline
//	bfs/        — breadth-first search over an explicit FIFO queue
//	collide/    — driver: key → digest → engine, zap logging, Recorder hook
//	runlog/     — SQLite history of runs (modernc.org/sqlite, no cgo)
//	cmd/preimage — cobra/viper command line
//
// Two traversal modes exist for each engine. Faithful reproduces the
// reference walks exactly, including their blind spots: depth-first only
// appends the first alphabet character, breadth-first never leaves the
// single-character level. Exhaustive enumerates every candidate, in pre-order
// up to MaxLength (depth-first) or level order (breadth-first).
//
// Every search takes a step budget. Spending it returns
// search.ErrSearchExhausted; a budget of 0 searches until a collision is found.
//
// Quick example:
//
//	res, err := bfs.FindCollision(checksum.Sum("key"), bfs.WithMode(search.Exhaustive))
//	// res.Candidate == "Wyy": 87 + 121 + 121 = 329 = 107 + 101 + 121
//
//	go install github.com/katalvlaran/preimage/cmd/preimage@latest
//	preimage search --strategy bfs --mode exhaustive key
package preimage
