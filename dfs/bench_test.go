package dfs_test

import (
	"testing"

	"github.com/katalvlaran/preimage/alphabet"
	"github.com/katalvlaran/preimage/dfs"
	"github.com/katalvlaran/preimage/search"
)

// BenchmarkDFS_FaithfulPath walks 10,000 steps of the single degenerate path.
// The target is odd, so the all-'0' path never reaches it.
func BenchmarkDFS_FaithfulPath(b *testing.B) {
	zero := alphabet.New(alphabet.Range{From: '0', To: '1'})
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dfs.FindCollision(1, dfs.WithAlphabet(zero), dfs.WithMaxSteps(10_000))
	}
}

// BenchmarkDFS_ExhaustiveLength3 explores the full 0-9/A-Z/a-z tree up to length 3.
func BenchmarkDFS_ExhaustiveLength3(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dfs.FindCollision(1023, dfs.WithMode(search.Exhaustive), dfs.WithMaxLength(3), dfs.WithMaxSteps(0))
	}
}
