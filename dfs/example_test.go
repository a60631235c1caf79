package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/preimage/alphabet"
	"github.com/katalvlaran/preimage/checksum"
	"github.com/katalvlaran/preimage/dfs"
	"github.com/katalvlaran/preimage/search"
)

// ExampleFindCollision runs the faithful walk on a one-letter alphabet.
// The first candidate after the empty string already collides.
func ExampleFindCollision() {
	zero := alphabet.New(alphabet.Range{From: '0', To: '1'})

	res, err := dfs.FindCollision(checksum.Sum("0"), dfs.WithAlphabet(zero))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Candidate, res.Steps)
	// Output:
	// 0 1
}

// ExampleFindCollision_exhaustive branches over every character up to
// length 3 and skips the key itself.
func ExampleFindCollision_exhaustive() {
	key := "key"
	res, err := dfs.FindCollision(checksum.Sum(key),
		dfs.WithMode(search.Exhaustive),
		dfs.WithMaxLength(3),
		dfs.WithFilter(func(c string) bool { return c != key }),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Candidate, res.Digest)
	// Output:
	// Wyy 329
}
