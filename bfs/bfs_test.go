package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/preimage/alphabet"
	"github.com/katalvlaran/preimage/bfs"
	"github.com/katalvlaran/preimage/checksum"
	"github.com/katalvlaran/preimage/search"
)

var (
	ab   = alphabet.New(alphabet.Range{From: 'a', To: 'c'})
	zero = alphabet.New(alphabet.Range{From: '0', To: '1'})
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.FindCollision(0, bfs.WithMaxSteps(-1)); !errors.Is(err, search.ErrOptionViolation) {
		t.Errorf("negative steps: want ErrOptionViolation, got %v", err)
	}
	if _, err := bfs.FindCollision(0, bfs.WithMaxLength(-1)); !errors.Is(err, search.ErrOptionViolation) {
		t.Errorf("negative length: want ErrOptionViolation, got %v", err)
	}
	if _, err := bfs.FindCollision(0, bfs.WithMode(search.Mode(-1))); !errors.Is(err, search.ErrOptionViolation) {
		t.Errorf("bad mode: want ErrOptionViolation, got %v", err)
	}
	if _, err := bfs.FindCollision(1, bfs.WithChecksum(checksum.Modular(0))); !errors.Is(err, search.ErrOptionViolation) {
		t.Errorf("zero modulus: want ErrOptionViolation, got %v", err)
	}
	if _, err := bfs.FindCollision(0, bfs.WithAlphabet(alphabet.New())); !errors.Is(err, search.ErrEmptyAlphabet) {
		t.Errorf("empty alphabet: want ErrEmptyAlphabet, got %v", err)
	}
}

// TestBFS_SingleCharacterAlphabet: "0" is the first dequeued item.
func TestBFS_SingleCharacterAlphabet(t *testing.T) {
	for _, mode := range []search.Mode{search.Faithful, search.Exhaustive} {
		res, err := bfs.FindCollision(checksum.Sum("0"), bfs.WithAlphabet(zero), bfs.WithMode(mode))
		require.NoError(t, err, mode)
		assert.Equal(t, "0", res.Candidate, mode)
		assert.Equal(t, 1, res.Steps, mode)
		assert.True(t, res.Found, mode)
	}
}

// TestBFS_Faithful_ExhaustsAfterExactBudget: no single character digests to 196.
func TestBFS_Faithful_ExhaustsAfterExactBudget(t *testing.T) {
	res, err := bfs.FindCollision(checksum.Sum("bb"), bfs.WithAlphabet(ab), bfs.WithMaxSteps(100))
	assert.ErrorIs(t, err, search.ErrSearchExhausted)
	require.NotNil(t, res)
	assert.False(t, res.Found)
	assert.Equal(t, "", res.Candidate)
	assert.Equal(t, 100, res.Steps)
	// two appended, one removed per step
	assert.Equal(t, 100, res.Frontier)
}

// TestBFS_Faithful_OnlySingleRunes cycles through the alphabet without ever
// building longer candidates.
func TestBFS_Faithful_OnlySingleRunes(t *testing.T) {
	var tested []string
	_, err := bfs.FindCollision(checksum.Sum("bb"),
		bfs.WithAlphabet(ab),
		bfs.WithMaxSteps(6),
		bfs.WithOnVisit(func(c string, d int) error {
			assert.Equal(t, 1, d)
			tested = append(tested, c)
			return nil
		}),
	)
	assert.ErrorIs(t, err, search.ErrSearchExhausted)
	assert.Equal(t, []string{"a", "b", "a", "b", "a", "b"}, tested)
}

// TestBFS_FIFO asserts that the n-th tested candidate is the n-th enqueued one.
func TestBFS_FIFO(t *testing.T) {
	for _, mode := range []search.Mode{search.Faithful, search.Exhaustive} {
		var enq, deq, vis []string
		_, err := bfs.FindCollision(1,
			bfs.WithAlphabet(ab),
			bfs.WithMode(mode),
			bfs.WithMaxSteps(50),
			bfs.WithOnEnqueue(func(c string, _ int) { enq = append(enq, c) }),
			bfs.WithOnDequeue(func(c string, _ int) { deq = append(deq, c) }),
			bfs.WithOnVisit(func(c string, _ int) error { vis = append(vis, c); return nil }),
		)
		assert.ErrorIs(t, err, search.ErrSearchExhausted)
		require.Len(t, vis, 50)
		if diff := cmp.Diff(enq[:len(vis)], vis); diff != "" {
			t.Errorf("%v: visit order differs from enqueue order (-enq +vis):\n%s", mode, diff)
		}
		if diff := cmp.Diff(deq, vis); diff != "" {
			t.Errorf("%v: dequeue and visit disagree (-deq +vis):\n%s", mode, diff)
		}
	}
}

// TestBFS_Exhaustive_LevelOrder finds "bb" after the full first level.
func TestBFS_Exhaustive_LevelOrder(t *testing.T) {
	var vis []string
	res, err := bfs.FindCollision(checksum.Sum("bb"),
		bfs.WithAlphabet(ab),
		bfs.WithMode(search.Exhaustive),
		bfs.WithOnVisit(func(c string, _ int) error { vis = append(vis, c); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, "bb", res.Candidate)
	assert.Equal(t, 6, res.Steps)
	assert.Equal(t, []string{"a", "b", "aa", "ab", "ba", "bb"}, vis)
	assert.Equal(t, checksum.Sum("bb"), res.Digest)
}

// TestBFS_Exhaustive_Shortest finds a three-rune collision for "key".
func TestBFS_Exhaustive_Shortest(t *testing.T) {
	key := "key"
	res, err := bfs.FindCollision(checksum.Sum(key),
		bfs.WithMode(search.Exhaustive),
		bfs.WithFilter(func(c string) bool { return c != key }),
	)
	require.NoError(t, err)
	assert.Equal(t, "Wyy", res.Candidate)
	assert.Equal(t, checksum.Sum(key), checksum.Sum(res.Candidate))
}

// TestBFS_Exhaustive_MaxLength empties the bounded frontier.
func TestBFS_Exhaustive_MaxLength(t *testing.T) {
	res, err := bfs.FindCollision(1,
		bfs.WithAlphabet(ab),
		bfs.WithMode(search.Exhaustive),
		bfs.WithMaxLength(3),
		bfs.WithMaxSteps(0),
	)
	assert.ErrorIs(t, err, search.ErrSearchExhausted)
	assert.Equal(t, 2+4+8, res.Steps)
	assert.Equal(t, 0, res.Frontier)
}

// TestBFS_Filter turns the key itself into a miss.
func TestBFS_Filter(t *testing.T) {
	res, err := bfs.FindCollision(checksum.Sum("b"),
		bfs.WithAlphabet(ab),
		bfs.WithMode(search.Exhaustive),
		bfs.WithMaxLength(2),
		bfs.WithFilter(func(c string) bool { return c != "b" }),
	)
	assert.ErrorIs(t, err, search.ErrSearchExhausted, "no other string of length ≤ 2 digests to 98")
	assert.False(t, res.Found)
}

// TestBFS_OnVisitError aborts with the wrapped hook error.
func TestBFS_OnVisitError(t *testing.T) {
	stop := errors.New("stop")
	res, err := bfs.FindCollision(1, bfs.WithAlphabet(ab), bfs.WithOnVisit(func(c string, _ int) error {
		if c == "b" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.ErrorContains(t, err, `OnVisit error at "b"`)
	assert.Equal(t, 2, res.Steps)
}

// TestBFS_Cancellation stops before the first dequeue.
func TestBFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := bfs.FindCollision(1, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, res.Steps)
}

// TestBFS_CustomModulus searches under a smaller digest space.
func TestBFS_CustomModulus(t *testing.T) {
	h, err := checksum.Mod(10)
	require.NoError(t, err)

	res, err := bfs.FindCollision(3, bfs.WithChecksum(h))
	require.NoError(t, err)
	assert.Equal(t, checksum.Digest(3), h.Sum(res.Candidate))
	// '5' (53) is the first alphabet rune ≡ 3 (mod 10)
	assert.Equal(t, "5", res.Candidate)
}

// TestBFS_RoundTrip sweeps targets: any returned string digests to the target.
func TestBFS_RoundTrip(t *testing.T) {
	for target := checksum.Digest(0); target < checksum.Modulus; target += 41 {
		for _, mode := range []search.Mode{search.Faithful, search.Exhaustive} {
			res, err := bfs.FindCollision(target, bfs.WithMode(mode), bfs.WithMaxSteps(4000))
			if err != nil {
				assert.ErrorIs(t, err, search.ErrSearchExhausted)
				continue
			}
			assert.Equal(t, target, checksum.Sum(res.Candidate), "mode %v target %d", mode, target)
			assert.NotEmpty(t, res.Candidate, "breadth-first never tests the empty string")
		}
	}
}
