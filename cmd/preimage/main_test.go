package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/preimage/runlog"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// runCLI isolates config lookup in a temp dir and runs args.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))

	var stdout, stderr bytes.Buffer
	base := []string{"--log-level", "error"}
	code := run(context.Background(), append(args, base...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestSearch_ExhaustiveBFS(t *testing.T) {
	code, out, _ := runCLI(t, "search", "--strategy", "bfs", "--mode", "exhaustive")
	assert.Equal(t, exitSuccess, code)
	assert.Equal(t, "Wyy\n", out)
}

func TestSearch_NotFoundWithinBudget(t *testing.T) {
	code, out, _ := runCLI(t, "search", "key", "--max-steps", "500")
	assert.Equal(t, exitNotFound, code)
	assert.Equal(t, "not found within budget\n", out)
}

func TestSearch_CustomAlphabet(t *testing.T) {
	// faithful dfs over {a, b}: 97·2 = 194 = "aa"
	code, out, _ := runCLI(t, "search", "aa", "--alphabet", "a-c", "--allow-key")
	assert.Equal(t, exitSuccess, code)
	assert.Equal(t, "aa\n", out)
}

func TestSearch_BadFlags(t *testing.T) {
	for _, args := range [][]string{
		{"search", "--strategy", "astar"},
		{"search", "--mode", "random"},
		{"search", "--alphabet", "abc"},
		{"search", "--modulus", "0"},
		{"search", "a", "b"},
	} {
		code, _, stderr := runCLI(t, args...)
		assert.Equal(t, exitError, code, args)
		assert.True(t, strings.HasPrefix(stderr, "preimage: "), "%v: %q", args, stderr)
	}
}

func TestSearch_EnvAndConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "preimage.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("strategy: bfs\nmode: exhaustive\n"), 0o644))

	code, out, _ := runCLI(t, "search", "--config", cfg)
	assert.Equal(t, exitSuccess, code)
	assert.Equal(t, "Wyy\n", out)

	// flags beat the file
	code, out, _ = runCLI(t, "search", "--config", cfg, "--max-length", "2")
	assert.Equal(t, exitNotFound, code)
	assert.Equal(t, "not found within budget\n", out)

	t.Setenv("PREIMAGE_MODULUS", "16")
	code, out, _ = runCLI(t, "search", "--strategy", "bfs")
	assert.Equal(t, exitSuccess, code)
	assert.Equal(t, "I\n", out)
}

func TestSearch_MissingConfigFile(t *testing.T) {
	code, _, stderr := runCLI(t, "search", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "load config")
}

func TestChecksum(t *testing.T) {
	code, out, _ := runCLI(t, "checksum", "key", "Wyy", "")
	assert.Equal(t, exitSuccess, code)
	assert.Equal(t, "329\t\"key\"\n329\t\"Wyy\"\n0\t\"\"\n", out)

	code, out, _ = runCLI(t, "checksum", "--modulus", "100", "key")
	assert.Equal(t, exitSuccess, code)
	assert.Equal(t, "29\t\"key\"\n", out)
}

func TestHistory_RecordsSearches(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")

	code, _, _ := runCLI(t, "search", "--db", db, "--record", "--strategy", "bfs", "--mode", "exhaustive")
	require.Equal(t, exitSuccess, code)
	code, _, _ = runCLI(t, "search", "--db", db, "--record", "--max-steps", "10")
	require.Equal(t, exitNotFound, code)

	code, out, _ := runCLI(t, "history", "--db", db, "--json")
	require.Equal(t, exitSuccess, code)
	var runs []runlog.Run
	require.NoError(t, json.Unmarshal([]byte(out), &runs))
	require.Len(t, runs, 2)

	found := 0
	for _, r := range runs {
		if r.Found {
			found++
			assert.Equal(t, "Wyy", r.Candidate)
		} else {
			assert.Equal(t, 10, r.Steps)
			assert.Contains(t, r.Error, "exhausted")
		}
	}
	assert.Equal(t, 1, found)

	code, out, _ = runCLI(t, "history", "--db", db, "--limit", "1")
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, 2, strings.Count(out, "\n"), "header plus one run")
}

func TestHistory_ShowRun(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")

	code, _, _ := runCLI(t, "search", "--db", db, "--record", "--strategy", "bfs", "--mode", "exhaustive")
	require.Equal(t, exitSuccess, code)

	code, out, _ := runCLI(t, "history", "--db", db, "--json")
	require.Equal(t, exitSuccess, code)
	var runs []runlog.Run
	require.NoError(t, json.Unmarshal([]byte(out), &runs))
	require.Len(t, runs, 1)
	id := runs[0].ID

	code, out, _ = runCLI(t, "history", "show", id, "--db", db, "--json")
	require.Equal(t, exitSuccess, code)
	var got runlog.Run
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, runs[0], got)
	assert.Equal(t, "0-9,A-Z,a-z", got.Alphabet)

	code, out, _ = runCLI(t, "history", "show", id, "--db", db)
	require.Equal(t, exitSuccess, code)
	assert.Contains(t, out, "result:")
	assert.Contains(t, out, "Wyy")
	assert.NotContains(t, out, "error:")

	code, _, stderr := runCLI(t, "history", "show", "missing", "--db", db)
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "run not found")
}

func TestHistory_EmptyJSON(t *testing.T) {
	code, out, _ := runCLI(t, "history", "--db", filepath.Join(t.TempDir(), "h.db"), "--json")
	assert.Equal(t, exitSuccess, code)
	assert.Equal(t, "[]\n", out)
}

func TestVersion(t *testing.T) {
	code, out, _ := runCLI(t, "version")
	assert.Equal(t, exitSuccess, code)
	assert.Equal(t, "preimage dev\n", out)
}

func TestSearch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	code := run(ctx, []string{"search", "--max-steps", "0", "--log-level", "error"}, &stdout, &stderr)
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr.String(), "context canceled")
}
