package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/preimage/collide"
	"github.com/katalvlaran/preimage/search"
)

// errNotFound marks a search that spent its budget; main exits with exitNotFound.
var errNotFound = errors.New("not found within budget")

func newSearchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [key]",
		Short: "Search for a different string with the key's checksum",
		Long: `Search digests key (default "key") and walks the alphabet until it finds
another string with the same digest or the step budget runs out.

Faithful mode reproduces the reference traversals: depth-first only ever
appends the first alphabet character, breadth-first never grows past single
characters. Exhaustive mode explores every string in order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := collide.DefaultKey
			if len(args) == 1 {
				key = args[0]
			}
			return a.runSearch(cmd, key)
		},
	}

	d := collide.DefaultConfig()
	f := cmd.Flags()
	f.String(cfgKeyStrategy, d.Strategy.String(), "search engine: dfs or bfs")
	f.String(cfgKeyMode, d.Mode.String(), "traversal: faithful or exhaustive")
	f.String(cfgKeyAlphabet, "0-9,A-Z,a-z", "half-open code point ranges, e.g. a-z,0-9")
	f.Uint32(cfgKeyModulus, d.Modulus, "checksum modulus")
	f.Int(cfgKeyMaxSteps, d.MaxSteps, "step budget (0 = search until found)")
	f.Int(cfgKeyMaxLength, d.MaxLength, "maximum candidate length (0 = unbounded; exhaustive dfs defaults to 4)")
	f.Bool(cfgKeyAllowKey, d.AllowKey, "accept the key itself as a result")
	f.Bool(cfgKeyRecord, false, "record the run in the history database")
	f.Int(cfgKeyProgressEvery, d.ProgressEvery, "log progress every n candidates at debug level (0 = never)")

	return cmd
}

func (a *app) runSearch(cmd *cobra.Command, key string) error {
	cfg, err := searchConfig(a.v)
	if err != nil {
		return err
	}

	var opts []collide.FinderOption
	if a.v.GetBool(cfgKeyRecord) {
		store, err := a.openStore()
		if err != nil {
			return err
		}
		defer store.Close()
		opts = append(opts, collide.WithRecorder(store))
	}

	finder, err := collide.NewFinder(cfg, a.log, opts...)
	if err != nil {
		return err
	}

	rep, err := finder.Find(cmd.Context(), key)
	out := cmd.OutOrStdout()
	switch {
	case err == nil:
		fmt.Fprintln(out, rep.Result.Candidate)
		return nil
	case errors.Is(err, search.ErrSearchExhausted):
		fmt.Fprintln(out, errNotFound)
		a.log.Debug("budget spent", zap.String("run", rep.ID), zap.Error(err))
		return errNotFound
	default:
		return err
	}
}
