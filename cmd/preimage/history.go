package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/preimage/runlog"
)

func newHistoryCmd(a *app) *cobra.Command {
	var (
		limit  int
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded search runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				if runs == nil {
					runs = []runlog.Run{}
				}
				return writeJSON(out, runs)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSTARTED\tKEY\tSTRATEGY\tMODE\tSTEPS\tRESULT")
			for _, r := range runs {
				fmt.Fprintf(tw, "%s\t%s\t%q\t%s\t%s\t%d\t%s\n",
					r.ID, r.StartedAt.Local().Format(time.DateTime), r.Key, r.Strategy, r.Mode, r.Steps, outcome(r))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum runs to show (0 = all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	cmd.AddCommand(newHistoryShowCmd(a))

	return cmd
}

func newHistoryShowCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print one recorded run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			r, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, r)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "id:\t%s\n", r.ID)
			fmt.Fprintf(tw, "key:\t%q\n", r.Key)
			fmt.Fprintf(tw, "target:\t%d\n", r.Target)
			fmt.Fprintf(tw, "strategy:\t%s\n", r.Strategy)
			fmt.Fprintf(tw, "mode:\t%s\n", r.Mode)
			fmt.Fprintf(tw, "alphabet:\t%s\n", r.Alphabet)
			fmt.Fprintf(tw, "result:\t%s\n", outcome(r))
			fmt.Fprintf(tw, "steps:\t%d\n", r.Steps)
			fmt.Fprintf(tw, "frontier:\t%d\n", r.Frontier)
			fmt.Fprintf(tw, "started:\t%s\n", r.StartedAt.Local().Format(time.DateTime))
			fmt.Fprintf(tw, "elapsed:\t%s\n", r.Elapsed)
			if r.Error != "" {
				fmt.Fprintf(tw, "error:\t%s\n", r.Error)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}

// openStore opens the history database named by the db setting.
func (a *app) openStore() (*runlog.Store, error) {
	store, err := runlog.Open(a.v.GetString(cfgKeyDB))
	if err != nil {
		return nil, err
	}
	a.log.Debug("run history opened", zap.String("path", store.Path()))

	return store, nil
}

func outcome(r runlog.Run) string {
	if !r.Found {
		return "-"
	}
	return r.Candidate
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
