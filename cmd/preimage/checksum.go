package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/preimage/checksum"
)

func newChecksumCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checksum <string>...",
		Short: "Print the digest of each argument",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := checksum.Mod(a.v.GetUint32(cfgKeyModulus))
			if err != nil {
				return err
			}
			for _, s := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%q\n", h.Sum(s), s)
			}
			return nil
		},
	}
	cmd.Flags().Uint32(cfgKeyModulus, checksum.Modulus, "checksum modulus")

	return cmd
}
