package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries what the subcommands share once PersistentPreRunE has run.
type app struct {
	v   *viper.Viper
	log *zap.Logger

	configFile string
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preimage",
		Short: "Find second preimages of a weak additive checksum",
		Long: `preimage digests a key with a sum-of-code-points checksum and searches
an alphabet for a different string with the same digest, depth-first or
breadth-first. Runs can be recorded to a local SQLite history.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v, err := loadConfig(a.configFile, cmd.Flags())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			a.v = v
			if a.log == nil {
				if a.log, err = newLogger(v.GetString(cfgKeyLogLevel)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default: ./preimage.yaml or ~/.config/preimage/preimage.yaml)")
	pf.String(cfgKeyLogLevel, defaultLogLevel, "log level: debug, info, warn, error")
	pf.String(cfgKeyDB, "", "run history database (default: user config dir)")

	cmd.AddCommand(newSearchCmd(a))
	cmd.AddCommand(newChecksumCmd(a))
	cmd.AddCommand(newHistoryCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger builds a production zap logger writing to stderr at level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	config := zap.NewProductionConfig()
	config.Level = lvl
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	log, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return log, nil
}

func (a *app) sync() {
	if a.log != nil {
		_ = a.log.Sync()
	}
}
