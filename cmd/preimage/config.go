package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/preimage/alphabet"
	"github.com/katalvlaran/preimage/collide"
	"github.com/katalvlaran/preimage/search"
)

const (
	configFileName = "preimage"
	configFileType = "yaml"
	envPrefix      = "PREIMAGE"

	// Config keys; flags use the same names with '-' for '_'.
	cfgKeyLogLevel      = "log-level"
	cfgKeyDB            = "db"
	cfgKeyStrategy      = "strategy"
	cfgKeyMode          = "mode"
	cfgKeyAlphabet      = "alphabet"
	cfgKeyModulus       = "modulus"
	cfgKeyMaxSteps      = "max-steps"
	cfgKeyMaxLength     = "max-length"
	cfgKeyAllowKey      = "allow-key"
	cfgKeyRecord        = "record"
	cfgKeyProgressEvery = "progress-every"

	defaultLogLevel = "warn"
)

// loadConfig layers defaults, an optional yaml file, PREIMAGE_* environment
// variables and the flags in fs, in increasing precedence.
// A missing config file is only an error when it was named explicitly.
func loadConfig(file string, fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "preimage"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return v, nil
}

func setDefaults(v *viper.Viper) {
	d := collide.DefaultConfig()
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyDB, defaultDBPath())
	v.SetDefault(cfgKeyStrategy, d.Strategy.String())
	v.SetDefault(cfgKeyMode, d.Mode.String())
	v.SetDefault(cfgKeyAlphabet, alphabet.FormatRanges(d.Ranges))
	v.SetDefault(cfgKeyModulus, d.Modulus)
	v.SetDefault(cfgKeyMaxSteps, d.MaxSteps)
	v.SetDefault(cfgKeyMaxLength, d.MaxLength)
	v.SetDefault(cfgKeyAllowKey, d.AllowKey)
	v.SetDefault(cfgKeyRecord, false)
	v.SetDefault(cfgKeyProgressEvery, d.ProgressEvery)
}

// defaultDBPath is <user config dir>/preimage/runs.db, or ./.preimage/runs.db
// when the user config dir is unknown.
func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".preimage", "runs.db")
	}
	return filepath.Join(dir, "preimage", "runs.db")
}

// searchConfig turns the layered settings into a collide.Config.
func searchConfig(v *viper.Viper) (collide.Config, error) {
	cfg := collide.DefaultConfig()

	strategy, err := collide.ParseStrategy(v.GetString(cfgKeyStrategy))
	if err != nil {
		return cfg, err
	}
	mode, err := search.ParseMode(v.GetString(cfgKeyMode))
	if err != nil {
		return cfg, err
	}
	ranges, err := alphabet.ParseRanges(v.GetString(cfgKeyAlphabet))
	if err != nil {
		return cfg, err
	}

	cfg.Strategy = strategy
	cfg.Mode = mode
	cfg.Ranges = ranges
	cfg.Modulus = v.GetUint32(cfgKeyModulus)
	cfg.MaxSteps = v.GetInt(cfgKeyMaxSteps)
	cfg.MaxLength = v.GetInt(cfgKeyMaxLength)
	cfg.AllowKey = v.GetBool(cfgKeyAllowKey)
	cfg.ProgressEvery = v.GetInt(cfgKeyProgressEvery)

	return cfg, nil
}
