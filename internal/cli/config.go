package cli

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config keys, shared by flags, environment variables and config files.
const (
	keyConfig   = "config"
	keyWorkers  = "workers"
	keyCellSize = "cell-size"
	keyLogLevel = "log-level"

	envPrefix = "GARDENPLOT"
)

// Config is the resolved CLI configuration.
type Config struct {
	Workers  int
	CellSize int
	LogLevel logrus.Level
}

// newViper returns a viper instance reading GARDENPLOT_* variables, with
// dashes in keys mapped to underscores (cell-size → GARDENPLOT_CELL_SIZE).
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(keyWorkers, 1)
	v.SetDefault(keyCellSize, 16)
	v.SetDefault(keyLogLevel, "info")
	return v
}

// loadConfig binds flags, reads the optional config file and validates
// the result. Precedence: flag > env > file > default.
func loadConfig(v *viper.Viper, flags *pflag.FlagSet) (Config, error) {
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, errors.Wrap(err, "bind flags")
	}
	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config %s", path)
		}
	}

	level, err := logrus.ParseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return Config{}, errors.Wrap(err, keyLogLevel)
	}
	cfg := Config{
		Workers:  v.GetInt(keyWorkers),
		CellSize: v.GetInt(keyCellSize),
		LogLevel: level,
	}
	if cfg.Workers < 1 {
		return Config{}, errors.Errorf("%s must be at least 1, got %d", keyWorkers, cfg.Workers)
	}
	if cfg.CellSize < 1 {
		return Config{}, errors.Errorf("%s must be at least 1, got %d", keyCellSize, cfg.CellSize)
	}
	return cfg, nil
}
