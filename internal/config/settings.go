package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ConfigName is the base name of the optional settings file.
const ConfigName = "shooter.cfg"

// DebugSettings controls the local debug HTTP endpoint.
type DebugSettings struct {
	Enabled bool
	Addr    string
}

// Settings holds runtime options that are not gameplay constants.
type Settings struct {
	LogLevel         string
	Seed             int64
	StartInMenu      bool
	CatalogFile      string
	Debug            DebugSettings
	TelemetryEnabled bool
	WindowScale      float64
	TermLogFile      string
}

// RegisterFlags adds the command-line overrides to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config-dir", ".", "directory containing "+ConfigName+".yaml")
	fs.String("log-level", "info", "log level: trace, debug, info, warn, error")
	fs.Int64("seed", 0, "PRNG seed, 0 picks one from the clock")
	fs.Bool("menu", true, "start on the title menu instead of straight in a run")
	fs.String("catalog", "", "optional YAML file overriding weapon, enemy and drop tables")
	fs.Bool("debug", false, "serve run snapshots and pprof over HTTP")
	fs.String("debug-addr", "localhost:6060", "listen address of the debug server")
}

var flagKeys = map[string]string{
	"log-level":  "logLevel",
	"seed":       "seed",
	"menu":       "startInMenu",
	"catalog":    "catalogFile",
	"debug":      "debug.enabled",
	"debug-addr": "debug.addr",
}

// Load reads settings from the optional YAML file in configDir, applies
// defaults and lets explicitly set flags win. A missing file is not an error.
func Load(configDir string, fs *pflag.FlagSet) (Settings, error) {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("seed", 0)
	viper.SetDefault("startInMenu", true)
	viper.SetDefault("catalogFile", "")
	viper.SetDefault("debug.enabled", false)
	viper.SetDefault("debug.addr", "localhost:6060")
	viper.SetDefault("telemetry.enabled", false)
	viper.SetDefault("window.scale", 1.0)
	viper.SetDefault("term.logFile", "shooter.log")

	viper.SetConfigName(ConfigName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	if fs != nil {
		for flag, key := range flagKeys {
			if f := fs.Lookup(flag); f != nil {
				if err := viper.BindPFlag(key, f); err != nil {
					return Settings{}, fmt.Errorf("error binding flag %s: %w", flag, err)
				}
			}
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	s := Settings{
		LogLevel:    viper.GetString("logLevel"),
		Seed:        viper.GetInt64("seed"),
		StartInMenu: viper.GetBool("startInMenu"),
		CatalogFile: viper.GetString("catalogFile"),
		Debug: DebugSettings{
			Enabled: viper.GetBool("debug.enabled"),
			Addr:    viper.GetString("debug.addr"),
		},
		TelemetryEnabled: viper.GetBool("telemetry.enabled"),
		WindowScale:      viper.GetFloat64("window.scale"),
		TermLogFile:      viper.GetString("term.logFile"),
	}
	if s.WindowScale <= 0 {
		return Settings{}, fmt.Errorf("window.scale must be positive, got %v", s.WindowScale)
	}
	return s, nil
}
