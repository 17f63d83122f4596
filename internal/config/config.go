package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Addr    string `mapstructure:"addr"`
	LogPath string `mapstructure:"logPath"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type SessionConfig struct {
	Secret      string `mapstructure:"secret"`
	DefaultRole string `mapstructure:"defaultRole"`
}

type ProbeConfig struct {
	URI string `mapstructure:"uri"`
}

// Config is the combined file and environment configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	DB      DBConfig      `mapstructure:"db"`
	Session SessionConfig `mapstructure:"session"`
	Probe   ProbeConfig   `mapstructure:"probe"`
}

// Load reads config.yaml from path and overlays environment variables.
// A missing config file is not an error; environment and defaults apply.
func Load(path string) (Config, error) {
	v := viper.New()

	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("db.path", "milasset.sqlite3")
	v.SetDefault("session.defaultRole", "admin")

	v.AutomaticEnv()
	v.BindEnv("server.addr", "SERVER_ADDR")
	v.BindEnv("server.logPath", "LOG_PATH")
	v.BindEnv("db.path", "DB_PATH")
	v.BindEnv("session.secret", "SESSION_SECRET")
	v.BindEnv("session.defaultRole", "DEFAULT_ROLE")
	v.BindEnv("probe.uri", "PROBE_URI")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}
