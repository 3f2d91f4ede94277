package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "LOBBY"

type Config struct {
	Mode        string        `mapstructure:"mode"`
	BaseURL     string        `mapstructure:"base_url"`
	GamesPath   string        `mapstructure:"games_path"`
	Timeout     time.Duration `mapstructure:"timeout"`
	LogLevel    string        `mapstructure:"log_level"`
	ColorPolicy string        `mapstructure:"color_policy"`
	Render      string        `mapstructure:"render"`
	HTMLOut     string        `mapstructure:"html_out"`
}

// Flags declares the command-line overrides. Flag names match config keys.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "config file (default config/config.<CONFIG_ENV>.yaml)")
	fs.String("base_url", "", "lobby server base URL")
	fs.String("games_path", "", "path of the games list endpoint")
	fs.Duration("timeout", 0, "HTTP request timeout")
	fs.String("log_level", "", "log level (debug, info, warn, error)")
	fs.String("color_policy", "", "colors offered when joining (all, exclude_taken)")
	fs.String("render", "", "output format (text, html)")
	fs.String("html_out", "", "file for html output, stdout when empty")
	return fs
}

// Load reads config/config.<CONFIG_ENV>.yaml, then LOBBY_* environment
// variables, then any flags set in fs. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	fileName := fmt.Sprintf("config/config.%s.yaml", env)
	if fs != nil {
		if f, err := fs.GetString("config"); err == nil && f != "" {
			fileName = f
		}
	}

	v.SetConfigFile(fileName)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("mode", "release")
	v.SetDefault("base_url", "http://localhost:8080")
	v.SetDefault("games_path", "/games")
	v.SetDefault("timeout", "10s")
	v.SetDefault("log_level", "info")
	v.SetDefault("color_policy", "all")
	v.SetDefault("render", "text")
	v.SetDefault("html_out", "")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if fs != nil {
		var bindErr error
		fs.VisitAll(func(f *pflag.Flag) {
			if f.Name == "config" || !f.Changed {
				return
			}
			if err := v.BindPFlag(f.Name, f); err != nil {
				bindErr = errors.Join(bindErr, err)
			}
		})
		if bindErr != nil {
			return nil, fmt.Errorf("bind flags: %w", bindErr)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, os.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config %s: %w", fileName, err)
		}
		log.Warn().Str("module", "config").Str("file", fileName).Msg("config file not found, using defaults")
	} else {
		log.Info().Str("module", "config").Str("file", fileName).Msg("loaded config")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	log.Info().
		Str("module", "config").
		Str("mode", cfg.Mode).
		Str("base_url", cfg.BaseURL).
		Str("render", cfg.Render).
		Msg("config ready")
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Render {
	case "text", "html":
	default:
		return fmt.Errorf("config: unknown render %q", c.Render)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config: timeout must be positive, got %s", c.Timeout)
	}
	if c.GamesPath == "" {
		return errors.New("config: games_path is empty")
	}
	return nil
}
