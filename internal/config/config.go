// Package config loads application settings from defaults, an optional config file and
// CALC_ prefixed environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	AppName   = "keypad-calc"
	EnvPrefix = "CALC"
)

// Config holds the settings that shape the window and the logger. The defaults reproduce
// the classic 400x500 "Calculator Example" window.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Window  WindowConfig  `mapstructure:"window"`
	Display DisplayConfig `mapstructure:"display"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

type WindowConfig struct {
	Title       string  `mapstructure:"title"`
	Width       float32 `mapstructure:"width"`
	Height      float32 `mapstructure:"height"`
	ConfirmExit bool    `mapstructure:"confirm_exit"`
}

type DisplayConfig struct {
	TextSize float32 `mapstructure:"text_size"`
}

const (
	minWindowWidth  = 200
	minWindowHeight = 250
)

// SetDefaults registers every key so that environment overrides are picked up by Unmarshal
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("window.title", "Calculator Example")
	v.SetDefault("window.width", 400)
	v.SetDefault("window.height", 500)
	v.SetDefault("window.confirm_exit", false)
	v.SetDefault("display.text_size", 20)
}

// Load reads configuration. path names an explicit config file; when empty the user
// config directory and the working directory are searched for keypad-calc.{yaml,toml,json}
// and a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(AppName)
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, AppName))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings that would produce an unusable window
func (c *Config) Validate() error {
	if c.Window.Width < minWindowWidth || c.Window.Height < minWindowHeight {
		return fmt.Errorf("window size %.0fx%.0f below minimum %dx%d",
			c.Window.Width, c.Window.Height, minWindowWidth, minWindowHeight)
	}
	if c.Display.TextSize <= 0 {
		return fmt.Errorf("display text size must be positive, got %v", c.Display.TextSize)
	}
	return nil
}
