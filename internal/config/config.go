package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port           int           `envconfig:"PORT" default:"8080"`
	AssetDir       string        `envconfig:"ASSET_DIR" default:"./data/assets"`
	WebDir         string        `envconfig:"WEB_DIR" default:"./web"`
	AllowedOrigins string        `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	DefaultLang    string        `envconfig:"DEFAULT_LANG" default:"pt"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
	FrameInterval  time.Duration `envconfig:"FRAME_INTERVAL" default:"16ms"`
	ThumbWidth     int           `envconfig:"THUMB_WIDTH" default:"640"`
	ThumbHeight    int           `envconfig:"THUMB_HEIGHT" default:"480"`
	ThumbFrames    int           `envconfig:"THUMB_FRAMES" default:"90"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Origins splits AllowedOrigins on commas, dropping blanks.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// Level maps LogLevel onto slog. Unknown names fall back to info.
func (c *Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}
