package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/bitsctl/internal/logging"
	"github.com/danmuck/bitsctl/internal/protocol/packet"
)

// Config holds decoder and driver settings for bitsctl.
type Config struct {
	MaxDepth     int
	AllowOverrun bool
	SkipInvalid  bool
	LogLevel     string
}

type fileConfig struct {
	MaxDepth     int    `toml:"max_depth"`
	AllowOverrun bool   `toml:"allow_overrun"`
	SkipInvalid  bool   `toml:"skip_invalid"`
	LogLevel     string `toml:"log_level"`
}

// Default is the config used when no file is given. An empty LogLevel
// leaves the level chosen by logging.Configure in place.
func Default() Config {
	return Config{
		MaxDepth: packet.DefaultMaxDepth,
	}
}

// DecoderOptions maps the config onto packet decode options.
func (c Config) DecoderOptions() packet.Options {
	return packet.Options{
		MaxDepth:     c.MaxDepth,
		AllowOverrun: c.AllowOverrun,
	}
}

// Load reads path on top of Default. Keys absent from the file keep their
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("max_depth") {
		cfg.MaxDepth = raw.MaxDepth
	}
	if meta.IsDefined("allow_overrun") {
		cfg.AllowOverrun = raw.AllowOverrun
	}
	if meta.IsDefined("skip_invalid") {
		cfg.SkipInvalid = raw.SkipInvalid
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges; an empty log_level is allowed.
func Validate(cfg Config) error {
	if cfg.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive, got %d", cfg.MaxDepth)
	}
	if cfg.LogLevel == "" {
		return nil
	}
	if _, ok := logging.ParseLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}
	return nil
}
