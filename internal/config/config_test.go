package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/bitsctl/internal/protocol/packet"
	"github.com/danmuck/bitsctl/internal/testutil/testlog"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bitsctl.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, "allow_overrun = true\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.AllowOverrun {
		t.Fatalf("expected allow_overrun")
	}
	if cfg.MaxDepth != packet.DefaultMaxDepth || cfg.LogLevel != "" || cfg.SkipInvalid {
		t.Fatalf("defaults not kept: %+v", cfg)
	}
	opts := cfg.DecoderOptions()
	if opts.MaxDepth != packet.DefaultMaxDepth || !opts.AllowOverrun {
		t.Fatalf("decoder options: %+v", opts)
	}
}

func TestLoadTemplate(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "bitsctl.toml")
	if err := WriteTemplate(path, false); err != nil {
		t.Fatalf("write template: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load template: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("template differs from defaults: %+v", cfg)
	}
	if err := WriteTemplate(path, false); err == nil {
		t.Fatalf("expected refusal to overwrite")
	}
	if err := WriteTemplate(path, true); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		body string
		want string
	}{
		{body: "max_depth = 0\n", want: "max_depth must be positive"},
		{body: "log_level = \"loud\"\n", want: "unknown log_level"},
		{body: "max_dpeth = 3\n", want: "unknown key"},
		{body: "max_depth = \"deep\"\n", want: "config load failed"},
	}
	for _, tc := range cases {
		_, err := Load(writeConfig(t, tc.body))
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("load %q: expected %q, got %v", tc.body, tc.want, err)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil || !strings.Contains(err.Error(), "config load failed") {
		t.Fatalf("expected load failure, got %v", err)
	}
}

func TestDefaultLeavesLogLevelUnset(t *testing.T) {
	cfg := Default()
	if cfg.LogLevel != "" {
		t.Fatalf("default log level should be unset, got %q", cfg.LogLevel)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("validate default: %v", err)
	}
	cfg.LogLevel = "warn"
	if err := Validate(cfg); err != nil {
		t.Fatalf("validate warn: %v", err)
	}
}
