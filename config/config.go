package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/radiohost/radlog/backend"
	"github.com/radiohost/radlog/core"
	"github.com/radiohost/radlog/registry"
)

// envPrefix is prepended (with an underscore) to every environment key.
const envPrefix = "RADLOG"

// Config carries the logging settings understood by Apply. Zero or
// empty fields keep the registry's current behavior for that knob.
type Config struct {
	Level          string `toml:"level"`
	ConsoleLevel   string `toml:"console_level"`
	FileLevel      string `toml:"file_level"`
	File           string `toml:"file"`
	ConsoleDisable bool   `toml:"console_disable"`
}

// Default returns the built-in defaults: info level, console backend
// enabled, no file backend.
func Default() Config {
	return Config{Level: core.InfoLevel.String()}
}

// Load builds a Config from the defaults, the TOML file at path (when
// path is non-empty), and environment overrides, in that order of
// increasing precedence.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, pkgerrors.Wrapf(err, "read logging config %s", path)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, pkgerrors.Wrapf(err, "parse logging config %s", path)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// FromEnv builds a Config from the defaults and the environment alone.
func FromEnv() Config {
	cfg := Default()
	cfg.applyEnv()
	return cfg
}

// applyEnv overlays RADLOG_* environment variables onto the config.
func (c *Config) applyEnv() {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	for _, key := range []string{"level", "console_level", "file_level", "file", "console_disable"} {
		// BindEnv only errors when called without a key
		_ = v.BindEnv(key)
	}

	if s := v.GetString("level"); s != "" {
		c.Level = s
	}
	if s := v.GetString("console_level"); s != "" {
		c.ConsoleLevel = s
	}
	if s := v.GetString("file_level"); s != "" {
		c.FileLevel = s
	}
	if s := v.GetString("file"); s != "" {
		c.File = s
	}
	if s := v.GetString("console_disable"); s != "" {
		if b, err := strconv.ParseBool(s); err == nil {
			c.ConsoleDisable = b
		}
	}
}

// parsed holds the validated form of a Config. Parsing everything
// before touching the registry keeps failed Apply calls side-effect
// free.
type parsed struct {
	global       core.Level
	hasGlobal    bool
	console      core.Level
	hasConsole   bool
	file         core.Level
	hasFile      bool
	filePath     string
	disableConso bool
}

func (c Config) parse() (parsed, error) {
	var p parsed
	var err error

	if c.Level != "" {
		if p.global, err = core.ParseLevel(c.Level); err != nil {
			return p, pkgerrors.Wrap(err, "global level")
		}
		p.hasGlobal = true
	}
	if c.ConsoleLevel != "" {
		if p.console, err = core.ParseLevel(c.ConsoleLevel); err != nil {
			return p, pkgerrors.Wrap(err, "console level")
		}
		p.hasConsole = true
	}
	if c.FileLevel != "" {
		if p.file, err = core.ParseLevel(c.FileLevel); err != nil {
			return p, pkgerrors.Wrap(err, "file level")
		}
		p.hasFile = true
	}
	p.filePath = c.File
	p.disableConso = c.ConsoleDisable
	return p, nil
}

// Apply validates cfg and installs backends and thresholds on reg.
// Console comes before file in the dispatch order, matching the
// original facility. On error the registry is left unchanged.
func Apply(cfg Config, reg *registry.Registry) error {
	p, err := cfg.parse()
	if err != nil {
		return err
	}

	if p.hasGlobal {
		reg.SetGlobalLevel(p.global)
	}
	if !p.disableConso {
		reg.AddBackend(backend.ConsoleName, backend.NewConsole(backend.ConsoleConfig{}))
		if p.hasConsole {
			if err := reg.SetBackendLevel(backend.ConsoleName, p.console); err != nil {
				return err
			}
		}
	}
	if p.filePath != "" {
		reg.AddBackend(backend.FileName, backend.NewFile(p.filePath))
		if p.hasFile {
			if err := reg.SetBackendLevel(backend.FileName, p.file); err != nil {
				return err
			}
		}
	}
	return nil
}

// ApplyLevels validates cfg and re-applies only the thresholds. It
// never adds or removes backends; a threshold for a backend that is
// not registered is skipped. Used by the watcher so a config edit can
// retune verbosity without recreating sinks.
func ApplyLevels(cfg Config, reg *registry.Registry) error {
	p, err := cfg.parse()
	if err != nil {
		return err
	}

	if p.hasGlobal {
		reg.SetGlobalLevel(p.global)
	}
	if p.hasConsole {
		if err := reg.SetBackendLevel(backend.ConsoleName, p.console); err != nil && !errors.Is(err, registry.ErrUnknownBackend) {
			return err
		}
	}
	if p.hasFile {
		if err := reg.SetBackendLevel(backend.FileName, p.file); err != nil && !errors.Is(err, registry.ErrUnknownBackend) {
			return err
		}
	}
	return nil
}
