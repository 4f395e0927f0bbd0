// Package logging builds the zap logger used by the command line tools from
// a YAML config. File outputs are rotated by lumberjack.
package logging

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
	"sync"

	"go.uber.org/atomic"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v2"
)

const defaultLogMaxSize = 100 // MB

// Config contains all log related config.
type Config struct {
	// Log level. Only logs with a higher level are written.
	Level string `yaml:"level"`
	// Root path for log files. Relative paths are joined with the working dir.
	RootPath string `yaml:"root-path"`
	// Development puts the logger in development mode.
	Development bool `yaml:"development"`

	Files    []*FileConfig    `yaml:"file-confs"`
	Consoles []*ConsoleConfig `yaml:"console-confs"`

	level    zapcore.Level
	once     sync.Once
	verified atomic.Bool
	err      error
}

// FileConfig configs output to a single rotated log file.
type FileConfig struct {
	FileName   string `yaml:"file-name"`
	MaxSize    int    `yaml:"max-size"` // MB
	MaxDays    int    `yaml:"max-days"`
	MaxBackups int    `yaml:"max-backups"`
	LevelMax   string `yaml:"level-max"`
	LevelMin   string `yaml:"level-min"`

	levels levelRange
}

// ConsoleConfig configs output to stdout or stderr.
type ConsoleConfig struct {
	ConsoleFD string `yaml:"console-fd"`
	LevelMax  string `yaml:"level-max"`
	LevelMin  string `yaml:"level-min"`

	levels levelRange
}

type levelRange struct {
	min, max zapcore.Level
}

func (r levelRange) enabled(lvl zapcore.Level) bool {
	return lvl >= r.min && lvl <= r.max
}

// Default returns a config that writes warnings and errors to stderr.
func Default() *Config {
	return &Config{
		Level:    "warn",
		Consoles: []*ConsoleConfig{{ConsoleFD: "stderr"}},
	}
}

// Load reads a YAML config file.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a YAML config.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("logging config: %w", err)
	}
	return cfg, nil
}

// Verify checks the config and fills in defaults. It runs once; later calls
// return the first result.
func (cfg *Config) Verify() error {
	cfg.once.Do(func() {
		cfg.err = cfg.doVerify()
		cfg.verified.Store(cfg.err == nil)
	})
	return cfg.err
}

// IsVerified reports whether Verify succeeded.
func (cfg *Config) IsVerified() bool {
	return cfg.verified.Load()
}

func (cfg *Config) doVerify() error {
	root, err := rootPath(cfg.RootPath)
	if err != nil {
		return fmt.Errorf("logging config: root path: %w", err)
	}
	cfg.RootPath = root
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if err := cfg.level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return fmt.Errorf("logging config: invalid level %q", cfg.Level)
	}
	for _, f := range cfg.Files {
		if err := f.verify(); err != nil {
			return err
		}
	}
	for _, c := range cfg.Consoles {
		if err := c.verify(); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *FileConfig) verify() error {
	switch {
	case cfg.FileName == "":
		return errors.New("logging config: file-name is required")
	case strings.ContainsRune(cfg.FileName, os.PathSeparator):
		return fmt.Errorf("logging config: file-name %q should not contain a path separator", cfg.FileName)
	case cfg.MaxSize < 0, cfg.MaxDays < 0, cfg.MaxBackups < 0:
		return fmt.Errorf("logging config: negative rotation limit for %q", cfg.FileName)
	}
	if cfg.MaxSize == 0 {
		cfg.MaxSize = defaultLogMaxSize
	}
	levels, err := parseLevels(cfg.LevelMin, cfg.LevelMax)
	if err != nil {
		return err
	}
	cfg.levels = levels
	return nil
}

func (cfg *ConsoleConfig) verify() error {
	fd := strings.ToLower(cfg.ConsoleFD)
	if fd != "stderr" && fd != "stdout" {
		return fmt.Errorf("logging config: invalid console-fd %q, should be stderr or stdout", cfg.ConsoleFD)
	}
	cfg.ConsoleFD = fd
	levels, err := parseLevels(cfg.LevelMin, cfg.LevelMax)
	if err != nil {
		return err
	}
	cfg.levels = levels
	return nil
}

// parseLevels parses a level range. zapcore reads the empty string as
// info, so the bounds default to debug and fatal first.
func parseLevels(lo, hi string) (levelRange, error) {
	if lo == "" {
		lo = "debug"
	}
	if hi == "" {
		hi = "fatal"
	}
	var r levelRange
	if err := r.min.UnmarshalText([]byte(lo)); err != nil {
		return r, fmt.Errorf("logging config: invalid level-min %q", lo)
	}
	if err := r.max.UnmarshalText([]byte(hi)); err != nil {
		return r, fmt.Errorf("logging config: invalid level-max %q", hi)
	}
	if r.max < r.min {
		return r, errors.New("logging config: level-max < level-min")
	}
	return r, nil
}

// rootPath resolves the log directory. An empty path is the working dir;
// relative paths are joined with it.
func rootPath(specified string) (string, error) {
	if specified == "" {
		return os.Getwd()
	}
	if path.IsAbs(specified) {
		return path.Clean(specified), nil
	}
	pwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return path.Join(pwd, specified), nil
}
