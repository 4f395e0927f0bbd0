package logging

import (
	"errors"
	"os"
	"path"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// New builds a logger from a config, verifying it first. All file and
// console outputs are combined into one tee core.
func New(cfg *Config) (*zap.Logger, error) {
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	encoder := zapcore.NewConsoleEncoder(encoderConfig())

	cores := make([]zapcore.Core, 0, len(cfg.Files)+len(cfg.Consoles))
	for _, f := range cfg.Files {
		core, err := fileCore(cfg.RootPath, f, cfg.level, encoder.Clone())
		if err != nil {
			return nil, err
		}
		cores = append(cores, core)
	}
	for _, c := range cfg.Consoles {
		cores = append(cores, consoleCore(c, cfg.level, encoder.Clone()))
	}
	if len(cores) == 0 {
		return zap.NewNop(), nil
	}

	opts := []zap.Option{zap.AddStacktrace(zap.ErrorLevel)}
	if cfg.Development {
		opts = append(opts, zap.Development())
	}
	return zap.New(zapcore.NewTee(cores...), opts...), nil
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "name",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// fileCore creates a core writing to a lumberjack rotated file. lumberjack
// locks internally, so the syncer is not wrapped in zapcore.Lock.
func fileCore(root string, cfg *FileConfig, level zapcore.Level, enc zapcore.Encoder) (zapcore.Core, error) {
	fullPath := path.Join(root, cfg.FileName)
	if st, err := os.Stat(fullPath); err == nil && st.IsDir() {
		return nil, errors.New("logging: " + fullPath + " is a directory")
	}
	out := &lumberjack.Logger{
		Filename:   fullPath,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxDays,
		LocalTime:  true,
	}
	return zapcore.NewCore(enc, zapcore.AddSync(out), enabler(level, cfg.levels)), nil
}

func consoleCore(cfg *ConsoleConfig, level zapcore.Level, enc zapcore.Encoder) zapcore.Core {
	ws := zapcore.Lock(os.Stderr)
	if cfg.ConsoleFD == "stdout" {
		ws = zapcore.Lock(os.Stdout)
	}
	return zapcore.NewCore(enc, ws, enabler(level, cfg.levels))
}

// enabler admits levels at or above the overall level that fall inside the
// output's own range.
func enabler(level zapcore.Level, r levelRange) zap.LevelEnablerFunc {
	return func(lvl zapcore.Level) bool {
		return lvl >= level && r.enabled(lvl)
	}
}
