package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultName = "LeanGo"

// Options control how the shared logger is built.
type Options struct {
	// Name names the logger and the log file.
	Name string
	// Level is one of debug, info, warn, error. Defaults to info.
	Level string
	// Dir is the log directory. Empty disables the file core.
	Dir string
	// DateSuffix appends a timestamp to the log file name.
	DateSuffix bool
}

var (
	mu     sync.Mutex
	shared *zap.Logger
)

// Init configures the process-wide shared logger. The first call wins;
// later calls return the logger built by the first, regardless of options.
func Init(opts Options) (*zap.Logger, error) {
	mu.Lock()
	defer mu.Unlock()

	if shared != nil {
		return shared, nil
	}

	logger, err := New(opts)
	if err != nil {
		return nil, err
	}
	shared = logger
	return shared, nil
}

// Shared returns the process-wide logger, configuring it with defaults if
// Init has not run yet.
func Shared() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()

	if shared == nil {
		logger, err := New(Options{})
		if err != nil {
			logger = zap.NewNop()
		}
		shared = logger
	}
	return shared
}

// For returns a handle tagged with label, delegating to the shared logger.
// Every handle writes through the same underlying core.
func For(label string) *zap.Logger {
	return Shared().Named(label)
}

// NoStack returns a child of logger that logs errors without the automatic
// stacktrace.
func NoStack(logger *zap.Logger) *zap.Logger {
	return logger.WithOptions(zap.AddStacktrace(zapcore.InvalidLevel))
}

// New builds a logger with a terse console core on stderr and, when a log
// directory is given, a verbose JSON file core. Both cores share one level.
func New(opts Options) (*zap.Logger, error) {
	if opts.Name == "" {
		opts.Name = defaultName
	}
	if opts.Level == "" {
		opts.Level = "info"
	}

	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeTime = zapcore.TimeEncoderOfLayout("[15:04:05]")
	consoleCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(os.Stderr), level),
	}

	if opts.Dir != "" {
		fileCore, err := newFileCore(opts, level)
		if err != nil {
			return nil, err
		}
		cores = append(cores, fileCore)
	}

	logger := zap.New(
		zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	).Named(opts.Name)

	return logger, nil
}

// newFileCore opens the log file under opts.Dir, creating the directory if
// needed, and returns a JSON core writing to it.
func newFileCore(opts Options, level zapcore.Level) (zapcore.Core, error) {
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log folder: %w", err)
	}

	name := opts.Name
	if opts.DateSuffix {
		name += time.Now().Format("_2006-01-02_15-04-05")
	}

	path := filepath.Join(opts.Dir, name+".log")
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	fileCfg := zap.NewProductionEncoderConfig()
	fileCfg.TimeKey = "timestamp"
	fileCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	return zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), zapcore.AddSync(file), level), nil
}
