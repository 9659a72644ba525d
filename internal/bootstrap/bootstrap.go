package bootstrap

import (
	"fmt"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/leanware/leango/internal/config"
	"github.com/leanware/leango/internal/dotenv"
	"github.com/leanware/leango/internal/logging"
	"github.com/leanware/leango/internal/projectpath"
)

// Runtime bundles everything the bootstrap sequence produces. It is built
// once per process and shared by every caller of Init.
type Runtime struct {
	Config config.Config
	Root   string

	logger *zap.Logger
}

// Options tweak the bootstrap sequence. The zero value discovers the project
// root from the working directory and uses the default secrets and
// configuration file locations.
type Options struct {
	// Root is the project root. Discovered when empty.
	Root string
	// EnvFile is the secrets file path. Defaults to <root>/.env.
	EnvFile string
	// Config carries command-line overrides for the configuration store.
	Config *config.Overrides
}

var (
	mu      sync.Mutex
	current *Runtime
)

// Init runs the bootstrap sequence exactly once per process and returns the
// resulting Runtime. Later calls return the same Runtime without re-running
// any setup. A failed Init leaves no Runtime behind, so it may be retried.
func Init(opts Options) (*Runtime, error) {
	mu.Lock()
	defer mu.Unlock()

	if current != nil {
		return current, nil
	}

	runtime, err := initialize(opts)
	if err != nil {
		return nil, err
	}
	current = runtime
	return current, nil
}

// Logger returns a handle tagged with label over the shared logger. An empty
// label returns the shared logger itself.
func (r *Runtime) Logger(label string) *zap.Logger {
	if label == "" {
		return r.logger
	}
	return r.logger.Named(label)
}

func initialize(opts Options) (*Runtime, error) {
	root := opts.Root
	if root == "" {
		var err error
		root, err = projectpath.FindFromWd()
		if err != nil {
			return nil, fmt.Errorf("bootstrap: %w", err)
		}
	}

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = filepath.Join(root, dotenv.DefaultFilename)
	}
	envResult, err := dotenv.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: load secrets: %w", err)
	}

	cfg, err := config.Load(root, opts.Config)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: load config: %w", err)
	}

	logDir := ""
	if cfg.LogFolder != "" {
		logDir = filepath.Join(root, cfg.LogFolder)
	}
	logger, err := logging.Init(logging.Options{
		Name:       cfg.LoggerName,
		Level:      cfg.LogLevel,
		Dir:        logDir,
		DateSuffix: cfg.DateSuffix,
	})
	if err != nil {
		return nil, fmt.Errorf("bootstrap: init logger: %w", err)
	}

	boot := logger.Named("bootstrap")
	for _, warning := range envResult.Warnings {
		boot.Warn("malformed secrets entry", zap.String("detail", warning))
	}
	if applied := len(envResult.Applied); applied > 0 {
		boot.Debug("secrets loaded",
			zap.Int("applied", applied),
			zap.Int("skipped", len(envResult.Skipped)),
		)
	}

	return &Runtime{Config: cfg, Root: root, logger: logger}, nil
}
