// Package bootstrap loads configuration and the process-wide singletons shared by
// the one-shot CLI commands.
package bootstrap

import (
	"fmt"

	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/config"
	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/database"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/biztime"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

// Options selects what Init brings up besides configuration and logging.
type Options struct {
	Env        string
	ConfigPath string
	Verbose    bool
	// WithDatabase opens the global database connection.
	WithDatabase bool
}

// Init loads the configuration, then initializes logging, the business timezone and,
// when requested, the database. Callers owning a database must defer database.Close.
func Init(opts Options) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(opts.Env, opts.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, opts.Verbose); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if opts.WithDatabase {
		if err := database.Init(&cfg.Database); err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
	}

	return cfg, logger.NewLogger(), nil
}
