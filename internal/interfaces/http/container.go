package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/GithubESPI/dotationsFrontend/internal/application/notification"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/jiraasset"
	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/auth"
	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/config"
	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/permission"
	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/ratelimit"
	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/scheduler"
	"github.com/GithubESPI/dotationsFrontend/internal/interfaces/http/middleware"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/db"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

// Container holds the infrastructure components, repositories, use cases, handlers
// and background jobs of the API process. It wires everything together and
// provides Shutdown for graceful termination.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	syncRateLimiter      *middleware.RateLimiter

	// Shared services
	jwtSvc       *auth.JWTService
	enforcer     *permission.Enforcer
	jiraSource   jiraasset.Source
	mappingStore jiraasset.MappingStore
	counter      ratelimit.Counter
	notifier     notification.Notifier
	txManager    db.Transactor

	schedulerManager *scheduler.SchedulerManager
}

// NewContainer builds every component from the database connection and configuration.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, Jira, Auth, RBAC, Mail
	if err := c.initInfrastructure(ctx); err != nil {
		c.Shutdown()
		return nil, err
	}

	// Section 2: Repositories and use cases
	c.repos = newRepositories(db, log)
	c.ucs = c.newUseCases()

	// Section 3: Handlers and middlewares
	c.hdlrs = c.newHandlers()
	c.initMiddlewares()

	// Section 4: Background jobs
	if err := c.initScheduler(); err != nil {
		c.Shutdown()
		return nil, fmt.Errorf("failed to init scheduler: %w", err)
	}

	return c, nil
}

// GetEngine returns the Gin engine
func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}

// StartBackground starts the scheduled jobs.
func (c *Container) StartBackground() {
	if c.schedulerManager != nil {
		c.schedulerManager.Start()
	}
}

// Shutdown stops background jobs and closes the connections owned by the container.
// The database is closed by the caller that opened it.
func (c *Container) Shutdown() {
	if c.schedulerManager != nil {
		if err := c.schedulerManager.Stop(); err != nil {
			c.log.Errorw("failed to stop scheduler", "error", err)
		}
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
