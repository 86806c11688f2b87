package http

import (
	"context"
	"fmt"
	"time"

	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/auth"
	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/cache"
	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/email"
	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/jira"
	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/permission"
	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/ratelimit"
	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/scheduler"
	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/template"
	"github.com/GithubESPI/dotationsFrontend/internal/interfaces/http/middleware"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/db"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/services/markdown"
)

const (
	syncRateLimit  = 10
	syncRateWindow = time.Minute
)

// ============================================================
// Section 1: Infrastructure - Redis, Jira, Auth, RBAC, Mail
// ============================================================

// initInfrastructure connects Redis when enabled and builds the shared services.
// Without Redis the mapping cache and the rate limit counters live in memory.
func (c *Container) initInfrastructure(ctx context.Context) error {
	cfg := c.cfg
	log := c.log

	if cfg.Redis.Enabled {
		client, err := cache.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			return err
		}
		c.redis = client
		c.mappingStore = cache.NewRedisMappingStore(client)
		c.counter = ratelimit.NewRedisCounter(client)
		log.Infow("redis connection established", "addr", cfg.Redis.GetAddr())
	} else {
		c.mappingStore = cache.NewMemoryMappingStore(time.Duration(cfg.Jira.MappingTTLMinutes) * time.Minute)
		c.counter = ratelimit.NewMemoryCounter(syncRateWindow)
		log.Infow("redis disabled, using in-memory mapping cache and rate limits")
	}

	c.jiraSource = jira.NewClient(cfg.Jira, log.Named("jira.client"))
	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer, cfg.Auth.JWT.AccessExpMinutes)
	c.txManager = db.NewTransactionManager(c.db)

	enforcer, err := permission.NewEnforcer(c.db, cfg.Permission.ModelPath, log.Named("permission"))
	if err != nil {
		return fmt.Errorf("failed to init permission enforcer: %w", err)
	}
	if err := enforcer.SeedDefaultPolicies(); err != nil {
		return err
	}
	c.enforcer = enforcer

	return c.initNotifier()
}

// initNotifier sends workflow mails over SMTP when email is enabled and logs them otherwise.
func (c *Container) initNotifier() error {
	cfg := c.cfg
	log := c.log.Named("mail")

	if !cfg.Email.Enabled {
		c.notifier = email.NewLogNotifier(log)
		return nil
	}

	templates := template.NewMailTemplateLoader(cfg.Email.TemplatesPath, log)
	if err := templates.Load(); err != nil {
		return fmt.Errorf("failed to load mail templates: %w", err)
	}
	c.notifier = email.NewSMTPNotifier(email.SMTPConfigFrom(cfg.Email), templates, markdown.NewRenderer(), log)
	log.Infow("smtp notifier enabled", "host", cfg.Email.SMTPHost, "port", cfg.Email.SMTPPort)
	return nil
}

func (c *Container) initMiddlewares() {
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, c.log)
	c.syncRateLimiter = middleware.NewRateLimiter(c.counter, "jira-sync", syncRateLimit, syncRateWindow, c.log)
}

// ============================================================
// Section 4: Background jobs
// ============================================================

func (c *Container) initScheduler() error {
	if !c.cfg.Scheduler.Enabled {
		c.log.Infow("scheduler disabled")
		return nil
	}

	manager, err := scheduler.NewSchedulerManager(c.log.Named("scheduler"))
	if err != nil {
		return err
	}
	c.schedulerManager = manager

	if err := manager.RegisterAllocationJobs(c.ucs.markOverdue, c.cfg.Allocation.OverdueCron); err != nil {
		return err
	}
	return manager.RegisterJiraSyncJob(c.ucs.scheduledSync, c.cfg.Scheduler.JiraSyncCron)
}
