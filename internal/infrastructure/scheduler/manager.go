// Package scheduler runs the background jobs of the server process using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/GithubESPI/dotationsFrontend/internal/shared/biztime"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

// BatchJob processes one batch per call and returns the number of items handled.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// DefaultOverdueCron runs the overdue check at 02:00 business time.
const DefaultOverdueCron = "0 2 * * *"

// SchedulerManager owns the single gocron scheduler of the process.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager builds a scheduler whose cron expressions are read in the business timezone.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// ========================================
// Allocation Jobs (cron-based)
// ========================================

// RegisterAllocationJobs registers the job that flags allocations kept past their due date.
func (m *SchedulerManager) RegisterAllocationJobs(markOverdueJob BatchJob, cron string) error {
	if cron == "" {
		cron = DefaultOverdueCron
	}

	_, err := m.scheduler.NewJob(
		gocron.CronJob(cron, false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()
			m.runBatch(ctx, "allocation-overdue", markOverdueJob)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("allocation", "overdue"),
		gocron.WithName("allocation-overdue"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered allocation jobs", "overdue_cron", cron)
	return nil
}

// ========================================
// Jira Jobs (cron-based, optional)
// ========================================

// RegisterJiraSyncJob registers the periodic laptop sync. An empty cron registers nothing.
func (m *SchedulerManager) RegisterJiraSyncJob(syncJob BatchJob, cron string) error {
	if cron == "" {
		m.logger.Debugw("periodic jira sync disabled")
		return nil
	}

	_, err := m.scheduler.NewJob(
		gocron.CronJob(cron, false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
			defer cancel()
			m.runBatch(ctx, "jira-sync", syncJob)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("jira", "sync"),
		gocron.WithName("jira-sync"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered jira sync job", "cron", cron)
	return nil
}

func (m *SchedulerManager) runBatch(ctx context.Context, name string, job BatchJob) {
	m.logger.Debugw("job started", "job", name)

	startTime := biztime.NowUTC()
	count, err := job.Execute(ctx)
	if err != nil {
		// shutdown cancels the context, not worth an error line
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("job failed",
			"job", name,
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if count > 0 {
		m.logger.Infow("job completed",
			"job", name,
			"count", count,
			"duration", time.Since(startTime),
		)
	} else {
		m.logger.Debugw("job completed with nothing to do",
			"job", name,
			"duration", time.Since(startTime),
		)
	}
}

// ========================================
// Scheduler Lifecycle Methods
// ========================================

func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop waits for running jobs to complete before returning.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}

// Jobs returns all registered jobs for inspection.
func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}
