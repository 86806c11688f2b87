package usecases

import (
	"context"

	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

// ScheduledSyncJob runs the default laptop sync from the scheduler and reports
// how many equipment records were created or updated.
type ScheduledSyncJob struct {
	sync   SyncAssetsExecutor
	logger logger.Interface
}

func NewScheduledSyncJob(sync SyncAssetsExecutor, logger logger.Interface) *ScheduledSyncJob {
	return &ScheduledSyncJob{sync: sync, logger: logger}
}

func (j *ScheduledSyncJob) Execute(ctx context.Context) (int, error) {
	stats, err := j.sync.Execute(ctx, SyncAssetsCommand{})
	if err != nil {
		return 0, err
	}
	if stats.Errors > 0 || stats.Skipped > 0 {
		j.logger.Warnw("scheduled jira sync finished with rejected assets",
			"skipped", stats.Skipped,
			"errors", stats.Errors,
			"total", stats.Total,
		)
	}
	return stats.Created + stats.Updated, nil
}
