package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/GithubESPI/dotationsFrontend/internal/domain/allocation"
	vo "github.com/GithubESPI/dotationsFrontend/internal/domain/allocation/valueobjects"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/biztime"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

// MarkOverdueAllocationsUseCase flags in-progress allocations delivered more than
// overdueAfterDays ago. It is run by the scheduler and returns how many were flagged.
type MarkOverdueAllocationsUseCase struct {
	repo             allocation.Repository
	overdueAfterDays int
	now              func() time.Time
	logger           logger.Interface
}

func NewMarkOverdueAllocationsUseCase(repo allocation.Repository, overdueAfterDays int, logger logger.Interface) *MarkOverdueAllocationsUseCase {
	return &MarkOverdueAllocationsUseCase{
		repo:             repo,
		overdueAfterDays: overdueAfterDays,
		now:              biztime.NowUTC,
		logger:           logger,
	}
}

func (uc *MarkOverdueAllocationsUseCase) Execute(ctx context.Context) (int, error) {
	if uc.overdueAfterDays <= 0 {
		return 0, nil
	}

	cutoff := uc.now().AddDate(0, 0, -uc.overdueAfterDays)
	status := vo.StatusInProgress
	candidates, _, err := uc.repo.List(ctx, allocation.Filter{Status: &status, EndDate: &cutoff})
	if err != nil {
		return 0, fmt.Errorf("failed to list overdue candidates: %w", err)
	}

	marked := 0
	for _, a := range candidates {
		if err := a.MarkOverdue(); err != nil {
			uc.logger.Warnw("skipping allocation", "id", a.ID(), "status", a.Status(), "error", err)
			continue
		}
		if err := uc.repo.Update(ctx, a); err != nil {
			uc.logger.Errorw("failed to mark allocation overdue", "id", a.ID(), "error", err)
			continue
		}
		marked++
	}

	if marked > 0 {
		uc.logger.Infow("allocations marked overdue", "count", marked, "cutoff", cutoff.Format(time.DateOnly))
	}
	return marked, nil
}
