package usecases

import (
	"context"

	"github.com/GithubESPI/dotationsFrontend/internal/application/allocation/dto"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/allocation"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/equipment"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/db"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

// CancelAllocationUseCase voids an active allocation and puts its outstanding
// equipment back in the pool.
type CancelAllocationUseCase struct {
	allocationRepo allocation.Repository
	equipmentRepo  equipment.Repository
	txManager      db.Transactor
	logger         logger.Interface
}

func NewCancelAllocationUseCase(
	allocationRepo allocation.Repository,
	equipmentRepo equipment.Repository,
	txManager db.Transactor,
	logger logger.Interface,
) *CancelAllocationUseCase {
	return &CancelAllocationUseCase{
		allocationRepo: allocationRepo,
		equipmentRepo:  equipmentRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *CancelAllocationUseCase) Execute(ctx context.Context, id string) (*dto.AllocationDTO, error) {
	var cancelled *allocation.Allocation
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		a, err := loadAllocation(txCtx, uc.allocationRepo, id)
		if err != nil {
			return err
		}
		outstanding := a.OutstandingEquipmentIDs()
		if err := a.Cancel(); err != nil {
			return domainError(err)
		}

		if len(outstanding) > 0 {
			list, err := uc.equipmentRepo.GetByIDs(txCtx, outstanding)
			if err != nil {
				return err
			}
			for _, e := range list {
				// equipment re-assigned elsewhere since is left alone
				if e.IsAssigned() && e.CurrentUserID() != a.UserID() {
					continue
				}
				e.Release()
				if err := uc.equipmentRepo.Update(txCtx, e); err != nil {
					return err
				}
			}
		}

		if err := uc.allocationRepo.Update(txCtx, a); err != nil {
			return err
		}
		cancelled = a
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to cancel allocation", "id", id, "error", err)
		return nil, err
	}

	uc.logger.Infow("allocation cancelled", "id", id, "reference", cancelled.Reference())
	return dto.ToAllocationDTO(cancelled), nil
}
