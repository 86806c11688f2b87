package usecases

import (
	"context"

	"github.com/GithubESPI/dotationsFrontend/internal/application/allocation/dto"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/allocation"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

// UpdateAllocationCommand replaces the extras of an active allocation. Nil fields are kept.
type UpdateAllocationCommand struct {
	ID                 string
	Accessories        []string
	AdditionalSoftware []string
	Services           []string
	Notes              *string
}

type UpdateAllocationUseCase struct {
	repo   allocation.Repository
	logger logger.Interface
}

func NewUpdateAllocationUseCase(repo allocation.Repository, logger logger.Interface) *UpdateAllocationUseCase {
	return &UpdateAllocationUseCase{repo: repo, logger: logger}
}

func (uc *UpdateAllocationUseCase) Execute(ctx context.Context, cmd UpdateAllocationCommand) (*dto.AllocationDTO, error) {
	a, err := loadAllocation(ctx, uc.repo, cmd.ID)
	if err != nil {
		return nil, err
	}

	err = a.UpdateExtras(allocation.Extras{
		Accessories:        cmd.Accessories,
		AdditionalSoftware: cmd.AdditionalSoftware,
		Services:           cmd.Services,
	}, cmd.Notes)
	if err != nil {
		return nil, domainError(err)
	}

	if err := uc.repo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to update allocation", "id", cmd.ID, "error", err)
		return nil, err
	}
	uc.logger.Infow("allocation updated", "id", a.ID(), "reference", a.Reference())
	return dto.ToAllocationDTO(a), nil
}
