package usecases

import (
	"context"

	"github.com/GithubESPI/dotationsFrontend/internal/application/allocation/dto"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/allocation"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/errors"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

type GetUserReturnsUseCase struct {
	repo   allocation.ReturnRepository
	logger logger.Interface
}

func NewGetUserReturnsUseCase(repo allocation.ReturnRepository, logger logger.Interface) *GetUserReturnsUseCase {
	return &GetUserReturnsUseCase{repo: repo, logger: logger}
}

func (uc *GetUserReturnsUseCase) Execute(ctx context.Context, userID string) ([]*dto.ReturnDTO, error) {
	if userID == "" {
		return nil, errors.NewValidationError("user id is required")
	}
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list user returns", "user_id", userID, "error", err)
		return nil, err
	}
	return dto.ToReturnDTOs(list), nil
}

type GetAllocationReturnsUseCase struct {
	repo   allocation.ReturnRepository
	logger logger.Interface
}

func NewGetAllocationReturnsUseCase(repo allocation.ReturnRepository, logger logger.Interface) *GetAllocationReturnsUseCase {
	return &GetAllocationReturnsUseCase{repo: repo, logger: logger}
}

func (uc *GetAllocationReturnsUseCase) Execute(ctx context.Context, allocationID string) ([]*dto.ReturnDTO, error) {
	if allocationID == "" {
		return nil, errors.NewValidationError("allocation id is required")
	}
	list, err := uc.repo.ListByAllocation(ctx, allocationID)
	if err != nil {
		uc.logger.Errorw("failed to list allocation returns", "allocation_id", allocationID, "error", err)
		return nil, err
	}
	return dto.ToReturnDTOs(list), nil
}

type GetReturnStatsUseCase struct {
	repo   allocation.ReturnRepository
	logger logger.Interface
}

func NewGetReturnStatsUseCase(repo allocation.ReturnRepository, logger logger.Interface) *GetReturnStatsUseCase {
	return &GetReturnStatsUseCase{repo: repo, logger: logger}
}

func (uc *GetReturnStatsUseCase) Execute(ctx context.Context) (*dto.ReturnStatsDTO, error) {
	stats, err := uc.repo.Stats(ctx)
	if err != nil {
		uc.logger.Errorw("failed to compute return stats", "error", err)
		return nil, err
	}
	return dto.ToReturnStatsDTO(stats), nil
}
