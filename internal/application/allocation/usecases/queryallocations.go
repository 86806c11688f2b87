package usecases

import (
	"context"
	"time"

	"github.com/GithubESPI/dotationsFrontend/internal/application/allocation/dto"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/allocation"
	vo "github.com/GithubESPI/dotationsFrontend/internal/domain/allocation/valueobjects"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/errors"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

type GetAllocationUseCase struct {
	repo   allocation.Repository
	logger logger.Interface
}

func NewGetAllocationUseCase(repo allocation.Repository, logger logger.Interface) *GetAllocationUseCase {
	return &GetAllocationUseCase{repo: repo, logger: logger}
}

func (uc *GetAllocationUseCase) Execute(ctx context.Context, id string) (*dto.AllocationDTO, error) {
	a, err := loadAllocation(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	return dto.ToAllocationDTO(a), nil
}

// ListAllocationsQuery searches allocations. Dates bound the delivery date, both inclusive.
type ListAllocationsQuery struct {
	Query     string
	UserID    string
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

type ListAllocationsUseCase struct {
	repo   allocation.Repository
	logger logger.Interface
}

func NewListAllocationsUseCase(repo allocation.Repository, logger logger.Interface) *ListAllocationsUseCase {
	return &ListAllocationsUseCase{repo: repo, logger: logger}
}

func (uc *ListAllocationsUseCase) Execute(ctx context.Context, query ListAllocationsQuery) (*dto.ListAllocationsDTO, error) {
	filter := allocation.Filter{
		Query:     query.Query,
		UserID:    query.UserID,
		StartDate: query.StartDate,
		EndDate:   query.EndDate,
		Page:      query.Page,
		PageSize:  query.Limit,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	}
	if query.Status != "" {
		st, err := vo.NewAllocationStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &st
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, errors.NewValidationError("endDate is before startDate")
	}

	list, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list allocations", "error", err)
		return nil, err
	}
	return &dto.ListAllocationsDTO{
		Items: dto.ToAllocationDTOs(list),
		Total: total,
		Page:  query.Page,
		Limit: query.Limit,
	}, nil
}

type GetUserAllocationsUseCase struct {
	repo   allocation.Repository
	logger logger.Interface
}

func NewGetUserAllocationsUseCase(repo allocation.Repository, logger logger.Interface) *GetUserAllocationsUseCase {
	return &GetUserAllocationsUseCase{repo: repo, logger: logger}
}

func (uc *GetUserAllocationsUseCase) Execute(ctx context.Context, userID string) ([]*dto.AllocationDTO, error) {
	if userID == "" {
		return nil, errors.NewValidationError("user id is required")
	}
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list user allocations", "user_id", userID, "error", err)
		return nil, err
	}
	return dto.ToAllocationDTOs(list), nil
}

type ListAllAllocationsUseCase struct {
	repo   allocation.Repository
	logger logger.Interface
}

func NewListAllAllocationsUseCase(repo allocation.Repository, logger logger.Interface) *ListAllAllocationsUseCase {
	return &ListAllAllocationsUseCase{repo: repo, logger: logger}
}

func (uc *ListAllAllocationsUseCase) Execute(ctx context.Context) ([]*dto.AllocationDTO, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list allocations", "error", err)
		return nil, err
	}
	return dto.ToAllocationDTOs(list), nil
}

type GetAllocationStatsUseCase struct {
	repo   allocation.Repository
	logger logger.Interface
}

func NewGetAllocationStatsUseCase(repo allocation.Repository, logger logger.Interface) *GetAllocationStatsUseCase {
	return &GetAllocationStatsUseCase{repo: repo, logger: logger}
}

func (uc *GetAllocationStatsUseCase) Execute(ctx context.Context) (*dto.AllocationStatsDTO, error) {
	stats, err := uc.repo.Stats(ctx)
	if err != nil {
		uc.logger.Errorw("failed to compute allocation stats", "error", err)
		return nil, err
	}
	return dto.ToAllocationStatsDTO(stats), nil
}
