package usecases

import (
	"context"

	"github.com/GithubESPI/dotationsFrontend/internal/application/employee/dto"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/employee"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/errors"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

type ListEmployeesQuery struct {
	Query          string
	Department     string
	OfficeLocation string
	IsActive       *bool
	Page           int
	Limit          int
	SortBy         string
	SortOrder      string
}

type ListEmployeesUseCase struct {
	repo   employee.Repository
	logger logger.Interface
}

func NewListEmployeesUseCase(repo employee.Repository, logger logger.Interface) *ListEmployeesUseCase {
	return &ListEmployeesUseCase{repo: repo, logger: logger}
}

func (uc *ListEmployeesUseCase) Execute(ctx context.Context, query ListEmployeesQuery) (*dto.ListEmployeesDTO, error) {
	list, total, err := uc.repo.List(ctx, employee.Filter{
		Query:          query.Query,
		Department:     query.Department,
		OfficeLocation: query.OfficeLocation,
		IsActive:       query.IsActive,
		Page:           query.Page,
		PageSize:       query.Limit,
		SortBy:         query.SortBy,
		SortOrder:      query.SortOrder,
	})
	if err != nil {
		uc.logger.Errorw("failed to list employees", "error", err)
		return nil, err
	}
	return &dto.ListEmployeesDTO{
		Items: dto.ToEmployeeDTOs(list),
		Total: total,
		Page:  query.Page,
		Limit: query.Limit,
	}, nil
}

type ListActiveEmployeesUseCase struct {
	repo   employee.Repository
	logger logger.Interface
}

func NewListActiveEmployeesUseCase(repo employee.Repository, logger logger.Interface) *ListActiveEmployeesUseCase {
	return &ListActiveEmployeesUseCase{repo: repo, logger: logger}
}

func (uc *ListActiveEmployeesUseCase) Execute(ctx context.Context) ([]*dto.EmployeeDTO, error) {
	list, err := uc.repo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list active employees", "error", err)
		return nil, err
	}
	return dto.ToEmployeeDTOs(list), nil
}

type GetEmployeeUseCase struct {
	repo   employee.Repository
	logger logger.Interface
}

func NewGetEmployeeUseCase(repo employee.Repository, logger logger.Interface) *GetEmployeeUseCase {
	return &GetEmployeeUseCase{repo: repo, logger: logger}
}

func (uc *GetEmployeeUseCase) Execute(ctx context.Context, id string) (*dto.EmployeeDTO, error) {
	e, err := loadEmployee(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	return dto.ToEmployeeDTO(e), nil
}

type GetEmployeeStatsUseCase struct {
	repo   employee.Repository
	logger logger.Interface
}

func NewGetEmployeeStatsUseCase(repo employee.Repository, logger logger.Interface) *GetEmployeeStatsUseCase {
	return &GetEmployeeStatsUseCase{repo: repo, logger: logger}
}

func (uc *GetEmployeeStatsUseCase) Execute(ctx context.Context) (*dto.StatsDTO, error) {
	stats, err := uc.repo.Stats(ctx)
	if err != nil {
		uc.logger.Errorw("failed to compute employee stats", "error", err)
		return nil, err
	}
	return dto.ToStatsDTO(stats), nil
}

func loadEmployee(ctx context.Context, repo employee.Repository, id string) (*employee.Employee, error) {
	if id == "" {
		return nil, errors.NewValidationError("employee id is required")
	}
	e, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, errors.NewNotFoundError("employee not found", id)
	}
	return e, nil
}
