package usecases

import (
	"context"

	"github.com/GithubESPI/dotationsFrontend/internal/application/employee/dto"
)

type ListEmployeesExecutor interface {
	Execute(ctx context.Context, query ListEmployeesQuery) (*dto.ListEmployeesDTO, error)
}

type ListActiveEmployeesExecutor interface {
	Execute(ctx context.Context) ([]*dto.EmployeeDTO, error)
}

type GetEmployeeExecutor interface {
	Execute(ctx context.Context, id string) (*dto.EmployeeDTO, error)
}

type GetEmployeeStatsExecutor interface {
	Execute(ctx context.Context) (*dto.StatsDTO, error)
}

type UpdateEmployeeExecutor interface {
	Execute(ctx context.Context, cmd UpdateEmployeeCommand) (*dto.EmployeeDTO, error)
}

type UpsertEmployeesExecutor interface {
	Execute(ctx context.Context, cmd UpsertEmployeesCommand) (*dto.UpsertResultDTO, error)
}

type DeactivateEmployeeExecutor interface {
	Execute(ctx context.Context, id string) (*dto.EmployeeDTO, error)
}
