package usecases

import (
	"context"

	"github.com/GithubESPI/dotationsFrontend/internal/application/allocation/dto"
)

type CreateAllocationExecutor interface {
	Execute(ctx context.Context, cmd CreateAllocationCommand) (*dto.AllocationDTO, error)
}

type UpdateAllocationExecutor interface {
	Execute(ctx context.Context, cmd UpdateAllocationCommand) (*dto.AllocationDTO, error)
}

type SignAllocationExecutor interface {
	Execute(ctx context.Context, cmd SignAllocationCommand) (*dto.AllocationDTO, error)
}

type CancelAllocationExecutor interface {
	Execute(ctx context.Context, id string) (*dto.AllocationDTO, error)
}

type GetAllocationExecutor interface {
	Execute(ctx context.Context, id string) (*dto.AllocationDTO, error)
}

type ListAllocationsExecutor interface {
	Execute(ctx context.Context, query ListAllocationsQuery) (*dto.ListAllocationsDTO, error)
}

type GetUserAllocationsExecutor interface {
	Execute(ctx context.Context, userID string) ([]*dto.AllocationDTO, error)
}

type ListAllAllocationsExecutor interface {
	Execute(ctx context.Context) ([]*dto.AllocationDTO, error)
}

type GetAllocationStatsExecutor interface {
	Execute(ctx context.Context) (*dto.AllocationStatsDTO, error)
}

type CreateReturnExecutor interface {
	Execute(ctx context.Context, cmd CreateReturnCommand) (*dto.ReturnDTO, error)
}

type GetUserReturnsExecutor interface {
	Execute(ctx context.Context, userID string) ([]*dto.ReturnDTO, error)
}

type GetAllocationReturnsExecutor interface {
	Execute(ctx context.Context, allocationID string) ([]*dto.ReturnDTO, error)
}

type GetReturnStatsExecutor interface {
	Execute(ctx context.Context) (*dto.ReturnStatsDTO, error)
}
