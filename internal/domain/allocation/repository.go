package allocation

import (
	"context"
	"time"

	vo "github.com/GithubESPI/dotationsFrontend/internal/domain/allocation/valueobjects"
)

// Repository persists allocations. GetByID returns (nil, nil) when nothing matches.
type Repository interface {
	Create(ctx context.Context, a *Allocation) error
	Update(ctx context.Context, a *Allocation) error
	GetByID(ctx context.Context, id string) (*Allocation, error)
	ListByUser(ctx context.Context, userID string) ([]*Allocation, error)
	ListAll(ctx context.Context) ([]*Allocation, error)
	// FindActiveByEquipmentIDs returns the active allocations that hold any of the equipment.
	FindActiveByEquipmentIDs(ctx context.Context, equipmentIDs []string) ([]*Allocation, error)
	List(ctx context.Context, filter Filter) ([]*Allocation, int64, error)
	Stats(ctx context.Context) (*Stats, error)
}

type Filter struct {
	Query     string
	UserID    string
	Status    *vo.AllocationStatus
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type Stats struct {
	Total     int64
	ByStatus  map[vo.AllocationStatus]int64
	Signed    int64
	ThisMonth int64
}

type ReturnRepository interface {
	Create(ctx context.Context, r *Return) error
	ListByUser(ctx context.Context, userID string) ([]*Return, error)
	ListByAllocation(ctx context.Context, allocationID string) ([]*Return, error)
	Stats(ctx context.Context) (*ReturnStats, error)
}

type ReturnStats struct {
	Total         int64
	ItemsReturned int64
	ByCondition   map[vo.Condition]int64
	ThisMonth     int64
}
