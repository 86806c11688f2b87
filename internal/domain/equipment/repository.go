package equipment

import (
	"context"

	vo "github.com/GithubESPI/dotationsFrontend/internal/domain/equipment/valueobjects"
)

// Repository persists equipment. Getters return (nil, nil) when nothing matches.
type Repository interface {
	Create(ctx context.Context, e *Equipment) error
	Update(ctx context.Context, e *Equipment) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Equipment, error)
	GetBySerialNumber(ctx context.Context, serialNumber string) (*Equipment, error)
	GetByIDs(ctx context.Context, ids []string) ([]*Equipment, error)
	FindBySerialNumbers(ctx context.Context, serialNumbers []string) ([]*Equipment, error)
	FindByJiraAssetIDs(ctx context.Context, jiraAssetIDs []string) ([]*Equipment, error)
	ListByUser(ctx context.Context, userID string) ([]*Equipment, error)
	List(ctx context.Context, filter Filter) ([]*Equipment, int64, error)
	Stats(ctx context.Context) (*Stats, error)
}

type Filter struct {
	Query         string
	Type          *vo.EquipmentType
	Status        *vo.EquipmentStatus
	Brand         string
	Location      string
	CurrentUserID string
	Page          int
	PageSize      int
	SortBy        string
	SortOrder     string
}

// Count is one bucket of a grouped count.
type Count struct {
	Key   string `json:"_id"`
	Count int64  `json:"count"`
}

type Stats struct {
	Total    int64
	ByStatus map[vo.EquipmentStatus]int64
	ByType   []Count
	ByBrand  []Count
}
