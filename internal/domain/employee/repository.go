package employee

import "context"

// Repository persists employees. Getters return (nil, nil) when nothing matches.
type Repository interface {
	Create(ctx context.Context, e *Employee) error
	Update(ctx context.Context, e *Employee) error
	GetByID(ctx context.Context, id string) (*Employee, error)
	GetByOffice365ID(ctx context.Context, office365ID string) (*Employee, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	ListActive(ctx context.Context) ([]*Employee, error)
	List(ctx context.Context, filter Filter) ([]*Employee, int64, error)
	Stats(ctx context.Context) (*Stats, error)
}

type Filter struct {
	Query          string
	Department     string
	OfficeLocation string
	IsActive       *bool
	Page           int
	PageSize       int
	SortBy         string
	SortOrder      string
}

type DepartmentCount struct {
	Department *string `json:"_id"`
	Count      int64   `json:"count"`
}

type Stats struct {
	Total        int64
	Active       int64
	Inactive     int64
	ByDepartment []DepartmentCount
}
