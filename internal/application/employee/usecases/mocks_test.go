package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GithubESPI/dotationsFrontend/internal/domain/employee"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

var testLogger = logger.NewNopLogger()

type mockEmployeeRepository struct {
	CreateFunc           func(ctx context.Context, e *employee.Employee) error
	UpdateFunc           func(ctx context.Context, e *employee.Employee) error
	GetByIDFunc          func(ctx context.Context, id string) (*employee.Employee, error)
	GetByOffice365IDFunc func(ctx context.Context, office365ID string) (*employee.Employee, error)
	GetByEmailFunc       func(ctx context.Context, email string) (*employee.Employee, error)
	ListActiveFunc       func(ctx context.Context) ([]*employee.Employee, error)
	ListFunc             func(ctx context.Context, filter employee.Filter) ([]*employee.Employee, int64, error)
	StatsFunc            func(ctx context.Context) (*employee.Stats, error)
}

func (m *mockEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, e)
	}
	return nil
}

func (m *mockEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, e)
	}
	return nil
}

func (m *mockEmployeeRepository) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockEmployeeRepository) GetByOffice365ID(ctx context.Context, office365ID string) (*employee.Employee, error) {
	if m.GetByOffice365IDFunc != nil {
		return m.GetByOffice365IDFunc(ctx, office365ID)
	}
	return nil, nil
}

func (m *mockEmployeeRepository) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockEmployeeRepository) ListActive(ctx context.Context) ([]*employee.Employee, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockEmployeeRepository) List(ctx context.Context, filter employee.Filter) ([]*employee.Employee, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockEmployeeRepository) Stats(ctx context.Context) (*employee.Stats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return nil, nil
}

func newTestEmployee(t *testing.T, office365ID, email string) *employee.Employee {
	t.Helper()
	e, err := employee.NewEmployee(office365ID, email, "Marie Curie", employee.Profile{Department: "IT"})
	require.NoError(t, err)
	return e
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
