package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/GithubESPI/dotationsFrontend/internal/domain/equipment"
	vo "github.com/GithubESPI/dotationsFrontend/internal/domain/equipment/valueobjects"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

type mockEquipmentRepository struct {
	CreateFunc              func(ctx context.Context, e *equipment.Equipment) error
	UpdateFunc              func(ctx context.Context, e *equipment.Equipment) error
	DeleteFunc              func(ctx context.Context, id string) error
	GetByIDFunc             func(ctx context.Context, id string) (*equipment.Equipment, error)
	GetBySerialNumberFunc   func(ctx context.Context, serialNumber string) (*equipment.Equipment, error)
	GetByIDsFunc            func(ctx context.Context, ids []string) ([]*equipment.Equipment, error)
	FindBySerialNumbersFunc func(ctx context.Context, serialNumbers []string) ([]*equipment.Equipment, error)
	FindByJiraAssetIDsFunc  func(ctx context.Context, jiraAssetIDs []string) ([]*equipment.Equipment, error)
	ListByUserFunc          func(ctx context.Context, userID string) ([]*equipment.Equipment, error)
	ListFunc                func(ctx context.Context, filter equipment.Filter) ([]*equipment.Equipment, int64, error)
	StatsFunc               func(ctx context.Context) (*equipment.Stats, error)
}

func (m *mockEquipmentRepository) Create(ctx context.Context, e *equipment.Equipment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, e)
	}
	return nil
}

func (m *mockEquipmentRepository) Update(ctx context.Context, e *equipment.Equipment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, e)
	}
	return nil
}

func (m *mockEquipmentRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockEquipmentRepository) GetByID(ctx context.Context, id string) (*equipment.Equipment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockEquipmentRepository) GetBySerialNumber(ctx context.Context, serialNumber string) (*equipment.Equipment, error) {
	if m.GetBySerialNumberFunc != nil {
		return m.GetBySerialNumberFunc(ctx, serialNumber)
	}
	return nil, nil
}

func (m *mockEquipmentRepository) GetByIDs(ctx context.Context, ids []string) ([]*equipment.Equipment, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockEquipmentRepository) FindBySerialNumbers(ctx context.Context, serialNumbers []string) ([]*equipment.Equipment, error) {
	if m.FindBySerialNumbersFunc != nil {
		return m.FindBySerialNumbersFunc(ctx, serialNumbers)
	}
	return nil, nil
}

func (m *mockEquipmentRepository) FindByJiraAssetIDs(ctx context.Context, jiraAssetIDs []string) ([]*equipment.Equipment, error) {
	if m.FindByJiraAssetIDsFunc != nil {
		return m.FindByJiraAssetIDsFunc(ctx, jiraAssetIDs)
	}
	return nil, nil
}

func (m *mockEquipmentRepository) ListByUser(ctx context.Context, userID string) ([]*equipment.Equipment, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockEquipmentRepository) List(ctx context.Context, filter equipment.Filter) ([]*equipment.Equipment, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockEquipmentRepository) Stats(ctx context.Context) (*equipment.Stats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return &equipment.Stats{}, nil
}

func testLogger() logger.Interface {
	return logger.NewNopLogger()
}

func newTestEquipment(t *testing.T, id, serial string, status vo.EquipmentStatus, userID string) *equipment.Equipment {
	t.Helper()
	now := time.Now().UTC()
	e, err := equipment.ReconstructEquipment(id, "", "", vo.TypeLaptop, "Dell", "Latitude 5440", serial,
		"", "", status, userID, "Paris", nil, nil, now, now)
	require.NoError(t, err)
	return e
}

// byID serves GetByID from a fixed set.
func byID(items ...*equipment.Equipment) func(context.Context, string) (*equipment.Equipment, error) {
	return func(_ context.Context, id string) (*equipment.Equipment, error) {
		for _, e := range items {
			if e.ID() == id {
				return e, nil
			}
		}
		return nil, nil
	}
}
