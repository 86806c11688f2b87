package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/GithubESPI/dotationsFrontend/internal/application/notification"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/allocation"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/employee"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/equipment"
	equipmentvo "github.com/GithubESPI/dotationsFrontend/internal/domain/equipment/valueobjects"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/db"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

type mockAllocationRepository struct {
	CreateFunc                   func(ctx context.Context, a *allocation.Allocation) error
	UpdateFunc                   func(ctx context.Context, a *allocation.Allocation) error
	GetByIDFunc                  func(ctx context.Context, id string) (*allocation.Allocation, error)
	ListByUserFunc               func(ctx context.Context, userID string) ([]*allocation.Allocation, error)
	ListAllFunc                  func(ctx context.Context) ([]*allocation.Allocation, error)
	FindActiveByEquipmentIDsFunc func(ctx context.Context, equipmentIDs []string) ([]*allocation.Allocation, error)
	ListFunc                     func(ctx context.Context, filter allocation.Filter) ([]*allocation.Allocation, int64, error)
	StatsFunc                    func(ctx context.Context) (*allocation.Stats, error)
}

func (m *mockAllocationRepository) Create(ctx context.Context, a *allocation.Allocation) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockAllocationRepository) Update(ctx context.Context, a *allocation.Allocation) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAllocationRepository) GetByID(ctx context.Context, id string) (*allocation.Allocation, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAllocationRepository) ListByUser(ctx context.Context, userID string) ([]*allocation.Allocation, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockAllocationRepository) ListAll(ctx context.Context) ([]*allocation.Allocation, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockAllocationRepository) FindActiveByEquipmentIDs(ctx context.Context, equipmentIDs []string) ([]*allocation.Allocation, error) {
	if m.FindActiveByEquipmentIDsFunc != nil {
		return m.FindActiveByEquipmentIDsFunc(ctx, equipmentIDs)
	}
	return nil, nil
}

func (m *mockAllocationRepository) List(ctx context.Context, filter allocation.Filter) ([]*allocation.Allocation, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockAllocationRepository) Stats(ctx context.Context) (*allocation.Stats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return &allocation.Stats{}, nil
}

type mockReturnRepository struct {
	CreateFunc           func(ctx context.Context, r *allocation.Return) error
	ListByUserFunc       func(ctx context.Context, userID string) ([]*allocation.Return, error)
	ListByAllocationFunc func(ctx context.Context, allocationID string) ([]*allocation.Return, error)
	StatsFunc            func(ctx context.Context) (*allocation.ReturnStats, error)
}

func (m *mockReturnRepository) Create(ctx context.Context, r *allocation.Return) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return nil
}

func (m *mockReturnRepository) ListByUser(ctx context.Context, userID string) ([]*allocation.Return, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockReturnRepository) ListByAllocation(ctx context.Context, allocationID string) ([]*allocation.Return, error) {
	if m.ListByAllocationFunc != nil {
		return m.ListByAllocationFunc(ctx, allocationID)
	}
	return nil, nil
}

func (m *mockReturnRepository) Stats(ctx context.Context) (*allocation.ReturnStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return &allocation.ReturnStats{}, nil
}

type mockEmployeeRepository struct {
	employee.Repository
	GetByIDFunc func(ctx context.Context, id string) (*employee.Employee, error)
}

func (m *mockEmployeeRepository) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

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

// recordingNotifier forwards every message to buffered channels.
type recordingNotifier struct {
	signed   chan notification.AllocationSigned
	returned chan notification.ReturnRecorded
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{
		signed:   make(chan notification.AllocationSigned, 4),
		returned: make(chan notification.ReturnRecorded, 4),
	}
}

func (n *recordingNotifier) AllocationSigned(ctx context.Context, msg notification.AllocationSigned) error {
	n.signed <- msg
	return nil
}

func (n *recordingNotifier) ReturnRecorded(ctx context.Context, msg notification.ReturnRecorded) error {
	n.returned <- msg
	return nil
}

func testLogger() logger.Interface {
	return logger.NewNopLogger()
}

var noTx db.Transactor = db.NoopTransactor{}

func newTestEmployee(t *testing.T) *employee.Employee {
	t.Helper()
	e, err := employee.NewEmployee("o365-1", "Marie.Curie@example.com", "Marie Curie", employee.Profile{Department: "IT"})
	require.NoError(t, err)
	return e
}

func newTestEquipment(t *testing.T, id, serial string, status equipmentvo.EquipmentStatus, userID string) *equipment.Equipment {
	t.Helper()
	now := time.Now().UTC()
	e, err := equipment.ReconstructEquipment(id, "", "PI-"+id, equipmentvo.TypeLaptop, "Dell", "Latitude 5440", serial,
		"", "", status, userID, "", nil, nil, now, now)
	require.NoError(t, err)
	return e
}

// equipmentStore is a tiny in-memory inventory behind mockEquipmentRepository.
type equipmentStore struct {
	items   map[string]*equipment.Equipment
	updated []string
	created []*equipment.Equipment
}

func newEquipmentStore(items ...*equipment.Equipment) *equipmentStore {
	s := &equipmentStore{items: make(map[string]*equipment.Equipment)}
	for _, e := range items {
		s.items[e.ID()] = e
	}
	return s
}

func (s *equipmentStore) repo() *mockEquipmentRepository {
	return &mockEquipmentRepository{
		GetByIDFunc: func(_ context.Context, id string) (*equipment.Equipment, error) {
			return s.items[id], nil
		},
		GetBySerialNumberFunc: func(_ context.Context, serial string) (*equipment.Equipment, error) {
			for _, e := range s.items {
				if e.SerialNumber() == serial {
					return e, nil
				}
			}
			return nil, nil
		},
		GetByIDsFunc: func(_ context.Context, ids []string) ([]*equipment.Equipment, error) {
			var out []*equipment.Equipment
			for _, id := range ids {
				if e, ok := s.items[id]; ok {
					out = append(out, e)
				}
			}
			return out, nil
		},
		CreateFunc: func(_ context.Context, e *equipment.Equipment) error {
			s.items[e.ID()] = e
			s.created = append(s.created, e)
			return nil
		},
		UpdateFunc: func(_ context.Context, e *equipment.Equipment) error {
			s.updated = append(s.updated, e.ID())
			return nil
		},
	}
}
