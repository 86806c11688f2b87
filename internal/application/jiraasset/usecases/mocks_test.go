package usecases

import (
	"context"
	"time"

	"github.com/GithubESPI/dotationsFrontend/internal/domain/equipment"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/jiraasset"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

type mockSource struct {
	WorkspaceIDFunc        func(ctx context.Context) (string, error)
	ObjectTypeAssetsFunc   func(ctx context.Context, schemaName, objectTypeName string, limit int) (*jiraasset.ObjectTypeAssets, error)
	SearchByObjectTypeFunc func(ctx context.Context, objectTypeID, iql string, limit int) ([]jiraasset.Object, error)
	GetObjectFunc          func(ctx context.Context, objectID string) (*jiraasset.Object, error)
}

func (m *mockSource) WorkspaceID(ctx context.Context) (string, error) {
	if m.WorkspaceIDFunc != nil {
		return m.WorkspaceIDFunc(ctx)
	}
	return "ws-1", nil
}

func (m *mockSource) ObjectTypeAssets(ctx context.Context, schemaName, objectTypeName string, limit int) (*jiraasset.ObjectTypeAssets, error) {
	if m.ObjectTypeAssetsFunc != nil {
		return m.ObjectTypeAssetsFunc(ctx, schemaName, objectTypeName, limit)
	}
	return &jiraasset.ObjectTypeAssets{SchemaName: schemaName, ObjectTypeName: objectTypeName}, nil
}

func (m *mockSource) SearchByObjectType(ctx context.Context, objectTypeID, iql string, limit int) ([]jiraasset.Object, error) {
	if m.SearchByObjectTypeFunc != nil {
		return m.SearchByObjectTypeFunc(ctx, objectTypeID, iql, limit)
	}
	return nil, nil
}

func (m *mockSource) GetObject(ctx context.Context, objectID string) (*jiraasset.Object, error) {
	if m.GetObjectFunc != nil {
		return m.GetObjectFunc(ctx, objectID)
	}
	return nil, nil
}

type mockMappingStore struct {
	GetFunc    func(ctx context.Context, key string) (*jiraasset.AttributeMapping, error)
	SetFunc    func(ctx context.Context, key string, mapping jiraasset.AttributeMapping, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func (m *mockMappingStore) Get(ctx context.Context, key string) (*jiraasset.AttributeMapping, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockMappingStore) Set(ctx context.Context, key string, mapping jiraasset.AttributeMapping, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, mapping, ttl)
	}
	return nil
}

func (m *mockMappingStore) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return nil
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

func testLogger() logger.Interface {
	return logger.NewNopLogger()
}

// laptop builds an asset whose attributes follow the detector rules:
// 1 serial, 2 internal id, 3 brand reference, 4 model, 5 status, 6 type label.
func laptop(id, serial, model string) jiraasset.Object {
	return jiraasset.Object{
		ID:           id,
		ObjectKey:    "IT-" + id,
		ObjectTypeID: "23",
		Attributes: []jiraasset.Attribute{
			{ObjectTypeAttributeID: "1", Values: []jiraasset.Value{jiraasset.StringValue(serial)}},
			{ObjectTypeAttributeID: "2", Values: []jiraasset.Value{jiraasset.StringValue("PI-" + id)}},
			{ObjectTypeAttributeID: "3", Values: []jiraasset.Value{jiraasset.ReferenceValue(jiraasset.ReferencedObject{
				ID: "900", ObjectKey: "Dell", ObjectType: &jiraasset.ObjectTypeRef{ID: "40", Name: "Constructeur"},
			})}},
			{ObjectTypeAttributeID: "4", Values: []jiraasset.Value{jiraasset.StringValue(model)}},
			{ObjectTypeAttributeID: "5", Values: []jiraasset.Value{jiraasset.StatusValue(jiraasset.Status{ID: "1", Name: "En stock"})}},
			{ObjectTypeAttributeID: "6", Values: []jiraasset.Value{jiraasset.StringValue("Laptop")}},
		},
	}
}

var laptopMapping = jiraasset.AttributeMapping{
	SerialNumberAttrID: "1",
	InternalIDAttrID:   "2",
	BrandAttrID:        "3",
	ModelAttrID:        "4",
	StatusAttrID:       "5",
	TypeAttrID:         "6",
}
