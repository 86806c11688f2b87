package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/GithubESPI/dotationsFrontend/internal/domain/allocation"
	vo "github.com/GithubESPI/dotationsFrontend/internal/domain/allocation/valueobjects"
	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/persistence/models"
)

type AllocationMapper interface {
	ToModel(a *allocation.Allocation) (*models.AllocationModel, error)
	ToDomain(model *models.AllocationModel) (*allocation.Allocation, error)
	ToDomainList(list []*models.AllocationModel) ([]*allocation.Allocation, error)
	ToEquipmentLinks(a *allocation.Allocation) []*models.AllocationEquipmentModel
	ReturnToModel(r *allocation.Return) (*models.AllocationReturnModel, error)
	ReturnToDomain(model *models.AllocationReturnModel) (*allocation.Return, error)
}

type AllocationMapperImpl struct{}

func NewAllocationMapper() AllocationMapper {
	return &AllocationMapperImpl{}
}

func (m *AllocationMapperImpl) ToModel(a *allocation.Allocation) (*models.AllocationModel, error) {
	extras := a.Extras()
	model := &models.AllocationModel{
		ID:           a.ID(),
		Reference:    a.Reference(),
		UserID:       a.UserID(),
		UserName:     a.UserName(),
		UserEmail:    a.UserEmail(),
		DeliveryDate: a.DeliveryDate(),
		Status:       a.Status().String(),
		Notes:        extras.Notes,
		SignedAt:     a.SignedAt(),
		CreatedBy:    a.CreatedBy(),
		CreatedAt:    a.CreatedAt(),
		UpdatedAt:    a.UpdatedAt(),
	}

	columns := []struct {
		name   string
		value  any
		target *datatypes.JSON
	}{
		{"items", a.Items(), &model.Items},
		{"accessories", extras.Accessories, &model.Accessories},
		{"additional_software", extras.AdditionalSoftware, &model.AdditionalSoftware},
		{"standard_software", extras.StandardSoftware, &model.StandardSoftware},
		{"services", extras.Services, &model.Services},
	}
	for _, col := range columns {
		data, err := marshalJSON(col.value)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s: %w", col.name, err)
		}
		*col.target = data
	}

	if sig := a.Signature(); sig != nil {
		data, err := marshalJSON(sig)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal signature: %w", err)
		}
		model.Signature = data
	}

	return model, nil
}

func (m *AllocationMapperImpl) ToDomain(model *models.AllocationModel) (*allocation.Allocation, error) {
	if model == nil {
		return nil, nil
	}

	var items []allocation.Item
	var extras allocation.Extras
	var signature *allocation.Signature

	if err := unmarshalJSON("items", model.Items, &items); err != nil {
		return nil, err
	}
	if err := unmarshalJSON("accessories", model.Accessories, &extras.Accessories); err != nil {
		return nil, err
	}
	if err := unmarshalJSON("additional_software", model.AdditionalSoftware, &extras.AdditionalSoftware); err != nil {
		return nil, err
	}
	if err := unmarshalJSON("standard_software", model.StandardSoftware, &extras.StandardSoftware); err != nil {
		return nil, err
	}
	if err := unmarshalJSON("services", model.Services, &extras.Services); err != nil {
		return nil, err
	}
	if err := unmarshalJSON("signature", model.Signature, &signature); err != nil {
		return nil, err
	}
	extras.Notes = model.Notes

	a, err := allocation.ReconstructAllocation(
		model.ID,
		model.Reference,
		model.UserID,
		model.UserName,
		model.UserEmail,
		items,
		model.DeliveryDate.UTC(),
		vo.AllocationStatus(model.Status),
		extras,
		signature,
		model.SignedAt,
		model.CreatedBy,
		model.CreatedAt.UTC(),
		model.UpdatedAt.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct allocation %s: %w", model.ID, err)
	}
	return a, nil
}

func (m *AllocationMapperImpl) ToDomainList(list []*models.AllocationModel) ([]*allocation.Allocation, error) {
	out := make([]*allocation.Allocation, 0, len(list))
	for _, model := range list {
		a, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *AllocationMapperImpl) ToEquipmentLinks(a *allocation.Allocation) []*models.AllocationEquipmentModel {
	items := a.Items()
	links := make([]*models.AllocationEquipmentModel, 0, len(items))
	for _, item := range items {
		links = append(links, &models.AllocationEquipmentModel{
			AllocationID: a.ID(),
			EquipmentID:  item.EquipmentID,
			Returned:     item.IsReturned(),
		})
	}
	return links
}

func (m *AllocationMapperImpl) ReturnToModel(r *allocation.Return) (*models.AllocationReturnModel, error) {
	items, err := marshalJSON(r.Items())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal returned items: %w", err)
	}
	removed, err := marshalJSON(r.RemovedSoftware())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal removed software: %w", err)
	}

	return &models.AllocationReturnModel{
		ID:              r.ID(),
		Reference:       r.Reference(),
		AllocationID:    r.AllocationID(),
		UserID:          r.UserID(),
		Items:           items,
		ItemCount:       len(r.Items()),
		ReturnDate:      r.ReturnDate(),
		RemovedSoftware: removed,
		ProcessedBy:     r.ProcessedBy(),
		Notes:           r.Notes(),
		CreatedAt:       r.CreatedAt(),
	}, nil
}

func (m *AllocationMapperImpl) ReturnToDomain(model *models.AllocationReturnModel) (*allocation.Return, error) {
	if model == nil {
		return nil, nil
	}

	var items []allocation.ReturnedItem
	var removed []string
	if err := unmarshalJSON("items", model.Items, &items); err != nil {
		return nil, err
	}
	if err := unmarshalJSON("removed_software", model.RemovedSoftware, &removed); err != nil {
		return nil, err
	}

	r, err := allocation.ReconstructReturn(
		model.ID,
		model.Reference,
		model.AllocationID,
		model.UserID,
		items,
		model.ReturnDate.UTC(),
		removed,
		model.ProcessedBy,
		model.Notes,
		model.CreatedAt.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct return %s: %w", model.ID, err)
	}
	return r, nil
}
