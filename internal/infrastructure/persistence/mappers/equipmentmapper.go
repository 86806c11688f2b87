package mappers

import (
	"fmt"

	"github.com/GithubESPI/dotationsFrontend/internal/domain/equipment"
	vo "github.com/GithubESPI/dotationsFrontend/internal/domain/equipment/valueobjects"
	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/persistence/models"
)

// EquipmentMapper converts between the equipment aggregate and its persistence model.
type EquipmentMapper interface {
	ToModel(e *equipment.Equipment) (*models.EquipmentModel, error)
	ToDomain(model *models.EquipmentModel) (*equipment.Equipment, error)
	ToDomainList(list []*models.EquipmentModel) ([]*equipment.Equipment, error)
}

type EquipmentMapperImpl struct{}

func NewEquipmentMapper() EquipmentMapper {
	return &EquipmentMapperImpl{}
}

func (m *EquipmentMapperImpl) ToModel(e *equipment.Equipment) (*models.EquipmentModel, error) {
	softwares, err := marshalJSON(e.AdditionalSoftwares())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal additional softwares: %w", err)
	}
	attrs, err := marshalJSON(e.JiraAttributes())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal jira attributes: %w", err)
	}

	return &models.EquipmentModel{
		ID:                  e.ID(),
		JiraAssetID:         stringPtr(e.JiraAssetID()),
		InternalID:          e.InternalID(),
		Type:                e.Type().String(),
		Brand:               e.Brand(),
		Model:               e.Model(),
		SerialNumber:        e.SerialNumber(),
		IMEI:                e.IMEI(),
		PhoneLine:           e.PhoneLine(),
		Status:              e.Status().String(),
		CurrentUserID:       stringPtr(e.CurrentUserID()),
		Location:            e.Location(),
		AdditionalSoftwares: softwares,
		JiraAttributes:      attrs,
		CreatedAt:           e.CreatedAt(),
		UpdatedAt:           e.UpdatedAt(),
	}, nil
}

func (m *EquipmentMapperImpl) ToDomain(model *models.EquipmentModel) (*equipment.Equipment, error) {
	if model == nil {
		return nil, nil
	}

	var softwares []string
	if err := unmarshalJSON("additional_softwares", model.AdditionalSoftwares, &softwares); err != nil {
		return nil, err
	}
	var attrs map[string]string
	if err := unmarshalJSON("jira_attributes", model.JiraAttributes, &attrs); err != nil {
		return nil, err
	}

	e, err := equipment.ReconstructEquipment(
		model.ID,
		derefString(model.JiraAssetID),
		model.InternalID,
		vo.EquipmentType(model.Type),
		model.Brand,
		model.Model,
		model.SerialNumber,
		model.IMEI,
		model.PhoneLine,
		vo.EquipmentStatus(model.Status),
		derefString(model.CurrentUserID),
		model.Location,
		softwares,
		attrs,
		model.CreatedAt.UTC(),
		model.UpdatedAt.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct equipment %s: %w", model.ID, err)
	}
	return e, nil
}

func (m *EquipmentMapperImpl) ToDomainList(list []*models.EquipmentModel) ([]*equipment.Equipment, error) {
	out := make([]*equipment.Equipment, 0, len(list))
	for _, model := range list {
		e, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
