package mappers

import (
	"fmt"

	"github.com/GithubESPI/dotationsFrontend/internal/domain/employee"
	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/persistence/models"
)

type EmployeeMapper interface {
	ToModel(e *employee.Employee) (*models.EmployeeModel, error)
	ToDomain(model *models.EmployeeModel) (*employee.Employee, error)
	ToDomainList(list []*models.EmployeeModel) ([]*employee.Employee, error)
}

type EmployeeMapperImpl struct{}

func NewEmployeeMapper() EmployeeMapper {
	return &EmployeeMapperImpl{}
}

func (m *EmployeeMapperImpl) ToModel(e *employee.Employee) (*models.EmployeeModel, error) {
	profile := e.Profile()
	data, err := marshalJSON(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal employee profile: %w", err)
	}

	return &models.EmployeeModel{
		ID:             e.ID(),
		Office365ID:    e.Office365ID(),
		Email:          e.Email(),
		DisplayName:    e.DisplayName(),
		Department:     stringPtr(profile.Department),
		OfficeLocation: profile.OfficeLocation,
		Profile:        data,
		IsActive:       e.IsActive(),
		LastSync:       e.LastSync(),
		CreatedAt:      e.CreatedAt(),
		UpdatedAt:      e.UpdatedAt(),
	}, nil
}

func (m *EmployeeMapperImpl) ToDomain(model *models.EmployeeModel) (*employee.Employee, error) {
	if model == nil {
		return nil, nil
	}

	var profile employee.Profile
	if err := unmarshalJSON("profile", model.Profile, &profile); err != nil {
		return nil, err
	}
	profile.Department = derefString(model.Department)
	profile.OfficeLocation = model.OfficeLocation

	e, err := employee.ReconstructEmployee(
		model.ID,
		model.Office365ID,
		model.Email,
		model.DisplayName,
		profile,
		model.IsActive,
		model.LastSync,
		model.CreatedAt.UTC(),
		model.UpdatedAt.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct employee %s: %w", model.ID, err)
	}
	return e, nil
}

func (m *EmployeeMapperImpl) ToDomainList(list []*models.EmployeeModel) ([]*employee.Employee, error) {
	out := make([]*employee.Employee, 0, len(list))
	for _, model := range list {
		e, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
