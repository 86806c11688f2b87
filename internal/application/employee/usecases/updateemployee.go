package usecases

import (
	"context"

	"github.com/GithubESPI/dotationsFrontend/internal/application/employee/dto"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/employee"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

// UpdateEmployeeCommand edits the fields that are not owned by the directory.
type UpdateEmployeeCommand struct {
	ID             string
	JobTitle       *string
	Department     *string
	OfficeLocation *string
	MobilePhone    *string
}

type UpdateEmployeeUseCase struct {
	repo   employee.Repository
	logger logger.Interface
}

func NewUpdateEmployeeUseCase(repo employee.Repository, logger logger.Interface) *UpdateEmployeeUseCase {
	return &UpdateEmployeeUseCase{repo: repo, logger: logger}
}

func (uc *UpdateEmployeeUseCase) Execute(ctx context.Context, cmd UpdateEmployeeCommand) (*dto.EmployeeDTO, error) {
	e, err := loadEmployee(ctx, uc.repo, cmd.ID)
	if err != nil {
		return nil, err
	}
	e.UpdateContact(cmd.JobTitle, cmd.Department, cmd.OfficeLocation, cmd.MobilePhone)
	if err := uc.repo.Update(ctx, e); err != nil {
		uc.logger.Errorw("failed to update employee", "id", cmd.ID, "error", err)
		return nil, err
	}
	uc.logger.Infow("employee updated", "id", e.ID())
	return dto.ToEmployeeDTO(e), nil
}

type DeactivateEmployeeUseCase struct {
	repo   employee.Repository
	logger logger.Interface
}

func NewDeactivateEmployeeUseCase(repo employee.Repository, logger logger.Interface) *DeactivateEmployeeUseCase {
	return &DeactivateEmployeeUseCase{repo: repo, logger: logger}
}

func (uc *DeactivateEmployeeUseCase) Execute(ctx context.Context, id string) (*dto.EmployeeDTO, error) {
	e, err := loadEmployee(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	if !e.IsActive() {
		return dto.ToEmployeeDTO(e), nil
	}
	e.Deactivate()
	if err := uc.repo.Update(ctx, e); err != nil {
		uc.logger.Errorw("failed to deactivate employee", "id", id, "error", err)
		return nil, err
	}
	uc.logger.Infow("employee deactivated", "id", id)
	return dto.ToEmployeeDTO(e), nil
}
