package usecases

import (
	"context"
	"strings"

	"github.com/GithubESPI/dotationsFrontend/internal/application/equipment/dto"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/equipment"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/errors"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

type AssignEquipmentCommand struct {
	ID     string
	UserID string
}

// AssignEquipmentUseCase hands equipment to an employee outside of an allocation.
type AssignEquipmentUseCase struct {
	repo   equipment.Repository
	logger logger.Interface
}

func NewAssignEquipmentUseCase(repo equipment.Repository, logger logger.Interface) *AssignEquipmentUseCase {
	return &AssignEquipmentUseCase{repo: repo, logger: logger}
}

func (uc *AssignEquipmentUseCase) Execute(ctx context.Context, cmd AssignEquipmentCommand) (*dto.EquipmentDTO, error) {
	userID := strings.TrimSpace(cmd.UserID)
	if userID == "" {
		return nil, errors.NewValidationError("userId is required")
	}

	e, err := loadEquipment(ctx, uc.repo, cmd.ID)
	if err != nil {
		return nil, err
	}
	if err := e.AssignTo(userID); err != nil {
		uc.logger.Warnw("equipment assignment refused", "id", cmd.ID, "user_id", userID, "error", err)
		return nil, domainError(err)
	}
	if err := uc.repo.Update(ctx, e); err != nil {
		uc.logger.Errorw("failed to assign equipment", "id", cmd.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("equipment assigned", "id", e.ID(), "user_id", userID)
	return dto.ToEquipmentDTO(e), nil
}

// ReleaseEquipmentUseCase puts equipment back in the pool.
type ReleaseEquipmentUseCase struct {
	repo   equipment.Repository
	logger logger.Interface
}

func NewReleaseEquipmentUseCase(repo equipment.Repository, logger logger.Interface) *ReleaseEquipmentUseCase {
	return &ReleaseEquipmentUseCase{repo: repo, logger: logger}
}

func (uc *ReleaseEquipmentUseCase) Execute(ctx context.Context, id string) (*dto.EquipmentDTO, error) {
	e, err := loadEquipment(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	previous := e.CurrentUserID()
	e.Release()
	if err := uc.repo.Update(ctx, e); err != nil {
		uc.logger.Errorw("failed to release equipment", "id", id, "error", err)
		return nil, err
	}

	uc.logger.Infow("equipment released", "id", id, "previous_user_id", previous)
	return dto.ToEquipmentDTO(e), nil
}
