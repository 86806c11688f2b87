package usecases

import (
	"context"

	"github.com/GithubESPI/dotationsFrontend/internal/domain/equipment"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/errors"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

// DeleteEquipmentUseCase removes equipment that is not currently assigned.
type DeleteEquipmentUseCase struct {
	repo   equipment.Repository
	logger logger.Interface
}

func NewDeleteEquipmentUseCase(repo equipment.Repository, logger logger.Interface) *DeleteEquipmentUseCase {
	return &DeleteEquipmentUseCase{repo: repo, logger: logger}
}

func (uc *DeleteEquipmentUseCase) Execute(ctx context.Context, id string) error {
	e, err := loadEquipment(ctx, uc.repo, id)
	if err != nil {
		return err
	}
	if err := e.CanDelete(); err != nil {
		return errors.NewConflictError("assigned equipment cannot be deleted", id)
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete equipment", "id", id, "error", err)
		return err
	}
	uc.logger.Infow("equipment deleted", "id", id, "serial_number", e.SerialNumber())
	return nil
}
