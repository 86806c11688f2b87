package usecases

import (
	"context"
	"strings"

	"github.com/GithubESPI/dotationsFrontend/internal/application/equipment/dto"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/equipment"
	vo "github.com/GithubESPI/dotationsFrontend/internal/domain/equipment/valueobjects"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/errors"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

type CreateEquipmentCommand struct {
	JiraAssetID         string
	InternalID          string
	Type                string
	Brand               string
	Model               string
	SerialNumber        string
	IMEI                string
	PhoneLine           string
	Status              string
	CurrentUserID       string
	Location            string
	AdditionalSoftwares []string
}

type CreateEquipmentUseCase struct {
	repo   equipment.Repository
	logger logger.Interface
}

func NewCreateEquipmentUseCase(repo equipment.Repository, logger logger.Interface) *CreateEquipmentUseCase {
	return &CreateEquipmentUseCase{repo: repo, logger: logger}
}

func (uc *CreateEquipmentUseCase) Execute(ctx context.Context, cmd CreateEquipmentCommand) (*dto.EquipmentDTO, error) {
	uc.logger.Infow("executing create equipment use case", "serial_number", cmd.SerialNumber)

	equipmentType, err := vo.NewEquipmentType(cmd.Type)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	serial := strings.TrimSpace(cmd.SerialNumber)
	if serial != "" {
		existing, err := uc.repo.GetBySerialNumber(ctx, serial)
		if err != nil {
			uc.logger.Errorw("failed to check serial number", "serial_number", serial, "error", err)
			return nil, err
		}
		if existing != nil {
			return nil, errors.NewConflictError("equipment with this serial number already exists", serial)
		}
	}

	e, err := equipment.NewEquipment(equipmentType, cmd.Brand, cmd.Model, serial)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	details := equipment.Details{AdditionalSoftwares: cmd.AdditionalSoftwares}
	if cmd.IMEI != "" {
		details.IMEI = &cmd.IMEI
	}
	if cmd.PhoneLine != "" {
		details.PhoneLine = &cmd.PhoneLine
	}
	if cmd.Location != "" {
		details.Location = &cmd.Location
	}
	if err := e.UpdateDetails(details); err != nil {
		return nil, domainError(err)
	}
	e.FillInternalID(cmd.InternalID)
	if cmd.JiraAssetID != "" {
		e.LinkJiraAsset(cmd.JiraAssetID, nil)
	}

	if err := applyInitialStatus(e, cmd.Status, cmd.CurrentUserID); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, e); err != nil {
		uc.logger.Errorw("failed to create equipment", "serial_number", serial, "error", err)
		return nil, err
	}

	uc.logger.Infow("equipment created", "id", e.ID(), "serial_number", serial, "status", e.Status())
	return dto.ToEquipmentDTO(e), nil
}

// applyInitialStatus assigns the equipment when a user is given, otherwise applies
// the requested status. The default is DISPONIBLE.
func applyInitialStatus(e *equipment.Equipment, status, userID string) error {
	if userID != "" {
		return domainError(e.AssignTo(userID))
	}
	if status == "" {
		return nil
	}
	st, err := vo.NewEquipmentStatus(status)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}
	return domainError(e.SetStatus(st))
}
