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

// UpdateEquipmentCommand is a partial update; nil fields are left unchanged.
type UpdateEquipmentCommand struct {
	ID                  string
	JiraAssetID         *string
	InternalID          *string
	Type                *string
	Brand               *string
	Model               *string
	SerialNumber        *string
	IMEI                *string
	PhoneLine           *string
	Status              *string
	Location            *string
	AdditionalSoftwares []string
}

type UpdateEquipmentUseCase struct {
	repo   equipment.Repository
	logger logger.Interface
}

func NewUpdateEquipmentUseCase(repo equipment.Repository, logger logger.Interface) *UpdateEquipmentUseCase {
	return &UpdateEquipmentUseCase{repo: repo, logger: logger}
}

func (uc *UpdateEquipmentUseCase) Execute(ctx context.Context, cmd UpdateEquipmentCommand) (*dto.EquipmentDTO, error) {
	uc.logger.Infow("executing update equipment use case", "id", cmd.ID)

	e, err := loadEquipment(ctx, uc.repo, cmd.ID)
	if err != nil {
		return nil, err
	}

	details := equipment.Details{
		InternalID:          cmd.InternalID,
		Brand:               cmd.Brand,
		Model:               cmd.Model,
		IMEI:                cmd.IMEI,
		PhoneLine:           cmd.PhoneLine,
		Location:            cmd.Location,
		AdditionalSoftwares: cmd.AdditionalSoftwares,
	}
	if cmd.Type != nil {
		t, err := vo.NewEquipmentType(*cmd.Type)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		details.Type = &t
	}
	if cmd.SerialNumber != nil {
		serial := strings.TrimSpace(*cmd.SerialNumber)
		if serial != e.SerialNumber() && serial != "" {
			other, err := uc.repo.GetBySerialNumber(ctx, serial)
			if err != nil {
				return nil, err
			}
			if other != nil && other.ID() != e.ID() {
				return nil, errors.NewConflictError("equipment with this serial number already exists", serial)
			}
		}
		details.SerialNumber = &serial
	}

	if err := e.UpdateDetails(details); err != nil {
		return nil, domainError(err)
	}
	if cmd.JiraAssetID != nil {
		e.LinkJiraAsset(strings.TrimSpace(*cmd.JiraAssetID), nil)
	}
	if cmd.Status != nil && *cmd.Status != e.Status().String() {
		st, err := vo.NewEquipmentStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := e.SetStatus(st); err != nil {
			return nil, domainError(err)
		}
	}

	if err := uc.repo.Update(ctx, e); err != nil {
		uc.logger.Errorw("failed to update equipment", "id", cmd.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("equipment updated", "id", e.ID())
	return dto.ToEquipmentDTO(e), nil
}
