package usecases

import (
	"context"

	"github.com/GithubESPI/dotationsFrontend/internal/application/equipment/dto"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/equipment"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/errors"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

type GetEquipmentUseCase struct {
	repo   equipment.Repository
	logger logger.Interface
}

func NewGetEquipmentUseCase(repo equipment.Repository, logger logger.Interface) *GetEquipmentUseCase {
	return &GetEquipmentUseCase{repo: repo, logger: logger}
}

func (uc *GetEquipmentUseCase) Execute(ctx context.Context, id string) (*dto.EquipmentDTO, error) {
	e, err := loadEquipment(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	return dto.ToEquipmentDTO(e), nil
}

type GetUserEquipmentUseCase struct {
	repo   equipment.Repository
	logger logger.Interface
}

func NewGetUserEquipmentUseCase(repo equipment.Repository, logger logger.Interface) *GetUserEquipmentUseCase {
	return &GetUserEquipmentUseCase{repo: repo, logger: logger}
}

func (uc *GetUserEquipmentUseCase) Execute(ctx context.Context, userID string) ([]*dto.EquipmentDTO, error) {
	if userID == "" {
		return nil, errors.NewValidationError("user id is required")
	}
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list user equipment", "user_id", userID, "error", err)
		return nil, err
	}
	return dto.ToEquipmentDTOs(list), nil
}

type GetEquipmentStatsUseCase struct {
	repo   equipment.Repository
	logger logger.Interface
}

func NewGetEquipmentStatsUseCase(repo equipment.Repository, logger logger.Interface) *GetEquipmentStatsUseCase {
	return &GetEquipmentStatsUseCase{repo: repo, logger: logger}
}

func (uc *GetEquipmentStatsUseCase) Execute(ctx context.Context) (*dto.StatsDTO, error) {
	stats, err := uc.repo.Stats(ctx)
	if err != nil {
		uc.logger.Errorw("failed to compute equipment stats", "error", err)
		return nil, err
	}
	return dto.ToStatsDTO(stats), nil
}
