package usecases

import (
	"context"

	"github.com/GithubESPI/dotationsFrontend/internal/application/equipment/dto"
)

type CreateEquipmentExecutor interface {
	Execute(ctx context.Context, cmd CreateEquipmentCommand) (*dto.EquipmentDTO, error)
}

type UpdateEquipmentExecutor interface {
	Execute(ctx context.Context, cmd UpdateEquipmentCommand) (*dto.EquipmentDTO, error)
}

type DeleteEquipmentExecutor interface {
	Execute(ctx context.Context, id string) error
}

type GetEquipmentExecutor interface {
	Execute(ctx context.Context, id string) (*dto.EquipmentDTO, error)
}

type ListEquipmentExecutor interface {
	Execute(ctx context.Context, query ListEquipmentQuery) (*dto.ListEquipmentDTO, error)
}

type GetEquipmentStatsExecutor interface {
	Execute(ctx context.Context) (*dto.StatsDTO, error)
}

type GetUserEquipmentExecutor interface {
	Execute(ctx context.Context, userID string) ([]*dto.EquipmentDTO, error)
}

type AssignEquipmentExecutor interface {
	Execute(ctx context.Context, cmd AssignEquipmentCommand) (*dto.EquipmentDTO, error)
}

type ReleaseEquipmentExecutor interface {
	Execute(ctx context.Context, id string) (*dto.EquipmentDTO, error)
}
