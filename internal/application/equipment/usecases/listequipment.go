package usecases

import (
	"context"

	"github.com/GithubESPI/dotationsFrontend/internal/application/equipment/dto"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/equipment"
	vo "github.com/GithubESPI/dotationsFrontend/internal/domain/equipment/valueobjects"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/errors"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

// ListEquipmentQuery filters the inventory. Page and Limit at zero return every row.
type ListEquipmentQuery struct {
	Query         string
	Type          string
	Status        string
	Brand         string
	Location      string
	CurrentUserID string
	Page          int
	Limit         int
	SortBy        string
	SortOrder     string
}

type ListEquipmentUseCase struct {
	repo   equipment.Repository
	logger logger.Interface
}

func NewListEquipmentUseCase(repo equipment.Repository, logger logger.Interface) *ListEquipmentUseCase {
	return &ListEquipmentUseCase{repo: repo, logger: logger}
}

func (uc *ListEquipmentUseCase) Execute(ctx context.Context, query ListEquipmentQuery) (*dto.ListEquipmentDTO, error) {
	filter := equipment.Filter{
		Query:         query.Query,
		Brand:         query.Brand,
		Location:      query.Location,
		CurrentUserID: query.CurrentUserID,
		Page:          query.Page,
		PageSize:      query.Limit,
		SortBy:        query.SortBy,
		SortOrder:     query.SortOrder,
	}
	if query.Type != "" {
		t, err := vo.NewEquipmentType(query.Type)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Type = &t
	}
	if query.Status != "" {
		st, err := vo.NewEquipmentStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &st
	}

	list, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list equipment", "error", err)
		return nil, err
	}

	return &dto.ListEquipmentDTO{
		Items: dto.ToEquipmentDTOs(list),
		Total: total,
		Page:  query.Page,
		Limit: query.Limit,
	}, nil
}
