package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/GithubESPI/dotationsFrontend/internal/domain/allocation"
	vo "github.com/GithubESPI/dotationsFrontend/internal/domain/allocation/valueobjects"
	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/persistence/mappers"
	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/persistence/models"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/biztime"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/db"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/errors"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

var allowedAllocationSortByFields = map[string]bool{
	"created_at":    true,
	"updated_at":    true,
	"delivery_date": true,
	"reference":     true,
	"status":        true,
	"user_name":     true,
}

type AllocationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AllocationMapper
	logger logger.Interface
}

func NewAllocationRepository(db *gorm.DB, logger logger.Interface) allocation.Repository {
	return &AllocationRepositoryImpl{
		db:     db,
		mapper: mappers.NewAllocationMapper(),
		logger: logger,
	}
}

// Create stores the allocation together with its equipment links.
// Callers that also update equipment should run it inside a transaction.
func (r *AllocationRepositoryImpl) Create(ctx context.Context, a *allocation.Allocation) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		return fmt.Errorf("failed to map allocation entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("allocation reference already exists", model.Reference)
		}
		r.logger.Errorw("failed to create allocation", "reference", model.Reference, "error", err)
		return fmt.Errorf("failed to create allocation: %w", err)
	}

	if links := r.mapper.ToEquipmentLinks(a); len(links) > 0 {
		if err := tx.Create(&links).Error; err != nil {
			r.logger.Errorw("failed to create allocation equipment links", "id", model.ID, "error", err)
			return fmt.Errorf("failed to create allocation equipment links: %w", err)
		}
	}

	r.logger.Infow("allocation created", "id", model.ID, "reference", model.Reference, "items", len(a.Items()))
	return nil
}

func (r *AllocationRepositoryImpl) Update(ctx context.Context, a *allocation.Allocation) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		return fmt.Errorf("failed to map allocation entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.AllocationModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"items":               model.Items,
			"status":              model.Status,
			"accessories":         model.Accessories,
			"additional_software": model.AdditionalSoftware,
			"standard_software":   model.StandardSoftware,
			"services":            model.Services,
			"notes":               model.Notes,
			"signature":           model.Signature,
			"signed_at":           model.SignedAt,
			"updated_at":          model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update allocation", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update allocation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("allocation not found", model.ID)
	}

	for _, link := range r.mapper.ToEquipmentLinks(a) {
		if err := tx.Model(&models.AllocationEquipmentModel{}).
			Where("allocation_id = ? AND equipment_id = ?", link.AllocationID, link.EquipmentID).
			Update("returned", link.Returned).Error; err != nil {
			r.logger.Errorw("failed to update allocation equipment link", "id", model.ID, "equipment_id", link.EquipmentID, "error", err)
			return fmt.Errorf("failed to update allocation equipment link: %w", err)
		}
	}

	return nil
}

func (r *AllocationRepositoryImpl) GetByID(ctx context.Context, id string) (*allocation.Allocation, error) {
	var model models.AllocationModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get allocation", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get allocation: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *AllocationRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]*allocation.Allocation, error) {
	var list []*models.AllocationModel
	if err := db.GetTxFromContext(ctx, r.db).Where("user_id = ?", userID).Order("created_at DESC").Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list allocations by user", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list allocations by user: %w", err)
	}
	return r.mapper.ToDomainList(list)
}

func (r *AllocationRepositoryImpl) ListAll(ctx context.Context) ([]*allocation.Allocation, error) {
	var list []*models.AllocationModel
	if err := db.GetTxFromContext(ctx, r.db).Order("created_at DESC").Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list allocations", "error", err)
		return nil, fmt.Errorf("failed to list allocations: %w", err)
	}
	return r.mapper.ToDomainList(list)
}

func (r *AllocationRepositoryImpl) FindActiveByEquipmentIDs(ctx context.Context, equipmentIDs []string) ([]*allocation.Allocation, error) {
	if len(equipmentIDs) == 0 {
		return []*allocation.Allocation{}, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)
	held := tx.Model(&models.AllocationEquipmentModel{}).
		Select("allocation_id").
		Where("equipment_id IN ? AND returned = ?", equipmentIDs, false)

	var list []*models.AllocationModel
	err := tx.Where("id IN (?)", held).
		Where("status IN ?", []string{vo.StatusInProgress.String(), vo.StatusOverdue.String()}).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		r.logger.Errorw("failed to find active allocations by equipment", "count", len(equipmentIDs), "error", err)
		return nil, fmt.Errorf("failed to find active allocations by equipment: %w", err)
	}
	return r.mapper.ToDomainList(list)
}

func (r *AllocationRepositoryImpl) List(ctx context.Context, filter allocation.Filter) ([]*allocation.Allocation, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.AllocationModel{})

	query = likeAny(query, filter.Query, "reference", "user_name", "user_email")
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.StartDate != nil {
		query = query.Where("delivery_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("delivery_date <= ?", *filter.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count allocations", "error", err)
		return nil, 0, fmt.Errorf("failed to count allocations: %w", err)
	}

	query = applyOrder(query, allowedAllocationSortByFields, filter.SortBy, filter.SortOrder)
	query = applyPage(query, filter.Page, filter.PageSize)

	var list []*models.AllocationModel
	if err := query.Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list allocations", "error", err)
		return nil, 0, fmt.Errorf("failed to list allocations: %w", err)
	}

	entities, err := r.mapper.ToDomainList(list)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *AllocationRepositoryImpl) Stats(ctx context.Context) (*allocation.Stats, error) {
	base := func() *gorm.DB {
		return db.GetTxFromContext(ctx, r.db).Model(&models.AllocationModel{})
	}

	stats := &allocation.Stats{ByStatus: make(map[vo.AllocationStatus]int64)}
	if err := base().Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count allocations: %w", err)
	}
	if err := base().Where("signed_at IS NOT NULL").Count(&stats.Signed).Error; err != nil {
		return nil, fmt.Errorf("failed to count signed allocations: %w", err)
	}
	if err := base().Where("created_at >= ?", biztime.StartOfMonthUTC(biztime.NowUTC())).Count(&stats.ThisMonth).Error; err != nil {
		return nil, fmt.Errorf("failed to count allocations of the month: %w", err)
	}

	rows, err := countBy(base(), "status")
	if err != nil {
		return nil, fmt.Errorf("failed to count allocations by status: %w", err)
	}
	for _, s := range vo.AllAllocationStatuses() {
		stats.ByStatus[s] = 0
	}
	for _, row := range rows {
		if row.Grp != nil {
			stats.ByStatus[vo.AllocationStatus(*row.Grp)] = row.Count
		}
	}
	return stats, nil
}
