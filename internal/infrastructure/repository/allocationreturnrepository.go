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

type AllocationReturnRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AllocationMapper
	logger logger.Interface
}

func NewAllocationReturnRepository(db *gorm.DB, logger logger.Interface) allocation.ReturnRepository {
	return &AllocationReturnRepositoryImpl{
		db:     db,
		mapper: mappers.NewAllocationMapper(),
		logger: logger,
	}
}

func (r *AllocationReturnRepositoryImpl) Create(ctx context.Context, ret *allocation.Return) error {
	model, err := r.mapper.ReturnToModel(ret)
	if err != nil {
		return fmt.Errorf("failed to map return entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("return reference already exists", model.Reference)
		}
		r.logger.Errorw("failed to create return", "allocation_id", model.AllocationID, "error", err)
		return fmt.Errorf("failed to create return: %w", err)
	}

	r.logger.Infow("return recorded", "id", model.ID, "allocation_id", model.AllocationID, "items", model.ItemCount)
	return nil
}

func (r *AllocationReturnRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]*allocation.Return, error) {
	return r.list(ctx, "user_id = ?", userID)
}

func (r *AllocationReturnRepositoryImpl) ListByAllocation(ctx context.Context, allocationID string) ([]*allocation.Return, error) {
	return r.list(ctx, "allocation_id = ?", allocationID)
}

func (r *AllocationReturnRepositoryImpl) list(ctx context.Context, cond string, arg any) ([]*allocation.Return, error) {
	var list []*models.AllocationReturnModel
	if err := db.GetTxFromContext(ctx, r.db).Where(cond, arg).Order("return_date DESC").Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list returns", "condition", cond, "value", arg, "error", err)
		return nil, fmt.Errorf("failed to list returns: %w", err)
	}

	out := make([]*allocation.Return, 0, len(list))
	for _, model := range list {
		ret, err := r.mapper.ReturnToDomain(model)
		if err != nil {
			return nil, err
		}
		out = append(out, ret)
	}
	return out, nil
}

// Stats counts returns and their items. Conditions live inside the items JSON,
// so they are tallied in Go rather than grouped in SQL.
func (r *AllocationReturnRepositoryImpl) Stats(ctx context.Context) (*allocation.ReturnStats, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var list []*models.AllocationReturnModel
	if err := tx.Model(&models.AllocationReturnModel{}).Find(&list).Error; err != nil {
		r.logger.Errorw("failed to load returns for stats", "error", err)
		return nil, fmt.Errorf("failed to load returns: %w", err)
	}

	stats := &allocation.ReturnStats{
		Total:       int64(len(list)),
		ByCondition: make(map[vo.Condition]int64),
	}
	for _, c := range vo.AllConditions() {
		stats.ByCondition[c] = 0
	}

	monthStart := biztime.StartOfMonthUTC(biztime.NowUTC())
	for _, model := range list {
		ret, err := r.mapper.ReturnToDomain(model)
		if err != nil {
			return nil, err
		}
		if !ret.ReturnDate().Before(monthStart) {
			stats.ThisMonth++
		}
		for _, item := range ret.Items() {
			stats.ItemsReturned++
			stats.ByCondition[item.Condition]++
		}
	}
	return stats, nil
}
