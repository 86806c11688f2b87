package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/GithubESPI/dotationsFrontend/internal/domain/equipment"
	vo "github.com/GithubESPI/dotationsFrontend/internal/domain/equipment/valueobjects"
	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/persistence/mappers"
	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/persistence/models"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/db"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/errors"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

var allowedEquipmentSortByFields = map[string]bool{
	"created_at":    true,
	"updated_at":    true,
	"serial_number": true,
	"brand":         true,
	"model":         true,
	"type":          true,
	"status":        true,
	"internal_id":   true,
}

type EquipmentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.EquipmentMapper
	logger logger.Interface
}

func NewEquipmentRepository(db *gorm.DB, logger logger.Interface) equipment.Repository {
	return &EquipmentRepositoryImpl{
		db:     db,
		mapper: mappers.NewEquipmentMapper(),
		logger: logger,
	}
}

func (r *EquipmentRepositoryImpl) Create(ctx context.Context, e *equipment.Equipment) error {
	model, err := r.mapper.ToModel(e)
	if err != nil {
		return fmt.Errorf("failed to map equipment entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("equipment with this serial number already exists", model.SerialNumber)
		}
		r.logger.Errorw("failed to create equipment", "serial_number", model.SerialNumber, "error", err)
		return fmt.Errorf("failed to create equipment: %w", err)
	}

	r.logger.Infow("equipment created", "id", model.ID, "serial_number", model.SerialNumber)
	return nil
}

func (r *EquipmentRepositoryImpl) Update(ctx context.Context, e *equipment.Equipment) error {
	model, err := r.mapper.ToModel(e)
	if err != nil {
		return fmt.Errorf("failed to map equipment entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.EquipmentModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"jira_asset_id":        model.JiraAssetID,
			"internal_id":          model.InternalID,
			"type":                 model.Type,
			"brand":                model.Brand,
			"model":                model.Model,
			"serial_number":        model.SerialNumber,
			"imei":                 model.IMEI,
			"phone_line":           model.PhoneLine,
			"status":               model.Status,
			"current_user_id":      model.CurrentUserID,
			"location":             model.Location,
			"additional_softwares": model.AdditionalSoftwares,
			"jira_attributes":      model.JiraAttributes,
			"updated_at":           model.UpdatedAt,
		})

	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return errors.NewConflictError("equipment with this serial number already exists", model.SerialNumber)
		}
		r.logger.Errorw("failed to update equipment", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update equipment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("equipment not found", model.ID)
	}
	return nil
}

func (r *EquipmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).Delete(&models.EquipmentModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete equipment", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete equipment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("equipment not found", id)
	}
	r.logger.Infow("equipment deleted", "id", id)
	return nil
}

func (r *EquipmentRepositoryImpl) GetByID(ctx context.Context, id string) (*equipment.Equipment, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *EquipmentRepositoryImpl) GetBySerialNumber(ctx context.Context, serialNumber string) (*equipment.Equipment, error) {
	return r.first(ctx, "serial_number = ?", serialNumber)
}

func (r *EquipmentRepositoryImpl) first(ctx context.Context, cond string, arg any) (*equipment.Equipment, error) {
	var model models.EquipmentModel
	if err := db.GetTxFromContext(ctx, r.db).Where(cond, arg).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get equipment", "condition", cond, "value", arg, "error", err)
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *EquipmentRepositoryImpl) GetByIDs(ctx context.Context, ids []string) ([]*equipment.Equipment, error) {
	return r.findIn(ctx, "id", ids)
}

func (r *EquipmentRepositoryImpl) FindBySerialNumbers(ctx context.Context, serialNumbers []string) ([]*equipment.Equipment, error) {
	return r.findIn(ctx, "serial_number", serialNumbers)
}

func (r *EquipmentRepositoryImpl) FindByJiraAssetIDs(ctx context.Context, jiraAssetIDs []string) ([]*equipment.Equipment, error) {
	return r.findIn(ctx, "jira_asset_id", jiraAssetIDs)
}

func (r *EquipmentRepositoryImpl) findIn(ctx context.Context, column string, values []string) ([]*equipment.Equipment, error) {
	if len(values) == 0 {
		return []*equipment.Equipment{}, nil
	}

	var list []*models.EquipmentModel
	if err := db.GetTxFromContext(ctx, r.db).Where(column+" IN ?", values).Order("created_at ASC").Find(&list).Error; err != nil {
		r.logger.Errorw("failed to find equipment", "column", column, "count", len(values), "error", err)
		return nil, fmt.Errorf("failed to find equipment by %s: %w", column, err)
	}
	return r.mapper.ToDomainList(list)
}

func (r *EquipmentRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]*equipment.Equipment, error) {
	var list []*models.EquipmentModel
	if err := db.GetTxFromContext(ctx, r.db).Where("current_user_id = ?", userID).Order("updated_at DESC").Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list equipment by user", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list equipment by user: %w", err)
	}
	return r.mapper.ToDomainList(list)
}

func (r *EquipmentRepositoryImpl) List(ctx context.Context, filter equipment.Filter) ([]*equipment.Equipment, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.EquipmentModel{})

	query = likeAny(query, filter.Query, "serial_number", "brand", "model", "internal_id")
	if filter.Type != nil {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Brand != "" {
		query = query.Where("LOWER(brand) = ?", toLower(filter.Brand))
	}
	if filter.Location != "" {
		query = likeAny(query, filter.Location, "location")
	}
	if filter.CurrentUserID != "" {
		query = query.Where("current_user_id = ?", filter.CurrentUserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count equipment", "error", err)
		return nil, 0, fmt.Errorf("failed to count equipment: %w", err)
	}

	query = applyOrder(query, allowedEquipmentSortByFields, filter.SortBy, filter.SortOrder)
	query = applyPage(query, filter.Page, filter.PageSize)

	var list []*models.EquipmentModel
	if err := query.Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list equipment", "error", err)
		return nil, 0, fmt.Errorf("failed to list equipment: %w", err)
	}

	entities, err := r.mapper.ToDomainList(list)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *EquipmentRepositoryImpl) Stats(ctx context.Context) (*equipment.Stats, error) {
	base := func() *gorm.DB {
		return db.GetTxFromContext(ctx, r.db).Model(&models.EquipmentModel{})
	}

	stats := &equipment.Stats{
		ByStatus: make(map[vo.EquipmentStatus]int64),
		ByType:   []equipment.Count{},
		ByBrand:  []equipment.Count{},
	}
	if err := base().Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count equipment: %w", err)
	}

	byStatus, err := countBy(base(), "status")
	if err != nil {
		return nil, fmt.Errorf("failed to count equipment by status: %w", err)
	}
	for _, s := range vo.AllEquipmentStatuses() {
		stats.ByStatus[s] = 0
	}
	for _, row := range byStatus {
		if row.Grp != nil {
			stats.ByStatus[vo.EquipmentStatus(*row.Grp)] = row.Count
		}
	}

	byType, err := countBy(base(), "type")
	if err != nil {
		return nil, fmt.Errorf("failed to count equipment by type: %w", err)
	}
	for _, row := range byType {
		stats.ByType = append(stats.ByType, equipment.Count{Key: derefGroup(row.Grp), Count: row.Count})
	}

	byBrand, err := countBy(base(), "brand")
	if err != nil {
		return nil, fmt.Errorf("failed to count equipment by brand: %w", err)
	}
	for _, row := range byBrand {
		stats.ByBrand = append(stats.ByBrand, equipment.Count{Key: derefGroup(row.Grp), Count: row.Count})
	}

	return stats, nil
}

func derefGroup(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
