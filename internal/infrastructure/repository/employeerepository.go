package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/GithubESPI/dotationsFrontend/internal/domain/employee"
	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/persistence/mappers"
	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/persistence/models"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/db"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/errors"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

var allowedEmployeeSortByFields = map[string]bool{
	"created_at":      true,
	"updated_at":      true,
	"display_name":    true,
	"email":           true,
	"department":      true,
	"office_location": true,
	"last_sync":       true,
}

type EmployeeRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.EmployeeMapper
	logger logger.Interface
}

func NewEmployeeRepository(db *gorm.DB, logger logger.Interface) employee.Repository {
	return &EmployeeRepositoryImpl{
		db:     db,
		mapper: mappers.NewEmployeeMapper(),
		logger: logger,
	}
}

func (r *EmployeeRepositoryImpl) Create(ctx context.Context, e *employee.Employee) error {
	model, err := r.mapper.ToModel(e)
	if err != nil {
		return fmt.Errorf("failed to map employee entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("employee already exists", model.Office365ID)
		}
		r.logger.Errorw("failed to create employee", "office365_id", model.Office365ID, "error", err)
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepositoryImpl) Update(ctx context.Context, e *employee.Employee) error {
	model, err := r.mapper.ToModel(e)
	if err != nil {
		return fmt.Errorf("failed to map employee entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.EmployeeModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"email":           model.Email,
			"display_name":    model.DisplayName,
			"department":      model.Department,
			"office_location": model.OfficeLocation,
			"profile":         model.Profile,
			"is_active":       model.IsActive,
			"last_sync":       model.LastSync,
			"updated_at":      model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update employee", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update employee: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("employee not found", model.ID)
	}
	return nil
}

func (r *EmployeeRepositoryImpl) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *EmployeeRepositoryImpl) GetByOffice365ID(ctx context.Context, office365ID string) (*employee.Employee, error) {
	return r.first(ctx, "office365_id = ?", office365ID)
}

func (r *EmployeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return r.first(ctx, "email = ?", strings.ToLower(strings.TrimSpace(email)))
}

func (r *EmployeeRepositoryImpl) first(ctx context.Context, cond string, arg any) (*employee.Employee, error) {
	var model models.EmployeeModel
	if err := db.GetTxFromContext(ctx, r.db).Where(cond, arg).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get employee", "condition", cond, "value", arg, "error", err)
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *EmployeeRepositoryImpl) ListActive(ctx context.Context) ([]*employee.Employee, error) {
	var list []*models.EmployeeModel
	if err := db.GetTxFromContext(ctx, r.db).Where("is_active = ?", true).Order("display_name ASC").Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list active employees", "error", err)
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	return r.mapper.ToDomainList(list)
}

func (r *EmployeeRepositoryImpl) List(ctx context.Context, filter employee.Filter) ([]*employee.Employee, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.EmployeeModel{})

	query = likeAny(query, filter.Query, "display_name", "email", "department")
	if filter.Department != "" {
		query = query.Where("LOWER(department) = ?", toLower(filter.Department))
	}
	if filter.OfficeLocation != "" {
		query = likeAny(query, filter.OfficeLocation, "office_location")
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count employees", "error", err)
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query = applyOrder(query, allowedEmployeeSortByFields, filter.SortBy, filter.SortOrder)
	query = applyPage(query, filter.Page, filter.PageSize)

	var list []*models.EmployeeModel
	if err := query.Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list employees", "error", err)
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}

	entities, err := r.mapper.ToDomainList(list)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *EmployeeRepositoryImpl) Stats(ctx context.Context) (*employee.Stats, error) {
	base := func() *gorm.DB {
		return db.GetTxFromContext(ctx, r.db).Model(&models.EmployeeModel{})
	}

	stats := &employee.Stats{ByDepartment: []employee.DepartmentCount{}}
	if err := base().Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}
	if err := base().Where("is_active = ?", true).Count(&stats.Active).Error; err != nil {
		return nil, fmt.Errorf("failed to count active employees: %w", err)
	}
	stats.Inactive = stats.Total - stats.Active

	rows, err := countBy(base().Where("is_active = ?", true), "department")
	if err != nil {
		return nil, fmt.Errorf("failed to count employees by department: %w", err)
	}
	for _, row := range rows {
		stats.ByDepartment = append(stats.ByDepartment, employee.DepartmentCount{Department: row.Grp, Count: row.Count})
	}
	return stats, nil
}
