package migration

import (
	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists the models managed by GORM AutoMigrate in development.
func AutoMigrateModels() []any {
	return []any{
		&models.EquipmentModel{},
		&models.AllocationModel{},
		&models.AllocationEquipmentModel{},
		&models.AllocationReturnModel{},
		&models.EmployeeModel{},
	}
}
