package http

import (
	"gorm.io/gorm"

	"github.com/GithubESPI/dotationsFrontend/internal/domain/allocation"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/employee"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/equipment"
	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/repository"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	equipmentRepo  equipment.Repository
	allocationRepo allocation.Repository
	returnRepo     allocation.ReturnRepository
	employeeRepo   employee.Repository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		equipmentRepo:  repository.NewEquipmentRepository(db, log),
		allocationRepo: repository.NewAllocationRepository(db, log),
		returnRepo:     repository.NewAllocationReturnRepository(db, log),
		employeeRepo:   repository.NewEmployeeRepository(db, log),
	}
}
