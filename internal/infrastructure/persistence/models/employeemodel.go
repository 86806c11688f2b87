package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/GithubESPI/dotationsFrontend/internal/shared/constants"
)

type EmployeeModel struct {
	ID             string  `gorm:"primaryKey;size:36"`
	Office365ID    string  `gorm:"column:office365_id;size:64;not null;uniqueIndex:idx_employee_office365_id"`
	Email          string  `gorm:"size:200;not null;index:idx_employee_email"`
	DisplayName    string  `gorm:"size:200;not null"`
	Department     *string `gorm:"size:150;index:idx_employee_department"`
	OfficeLocation string  `gorm:"size:150;index:idx_employee_office_location"`
	Profile        datatypes.JSON
	IsActive       bool `gorm:"not null;default:true;index:idx_employee_is_active"`
	LastSync       *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (EmployeeModel) TableName() string {
	return constants.TableEmployees
}
