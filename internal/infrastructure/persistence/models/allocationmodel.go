package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/GithubESPI/dotationsFrontend/internal/shared/constants"
)

// AllocationModel stores an allocation. Items and the signature are JSON documents;
// no foreign keys are declared, relationships are enforced by the use cases.
type AllocationModel struct {
	ID                 string `gorm:"primaryKey;size:36"`
	Reference          string `gorm:"size:32;not null;uniqueIndex:idx_allocation_reference"`
	UserID             string `gorm:"size:36;not null;index:idx_allocation_user_id"`
	UserName           string `gorm:"size:200"`
	UserEmail          string `gorm:"size:200"`
	Items              datatypes.JSON
	DeliveryDate       time.Time `gorm:"not null;index:idx_allocation_delivery_date"`
	Status             string    `gorm:"size:20;not null;index:idx_allocation_status"`
	Accessories        datatypes.JSON
	AdditionalSoftware datatypes.JSON
	StandardSoftware   datatypes.JSON
	Services           datatypes.JSON
	Notes              string `gorm:"type:text"`
	Signature          datatypes.JSON
	SignedAt           *time.Time
	CreatedBy          string `gorm:"size:64"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (AllocationModel) TableName() string {
	return constants.TableAllocations
}

// AllocationEquipmentModel indexes which equipment an allocation holds, so that
// active allocations can be found by equipment without scanning JSON.
type AllocationEquipmentModel struct {
	AllocationID string `gorm:"primaryKey;size:36"`
	EquipmentID  string `gorm:"primaryKey;size:36;index:idx_allocation_equipment_equipment_id"`
	Returned     bool   `gorm:"not null;default:false"`
}

func (AllocationEquipmentModel) TableName() string {
	return constants.TableAllocationEquipments
}

type AllocationReturnModel struct {
	ID              string `gorm:"primaryKey;size:36"`
	Reference       string `gorm:"size:32;not null;uniqueIndex:idx_return_reference"`
	AllocationID    string `gorm:"size:36;not null;index:idx_return_allocation_id"`
	UserID          string `gorm:"size:36;not null;index:idx_return_user_id"`
	Items           datatypes.JSON
	ItemCount       int       `gorm:"not null;default:0"`
	ReturnDate      time.Time `gorm:"not null"`
	RemovedSoftware datatypes.JSON
	ProcessedBy     string `gorm:"size:64"`
	Notes           string `gorm:"type:text"`
	CreatedAt       time.Time
}

func (AllocationReturnModel) TableName() string {
	return constants.TableAllocationReturns
}
