package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/GithubESPI/dotationsFrontend/internal/shared/constants"
)

// EquipmentModel is the persistence model of the equipment inventory.
type EquipmentModel struct {
	ID                  string  `gorm:"primaryKey;size:36"`
	JiraAssetID         *string `gorm:"size:64;index:idx_equipment_jira_asset_id"`
	InternalID          string  `gorm:"size:64;index:idx_equipment_internal_id"`
	Type                string  `gorm:"size:32;not null;index:idx_equipment_type"`
	Brand               string  `gorm:"size:100;not null;index:idx_equipment_brand"`
	Model               string  `gorm:"size:150;not null"`
	SerialNumber        string  `gorm:"size:100;not null;uniqueIndex:idx_equipment_serial_number"`
	IMEI                string  `gorm:"size:32"`
	PhoneLine           string  `gorm:"size:32"`
	Status              string  `gorm:"size:32;not null;default:DISPONIBLE;index:idx_equipment_status"`
	CurrentUserID       *string `gorm:"size:36;index:idx_equipment_current_user_id"`
	Location            string  `gorm:"size:150;index:idx_equipment_location"`
	AdditionalSoftwares datatypes.JSON
	JiraAttributes      datatypes.JSON
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (EquipmentModel) TableName() string {
	return constants.TableEquipments
}
