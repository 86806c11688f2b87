package allocation

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/GithubESPI/dotationsFrontend/internal/domain/allocation/valueobjects"
)

// Item is one equipment line of an allocation. Descriptive fields are a copy taken
// at delivery time so the allocation stays readable if the inventory changes.
type Item struct {
	EquipmentID   string       `json:"equipmentId"`
	InternalID    string       `json:"internalId,omitempty"`
	Type          string       `json:"type,omitempty"`
	Brand         string       `json:"brand,omitempty"`
	Model         string       `json:"model,omitempty"`
	SerialNumber  string       `json:"serialNumber,omitempty"`
	JiraAssetID   string       `json:"jiraAssetId,omitempty"`
	DeliveredDate *time.Time   `json:"deliveredDate,omitempty"`
	Condition     vo.Condition `json:"condition"`
	ReturnedAt    *time.Time   `json:"returnedAt,omitempty"`
}

// ItemRequest is an unresolved line as submitted by a client: it names an existing
// equipment or carries enough data to find or create one.
type ItemRequest struct {
	EquipmentID   string
	InternalID    string
	Type          string
	Brand         string
	Model         string
	SerialNumber  string
	JiraAssetID   string
	DeliveredDate *time.Time
	Condition     string
}

// Validate checks that the line references an equipment id or a non-blank serial number.
func (r ItemRequest) Validate() error {
	if r.EquipmentID == "" && strings.TrimSpace(r.SerialNumber) == "" {
		return fmt.Errorf("an equipment id or a serial number is required")
	}
	if _, err := vo.NewCondition(r.Condition); err != nil {
		return err
	}
	return nil
}

func (i Item) IsReturned() bool {
	return i.ReturnedAt != nil
}
