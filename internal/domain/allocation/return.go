package allocation

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	vo "github.com/GithubESPI/dotationsFrontend/internal/domain/allocation/valueobjects"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/biztime"
)

// ReturnedItem is one equipment handed back.
type ReturnedItem struct {
	EquipmentID  string       `json:"equipmentId"`
	InternalID   string       `json:"internalId,omitempty"`
	SerialNumber string       `json:"serialNumber,omitempty"`
	Condition    vo.Condition `json:"condition"`
	Notes        string       `json:"notes,omitempty"`
	Photos       []string     `json:"photos,omitempty"`
}

// Return (restitution) records equipment given back for an allocation.
type Return struct {
	id              string
	reference       string
	allocationID    string
	userID          string
	items           []ReturnedItem
	returnDate      time.Time
	removedSoftware []string
	processedBy     string
	notes           string
	createdAt       time.Time
}

func NewReturn(
	reference string,
	allocationID, userID string,
	items []ReturnedItem,
	returnDate time.Time,
	removedSoftware []string,
	processedBy string,
	notes string,
) (*Return, error) {
	if reference == "" {
		return nil, fmt.Errorf("return reference is required")
	}
	if allocationID == "" {
		return nil, fmt.Errorf("allocation ID is required")
	}
	if len(items) == 0 {
		return nil, ErrNoEquipment
	}
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item.EquipmentID == "" {
			return nil, fmt.Errorf("returned item has no equipment id")
		}
		if !item.Condition.IsValid() {
			return nil, fmt.Errorf("invalid condition: %s", item.Condition)
		}
		if seen[item.EquipmentID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEquipment, item.EquipmentID)
		}
		seen[item.EquipmentID] = true
	}

	now := biztime.NowUTC()
	if returnDate.IsZero() {
		returnDate = now
	}
	if removedSoftware == nil {
		removedSoftware = []string{}
	}

	return &Return{
		id:              uuid.NewString(),
		reference:       reference,
		allocationID:    allocationID,
		userID:          userID,
		items:           items,
		returnDate:      returnDate,
		removedSoftware: removedSoftware,
		processedBy:     processedBy,
		notes:           strings.TrimSpace(notes),
		createdAt:       now,
	}, nil
}

func ReconstructReturn(
	id, reference, allocationID, userID string,
	items []ReturnedItem,
	returnDate time.Time,
	removedSoftware []string,
	processedBy string,
	notes string,
	createdAt time.Time,
) (*Return, error) {
	if id == "" {
		return nil, fmt.Errorf("return ID is required")
	}
	if removedSoftware == nil {
		removedSoftware = []string{}
	}
	return &Return{
		id:              id,
		reference:       reference,
		allocationID:    allocationID,
		userID:          userID,
		items:           items,
		returnDate:      returnDate,
		removedSoftware: removedSoftware,
		processedBy:     processedBy,
		notes:           notes,
		createdAt:       createdAt,
	}, nil
}

func (r *Return) ID() string {
	return r.id
}

func (r *Return) Reference() string {
	return r.reference
}

func (r *Return) AllocationID() string {
	return r.allocationID
}

func (r *Return) UserID() string {
	return r.userID
}

func (r *Return) Items() []ReturnedItem {
	out := make([]ReturnedItem, len(r.items))
	copy(out, r.items)
	return out
}

func (r *Return) ReturnDate() time.Time {
	return r.returnDate
}

func (r *Return) RemovedSoftware() []string {
	return append([]string{}, r.removedSoftware...)
}

func (r *Return) ProcessedBy() string {
	return r.processedBy
}

func (r *Return) Notes() string {
	return r.notes
}

func (r *Return) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Return) EquipmentIDs() []string {
	ids := make([]string, 0, len(r.items))
	for _, item := range r.items {
		ids = append(ids, item.EquipmentID)
	}
	return ids
}
