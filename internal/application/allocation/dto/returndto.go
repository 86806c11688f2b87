package dto

import (
	"time"

	"github.com/GithubESPI/dotationsFrontend/internal/domain/allocation"
	vo "github.com/GithubESPI/dotationsFrontend/internal/domain/allocation/valueobjects"
)

type ReturnedItemDTO struct {
	EquipmentID  string   `json:"equipmentId"`
	InternalID   string   `json:"internalId,omitempty"`
	SerialNumber string   `json:"serialNumber,omitempty"`
	Condition    string   `json:"condition" enums:"bon_etat,degrade,endommage,manquant,detruit"`
	Notes        string   `json:"notes,omitempty"`
	Photos       []string `json:"photos,omitempty"`
}

type ReturnDTO struct {
	ID                  string            `json:"_id"`
	Reference           string            `json:"reference" example:"RES-4QX8M2KA"`
	AllocationID        string            `json:"allocationId"`
	UserID              string            `json:"userId"`
	EquipmentsReturned  []ReturnedItemDTO `json:"equipmentsReturned"`
	ReturnDate          time.Time         `json:"returnDate"`
	RemovedSoftware     []string          `json:"removedSoftware"`
	ProcessedBy         string            `json:"processedBy,omitempty"`
	Notes               string            `json:"notes,omitempty"`
	AllocationCompleted bool              `json:"allocationCompleted"`
	CreatedAt           time.Time         `json:"createdAt"`
}

func ToReturnDTO(r *allocation.Return) *ReturnDTO {
	if r == nil {
		return nil
	}
	items := r.Items()
	d := &ReturnDTO{
		ID:                 r.ID(),
		Reference:          r.Reference(),
		AllocationID:       r.AllocationID(),
		UserID:             r.UserID(),
		EquipmentsReturned: make([]ReturnedItemDTO, 0, len(items)),
		ReturnDate:         r.ReturnDate(),
		RemovedSoftware:    r.RemovedSoftware(),
		ProcessedBy:        r.ProcessedBy(),
		Notes:              r.Notes(),
		CreatedAt:          r.CreatedAt(),
	}
	for _, item := range items {
		d.EquipmentsReturned = append(d.EquipmentsReturned, ReturnedItemDTO{
			EquipmentID:  item.EquipmentID,
			InternalID:   item.InternalID,
			SerialNumber: item.SerialNumber,
			Condition:    item.Condition.String(),
			Notes:        item.Notes,
			Photos:       item.Photos,
		})
	}
	return d
}

func ToReturnDTOs(list []*allocation.Return) []*ReturnDTO {
	out := make([]*ReturnDTO, 0, len(list))
	for _, r := range list {
		out = append(out, ToReturnDTO(r))
	}
	return out
}

type ReturnStatsDTO struct {
	Total         int64            `json:"total"`
	ItemsReturned int64            `json:"itemsReturned"`
	ByCondition   map[string]int64 `json:"byCondition"`
	ThisMonth     int64            `json:"thisMonth"`
}

func ToReturnStatsDTO(s *allocation.ReturnStats) *ReturnStatsDTO {
	out := &ReturnStatsDTO{ByCondition: make(map[string]int64)}
	for _, c := range vo.AllConditions() {
		out.ByCondition[c.String()] = 0
	}
	if s == nil {
		return out
	}
	out.Total = s.Total
	out.ItemsReturned = s.ItemsReturned
	out.ThisMonth = s.ThisMonth
	for c, n := range s.ByCondition {
		out.ByCondition[c.String()] = n
	}
	return out
}
