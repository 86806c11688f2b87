package dto

import (
	"time"

	"github.com/GithubESPI/dotationsFrontend/internal/domain/allocation"
	vo "github.com/GithubESPI/dotationsFrontend/internal/domain/allocation/valueobjects"
)

type ItemDTO struct {
	EquipmentID   string     `json:"equipmentId"`
	InternalID    string     `json:"internalId,omitempty"`
	Type          string     `json:"type,omitempty"`
	Brand         string     `json:"brand,omitempty"`
	Model         string     `json:"model,omitempty"`
	SerialNumber  string     `json:"serialNumber,omitempty"`
	JiraAssetID   string     `json:"jiraAssetId,omitempty"`
	DeliveredDate *time.Time `json:"deliveredDate,omitempty"`
	Condition     string     `json:"condition"`
	ReturnedAt    *time.Time `json:"returnedAt,omitempty"`
}

type SignatureDTO struct {
	SignerName     string    `json:"signerName"`
	SignatureImage string    `json:"signatureImage"`
	Fingerprint    string    `json:"fingerprint"`
	Timestamp      time.Time `json:"timestamp"`
}

type AllocationDTO struct {
	ID                 string        `json:"_id"`
	Reference          string        `json:"reference" example:"DOT-7K2M9QXA"`
	UserID             string        `json:"userId"`
	UserName           string        `json:"userName"`
	UserEmail          string        `json:"userEmail"`
	Equipments         []ItemDTO     `json:"equipments"`
	DeliveryDate       time.Time     `json:"deliveryDate"`
	Status             string        `json:"status" enums:"EN_COURS,TERMINEE,EN_RETARD,ANNULEE"`
	Accessories        []string      `json:"accessories"`
	AdditionalSoftware []string      `json:"additionalSoftware"`
	StandardSoftware   []string      `json:"standardSoftware"`
	Services           []string      `json:"services"`
	Notes              string        `json:"notes,omitempty"`
	SignatureData      *SignatureDTO `json:"signatureData,omitempty"`
	SignedAt           *time.Time    `json:"signedAt"`
	CreatedBy          string        `json:"createdBy,omitempty"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
}

func ToAllocationDTO(a *allocation.Allocation) *AllocationDTO {
	if a == nil {
		return nil
	}
	extras := a.Extras()
	d := &AllocationDTO{
		ID:                 a.ID(),
		Reference:          a.Reference(),
		UserID:             a.UserID(),
		UserName:           a.UserName(),
		UserEmail:          a.UserEmail(),
		DeliveryDate:       a.DeliveryDate(),
		Status:             a.Status().String(),
		Accessories:        extras.Accessories,
		AdditionalSoftware: extras.AdditionalSoftware,
		StandardSoftware:   extras.StandardSoftware,
		Services:           extras.Services,
		Notes:              extras.Notes,
		SignedAt:           a.SignedAt(),
		CreatedBy:          a.CreatedBy(),
		CreatedAt:          a.CreatedAt(),
		UpdatedAt:          a.UpdatedAt(),
	}
	items := a.Items()
	d.Equipments = make([]ItemDTO, 0, len(items))
	for _, item := range items {
		d.Equipments = append(d.Equipments, ItemDTO{
			EquipmentID:   item.EquipmentID,
			InternalID:    item.InternalID,
			Type:          item.Type,
			Brand:         item.Brand,
			Model:         item.Model,
			SerialNumber:  item.SerialNumber,
			JiraAssetID:   item.JiraAssetID,
			DeliveredDate: item.DeliveredDate,
			Condition:     item.Condition.String(),
			ReturnedAt:    item.ReturnedAt,
		})
	}
	if sig := a.Signature(); sig != nil {
		d.SignatureData = &SignatureDTO{
			SignerName:     sig.SignerName,
			SignatureImage: sig.SignatureImage,
			Fingerprint:    sig.Fingerprint,
			Timestamp:      sig.Timestamp,
		}
	}
	return d
}

func ToAllocationDTOs(list []*allocation.Allocation) []*AllocationDTO {
	out := make([]*AllocationDTO, 0, len(list))
	for _, a := range list {
		out = append(out, ToAllocationDTO(a))
	}
	return out
}

type ListAllocationsDTO struct {
	Items []*AllocationDTO
	Total int64
	Page  int
	Limit int
}

type AllocationStatusCountsDTO struct {
	EnCours  int64 `json:"enCours"`
	Terminee int64 `json:"terminee"`
	EnRetard int64 `json:"enRetard"`
	Annulee  int64 `json:"annulee"`
}

type AllocationStatsDTO struct {
	Total     int64                     `json:"total"`
	ByStatus  AllocationStatusCountsDTO `json:"byStatus"`
	Signed    int64                     `json:"signed"`
	Unsigned  int64                     `json:"unsigned"`
	ThisMonth int64                     `json:"thisMonth"`
}

func ToAllocationStatsDTO(s *allocation.Stats) *AllocationStatsDTO {
	if s == nil {
		return &AllocationStatsDTO{}
	}
	return &AllocationStatsDTO{
		Total: s.Total,
		ByStatus: AllocationStatusCountsDTO{
			EnCours:  s.ByStatus[vo.StatusInProgress],
			Terminee: s.ByStatus[vo.StatusCompleted],
			EnRetard: s.ByStatus[vo.StatusOverdue],
			Annulee:  s.ByStatus[vo.StatusCancelled],
		},
		Signed:    s.Signed,
		Unsigned:  s.Total - s.Signed,
		ThisMonth: s.ThisMonth,
	}
}
