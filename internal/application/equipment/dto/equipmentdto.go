package dto

import (
	"time"

	"github.com/GithubESPI/dotationsFrontend/internal/domain/equipment"
	vo "github.com/GithubESPI/dotationsFrontend/internal/domain/equipment/valueobjects"
)

type EquipmentDTO struct {
	ID                  string            `json:"_id" example:"5b1f5d0e-8d0c-4a43-9c55-0c6f1d0f5a11"`
	JiraAssetID         string            `json:"jiraAssetId,omitempty" example:"1042"`
	InternalID          string            `json:"internalId,omitempty" example:"PI-0042"`
	Type                string            `json:"type" example:"PC_PORTABLE" enums:"PC_PORTABLE,PC_FIXE,TABLETTE,MOBILE,ECRAN,TELEPHONE_IP,AUTRES"`
	Brand               string            `json:"brand" example:"Dell"`
	Model               string            `json:"model" example:"Latitude 5440"`
	SerialNumber        string            `json:"serialNumber" example:"5CG1234XYZ"`
	IMEI                string            `json:"imei,omitempty"`
	PhoneLine           string            `json:"phoneLine,omitempty"`
	Status              string            `json:"status" example:"DISPONIBLE" enums:"DISPONIBLE,AFFECTE,EN_REPARATION,RESTITUE,PERDU,DETRUIT"`
	CurrentUserID       *string           `json:"currentUserId"`
	Location            string            `json:"location,omitempty"`
	AdditionalSoftwares []string          `json:"additionalSoftwares"`
	JiraAttributes      map[string]string `json:"jiraAttributes,omitempty"`
	CreatedAt           time.Time         `json:"createdAt"`
	UpdatedAt           time.Time         `json:"updatedAt"`
}

func ToEquipmentDTO(e *equipment.Equipment) *EquipmentDTO {
	if e == nil {
		return nil
	}
	d := &EquipmentDTO{
		ID:                  e.ID(),
		JiraAssetID:         e.JiraAssetID(),
		InternalID:          e.InternalID(),
		Type:                e.Type().String(),
		Brand:               e.Brand(),
		Model:               e.Model(),
		SerialNumber:        e.SerialNumber(),
		IMEI:                e.IMEI(),
		PhoneLine:           e.PhoneLine(),
		Status:              e.Status().String(),
		Location:            e.Location(),
		AdditionalSoftwares: e.AdditionalSoftwares(),
		JiraAttributes:      e.JiraAttributes(),
		CreatedAt:           e.CreatedAt(),
		UpdatedAt:           e.UpdatedAt(),
	}
	if userID := e.CurrentUserID(); userID != "" {
		d.CurrentUserID = &userID
	}
	return d
}

func ToEquipmentDTOs(list []*equipment.Equipment) []*EquipmentDTO {
	out := make([]*EquipmentDTO, 0, len(list))
	for _, e := range list {
		out = append(out, ToEquipmentDTO(e))
	}
	return out
}

type ListEquipmentDTO struct {
	Items []*EquipmentDTO
	Total int64
	Page  int
	Limit int
}

// StatusCountsDTO uses the camel-cased status names the dashboard expects.
type StatusCountsDTO struct {
	Disponible   int64 `json:"disponible"`
	Affecte      int64 `json:"affecte"`
	EnReparation int64 `json:"enReparation"`
	Restitue     int64 `json:"restitue"`
	Perdu        int64 `json:"perdu"`
	Detruit      int64 `json:"detruit"`
}

type StatsDTO struct {
	Total    int64             `json:"total"`
	ByStatus StatusCountsDTO   `json:"byStatus"`
	ByType   []equipment.Count `json:"byType"`
	ByBrand  []equipment.Count `json:"byBrand"`
}

func ToStatsDTO(s *equipment.Stats) *StatsDTO {
	out := &StatsDTO{
		ByType:  []equipment.Count{},
		ByBrand: []equipment.Count{},
	}
	if s == nil {
		return out
	}
	out.Total = s.Total
	out.ByStatus = StatusCountsDTO{
		Disponible:   s.ByStatus[vo.StatusAvailable],
		Affecte:      s.ByStatus[vo.StatusAssigned],
		EnReparation: s.ByStatus[vo.StatusInRepair],
		Restitue:     s.ByStatus[vo.StatusReturned],
		Perdu:        s.ByStatus[vo.StatusLost],
		Detruit:      s.ByStatus[vo.StatusDestroyed],
	}
	if s.ByType != nil {
		out.ByType = s.ByType
	}
	if s.ByBrand != nil {
		out.ByBrand = s.ByBrand
	}
	return out
}
