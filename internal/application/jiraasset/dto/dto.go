package dto

import (
	"github.com/GithubESPI/dotationsFrontend/internal/domain/equipment"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/jiraasset"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/config"
)

// MappingOrigin tells where a resolved attribute mapping came from.
type MappingOrigin string

const (
	OriginRequest  MappingOrigin = "request"
	OriginConfig   MappingOrigin = "config"
	OriginCache    MappingOrigin = "cache"
	OriginDetected MappingOrigin = "detected"
	OriginNone     MappingOrigin = "none"
)

type MappingDTO struct {
	Mapping   jiraasset.AttributeMapping `json:"attributeMapping"`
	Origin    MappingOrigin              `json:"origin"`
	Detection *jiraasset.Detection       `json:"detection,omitempty"`
}

type WorkspaceDTO struct {
	WorkspaceID string `json:"workspaceId"`
}

type ObjectTypeAssetsDTO struct {
	SchemaName     string             `json:"schemaName"`
	ObjectTypeName string             `json:"objectTypeName"`
	Assets         []jiraasset.Object `json:"assets"`
	Total          int                `json:"total"`
	Mapping        MappingDTO         `json:"mapping"`
}

type SearchResultDTO struct {
	Assets []jiraasset.Object `json:"assets"`
	Total  int                `json:"total"`
}

// AssetDTO is one asset with its attribute picker entries and, when a mapping is
// known, the equipment form it prefills.
type AssetDTO struct {
	Asset               jiraasset.Object               `json:"asset"`
	AvailableAttributes []jiraasset.AvailableAttribute `json:"availableAttributes"`
	FormData            *jiraasset.EquipmentFormData   `json:"formData,omitempty"`
}

type SelectionDTO struct {
	Outcome    equipment.Outcome           `json:"outcome"`
	Reason     equipment.MatchReason       `json:"reason"`
	Line       equipment.SelectionLine     `json:"line"`
	Candidates []string                    `json:"candidates,omitempty"`
	FormData   jiraasset.EquipmentFormData `json:"formData"`
	Mapping    MappingDTO                  `json:"mapping"`
}

func ToSelectionDTO(r equipment.Reconciliation, form jiraasset.EquipmentFormData, mapping MappingDTO) *SelectionDTO {
	return &SelectionDTO{
		Outcome:    r.Outcome,
		Reason:     r.Reason,
		Line:       r.Line,
		Candidates: r.Candidates,
		FormData:   form,
		Mapping:    mapping,
	}
}

// SyncStatsDTO counts what a sync did. Total is the number of assets read from Jira.
type SyncStatsDTO struct {
	Created          int                        `json:"created"`
	Updated          int                        `json:"updated"`
	Skipped          int                        `json:"skipped"`
	Errors           int                        `json:"errors"`
	Total            int                        `json:"total"`
	AttributeMapping jiraasset.AttributeMapping `json:"attributeMapping"`
	MappingOrigin    MappingOrigin              `json:"mappingOrigin"`
}

// MappingsFromConfig converts the jira.mappings config section.
func MappingsFromConfig(in map[string]config.JiraMappingConfig) map[string]jiraasset.AttributeMapping {
	out := make(map[string]jiraasset.AttributeMapping, len(in))
	for objectType, m := range in {
		out[objectType] = jiraasset.AttributeMapping{
			SerialNumberAttrID: m.SerialNumberAttrID,
			BrandAttrID:        m.BrandAttrID,
			ModelAttrID:        m.ModelAttrID,
			TypeAttrID:         m.TypeAttrID,
			StatusAttrID:       m.StatusAttrID,
			InternalIDAttrID:   m.InternalIDAttrID,
			AssignedUserAttrID: m.AssignedUserAttrID,
		}
	}
	return out
}
