package equipment

import (
	"strings"

	vo "github.com/GithubESPI/dotationsFrontend/internal/domain/equipment/valueobjects"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/jiraasset"
)

// Outcome classifies a Jira asset against the local inventory.
type Outcome string

const (
	OutcomeMatched   Outcome = "matched"
	OutcomeNew       Outcome = "new"
	OutcomeAmbiguous Outcome = "ambiguous"
)

// MatchReason tells which key decided the outcome.
type MatchReason string

const (
	ReasonSerialNumber    MatchReason = "serial_number"
	ReasonJiraAssetLink   MatchReason = "jira_asset_id"
	ReasonNoMatch         MatchReason = "no_match"
	ReasonBlankSerial     MatchReason = "blank_serial"
	ReasonDuplicateSerial MatchReason = "duplicate_serial"
	ReasonDuplicateLink   MatchReason = "duplicate_link"
	ReasonConflict        MatchReason = "serial_link_conflict"
)

// SelectionLine is what an allocation line or equipment form is filled with.
// EquipmentID is empty unless the outcome is matched.
type SelectionLine struct {
	EquipmentID  string             `json:"equipmentId,omitempty"`
	JiraAssetID  string             `json:"jiraAssetId,omitempty"`
	SerialNumber string             `json:"serialNumber,omitempty"`
	InternalID   string             `json:"internalId,omitempty"`
	Brand        string             `json:"brand,omitempty"`
	Model        string             `json:"model,omitempty"`
	Type         vo.EquipmentType   `json:"type"`
	Status       vo.EquipmentStatus `json:"status"`
	Persisted    bool               `json:"persisted"`
}

type Reconciliation struct {
	Outcome    Outcome       `json:"outcome"`
	Reason     MatchReason   `json:"reason"`
	Line       SelectionLine `json:"line"`
	Matched    *Equipment    `json:"-"`
	Candidates []string      `json:"candidates,omitempty"`
}

// Reconcile decides whether the projected asset is already in local. A serial number
// match is exact and case-sensitive; a jiraAssetId back-reference also links. Blank
// serials without a link, shared serials and serial/link disagreements are reported
// as ambiguous instead of picking one record. A serial match already linked to another
// Jira asset is a disagreement too: two Jira assets carry the same serial.
func Reconcile(form jiraasset.EquipmentFormData, local []*Equipment) Reconciliation {
	serial := form.SerialNumber
	blankSerial := strings.TrimSpace(serial) == ""

	var bySerial, byLink []*Equipment
	for _, e := range local {
		if e == nil {
			continue
		}
		if !blankSerial && e.serialNumber == serial {
			bySerial = append(bySerial, e)
		}
		if form.JiraAssetID != "" && e.jiraAssetID == form.JiraAssetID {
			byLink = append(byLink, e)
		}
	}

	switch {
	case len(bySerial) > 1:
		return ambiguous(form, ReasonDuplicateSerial, bySerial)
	case len(bySerial) == 1 && len(byLink) > 0 && !containsEquipment(byLink, bySerial[0]):
		return ambiguous(form, ReasonConflict, append(bySerial, byLink...))
	case len(bySerial) == 1 && linkedElsewhere(bySerial[0], form.JiraAssetID):
		return ambiguous(form, ReasonConflict, bySerial)
	case len(bySerial) == 1:
		return matched(bySerial[0], form.JiraAssetID, ReasonSerialNumber)
	case len(byLink) > 1:
		return ambiguous(form, ReasonDuplicateLink, byLink)
	case len(byLink) == 1:
		return matched(byLink[0], form.JiraAssetID, ReasonJiraAssetLink)
	case blankSerial:
		return ambiguous(form, ReasonBlankSerial, nil)
	default:
		return Reconciliation{
			Outcome: OutcomeNew,
			Reason:  ReasonNoMatch,
			Line:    projectedLine(form),
		}
	}
}

func matched(e *Equipment, jiraAssetID string, reason MatchReason) Reconciliation {
	if e.jiraAssetID != "" {
		jiraAssetID = e.jiraAssetID
	}
	return Reconciliation{
		Outcome: OutcomeMatched,
		Reason:  reason,
		Matched: e,
		Line: SelectionLine{
			EquipmentID:  e.id,
			JiraAssetID:  jiraAssetID,
			SerialNumber: e.serialNumber,
			InternalID:   e.internalID,
			Brand:        e.brand,
			Model:        e.model,
			Type:         e.equipmentType,
			Status:       e.status,
			Persisted:    true,
		},
	}
}

func ambiguous(form jiraasset.EquipmentFormData, reason MatchReason, candidates []*Equipment) Reconciliation {
	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.id)
	}
	return Reconciliation{
		Outcome:    OutcomeAmbiguous,
		Reason:     reason,
		Line:       projectedLine(form),
		Candidates: ids,
	}
}

func projectedLine(form jiraasset.EquipmentFormData) SelectionLine {
	return SelectionLine{
		JiraAssetID:  form.JiraAssetID,
		SerialNumber: form.SerialNumber,
		InternalID:   form.InternalID,
		Brand:        form.Brand,
		Model:        form.Model,
		Type:         vo.EquipmentTypeFromLabel(form.Type),
		Status:       vo.EquipmentStatusFromLabel(form.Status),
	}
}

func containsEquipment(list []*Equipment, target *Equipment) bool {
	for _, e := range list {
		if e.id == target.id {
			return true
		}
	}
	return false
}

// linkedElsewhere reports whether e is bound to a Jira asset other than jiraAssetID.
func linkedElsewhere(e *Equipment, jiraAssetID string) bool {
	return jiraAssetID != "" && e.jiraAssetID != "" && e.jiraAssetID != jiraAssetID
}
