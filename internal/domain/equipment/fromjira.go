package equipment

import (
	vo "github.com/GithubESPI/dotationsFrontend/internal/domain/equipment/valueobjects"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/jiraasset"
)

// NewFromJira creates an inventory record from an asset projection. Type and status
// come from the Jira labels; an "assigned" label is not kept because nobody holds the
// equipment locally yet.
func NewFromJira(form jiraasset.EquipmentFormData, snapshot map[string]string) (*Equipment, error) {
	e, err := NewEquipment(vo.EquipmentTypeFromLabel(form.Type), form.Brand, form.Model, form.SerialNumber)
	if err != nil {
		return nil, err
	}

	e.FillInternalID(form.InternalID)
	if form.JiraAssetID != "" {
		e.LinkJiraAsset(form.JiraAssetID, snapshot)
	}

	if status := vo.EquipmentStatusFromLabel(form.Status); status != vo.StatusAssigned {
		e.status = status
	}
	return e, nil
}

// Snapshot flattens the non-empty attributes of an asset, keyed by attribute id.
func Snapshot(asset *jiraasset.Object) map[string]string {
	attrs := jiraasset.AvailableAttributes(asset)
	out := make(map[string]string, len(attrs))
	for _, a := range attrs {
		if a.Value != "" {
			out[a.ID] = a.Value
		}
	}
	return out
}
