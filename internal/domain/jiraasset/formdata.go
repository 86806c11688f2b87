package jiraasset

// EquipmentFormData is the flat projection of an asset used to prefill an equipment
// form. Only JiraAssetID is guaranteed; an empty string means the mapped attribute
// was absent. Values are passed through untouched.
type EquipmentFormData struct {
	JiraAssetID       string `json:"jiraAssetId"`
	SerialNumber      string `json:"serialNumber,omitempty"`
	Brand             string `json:"brand,omitempty"`
	Model             string `json:"model,omitempty"`
	Type              string `json:"type,omitempty"`
	InternalID        string `json:"internalId,omitempty"`
	Status            string `json:"status,omitempty"`
	AssignedUserEmail string `json:"assignedUserEmail,omitempty"`
}

// ToEquipmentFormData applies mapping to asset.
func ToEquipmentFormData(asset *Object, mapping AttributeMapping) EquipmentFormData {
	if asset == nil {
		return EquipmentFormData{}
	}

	get := func(attrID string) string {
		v, _ := AttributeValue(asset, attrID)
		return v
	}

	return EquipmentFormData{
		JiraAssetID:       asset.ID,
		SerialNumber:      get(mapping.SerialNumberAttrID),
		Brand:             get(mapping.BrandAttrID),
		Model:             get(mapping.ModelAttrID),
		Type:              get(mapping.TypeAttrID),
		InternalID:        get(mapping.InternalIDAttrID),
		Status:            get(mapping.StatusAttrID),
		AssignedUserEmail: get(mapping.AssignedUserAttrID),
	}
}
