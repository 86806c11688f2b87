package equipment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/GithubESPI/dotationsFrontend/internal/domain/equipment/valueobjects"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/jiraasset"
)

func TestNewFromJira(t *testing.T) {
	tests := []struct {
		name       string
		form       jiraasset.EquipmentFormData
		wantType   vo.EquipmentType
		wantStatus vo.EquipmentStatus
		wantErr    bool
	}{
		{
			name:       "laptop in repair",
			form:       jiraasset.EquipmentFormData{JiraAssetID: "101", SerialNumber: "ABC123", Brand: "Dell", Model: "Latitude 5440", Type: "Laptop", Status: "En réparation", InternalID: "PI-42"},
			wantType:   vo.TypeLaptop,
			wantStatus: vo.StatusInRepair,
		},
		{
			name:       "assigned label ignored",
			form:       jiraasset.EquipmentFormData{JiraAssetID: "102", SerialNumber: "XYZ999", Brand: "Apple", Model: "MacBook Pro", Status: "Assigned"},
			wantType:   vo.TypeOther,
			wantStatus: vo.StatusAvailable,
		},
		{
			name:    "missing brand",
			form:    jiraasset.EquipmentFormData{JiraAssetID: "103", SerialNumber: "S1", Model: "X"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewFromJira(tt.form, map[string]string{"1": tt.form.SerialNumber})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, e.Type())
			assert.Equal(t, tt.wantStatus, e.Status())
			assert.Equal(t, tt.form.JiraAssetID, e.JiraAssetID())
			assert.Equal(t, tt.form.InternalID, e.InternalID())
			assert.Equal(t, tt.form.SerialNumber, e.JiraAttributes()["1"])
		})
	}
}

func TestSnapshot(t *testing.T) {
	asset := &jiraasset.Object{
		ID: "7",
		Attributes: []jiraasset.Attribute{
			{ObjectTypeAttributeID: "1", Values: []jiraasset.Value{jiraasset.StringValue("SN1")}},
			{ObjectTypeAttributeID: "2", Values: []jiraasset.Value{jiraasset.StatusValue(jiraasset.Status{Name: "In Use"})}},
			{ObjectTypeAttributeID: "3"},
		},
	}

	assert.Equal(t, map[string]string{"1": "SN1", "2": "In Use"}, Snapshot(asset))
}
