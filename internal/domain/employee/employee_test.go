package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmployee(t *testing.T) {
	tests := []struct {
		name        string
		office365ID string
		email       string
		displayName string
		wantErr     bool
	}{
		{name: "valid", office365ID: "o365-1", email: " Jane.Doe@Example.com ", displayName: "Jane Doe"},
		{name: "missing office id", email: "jane@example.com", displayName: "Jane", wantErr: true},
		{name: "bad email", office365ID: "o365-1", email: "jane", displayName: "Jane", wantErr: true},
		{name: "missing name", office365ID: "o365-1", email: "jane@example.com", displayName: " ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEmployee(tt.office365ID, tt.email, tt.displayName, Profile{Department: "IT"})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "jane.doe@example.com", e.Email())
			assert.True(t, e.IsActive())
			assert.Nil(t, e.LastSync())
		})
	}
}

func TestEmployee_ApplyDirectory(t *testing.T) {
	e, err := NewEmployee("o365-1", "jane@example.com", "Jane", Profile{})
	require.NoError(t, err)

	disabled := false
	require.NoError(t, e.ApplyDirectory("jane.doe@example.com", "Jane Doe", Profile{Department: "Finance", AccountEnabled: &disabled}))

	assert.Equal(t, "jane.doe@example.com", e.Email())
	assert.Equal(t, "Jane Doe", e.DisplayName())
	assert.Equal(t, "Finance", e.Profile().Department)
	assert.False(t, e.IsActive())
	assert.NotNil(t, e.LastSync())

	assert.Error(t, e.ApplyDirectory("nope", "", Profile{}))
}

func TestEmployee_UpdateContactAndDeactivate(t *testing.T) {
	e, err := NewEmployee("o365-1", "jane@example.com", "Jane", Profile{JobTitle: "Dev"})
	require.NoError(t, err)

	dept := " Support "
	e.UpdateContact(nil, &dept, nil, nil)
	assert.Equal(t, "Support", e.Profile().Department)
	assert.Equal(t, "Dev", e.Profile().JobTitle)

	e.Deactivate()
	assert.False(t, e.IsActive())
}
