package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"

	equipmentvo "github.com/GithubESPI/dotationsFrontend/internal/domain/equipment/valueobjects"
)

func TestAllocationStatus_Transitions(t *testing.T) {
	tests := []struct {
		from, to AllocationStatus
		want     bool
	}{
		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusCancelled, true},
		{StatusOverdue, StatusCompleted, true},
		{StatusCompleted, StatusInProgress, false},
		{StatusCancelled, StatusInProgress, false},
		{StatusCompleted, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestAllocationStatus_Parse(t *testing.T) {
	for _, s := range AllAllocationStatuses() {
		got, err := NewAllocationStatus(string(s))
		assert.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := NewAllocationStatus("en_cours")
	assert.Error(t, err)

	assert.True(t, StatusOverdue.IsActive())
	assert.False(t, StatusCancelled.IsActive())
}

func TestCondition(t *testing.T) {
	c, err := NewCondition("")
	assert.NoError(t, err)
	assert.Equal(t, ConditionGood, c)

	_, err = NewCondition("perdu")
	assert.Error(t, err)

	assert.Equal(t, equipmentvo.StatusAvailable, ConditionGood.EquipmentStatus())
	assert.Equal(t, equipmentvo.StatusInRepair, ConditionDamaged.EquipmentStatus())
	assert.Equal(t, equipmentvo.StatusLost, ConditionMissing.EquipmentStatus())
	assert.Equal(t, equipmentvo.StatusDestroyed, ConditionDestroyed.EquipmentStatus())

	for _, c := range AllConditions() {
		assert.True(t, c.IsValid())
	}
}
