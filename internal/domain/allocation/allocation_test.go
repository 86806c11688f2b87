package allocation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/GithubESPI/dotationsFrontend/internal/domain/allocation/valueobjects"
)

func newTestAllocation(t *testing.T, equipmentIDs ...string) *Allocation {
	t.Helper()
	items := make([]Item, 0, len(equipmentIDs))
	for _, id := range equipmentIDs {
		items = append(items, Item{EquipmentID: id, SerialNumber: "SN-" + id})
	}
	a, err := NewAllocation("DOT-TEST0001", "U1", "Jane Doe", "jane@example.com", items, time.Time{},
		Extras{Accessories: []string{"Souris"}, StandardSoftware: []string{"Office 365"}}, "admin")
	require.NoError(t, err)
	return a
}

func TestNewAllocation(t *testing.T) {
	a := newTestAllocation(t, "E1", "E2")

	assert.NotEmpty(t, a.ID())
	assert.Equal(t, vo.StatusInProgress, a.Status())
	assert.False(t, a.DeliveryDate().IsZero())
	assert.Equal(t, []string{"E1", "E2"}, a.EquipmentIDs())
	assert.Equal(t, vo.ConditionGood, a.Items()[0].Condition)
	assert.Equal(t, []string{}, a.Extras().Services)
	assert.False(t, a.IsSigned())
}

func TestNewAllocation_Invalid(t *testing.T) {
	_, err := NewAllocation("DOT-1", "U1", "", "", nil, time.Time{}, Extras{}, "")
	assert.ErrorIs(t, err, ErrNoEquipment)

	_, err = NewAllocation("DOT-1", "", "", "", []Item{{EquipmentID: "E1"}}, time.Time{}, Extras{}, "")
	assert.Error(t, err)

	_, err = NewAllocation("DOT-1", "U1", "", "", []Item{{EquipmentID: "E1"}, {EquipmentID: "E1"}}, time.Time{}, Extras{}, "")
	assert.ErrorIs(t, err, ErrDuplicateEquipment)

	_, err = NewAllocation("DOT-1", "U1", "", "", []Item{{SerialNumber: "SN"}}, time.Time{}, Extras{}, "")
	assert.Error(t, err)
}

func TestAllocation_Sign(t *testing.T) {
	a := newTestAllocation(t, "E1")

	assert.Error(t, a.Sign(" ", "data:image/png;base64,AAA"))
	assert.Error(t, a.Sign("Jane Doe", ""))

	require.NoError(t, a.Sign("Jane Doe", "data:image/png;base64,AAA"))
	require.NotNil(t, a.Signature())
	assert.Equal(t, Fingerprint("data:image/png;base64,AAA"), a.Signature().Fingerprint)
	assert.Len(t, a.Signature().Fingerprint, 64)
	assert.NotNil(t, a.SignedAt())

	assert.ErrorIs(t, a.Sign("Jane Doe", "other"), ErrAlreadySigned)
}

func TestAllocation_SignCancelled(t *testing.T) {
	a := newTestAllocation(t, "E1")
	require.NoError(t, a.Cancel())
	assert.ErrorIs(t, a.Sign("Jane", "img"), ErrNotActive)
}

func TestAllocation_Cancel(t *testing.T) {
	a := newTestAllocation(t, "E1")
	require.NoError(t, a.Cancel())
	assert.Equal(t, vo.StatusCancelled, a.Status())
	assert.ErrorIs(t, a.Cancel(), ErrInvalidTransition)
}

func TestAllocation_RegisterReturn(t *testing.T) {
	a := newTestAllocation(t, "E1", "E2")
	at := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	complete, err := a.RegisterReturn([]string{"E1"}, at)
	require.NoError(t, err)
	assert.False(t, complete)
	assert.Equal(t, vo.StatusInProgress, a.Status())
	assert.Equal(t, []string{"E2"}, a.OutstandingEquipmentIDs())

	_, err = a.RegisterReturn([]string{"E1"}, at)
	assert.ErrorIs(t, err, ErrEquipmentNotInAllocation)

	_, err = a.RegisterReturn([]string{"E9"}, at)
	assert.ErrorIs(t, err, ErrEquipmentNotInAllocation)

	complete, err = a.RegisterReturn([]string{"E2"}, at)
	require.NoError(t, err)
	assert.True(t, complete)
	assert.Equal(t, vo.StatusCompleted, a.Status())

	_, err = a.RegisterReturn([]string{"E2"}, at)
	assert.ErrorIs(t, err, ErrNotActive)
}

func TestAllocation_UpdateExtras(t *testing.T) {
	a := newTestAllocation(t, "E1")
	notes := "  livré en main propre "

	require.NoError(t, a.UpdateExtras(Extras{Services: []string{"Teams"}}, &notes))
	e := a.Extras()
	assert.Equal(t, []string{"Souris"}, e.Accessories)
	assert.Equal(t, []string{"Teams"}, e.Services)
	assert.Equal(t, "livré en main propre", e.Notes)

	require.NoError(t, a.Cancel())
	assert.ErrorIs(t, a.UpdateExtras(Extras{}, nil), ErrNotActive)
}

func TestAllocation_MarkOverdue(t *testing.T) {
	a := newTestAllocation(t, "E1")
	require.NoError(t, a.MarkOverdue())
	assert.Equal(t, vo.StatusOverdue, a.Status())
	assert.True(t, a.Status().IsActive())
	assert.ErrorIs(t, a.MarkOverdue(), ErrInvalidTransition)
}

func TestItemRequest_Validate(t *testing.T) {
	assert.NoError(t, ItemRequest{EquipmentID: "E1"}.Validate())
	assert.NoError(t, ItemRequest{SerialNumber: "SN1", Condition: "degrade"}.Validate())
	assert.Error(t, ItemRequest{SerialNumber: "  "}.Validate())
	assert.Error(t, ItemRequest{EquipmentID: "E1", Condition: "cassé"}.Validate())
}

func TestNewReturn(t *testing.T) {
	r, err := NewReturn("RES-1", "A1", "U1", []ReturnedItem{{EquipmentID: "E1", Condition: vo.ConditionDamaged}}, time.Time{}, nil, "admin", "  screen cracked  ")
	require.NoError(t, err)
	assert.Equal(t, "screen cracked", r.Notes())
	assert.Equal(t, []string{"E1"}, r.EquipmentIDs())
	assert.Equal(t, []string{}, r.RemovedSoftware())
	assert.False(t, r.ReturnDate().IsZero())

	_, err = NewReturn("RES-1", "A1", "U1", []ReturnedItem{{EquipmentID: "E1", Condition: "cassé"}}, time.Time{}, nil, "", "")
	assert.Error(t, err)

	_, err = NewReturn("RES-1", "A1", "U1", nil, time.Time{}, nil, "", "")
	assert.ErrorIs(t, err, ErrNoEquipment)
}
