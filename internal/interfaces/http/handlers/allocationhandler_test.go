package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	allocationdto "github.com/GithubESPI/dotationsFrontend/internal/application/allocation/dto"
	"github.com/GithubESPI/dotationsFrontend/internal/interfaces/http/handlers/testutil"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/errors"
)

const testAllocationID = "9f0b7a52-3c1d-4e7f-8a6b-2d5c4e3f1a90"

type allocationMocks struct {
	create *mockCreateAllocationUC
	update *mockUpdateAllocationUC
	sign   *mockSignAllocationUC
	cancel *mockAllocationByIDUC
	get    *mockAllocationByIDUC
	list   *mockListAllocationsUC
	byUser *mockUserAllocationsUC
	all    *mockAllAllocationsUC
	stats  *mockAllocationStatsUC
}

func newTestAllocationHandler() (*AllocationHandler, *allocationMocks) {
	m := &allocationMocks{
		create: &mockCreateAllocationUC{result: testAllocationDTO()},
		update: &mockUpdateAllocationUC{result: testAllocationDTO()},
		sign:   &mockSignAllocationUC{result: testAllocationDTO()},
		cancel: &mockAllocationByIDUC{result: testAllocationDTO()},
		get:    &mockAllocationByIDUC{result: testAllocationDTO()},
		list:   &mockListAllocationsUC{result: &allocationdto.ListAllocationsDTO{}},
		byUser: &mockUserAllocationsUC{},
		all:    &mockAllAllocationsUC{},
		stats:  &mockAllocationStatsUC{result: &allocationdto.AllocationStatsDTO{}},
	}
	h := NewAllocationHandler(
		m.create, m.update, m.sign, m.cancel, m.get,
		m.list, m.byUser, m.all, m.stats,
		testutil.NewMockLogger(),
	)
	return h, m
}

func testAllocationDTO() *allocationdto.AllocationDTO {
	return &allocationdto.AllocationDTO{
		ID:        testAllocationID,
		Reference: "DOT-7K2M9QXA",
		UserID:    testEmployeeID,
		Status:    "EN_COURS",
	}
}

func TestAllocationHandler_Create(t *testing.T) {
	h, m := newTestAllocationHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/allocations", map[string]any{
		"userId": testEmployeeID,
		"equipments": []map[string]any{
			{"equipmentId": testEquipmentID},
			{"serialNumber": "5CG1234XYZ", "jiraAssetId": "1042", "type": "PC_PORTABLE", "condition": "degrade"},
		},
		"deliveryDate": "2026-03-02",
		"accessories":  []string{"Chargeur", "Souris"},
	})
	testutil.SetAuthContext(c, "admin-1", "it@example.com", "staff")

	h.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, m.create.got)
	cmd := m.create.got
	assert.Equal(t, testEmployeeID, cmd.UserID)
	assert.Equal(t, "it@example.com", cmd.CreatedBy)
	require.Len(t, cmd.Items, 2)
	assert.Equal(t, testEquipmentID, cmd.Items[0].EquipmentID)
	assert.Equal(t, "1042", cmd.Items[1].JiraAssetID)
	assert.Equal(t, "degrade", cmd.Items[1].Condition)
	require.NotNil(t, cmd.DeliveryDate)
	assert.Equal(t, time.UTC, cmd.DeliveryDate.Location())
	assert.Equal(t, []string{"Chargeur", "Souris"}, cmd.Accessories)
}

func TestAllocationHandler_Create_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{
			name: "no equipment",
			body: map[string]any{"userId": testEmployeeID, "equipments": []map[string]any{}},
		},
		{
			name: "missing user",
			body: map[string]any{"equipments": []map[string]any{{"equipmentId": testEquipmentID}}},
		},
		{
			name: "line without id or serial",
			body: map[string]any{"userId": testEmployeeID, "equipments": []map[string]any{{"brand": "Dell"}}},
		},
		{
			name: "unknown condition",
			body: map[string]any{"userId": testEmployeeID, "equipments": []map[string]any{{"equipmentId": testEquipmentID, "condition": "neuf"}}},
		},
		{
			name: "bad delivery date",
			body: map[string]any{"userId": testEmployeeID, "equipments": []map[string]any{{"equipmentId": testEquipmentID}}, "deliveryDate": "02/03/2026"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestAllocationHandler()

			c, w := testutil.NewTestContext(http.MethodPost, "/allocations", tt.body)
			h.Create(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, m.create.got)
		})
	}
}

func TestAllocationHandler_Create_EquipmentTaken(t *testing.T) {
	h, m := newTestAllocationHandler()
	m.create.err = errors.NewConflictError("equipment already allocated", "5CG1234XYZ")

	c, w := testutil.NewTestContext(http.MethodPost, "/allocations", map[string]any{
		"userId":     testEmployeeID,
		"equipments": []map[string]any{{"equipmentId": testEquipmentID}},
	})
	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "5CG1234XYZ", resp.Error.Details)
}

func TestAllocationHandler_Search_DateRange(t *testing.T) {
	h, m := newTestAllocationHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/allocations", nil)
	testutil.SetQueryParams(c, map[string]string{
		"status":    "EN_COURS",
		"startDate": "2026-01-01",
		"endDate":   "2026-01-31",
	})
	h.Search(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, m.list.got)
	assert.Equal(t, "EN_COURS", m.list.got.Status)
	require.NotNil(t, m.list.got.StartDate)
	require.NotNil(t, m.list.got.EndDate)
	assert.True(t, m.list.got.EndDate.After(*m.list.got.StartDate))
	// a date-only end bound covers the whole day
	assert.True(t, m.list.got.EndDate.Sub(*m.list.got.StartDate) > 30*24*time.Hour)
}

func TestAllocationHandler_Search_BadDate(t *testing.T) {
	h, m := newTestAllocationHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/allocations", nil)
	testutil.SetQueryParams(c, map[string]string{"startDate": "yesterday"})
	h.Search(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, m.list.got)
}

func TestAllocationHandler_Sign(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]any
		ucErr      error
		wantStatus int
	}{
		{
			name:       "signed",
			body:       map[string]any{"signerName": "Jeanne Martin", "signatureImage": "data:image/png;base64,iVBORw0KGgo="},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing image",
			body:       map[string]any{"signerName": "Jeanne Martin"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "already signed",
			body:       map[string]any{"signerName": "Jeanne Martin", "signatureImage": "data:image/png;base64,iVBORw0KGgo="},
			ucErr:      errors.NewConflictError("allocation already signed"),
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestAllocationHandler()
			m.sign.err = tt.ucErr

			c, w := testutil.NewTestContext(http.MethodPost, "/allocations/"+testAllocationID+"/sign", tt.body)
			testutil.SetURLParam(c, "id", testAllocationID)
			h.Sign(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusBadRequest {
				require.NotNil(t, m.sign.got)
				assert.Equal(t, testAllocationID, m.sign.got.ID)
				assert.Equal(t, "Jeanne Martin", m.sign.got.SignerName)
			}
		})
	}
}

func TestAllocationHandler_Update(t *testing.T) {
	h, m := newTestAllocationHandler()

	c, w := testutil.NewTestContext(http.MethodPut, "/allocations/"+testAllocationID, map[string]any{
		"services": []string{"Badge", "Parking"},
	})
	testutil.SetURLParam(c, "id", testAllocationID)
	h.Update(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Badge", "Parking"}, m.update.got.Services)
	assert.Nil(t, m.update.got.Accessories)
	assert.Nil(t, m.update.got.Notes)
}

func TestAllocationHandler_Cancel(t *testing.T) {
	h, m := newTestAllocationHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/allocations/"+testAllocationID+"/cancel", nil)
	testutil.SetURLParam(c, "id", testAllocationID)
	h.Cancel(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testAllocationID, m.cancel.gotID)
}

func TestAllocationHandler_Get_NotFound(t *testing.T) {
	h, m := newTestAllocationHandler()
	m.get.err = errors.NewNotFoundError("allocation not found")

	c, w := testutil.NewTestContext(http.MethodGet, "/allocations/"+testAllocationID, nil)
	testutil.SetURLParam(c, "id", testAllocationID)
	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAllocationHandler_Stats(t *testing.T) {
	h, m := newTestAllocationHandler()
	m.stats.result = &allocationdto.AllocationStatsDTO{Total: 12, Signed: 9, Unsigned: 3}

	c, w := testutil.NewTestContext(http.MethodGet, "/allocations/stats", nil)
	h.Stats(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.JSONEq(t, `{"total":12,"byStatus":{"enCours":0,"terminee":0,"enRetard":0,"annulee":0},"signed":9,"unsigned":3,"thisMonth":0}`, string(resp.Data))
}
