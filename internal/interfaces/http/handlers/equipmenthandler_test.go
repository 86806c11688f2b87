package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	equipmentdto "github.com/GithubESPI/dotationsFrontend/internal/application/equipment/dto"
	"github.com/GithubESPI/dotationsFrontend/internal/interfaces/http/handlers/testutil"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/errors"
)

const testEquipmentID = "5b1f5d0e-8d0c-4a43-9c55-0c6f1d0f5a11"
const testEmployeeID = "0d7c1f5e-2b8a-4f1e-9a41-6a3f3b2f1c20"

func newTestEquipmentHandler(m *equipmentMocks) *EquipmentHandler {
	return NewEquipmentHandler(
		m.create, m.update, m.del, m.get, m.list,
		m.stats, m.byUser, m.assign, m.release,
		testutil.NewMockLogger(),
	)
}

func testEquipmentDTO() *equipmentdto.EquipmentDTO {
	return &equipmentdto.EquipmentDTO{
		ID:           testEquipmentID,
		Type:         "PC_PORTABLE",
		Brand:        "Dell",
		Model:        "Latitude 5440",
		SerialNumber: "5CG1234XYZ",
		Status:       "DISPONIBLE",
	}
}

func TestEquipmentHandler_Search(t *testing.T) {
	m := newEquipmentMocks()
	m.list.result = &equipmentdto.ListEquipmentDTO{
		Items: []*equipmentdto.EquipmentDTO{testEquipmentDTO()},
		Total: 41,
	}
	h := newTestEquipmentHandler(m)

	c, w := testutil.NewTestContext(http.MethodGet, "/equipment", nil)
	testutil.SetQueryParams(c, map[string]string{
		"query":  "dell",
		"status": "DISPONIBLE",
		"page":   "3",
		"limit":  "20",
	})

	h.Search(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, m.list.got)
	assert.Equal(t, "dell", m.list.got.Query)
	assert.Equal(t, "DISPONIBLE", m.list.got.Status)
	assert.Equal(t, 3, m.list.got.Page)
	assert.Equal(t, 20, m.list.got.Limit)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var list testutil.ListData
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	assert.Equal(t, int64(41), list.Pagination.Total)
	assert.Equal(t, 3, list.Pagination.TotalPages)
}

func TestEquipmentHandler_Available(t *testing.T) {
	m := newEquipmentMocks()
	m.list.result = &equipmentdto.ListEquipmentDTO{Items: []*equipmentdto.EquipmentDTO{testEquipmentDTO()}}
	h := newTestEquipmentHandler(m)

	c, w := testutil.NewTestContext(http.MethodGet, "/equipment/available", nil)
	h.Available(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "DISPONIBLE", m.list.got.Status)
	assert.Zero(t, m.list.got.Limit)
}

func TestEquipmentHandler_Get(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		ucErr      error
		wantStatus int
		wantCalled bool
	}{
		{name: "found", id: testEquipmentID, wantStatus: http.StatusOK, wantCalled: true},
		{name: "not found", id: testEquipmentID, ucErr: errors.NewNotFoundError("equipment not found"), wantStatus: http.StatusNotFound, wantCalled: true},
		{name: "malformed id", id: "42", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newEquipmentMocks()
			m.get.result = testEquipmentDTO()
			m.get.err = tt.ucErr
			h := newTestEquipmentHandler(m)

			c, w := testutil.NewTestContext(http.MethodGet, "/equipment/"+tt.id, nil)
			testutil.SetURLParam(c, "id", tt.id)
			h.Get(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCalled, m.get.gotID != "")
		})
	}
}

func TestEquipmentHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]any
		wantStatus int
	}{
		{
			name: "valid",
			body: map[string]any{
				"type":         "PC_PORTABLE",
				"brand":        "Dell",
				"model":        "Latitude 5440",
				"serialNumber": "5CG1234XYZ",
				"jiraAssetId":  "1042",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "unknown type",
			body: map[string]any{
				"type":         "IMPRIMANTE",
				"brand":        "HP",
				"model":        "M404",
				"serialNumber": "X1",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "blank serial number",
			body: map[string]any{
				"type":         "ECRAN",
				"brand":        "Dell",
				"model":        "P2422H",
				"serialNumber": "   ",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown status",
			body: map[string]any{
				"type":         "ECRAN",
				"brand":        "Dell",
				"model":        "P2422H",
				"serialNumber": "CN0X",
				"status":       "VENDU",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newEquipmentMocks()
			m.create.result = testEquipmentDTO()
			h := newTestEquipmentHandler(m)

			c, w := testutil.NewTestContext(http.MethodPost, "/equipment", tt.body)
			h.Create(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusCreated {
				require.NotNil(t, m.create.got)
				assert.Equal(t, "1042", m.create.got.JiraAssetID)
			} else {
				assert.Nil(t, m.create.got)
			}
		})
	}
}

func TestEquipmentHandler_Create_Conflict(t *testing.T) {
	m := newEquipmentMocks()
	m.create.err = errors.NewConflictError("serial number already exists")
	h := newTestEquipmentHandler(m)

	c, w := testutil.NewTestContext(http.MethodPost, "/equipment", map[string]any{
		"type":         "PC_PORTABLE",
		"brand":        "Dell",
		"model":        "Latitude 5440",
		"serialNumber": "5CG1234XYZ",
	})
	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "conflict", resp.Error.Type)
}

func TestEquipmentHandler_Update_PartialFields(t *testing.T) {
	m := newEquipmentMocks()
	m.update.result = testEquipmentDTO()
	h := newTestEquipmentHandler(m)

	c, w := testutil.NewTestContext(http.MethodPut, "/equipment/"+testEquipmentID, map[string]any{
		"location": "Paris - 3e",
	})
	testutil.SetURLParam(c, "id", testEquipmentID)
	h.Update(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, m.update.got)
	assert.Equal(t, testEquipmentID, m.update.got.ID)
	require.NotNil(t, m.update.got.Location)
	assert.Equal(t, "Paris - 3e", *m.update.got.Location)
	assert.Nil(t, m.update.got.Brand)
	assert.Nil(t, m.update.got.Status)
}

func TestEquipmentHandler_Assign(t *testing.T) {
	m := newEquipmentMocks()
	m.assign.result = testEquipmentDTO()
	h := newTestEquipmentHandler(m)

	c, w := testutil.NewTestContext(http.MethodPost, "/equipment/"+testEquipmentID+"/assign", map[string]any{"userId": testEmployeeID})
	testutil.SetURLParam(c, "id", testEquipmentID)
	h.Assign(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testEquipmentID, m.assign.got.ID)
	assert.Equal(t, testEmployeeID, m.assign.got.UserID)
}

func TestEquipmentHandler_Assign_MissingUser(t *testing.T) {
	m := newEquipmentMocks()
	h := newTestEquipmentHandler(m)

	c, w := testutil.NewTestContext(http.MethodPost, "/equipment/"+testEquipmentID+"/assign", map[string]any{})
	testutil.SetURLParam(c, "id", testEquipmentID)
	h.Assign(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, m.assign.got)
}

func TestEquipmentHandler_Delete(t *testing.T) {
	m := newEquipmentMocks()
	h := newTestEquipmentHandler(m)

	c, _ := testutil.NewTestContext(http.MethodDelete, "/equipment/"+testEquipmentID, nil)
	testutil.SetURLParam(c, "id", testEquipmentID)
	h.Delete(c)

	assert.Equal(t, http.StatusNoContent, c.Writer.Status())
	assert.Equal(t, testEquipmentID, m.del.gotID)
}

func TestEquipmentHandler_ByUser(t *testing.T) {
	m := newEquipmentMocks()
	m.byUser.result = []*equipmentdto.EquipmentDTO{testEquipmentDTO()}
	h := newTestEquipmentHandler(m)

	c, w := testutil.NewTestContext(http.MethodGet, "/equipment/user/"+testEmployeeID, nil)
	testutil.SetURLParam(c, "userId", testEmployeeID)
	h.ByUser(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testEmployeeID, m.byUser.gotUserID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var items []equipmentdto.EquipmentDTO
	require.NoError(t, json.Unmarshal(resp.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "5CG1234XYZ", items[0].SerialNumber)
}
