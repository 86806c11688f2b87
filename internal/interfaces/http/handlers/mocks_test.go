package handlers

import (
	"context"

	allocationdto "github.com/GithubESPI/dotationsFrontend/internal/application/allocation/dto"
	allocationuc "github.com/GithubESPI/dotationsFrontend/internal/application/allocation/usecases"
	employeedto "github.com/GithubESPI/dotationsFrontend/internal/application/employee/dto"
	employeeuc "github.com/GithubESPI/dotationsFrontend/internal/application/employee/usecases"
	equipmentdto "github.com/GithubESPI/dotationsFrontend/internal/application/equipment/dto"
	equipmentuc "github.com/GithubESPI/dotationsFrontend/internal/application/equipment/usecases"
	jiradto "github.com/GithubESPI/dotationsFrontend/internal/application/jiraasset/dto"
	jirauc "github.com/GithubESPI/dotationsFrontend/internal/application/jiraasset/usecases"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/jiraasset"
)

// =====================================================================
// Equipment use cases
// =====================================================================

type mockCreateEquipmentUC struct {
	got    *equipmentuc.CreateEquipmentCommand
	result *equipmentdto.EquipmentDTO
	err    error
}

func (m *mockCreateEquipmentUC) Execute(ctx context.Context, cmd equipmentuc.CreateEquipmentCommand) (*equipmentdto.EquipmentDTO, error) {
	m.got = &cmd
	return m.result, m.err
}

type mockUpdateEquipmentUC struct {
	got    *equipmentuc.UpdateEquipmentCommand
	result *equipmentdto.EquipmentDTO
	err    error
}

func (m *mockUpdateEquipmentUC) Execute(ctx context.Context, cmd equipmentuc.UpdateEquipmentCommand) (*equipmentdto.EquipmentDTO, error) {
	m.got = &cmd
	return m.result, m.err
}

type mockDeleteEquipmentUC struct {
	gotID string
	err   error
}

func (m *mockDeleteEquipmentUC) Execute(ctx context.Context, id string) error {
	m.gotID = id
	return m.err
}

// mockEquipmentByIDUC serves get, release and the other id-only executors.
type mockEquipmentByIDUC struct {
	gotID  string
	result *equipmentdto.EquipmentDTO
	err    error
}

func (m *mockEquipmentByIDUC) Execute(ctx context.Context, id string) (*equipmentdto.EquipmentDTO, error) {
	m.gotID = id
	return m.result, m.err
}

type mockListEquipmentUC struct {
	got    *equipmentuc.ListEquipmentQuery
	result *equipmentdto.ListEquipmentDTO
	err    error
}

func (m *mockListEquipmentUC) Execute(ctx context.Context, query equipmentuc.ListEquipmentQuery) (*equipmentdto.ListEquipmentDTO, error) {
	m.got = &query
	return m.result, m.err
}

type mockEquipmentStatsUC struct {
	result *equipmentdto.StatsDTO
	err    error
}

func (m *mockEquipmentStatsUC) Execute(ctx context.Context) (*equipmentdto.StatsDTO, error) {
	return m.result, m.err
}

type mockUserEquipmentUC struct {
	gotUserID string
	result    []*equipmentdto.EquipmentDTO
	err       error
}

func (m *mockUserEquipmentUC) Execute(ctx context.Context, userID string) ([]*equipmentdto.EquipmentDTO, error) {
	m.gotUserID = userID
	return m.result, m.err
}

type mockAssignEquipmentUC struct {
	got    *equipmentuc.AssignEquipmentCommand
	result *equipmentdto.EquipmentDTO
	err    error
}

func (m *mockAssignEquipmentUC) Execute(ctx context.Context, cmd equipmentuc.AssignEquipmentCommand) (*equipmentdto.EquipmentDTO, error) {
	m.got = &cmd
	return m.result, m.err
}

type equipmentMocks struct {
	create  *mockCreateEquipmentUC
	update  *mockUpdateEquipmentUC
	del     *mockDeleteEquipmentUC
	get     *mockEquipmentByIDUC
	list    *mockListEquipmentUC
	stats   *mockEquipmentStatsUC
	byUser  *mockUserEquipmentUC
	assign  *mockAssignEquipmentUC
	release *mockEquipmentByIDUC
}

func newEquipmentMocks() *equipmentMocks {
	return &equipmentMocks{
		create:  &mockCreateEquipmentUC{},
		update:  &mockUpdateEquipmentUC{},
		del:     &mockDeleteEquipmentUC{},
		get:     &mockEquipmentByIDUC{},
		list:    &mockListEquipmentUC{},
		stats:   &mockEquipmentStatsUC{},
		byUser:  &mockUserEquipmentUC{},
		assign:  &mockAssignEquipmentUC{},
		release: &mockEquipmentByIDUC{},
	}
}

// =====================================================================
// Allocation and return use cases
// =====================================================================

type mockCreateAllocationUC struct {
	got    *allocationuc.CreateAllocationCommand
	result *allocationdto.AllocationDTO
	err    error
}

func (m *mockCreateAllocationUC) Execute(ctx context.Context, cmd allocationuc.CreateAllocationCommand) (*allocationdto.AllocationDTO, error) {
	m.got = &cmd
	return m.result, m.err
}

type mockUpdateAllocationUC struct {
	got    *allocationuc.UpdateAllocationCommand
	result *allocationdto.AllocationDTO
	err    error
}

func (m *mockUpdateAllocationUC) Execute(ctx context.Context, cmd allocationuc.UpdateAllocationCommand) (*allocationdto.AllocationDTO, error) {
	m.got = &cmd
	return m.result, m.err
}

type mockSignAllocationUC struct {
	got    *allocationuc.SignAllocationCommand
	result *allocationdto.AllocationDTO
	err    error
}

func (m *mockSignAllocationUC) Execute(ctx context.Context, cmd allocationuc.SignAllocationCommand) (*allocationdto.AllocationDTO, error) {
	m.got = &cmd
	return m.result, m.err
}

type mockAllocationByIDUC struct {
	gotID  string
	result *allocationdto.AllocationDTO
	err    error
}

func (m *mockAllocationByIDUC) Execute(ctx context.Context, id string) (*allocationdto.AllocationDTO, error) {
	m.gotID = id
	return m.result, m.err
}

type mockListAllocationsUC struct {
	got    *allocationuc.ListAllocationsQuery
	result *allocationdto.ListAllocationsDTO
	err    error
}

func (m *mockListAllocationsUC) Execute(ctx context.Context, query allocationuc.ListAllocationsQuery) (*allocationdto.ListAllocationsDTO, error) {
	m.got = &query
	return m.result, m.err
}

type mockUserAllocationsUC struct {
	gotUserID string
	result    []*allocationdto.AllocationDTO
	err       error
}

func (m *mockUserAllocationsUC) Execute(ctx context.Context, userID string) ([]*allocationdto.AllocationDTO, error) {
	m.gotUserID = userID
	return m.result, m.err
}

type mockAllAllocationsUC struct {
	result []*allocationdto.AllocationDTO
	err    error
}

func (m *mockAllAllocationsUC) Execute(ctx context.Context) ([]*allocationdto.AllocationDTO, error) {
	return m.result, m.err
}

type mockAllocationStatsUC struct {
	result *allocationdto.AllocationStatsDTO
	err    error
}

func (m *mockAllocationStatsUC) Execute(ctx context.Context) (*allocationdto.AllocationStatsDTO, error) {
	return m.result, m.err
}

type mockCreateReturnUC struct {
	got    *allocationuc.CreateReturnCommand
	result *allocationdto.ReturnDTO
	err    error
}

func (m *mockCreateReturnUC) Execute(ctx context.Context, cmd allocationuc.CreateReturnCommand) (*allocationdto.ReturnDTO, error) {
	m.got = &cmd
	return m.result, m.err
}

// mockReturnsByKeyUC serves both the per-employee and per-allocation lookups.
type mockReturnsByKeyUC struct {
	gotKey string
	result []*allocationdto.ReturnDTO
	err    error
}

func (m *mockReturnsByKeyUC) Execute(ctx context.Context, key string) ([]*allocationdto.ReturnDTO, error) {
	m.gotKey = key
	return m.result, m.err
}

type mockReturnStatsUC struct {
	result *allocationdto.ReturnStatsDTO
	err    error
}

func (m *mockReturnStatsUC) Execute(ctx context.Context) (*allocationdto.ReturnStatsDTO, error) {
	return m.result, m.err
}

// =====================================================================
// Employee use cases
// =====================================================================

type mockListEmployeesUC struct {
	got    *employeeuc.ListEmployeesQuery
	result *employeedto.ListEmployeesDTO
	err    error
}

func (m *mockListEmployeesUC) Execute(ctx context.Context, query employeeuc.ListEmployeesQuery) (*employeedto.ListEmployeesDTO, error) {
	m.got = &query
	return m.result, m.err
}

type mockActiveEmployeesUC struct {
	result []*employeedto.EmployeeDTO
	err    error
}

func (m *mockActiveEmployeesUC) Execute(ctx context.Context) ([]*employeedto.EmployeeDTO, error) {
	return m.result, m.err
}

type mockEmployeeByIDUC struct {
	gotID  string
	result *employeedto.EmployeeDTO
	err    error
}

func (m *mockEmployeeByIDUC) Execute(ctx context.Context, id string) (*employeedto.EmployeeDTO, error) {
	m.gotID = id
	return m.result, m.err
}

type mockEmployeeStatsUC struct {
	result *employeedto.StatsDTO
	err    error
}

func (m *mockEmployeeStatsUC) Execute(ctx context.Context) (*employeedto.StatsDTO, error) {
	return m.result, m.err
}

type mockUpdateEmployeeUC struct {
	got    *employeeuc.UpdateEmployeeCommand
	result *employeedto.EmployeeDTO
	err    error
}

func (m *mockUpdateEmployeeUC) Execute(ctx context.Context, cmd employeeuc.UpdateEmployeeCommand) (*employeedto.EmployeeDTO, error) {
	m.got = &cmd
	return m.result, m.err
}

type mockUpsertEmployeesUC struct {
	got    *employeeuc.UpsertEmployeesCommand
	result *employeedto.UpsertResultDTO
	err    error
}

func (m *mockUpsertEmployeesUC) Execute(ctx context.Context, cmd employeeuc.UpsertEmployeesCommand) (*employeedto.UpsertResultDTO, error) {
	m.got = &cmd
	return m.result, m.err
}

// =====================================================================
// Jira Assets use cases
// =====================================================================

type mockWorkspaceUC struct {
	result *jiradto.WorkspaceDTO
	err    error
}

func (m *mockWorkspaceUC) Execute(ctx context.Context) (*jiradto.WorkspaceDTO, error) {
	return m.result, m.err
}

type mockObjectTypeAssetsUC struct {
	got    *jirauc.GetObjectTypeAssetsQuery
	result *jiradto.ObjectTypeAssetsDTO
	err    error
}

func (m *mockObjectTypeAssetsUC) Execute(ctx context.Context, query jirauc.GetObjectTypeAssetsQuery) (*jiradto.ObjectTypeAssetsDTO, error) {
	m.got = &query
	return m.result, m.err
}

type mockSearchAssetsUC struct {
	got    *jirauc.SearchAssetsQuery
	result *jiradto.SearchResultDTO
	err    error
}

func (m *mockSearchAssetsUC) Execute(ctx context.Context, query jirauc.SearchAssetsQuery) (*jiradto.SearchResultDTO, error) {
	m.got = &query
	return m.result, m.err
}

type mockGetAssetUC struct {
	got    *jirauc.GetAssetQuery
	result *jiradto.AssetDTO
	err    error
}

func (m *mockGetAssetUC) Execute(ctx context.Context, query jirauc.GetAssetQuery) (*jiradto.AssetDTO, error) {
	m.got = &query
	return m.result, m.err
}

type mockDetectMappingUC struct {
	got    *jirauc.DetectMappingCommand
	result *jiraasset.Detection
	err    error
}

func (m *mockDetectMappingUC) Execute(ctx context.Context, cmd jirauc.DetectMappingCommand) (*jiraasset.Detection, error) {
	m.got = &cmd
	return m.result, m.err
}

type mockSelectAssetUC struct {
	got    *jirauc.SelectAssetCommand
	result *jiradto.SelectionDTO
	err    error
}

func (m *mockSelectAssetUC) Execute(ctx context.Context, cmd jirauc.SelectAssetCommand) (*jiradto.SelectionDTO, error) {
	m.got = &cmd
	return m.result, m.err
}

type mockSyncAssetsUC struct {
	got    *jirauc.SyncAssetsCommand
	result *jiradto.SyncStatsDTO
	err    error
}

func (m *mockSyncAssetsUC) Execute(ctx context.Context, cmd jirauc.SyncAssetsCommand) (*jiradto.SyncStatsDTO, error) {
	m.got = &cmd
	return m.result, m.err
}

type mockSyncSchemaUC struct {
	got    *jirauc.SyncSchemaCommand
	result *jiradto.SyncStatsDTO
	err    error
}

func (m *mockSyncSchemaUC) Execute(ctx context.Context, cmd jirauc.SyncSchemaCommand) (*jiradto.SyncStatsDTO, error) {
	m.got = &cmd
	return m.result, m.err
}

// =====================================================================
// Permissions
// =====================================================================

type stubEnforcer struct {
	permissions [][]string
	err         error
}

func (s *stubEnforcer) Enforce(role, resource, action string) (bool, error) { return true, nil }
func (s *stubEnforcer) AddPolicy(role, resource, action string) error       { return nil }
func (s *stubEnforcer) RemovePolicy(role, resource, action string) error    { return nil }
func (s *stubEnforcer) LoadPolicy() error                                   { return nil }
func (s *stubEnforcer) GetPermissionsForRole(role string) ([][]string, error) {
	return s.permissions, s.err
}
