package http

import (
	"time"

	allocationUsecases "github.com/GithubESPI/dotationsFrontend/internal/application/allocation/usecases"
	employeeUsecases "github.com/GithubESPI/dotationsFrontend/internal/application/employee/usecases"
	equipmentUsecases "github.com/GithubESPI/dotationsFrontend/internal/application/equipment/usecases"
	jiraDTO "github.com/GithubESPI/dotationsFrontend/internal/application/jiraasset/dto"
	jiraUsecases "github.com/GithubESPI/dotationsFrontend/internal/application/jiraasset/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Equipment
	createEquipment   *equipmentUsecases.CreateEquipmentUseCase
	updateEquipment   *equipmentUsecases.UpdateEquipmentUseCase
	deleteEquipment   *equipmentUsecases.DeleteEquipmentUseCase
	getEquipment      *equipmentUsecases.GetEquipmentUseCase
	listEquipment     *equipmentUsecases.ListEquipmentUseCase
	equipmentStats    *equipmentUsecases.GetEquipmentStatsUseCase
	userEquipment     *equipmentUsecases.GetUserEquipmentUseCase
	assignEquipment   *equipmentUsecases.AssignEquipmentUseCase
	releaseEquipment  *equipmentUsecases.ReleaseEquipmentUseCase

	// Allocation
	createAllocation  *allocationUsecases.CreateAllocationUseCase
	updateAllocation  *allocationUsecases.UpdateAllocationUseCase
	signAllocation    *allocationUsecases.SignAllocationUseCase
	cancelAllocation  *allocationUsecases.CancelAllocationUseCase
	getAllocation     *allocationUsecases.GetAllocationUseCase
	listAllocations   *allocationUsecases.ListAllocationsUseCase
	userAllocations   *allocationUsecases.GetUserAllocationsUseCase
	allAllocations    *allocationUsecases.ListAllAllocationsUseCase
	allocationStats   *allocationUsecases.GetAllocationStatsUseCase
	markOverdue       *allocationUsecases.MarkOverdueAllocationsUseCase

	// Return
	createReturn      *allocationUsecases.CreateReturnUseCase
	userReturns       *allocationUsecases.GetUserReturnsUseCase
	allocationReturns *allocationUsecases.GetAllocationReturnsUseCase
	returnStats       *allocationUsecases.GetReturnStatsUseCase

	// Employee
	listEmployees      *employeeUsecases.ListEmployeesUseCase
	activeEmployees    *employeeUsecases.ListActiveEmployeesUseCase
	getEmployee        *employeeUsecases.GetEmployeeUseCase
	employeeStats      *employeeUsecases.GetEmployeeStatsUseCase
	updateEmployee     *employeeUsecases.UpdateEmployeeUseCase
	upsertEmployees    *employeeUsecases.UpsertEmployeesUseCase
	deactivateEmployee *employeeUsecases.DeactivateEmployeeUseCase

	// Jira Assets
	mappingResolver  *jiraUsecases.MappingResolver
	workspace        *jiraUsecases.GetWorkspaceUseCase
	objectTypeAssets *jiraUsecases.GetObjectTypeAssetsUseCase
	searchAssets     *jiraUsecases.SearchAssetsUseCase
	getAsset         *jiraUsecases.GetAssetUseCase
	detectMapping    *jiraUsecases.DetectMappingUseCase
	selectAsset      *jiraUsecases.SelectAssetUseCase
	syncAssets       *jiraUsecases.SyncAssetsUseCase
	syncSchema       *jiraUsecases.SyncSchemaUseCase
	scheduledSync    *jiraUsecases.ScheduledSyncJob
}

func (c *Container) newUseCases() *allUseCases {
	cfg := c.cfg
	log := c.log
	repos := c.repos

	ucs := &allUseCases{
		createEquipment:  equipmentUsecases.NewCreateEquipmentUseCase(repos.equipmentRepo, log),
		updateEquipment:  equipmentUsecases.NewUpdateEquipmentUseCase(repos.equipmentRepo, log),
		deleteEquipment:  equipmentUsecases.NewDeleteEquipmentUseCase(repos.equipmentRepo, log),
		getEquipment:     equipmentUsecases.NewGetEquipmentUseCase(repos.equipmentRepo, log),
		listEquipment:    equipmentUsecases.NewListEquipmentUseCase(repos.equipmentRepo, log),
		equipmentStats:   equipmentUsecases.NewGetEquipmentStatsUseCase(repos.equipmentRepo, log),
		userEquipment:    equipmentUsecases.NewGetUserEquipmentUseCase(repos.equipmentRepo, log),
		assignEquipment:  equipmentUsecases.NewAssignEquipmentUseCase(repos.equipmentRepo, log),
		releaseEquipment: equipmentUsecases.NewReleaseEquipmentUseCase(repos.equipmentRepo, log),

		createAllocation: allocationUsecases.NewCreateAllocationUseCase(
			repos.allocationRepo, repos.equipmentRepo, repos.employeeRepo,
			c.txManager, cfg.Allocation.StandardSoftware, log,
		),
		updateAllocation: allocationUsecases.NewUpdateAllocationUseCase(repos.allocationRepo, log),
		signAllocation:   allocationUsecases.NewSignAllocationUseCase(repos.allocationRepo, c.notifier, log),
		cancelAllocation: allocationUsecases.NewCancelAllocationUseCase(repos.allocationRepo, repos.equipmentRepo, c.txManager, log),
		getAllocation:    allocationUsecases.NewGetAllocationUseCase(repos.allocationRepo, log),
		listAllocations:  allocationUsecases.NewListAllocationsUseCase(repos.allocationRepo, log),
		userAllocations:  allocationUsecases.NewGetUserAllocationsUseCase(repos.allocationRepo, log),
		allAllocations:   allocationUsecases.NewListAllAllocationsUseCase(repos.allocationRepo, log),
		allocationStats:  allocationUsecases.NewGetAllocationStatsUseCase(repos.allocationRepo, log),
		markOverdue:      allocationUsecases.NewMarkOverdueAllocationsUseCase(repos.allocationRepo, cfg.Allocation.OverdueAfterDays, log),

		createReturn: allocationUsecases.NewCreateReturnUseCase(
			repos.allocationRepo, repos.returnRepo, repos.equipmentRepo,
			c.txManager, c.notifier, log,
		),
		userReturns:       allocationUsecases.NewGetUserReturnsUseCase(repos.returnRepo, log),
		allocationReturns: allocationUsecases.NewGetAllocationReturnsUseCase(repos.returnRepo, log),
		returnStats:       allocationUsecases.NewGetReturnStatsUseCase(repos.returnRepo, log),

		listEmployees:      employeeUsecases.NewListEmployeesUseCase(repos.employeeRepo, log),
		activeEmployees:    employeeUsecases.NewListActiveEmployeesUseCase(repos.employeeRepo, log),
		getEmployee:        employeeUsecases.NewGetEmployeeUseCase(repos.employeeRepo, log),
		employeeStats:      employeeUsecases.NewGetEmployeeStatsUseCase(repos.employeeRepo, log),
		updateEmployee:     employeeUsecases.NewUpdateEmployeeUseCase(repos.employeeRepo, log),
		upsertEmployees:    employeeUsecases.NewUpsertEmployeesUseCase(repos.employeeRepo, log),
		deactivateEmployee: employeeUsecases.NewDeactivateEmployeeUseCase(repos.employeeRepo, log),
	}

	jiraLog := log.Named("jira")
	defaults := jiraUsecases.Defaults{
		SchemaName:     cfg.Jira.DefaultSchema,
		ObjectTypeName: cfg.Jira.DefaultObjectType,
	}
	ucs.mappingResolver = jiraUsecases.NewMappingResolver(
		c.jiraSource,
		c.mappingStore,
		jiraDTO.MappingsFromConfig(cfg.Jira.Mappings),
		time.Duration(cfg.Jira.MappingTTLMinutes)*time.Minute,
		jiraLog,
	)
	ucs.workspace = jiraUsecases.NewGetWorkspaceUseCase(c.jiraSource, jiraLog)
	ucs.objectTypeAssets = jiraUsecases.NewGetObjectTypeAssetsUseCase(c.jiraSource, ucs.mappingResolver, defaults, jiraLog)
	ucs.searchAssets = jiraUsecases.NewSearchAssetsUseCase(c.jiraSource, jiraLog)
	ucs.getAsset = jiraUsecases.NewGetAssetUseCase(c.jiraSource, jiraLog)
	ucs.detectMapping = jiraUsecases.NewDetectMappingUseCase(ucs.mappingResolver, defaults, jiraLog)
	ucs.selectAsset = jiraUsecases.NewSelectAssetUseCase(c.jiraSource, ucs.mappingResolver, repos.equipmentRepo, defaults, jiraLog)
	ucs.syncAssets = jiraUsecases.NewSyncAssetsUseCase(c.jiraSource, ucs.mappingResolver, repos.equipmentRepo, defaults, jiraLog)
	ucs.syncSchema = jiraUsecases.NewSyncSchemaUseCase(ucs.syncAssets)
	ucs.scheduledSync = jiraUsecases.NewScheduledSyncJob(ucs.syncAssets, jiraLog)

	return ucs
}
