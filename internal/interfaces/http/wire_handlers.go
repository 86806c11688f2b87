package http

import (
	"context"

	"github.com/GithubESPI/dotationsFrontend/internal/interfaces/http/handlers"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	equipmentHandler  *handlers.EquipmentHandler
	allocationHandler *handlers.AllocationHandler
	returnHandler     *handlers.ReturnHandler
	employeeHandler   *handlers.EmployeeHandler
	jiraAssetHandler  *handlers.JiraAssetHandler

	profileHandler *handlers.ProfileHandler
	healthHandler  *handlers.HealthHandler
}

func (c *Container) newHandlers() *allHandlers {
	log := c.log
	ucs := c.ucs

	return &allHandlers{
		equipmentHandler: handlers.NewEquipmentHandler(
			ucs.createEquipment,
			ucs.updateEquipment,
			ucs.deleteEquipment,
			ucs.getEquipment,
			ucs.listEquipment,
			ucs.equipmentStats,
			ucs.userEquipment,
			ucs.assignEquipment,
			ucs.releaseEquipment,
			log,
		),
		allocationHandler: handlers.NewAllocationHandler(
			ucs.createAllocation,
			ucs.updateAllocation,
			ucs.signAllocation,
			ucs.cancelAllocation,
			ucs.getAllocation,
			ucs.listAllocations,
			ucs.userAllocations,
			ucs.allAllocations,
			ucs.allocationStats,
			log,
		),
		returnHandler: handlers.NewReturnHandler(
			ucs.createReturn,
			ucs.userReturns,
			ucs.allocationReturns,
			ucs.returnStats,
			log,
		),
		employeeHandler: handlers.NewEmployeeHandler(
			ucs.listEmployees,
			ucs.activeEmployees,
			ucs.getEmployee,
			ucs.employeeStats,
			ucs.updateEmployee,
			ucs.upsertEmployees,
			ucs.deactivateEmployee,
			log,
		),
		jiraAssetHandler: handlers.NewJiraAssetHandler(
			ucs.workspace,
			ucs.objectTypeAssets,
			ucs.searchAssets,
			ucs.getAsset,
			ucs.detectMapping,
			ucs.selectAsset,
			ucs.syncAssets,
			ucs.syncSchema,
			log,
		),
		profileHandler: handlers.NewProfileHandler(c.enforcer, log),
		healthHandler:  handlers.NewHealthHandler(c.healthChecks(), log),
	}
}

// healthChecks lists the dependencies reported by /health.
func (c *Container) healthChecks() map[string]handlers.Pinger {
	checks := map[string]handlers.Pinger{
		"database": handlers.PingFunc(func(ctx context.Context) error {
			sqlDB, err := c.db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}),
	}
	if c.redis != nil {
		checks["redis"] = handlers.PingFunc(func(ctx context.Context) error {
			return c.redis.Ping(ctx).Err()
		})
	}
	return checks
}
