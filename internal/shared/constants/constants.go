package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys set by the auth middleware
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyUserEmail = "user_email"

	// Jira Assets
	JiraDefaultSearchLimit = 50
	JiraMaxSearchLimit     = 1000
	JiraDefaultSyncLimit   = 1000
	JiraMaxSyncLimit       = 10000

	TableEquipments           = "equipments"
	TableAllocations          = "allocations"
	TableAllocationEquipments = "allocation_equipments"
	TableAllocationReturns    = "allocation_returns"
	TableEmployees            = "employees"
)
