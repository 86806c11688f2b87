package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	employeedto "github.com/GithubESPI/dotationsFrontend/internal/application/employee/dto"
	"github.com/GithubESPI/dotationsFrontend/internal/application/employee/usecases"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/employee"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/utils"
)

var _ = employeedto.EmployeeDTO{}

type EmployeeHandler struct {
	listUC       usecases.ListEmployeesExecutor
	listActiveUC usecases.ListActiveEmployeesExecutor
	getUC        usecases.GetEmployeeExecutor
	statsUC      usecases.GetEmployeeStatsExecutor
	updateUC     usecases.UpdateEmployeeExecutor
	upsertUC     usecases.UpsertEmployeesExecutor
	deactivateUC usecases.DeactivateEmployeeExecutor
	logger       logger.Interface
}

func NewEmployeeHandler(
	listUC usecases.ListEmployeesExecutor,
	listActiveUC usecases.ListActiveEmployeesExecutor,
	getUC usecases.GetEmployeeExecutor,
	statsUC usecases.GetEmployeeStatsExecutor,
	updateUC usecases.UpdateEmployeeExecutor,
	upsertUC usecases.UpsertEmployeesExecutor,
	deactivateUC usecases.DeactivateEmployeeExecutor,
	logger logger.Interface,
) *EmployeeHandler {
	return &EmployeeHandler{
		listUC:       listUC,
		listActiveUC: listActiveUC,
		getUC:        getUC,
		statsUC:      statsUC,
		updateUC:     updateUC,
		upsertUC:     upsertUC,
		deactivateUC: deactivateUC,
		logger:       logger,
	}
}

type UpdateEmployeeRequest struct {
	JobTitle       *string `json:"jobTitle"`
	Department     *string `json:"department"`
	OfficeLocation *string `json:"officeLocation"`
	MobilePhone    *string `json:"mobilePhone"`
}

// DirectoryEntryRequest is one user as exported from the company directory.
type DirectoryEntryRequest struct {
	Office365ID string `json:"office365Id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	employee.Profile
}

type ImportEmployeesRequest struct {
	Employees []DirectoryEntryRequest `json:"employees" binding:"required,min=1,max=5000"`
}

// Search handles GET /employees
//
//	@Summary	Search employees
//	@Tags		employees
//	@Produce	json
//	@Security	Bearer
//	@Param		query			query		string	false	"Name, email or job title"
//	@Param		department		query		string	false	"Department"
//	@Param		officeLocation	query		string	false	"Office"
//	@Param		isActive		query		bool	false	"Active flag"
//	@Param		page			query		int		false	"Page"	default(1)
//	@Param		limit			query		int		false	"Page size"	default(20)
//	@Success	200				{object}	utils.APIResponse
//	@Router		/employees [get]
func (h *EmployeeHandler) Search(c *gin.Context) {
	isActive, err := utils.ParseQueryBool(c, "isActive")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p := utils.ParsePagination(c)
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListEmployeesQuery{
		Query:          c.Query("query"),
		Department:     c.Query("department"),
		OfficeLocation: c.Query("officeLocation"),
		IsActive:       isActive,
		Page:           p.Page,
		Limit:          p.Limit,
		SortBy:         c.Query("sortBy"),
		SortOrder:      c.Query("sortOrder"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Items, result.Total, p.Page, p.Limit)
}

// All handles GET /employees/all
//
//	@Summary	List active employees
//	@Tags		employees
//	@Produce	json
//	@Security	Bearer
//	@Success	200	{object}	utils.APIResponse
//	@Router		/employees/all [get]
func (h *EmployeeHandler) All(c *gin.Context) {
	result, err := h.listActiveUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Stats handles GET /employees/stats
//
//	@Summary	Employee statistics
//	@Tags		employees
//	@Produce	json
//	@Security	Bearer
//	@Success	200	{object}	utils.APIResponse{data=employeedto.StatsDTO}
//	@Router		/employees/stats [get]
func (h *EmployeeHandler) Stats(c *gin.Context) {
	result, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Get handles GET /employees/:id
//
//	@Summary	Get employee
//	@Tags		employees
//	@Produce	json
//	@Security	Bearer
//	@Param		id	path		string	true	"Employee id"
//	@Success	200	{object}	utils.APIResponse{data=employeedto.EmployeeDTO}
//	@Failure	404	{object}	utils.APIResponse
//	@Router		/employees/{id} [get]
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "employee")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	result, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Update handles PUT /employees/:id
//
//	@Summary		Update employee contact fields
//	@Description	Only local fields are editable. Identity comes from the directory import.
//	@Tags			employees
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			id			path		string					true	"Employee id"
//	@Param			employee	body		UpdateEmployeeRequest	true	"Fields to change"
//	@Success		200			{object}	utils.APIResponse{data=employeedto.EmployeeDTO}
//	@Router			/employees/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "employee")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateEmployeeRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateEmployeeCommand{
		ID:             id,
		JobTitle:       req.JobTitle,
		Department:     req.Department,
		OfficeLocation: req.OfficeLocation,
		MobilePhone:    req.MobilePhone,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Employee updated successfully", result)
}

// Import handles POST /employees/import
//
//	@Summary	Import directory users
//	@Tags		employees
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		batch	body		ImportEmployeesRequest	true	"Directory users"
//	@Success	200		{object}	utils.APIResponse{data=employeedto.UpsertResultDTO}
//	@Router		/employees/import [post]
func (h *EmployeeHandler) Import(c *gin.Context) {
	var req ImportEmployeesRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	entries := make([]usecases.DirectoryEntry, 0, len(req.Employees))
	for _, e := range req.Employees {
		entries = append(entries, usecases.DirectoryEntry{
			Office365ID: e.Office365ID,
			Email:       e.Email,
			DisplayName: e.DisplayName,
			Profile:     e.Profile,
		})
	}

	result, err := h.upsertUC.Execute(c.Request.Context(), usecases.UpsertEmployeesCommand{Entries: entries})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Employees imported", result)
}

// Deactivate handles POST /employees/:id/deactivate
//
//	@Summary	Deactivate employee
//	@Tags		employees
//	@Produce	json
//	@Security	Bearer
//	@Param		id	path		string	true	"Employee id"
//	@Success	200	{object}	utils.APIResponse{data=employeedto.EmployeeDTO}
//	@Router		/employees/{id}/deactivate [post]
func (h *EmployeeHandler) Deactivate(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "employee")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	result, err := h.deactivateUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Employee deactivated", result)
}
