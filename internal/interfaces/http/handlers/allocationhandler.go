package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	allocationdto "github.com/GithubESPI/dotationsFrontend/internal/application/allocation/dto"
	"github.com/GithubESPI/dotationsFrontend/internal/application/allocation/usecases"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/allocation"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/biztime"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/constants"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/errors"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/utils"
)

var _ = allocationdto.AllocationDTO{}

type AllocationHandler struct {
	createUC usecases.CreateAllocationExecutor
	updateUC usecases.UpdateAllocationExecutor
	signUC   usecases.SignAllocationExecutor
	cancelUC usecases.CancelAllocationExecutor
	getUC    usecases.GetAllocationExecutor
	listUC   usecases.ListAllocationsExecutor
	byUserUC usecases.GetUserAllocationsExecutor
	allUC    usecases.ListAllAllocationsExecutor
	statsUC  usecases.GetAllocationStatsExecutor
	logger   logger.Interface
}

func NewAllocationHandler(
	createUC usecases.CreateAllocationExecutor,
	updateUC usecases.UpdateAllocationExecutor,
	signUC usecases.SignAllocationExecutor,
	cancelUC usecases.CancelAllocationExecutor,
	getUC usecases.GetAllocationExecutor,
	listUC usecases.ListAllocationsExecutor,
	byUserUC usecases.GetUserAllocationsExecutor,
	allUC usecases.ListAllAllocationsExecutor,
	statsUC usecases.GetAllocationStatsExecutor,
	logger logger.Interface,
) *AllocationHandler {
	RegisterValidators()
	return &AllocationHandler{
		createUC: createUC,
		updateUC: updateUC,
		signUC:   signUC,
		cancelUC: cancelUC,
		getUC:    getUC,
		listUC:   listUC,
		byUserUC: byUserUC,
		allUC:    allUC,
		statsUC:  statsUC,
		logger:   logger,
	}
}

// AllocationItemRequest is one line of a new allocation. It names a local
// equipment or carries a serial number, typically from a picked Jira asset.
type AllocationItemRequest struct {
	EquipmentID   string `json:"equipmentId"`
	InternalID    string `json:"internalId"`
	Type          string `json:"type"`
	Brand         string `json:"brand"`
	Model         string `json:"model"`
	SerialNumber  string `json:"serialNumber" binding:"required_without=EquipmentID"`
	JiraAssetID   string `json:"jiraAssetId"`
	DeliveredDate string `json:"deliveredDate"`
	Condition     string `json:"condition" binding:"return_condition"`
}

type CreateAllocationRequest struct {
	UserID             string                  `json:"userId" binding:"required,notblank"`
	Equipments         []AllocationItemRequest `json:"equipments" binding:"required,min=1,dive"`
	DeliveryDate       string                  `json:"deliveryDate"`
	Accessories        []string                `json:"accessories"`
	AdditionalSoftware []string                `json:"additionalSoftware"`
	Services           []string                `json:"services"`
	Notes              string                  `json:"notes"`
}

type UpdateAllocationRequest struct {
	Accessories        []string `json:"accessories"`
	AdditionalSoftware []string `json:"additionalSoftware"`
	Services           []string `json:"services"`
	Notes              *string  `json:"notes"`
}

type SignAllocationRequest struct {
	SignerName     string `json:"signerName" binding:"required,notblank"`
	SignatureImage string `json:"signatureImage" binding:"required,notblank"`
}

// Search handles GET /allocations
//
//	@Summary	Search allocations
//	@Tags		allocations
//	@Produce	json
//	@Security	Bearer
//	@Param		query		query		string	false	"Reference, employee name or email"
//	@Param		userId		query		string	false	"Employee id"
//	@Param		status		query		string	false	"EN_COURS, TERMINEE, EN_RETARD or ANNULEE"
//	@Param		startDate	query		string	false	"Delivered on or after (YYYY-MM-DD)"
//	@Param		endDate		query		string	false	"Delivered on or before (YYYY-MM-DD)"
//	@Param		page		query		int		false	"Page"	default(1)
//	@Param		limit		query		int		false	"Page size"	default(20)
//	@Success	200			{object}	utils.APIResponse
//	@Failure	400			{object}	utils.APIResponse
//	@Router		/allocations [get]
func (h *AllocationHandler) Search(c *gin.Context) {
	start, err := utils.ParseQueryDate(c, "startDate")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	end, err := utils.ParseQueryDate(c, "endDate")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if end != nil && len(strings.TrimSpace(c.Query("endDate"))) == len(time.DateOnly) {
		eod := biztime.EndOfDayUTC(*end)
		end = &eod
	}

	p := utils.ParsePagination(c)
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListAllocationsQuery{
		Query:     c.Query("query"),
		UserID:    c.Query("userId"),
		Status:    c.Query("status"),
		StartDate: start,
		EndDate:   end,
		Page:      p.Page,
		Limit:     p.Limit,
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Items, result.Total, p.Page, p.Limit)
}

// All handles GET /allocations/all
//
//	@Summary	List every allocation
//	@Tags		allocations
//	@Produce	json
//	@Security	Bearer
//	@Success	200	{object}	utils.APIResponse
//	@Router		/allocations/all [get]
func (h *AllocationHandler) All(c *gin.Context) {
	result, err := h.allUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Stats handles GET /allocations/stats
//
//	@Summary	Allocation statistics
//	@Tags		allocations
//	@Produce	json
//	@Security	Bearer
//	@Success	200	{object}	utils.APIResponse{data=allocationdto.AllocationStatsDTO}
//	@Router		/allocations/stats [get]
func (h *AllocationHandler) Stats(c *gin.Context) {
	result, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Get handles GET /allocations/:id
//
//	@Summary	Get allocation
//	@Tags		allocations
//	@Produce	json
//	@Security	Bearer
//	@Param		id	path		string	true	"Allocation id"
//	@Success	200	{object}	utils.APIResponse{data=allocationdto.AllocationDTO}
//	@Failure	404	{object}	utils.APIResponse
//	@Router		/allocations/{id} [get]
func (h *AllocationHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "allocation")
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

// ByUser handles GET /allocations/user/:userId
//
//	@Summary	Allocations of an employee
//	@Tags		allocations
//	@Produce	json
//	@Security	Bearer
//	@Param		userId	path		string	true	"Employee id"
//	@Success	200		{object}	utils.APIResponse
//	@Router		/allocations/user/{userId} [get]
func (h *AllocationHandler) ByUser(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "userId", "employee")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	result, err := h.byUserUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Create handles POST /allocations
//
//	@Summary		Create allocation
//	@Description	Resolves every line to a local equipment, creating the ones picked from Jira, and assigns them to the employee.
//	@Tags			allocations
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			allocation	body		CreateAllocationRequest	true	"Allocation"
//	@Success		201			{object}	utils.APIResponse{data=allocationdto.AllocationDTO}
//	@Failure		400			{object}	utils.APIResponse
//	@Failure		404			{object}	utils.APIResponse	"Employee or equipment not found"
//	@Failure		409			{object}	utils.APIResponse	"Equipment already allocated"
//	@Router			/allocations [post]
func (h *AllocationHandler) Create(c *gin.Context) {
	var req CreateAllocationRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create allocation", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	deliveryDate, err := parseBodyDate("deliveryDate", req.DeliveryDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]allocation.ItemRequest, 0, len(req.Equipments))
	for _, line := range req.Equipments {
		delivered, err := parseBodyDate("deliveredDate", line.DeliveredDate)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		items = append(items, allocation.ItemRequest{
			EquipmentID:   line.EquipmentID,
			InternalID:    line.InternalID,
			Type:          line.Type,
			Brand:         line.Brand,
			Model:         line.Model,
			SerialNumber:  line.SerialNumber,
			JiraAssetID:   line.JiraAssetID,
			DeliveredDate: delivered,
			Condition:     line.Condition,
		})
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateAllocationCommand{
		UserID:             req.UserID,
		Items:              items,
		DeliveryDate:       deliveryDate,
		Accessories:        req.Accessories,
		AdditionalSoftware: req.AdditionalSoftware,
		Services:           req.Services,
		Notes:              req.Notes,
		CreatedBy:          c.GetString(constants.ContextKeyUserEmail),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Allocation created successfully")
}

// Update handles PUT /allocations/:id
//
//	@Summary	Update allocation extras
//	@Tags		allocations
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		id			path		string					true	"Allocation id"
//	@Param		allocation	body		UpdateAllocationRequest	true	"Fields to change"
//	@Success	200			{object}	utils.APIResponse{data=allocationdto.AllocationDTO}
//	@Failure	409			{object}	utils.APIResponse	"Allocation is closed"
//	@Router		/allocations/{id} [put]
func (h *AllocationHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "allocation")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateAllocationRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateAllocationCommand{
		ID:                 id,
		Accessories:        req.Accessories,
		AdditionalSoftware: req.AdditionalSoftware,
		Services:           req.Services,
		Notes:              req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Allocation updated successfully", result)
}

// Sign handles POST /allocations/:id/sign
//
//	@Summary	Sign allocation
//	@Tags		allocations
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		id			path		string					true	"Allocation id"
//	@Param		signature	body		SignAllocationRequest	true	"Signature"
//	@Success	200			{object}	utils.APIResponse{data=allocationdto.AllocationDTO}
//	@Failure	409			{object}	utils.APIResponse	"Already signed"
//	@Router		/allocations/{id}/sign [post]
func (h *AllocationHandler) Sign(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "allocation")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SignAllocationRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.signUC.Execute(c.Request.Context(), usecases.SignAllocationCommand{
		ID:             id,
		SignerName:     req.SignerName,
		SignatureImage: req.SignatureImage,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Allocation signed successfully", result)
}

// Cancel handles POST /allocations/:id/cancel
//
//	@Summary	Cancel allocation
//	@Tags		allocations
//	@Produce	json
//	@Security	Bearer
//	@Param		id	path		string	true	"Allocation id"
//	@Success	200	{object}	utils.APIResponse{data=allocationdto.AllocationDTO}
//	@Failure	409	{object}	utils.APIResponse
//	@Router		/allocations/{id}/cancel [post]
func (h *AllocationHandler) Cancel(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "allocation")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	result, err := h.cancelUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Allocation cancelled", result)
}

func parseBodyDate(field, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := biztime.ParseDate(raw)
	if err != nil {
		return nil, errors.NewValidationError(field + " must be a date (YYYY-MM-DD)")
	}
	return &t, nil
}
