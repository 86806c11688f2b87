package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	allocationdto "github.com/GithubESPI/dotationsFrontend/internal/application/allocation/dto"
	"github.com/GithubESPI/dotationsFrontend/internal/application/allocation/usecases"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/constants"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/utils"
)

var _ = allocationdto.ReturnDTO{}

type ReturnHandler struct {
	createUC       usecases.CreateReturnExecutor
	byUserUC       usecases.GetUserReturnsExecutor
	byAllocationUC usecases.GetAllocationReturnsExecutor
	statsUC        usecases.GetReturnStatsExecutor
	logger         logger.Interface
}

func NewReturnHandler(
	createUC usecases.CreateReturnExecutor,
	byUserUC usecases.GetUserReturnsExecutor,
	byAllocationUC usecases.GetAllocationReturnsExecutor,
	statsUC usecases.GetReturnStatsExecutor,
	logger logger.Interface,
) *ReturnHandler {
	RegisterValidators()
	return &ReturnHandler{
		createUC:       createUC,
		byUserUC:       byUserUC,
		byAllocationUC: byAllocationUC,
		statsUC:        statsUC,
		logger:         logger,
	}
}

type ReturnedEquipmentRequest struct {
	EquipmentID  string   `json:"equipmentId" binding:"required,notblank"`
	InternalID   string   `json:"internalId"`
	SerialNumber string   `json:"serialNumber"`
	Condition    string   `json:"condition" binding:"required,return_condition"`
	Notes        string   `json:"notes"`
	Photos       []string `json:"photos"`
}

type CreateReturnRequest struct {
	AllocationID       string                     `json:"allocationId" binding:"required,uuid"`
	EquipmentsReturned []ReturnedEquipmentRequest `json:"equipmentsReturned" binding:"required,min=1,dive"`
	ReturnDate         string                     `json:"returnDate"`
	RemovedSoftware    []string                   `json:"removedSoftware"`
	Notes              string                     `json:"notes"`
}

// Create handles POST /returns
//
//	@Summary		Record a return
//	@Description	Equipment takes the status of its condition and leaves the employee. The allocation is completed when nothing is outstanding.
//	@Tags			returns
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			return	body		CreateReturnRequest	true	"Return"
//	@Success		201		{object}	utils.APIResponse{data=allocationdto.ReturnDTO}
//	@Failure		400		{object}	utils.APIResponse
//	@Failure		409		{object}	utils.APIResponse	"Equipment not outstanding on this allocation"
//	@Router			/returns [post]
func (h *ReturnHandler) Create(c *gin.Context) {
	var req CreateReturnRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create return", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	returnDate, err := parseBodyDate("returnDate", req.ReturnDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]usecases.ReturnItemCommand, 0, len(req.EquipmentsReturned))
	for _, it := range req.EquipmentsReturned {
		items = append(items, usecases.ReturnItemCommand{
			EquipmentID:  it.EquipmentID,
			InternalID:   it.InternalID,
			SerialNumber: it.SerialNumber,
			Condition:    it.Condition,
			Notes:        it.Notes,
			Photos:       it.Photos,
		})
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateReturnCommand{
		AllocationID:    req.AllocationID,
		Items:           items,
		ReturnDate:      returnDate,
		RemovedSoftware: req.RemovedSoftware,
		Notes:           req.Notes,
		ProcessedBy:     c.GetString(constants.ContextKeyUserEmail),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Return recorded successfully")
}

// ByUser handles GET /returns/user/:userId
//
//	@Summary	Returns of an employee
//	@Tags		returns
//	@Produce	json
//	@Security	Bearer
//	@Param		userId	path		string	true	"Employee id"
//	@Success	200		{object}	utils.APIResponse
//	@Router		/returns/user/{userId} [get]
func (h *ReturnHandler) ByUser(c *gin.Context) {
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

// ByAllocation handles GET /returns/allocation/:allocationId
//
//	@Summary	Returns of an allocation
//	@Tags		returns
//	@Produce	json
//	@Security	Bearer
//	@Param		allocationId	path		string	true	"Allocation id"
//	@Success	200				{object}	utils.APIResponse
//	@Router		/returns/allocation/{allocationId} [get]
func (h *ReturnHandler) ByAllocation(c *gin.Context) {
	allocationID, err := utils.ParseIDParam(c, "allocationId", "allocation")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	result, err := h.byAllocationUC.Execute(c.Request.Context(), allocationID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Stats handles GET /returns/stats
//
//	@Summary	Return statistics
//	@Tags		returns
//	@Produce	json
//	@Security	Bearer
//	@Success	200	{object}	utils.APIResponse{data=allocationdto.ReturnStatsDTO}
//	@Router		/returns/stats [get]
func (h *ReturnHandler) Stats(c *gin.Context) {
	result, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
