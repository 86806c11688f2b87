package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	equipmentdto "github.com/GithubESPI/dotationsFrontend/internal/application/equipment/dto"
	"github.com/GithubESPI/dotationsFrontend/internal/application/equipment/usecases"
	vo "github.com/GithubESPI/dotationsFrontend/internal/domain/equipment/valueobjects"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/utils"
)

var _ = equipmentdto.EquipmentDTO{}

type EquipmentHandler struct {
	createUC  usecases.CreateEquipmentExecutor
	updateUC  usecases.UpdateEquipmentExecutor
	deleteUC  usecases.DeleteEquipmentExecutor
	getUC     usecases.GetEquipmentExecutor
	listUC    usecases.ListEquipmentExecutor
	statsUC   usecases.GetEquipmentStatsExecutor
	byUserUC  usecases.GetUserEquipmentExecutor
	assignUC  usecases.AssignEquipmentExecutor
	releaseUC usecases.ReleaseEquipmentExecutor
	logger    logger.Interface
}

func NewEquipmentHandler(
	createUC usecases.CreateEquipmentExecutor,
	updateUC usecases.UpdateEquipmentExecutor,
	deleteUC usecases.DeleteEquipmentExecutor,
	getUC usecases.GetEquipmentExecutor,
	listUC usecases.ListEquipmentExecutor,
	statsUC usecases.GetEquipmentStatsExecutor,
	byUserUC usecases.GetUserEquipmentExecutor,
	assignUC usecases.AssignEquipmentExecutor,
	releaseUC usecases.ReleaseEquipmentExecutor,
	logger logger.Interface,
) *EquipmentHandler {
	RegisterValidators()
	return &EquipmentHandler{
		createUC:  createUC,
		updateUC:  updateUC,
		deleteUC:  deleteUC,
		getUC:     getUC,
		listUC:    listUC,
		statsUC:   statsUC,
		byUserUC:  byUserUC,
		assignUC:  assignUC,
		releaseUC: releaseUC,
		logger:    logger,
	}
}

type CreateEquipmentRequest struct {
	JiraAssetID         string   `json:"jiraAssetId"`
	InternalID          string   `json:"internalId"`
	Type                string   `json:"type" binding:"required,equipment_type"`
	Brand               string   `json:"brand" binding:"required,notblank"`
	Model               string   `json:"model" binding:"required,notblank"`
	SerialNumber        string   `json:"serialNumber" binding:"required,notblank"`
	IMEI                string   `json:"imei"`
	PhoneLine           string   `json:"phoneLine"`
	Status              string   `json:"status" binding:"omitempty,equipment_status"`
	CurrentUserID       string   `json:"currentUserId"`
	Location            string   `json:"location"`
	AdditionalSoftwares []string `json:"additionalSoftwares"`
}

type UpdateEquipmentRequest struct {
	JiraAssetID         *string  `json:"jiraAssetId"`
	InternalID          *string  `json:"internalId"`
	Type                *string  `json:"type" binding:"omitempty,equipment_type"`
	Brand               *string  `json:"brand"`
	Model               *string  `json:"model"`
	SerialNumber        *string  `json:"serialNumber"`
	IMEI                *string  `json:"imei"`
	PhoneLine           *string  `json:"phoneLine"`
	Status              *string  `json:"status" binding:"omitempty,equipment_status"`
	Location            *string  `json:"location"`
	AdditionalSoftwares []string `json:"additionalSoftwares"`
}

type AssignEquipmentRequest struct {
	UserID string `json:"userId" binding:"required,notblank"`
}

// Search handles GET /equipment
//
//	@Summary		Search equipment
//	@Tags			equipment
//	@Produce		json
//	@Security		Bearer
//	@Param			query			query		string	false	"Serial number, brand, model or internal id"
//	@Param			type			query		string	false	"Equipment type"
//	@Param			status			query		string	false	"Equipment status"
//	@Param			brand			query		string	false	"Brand"
//	@Param			location		query		string	false	"Location"
//	@Param			currentUserId	query		string	false	"Assigned employee id"
//	@Param			page			query		int		false	"Page"	default(1)
//	@Param			limit			query		int		false	"Page size"	default(20)
//	@Success		200				{object}	utils.APIResponse
//	@Failure		400				{object}	utils.APIResponse
//	@Router			/equipment [get]
func (h *EquipmentHandler) Search(c *gin.Context) {
	p := utils.ParsePagination(c)
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListEquipmentQuery{
		Query:         c.Query("query"),
		Type:          c.Query("type"),
		Status:        c.Query("status"),
		Brand:         c.Query("brand"),
		Location:      c.Query("location"),
		CurrentUserID: c.Query("currentUserId"),
		Page:          p.Page,
		Limit:         p.Limit,
		SortBy:        c.Query("sortBy"),
		SortOrder:     c.Query("sortOrder"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Items, result.Total, p.Page, p.Limit)
}

// All handles GET /equipment/all
//
//	@Summary	List every equipment
//	@Tags		equipment
//	@Produce	json
//	@Security	Bearer
//	@Success	200	{object}	utils.APIResponse
//	@Router		/equipment/all [get]
func (h *EquipmentHandler) All(c *gin.Context) {
	h.listUnpaged(c, usecases.ListEquipmentQuery{})
}

// Available handles GET /equipment/available
//
//	@Summary	List available equipment
//	@Tags		equipment
//	@Produce	json
//	@Security	Bearer
//	@Success	200	{object}	utils.APIResponse
//	@Router		/equipment/available [get]
func (h *EquipmentHandler) Available(c *gin.Context) {
	h.listUnpaged(c, usecases.ListEquipmentQuery{Status: vo.StatusAvailable.String()})
}

func (h *EquipmentHandler) listUnpaged(c *gin.Context, query usecases.ListEquipmentQuery) {
	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result.Items)
}

// Stats handles GET /equipment/stats
//
//	@Summary	Equipment statistics
//	@Tags		equipment
//	@Produce	json
//	@Security	Bearer
//	@Success	200	{object}	utils.APIResponse{data=equipmentdto.StatsDTO}
//	@Router		/equipment/stats [get]
func (h *EquipmentHandler) Stats(c *gin.Context) {
	result, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Get handles GET /equipment/:id
//
//	@Summary	Get equipment
//	@Tags		equipment
//	@Produce	json
//	@Security	Bearer
//	@Param		id	path		string	true	"Equipment id"
//	@Success	200	{object}	utils.APIResponse{data=equipmentdto.EquipmentDTO}
//	@Failure	404	{object}	utils.APIResponse
//	@Router		/equipment/{id} [get]
func (h *EquipmentHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "equipment")
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

// ByUser handles GET /equipment/user/:userId
//
//	@Summary	Equipment assigned to an employee
//	@Tags		equipment
//	@Produce	json
//	@Security	Bearer
//	@Param		userId	path		string	true	"Employee id"
//	@Success	200		{object}	utils.APIResponse
//	@Router		/equipment/user/{userId} [get]
func (h *EquipmentHandler) ByUser(c *gin.Context) {
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

// Create handles POST /equipment
//
//	@Summary	Create equipment
//	@Tags		equipment
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		equipment	body		CreateEquipmentRequest	true	"Equipment"
//	@Success	201			{object}	utils.APIResponse{data=equipmentdto.EquipmentDTO}
//	@Failure	400			{object}	utils.APIResponse
//	@Failure	409			{object}	utils.APIResponse	"Serial number already used"
//	@Router		/equipment [post]
func (h *EquipmentHandler) Create(c *gin.Context) {
	var req CreateEquipmentRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create equipment", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateEquipmentCommand{
		JiraAssetID:         req.JiraAssetID,
		InternalID:          req.InternalID,
		Type:                req.Type,
		Brand:               req.Brand,
		Model:               req.Model,
		SerialNumber:        req.SerialNumber,
		IMEI:                req.IMEI,
		PhoneLine:           req.PhoneLine,
		Status:              req.Status,
		CurrentUserID:       req.CurrentUserID,
		Location:            req.Location,
		AdditionalSoftwares: req.AdditionalSoftwares,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Equipment created successfully")
}

// Update handles PUT /equipment/:id
//
//	@Summary	Update equipment
//	@Tags		equipment
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		id			path		string					true	"Equipment id"
//	@Param		equipment	body		UpdateEquipmentRequest	true	"Fields to change"
//	@Success	200			{object}	utils.APIResponse{data=equipmentdto.EquipmentDTO}
//	@Failure	400			{object}	utils.APIResponse
//	@Failure	404			{object}	utils.APIResponse
//	@Router		/equipment/{id} [put]
func (h *EquipmentHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "equipment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateEquipmentRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update equipment", "id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateEquipmentCommand{
		ID:                  id,
		JiraAssetID:         req.JiraAssetID,
		InternalID:          req.InternalID,
		Type:                req.Type,
		Brand:               req.Brand,
		Model:               req.Model,
		SerialNumber:        req.SerialNumber,
		IMEI:                req.IMEI,
		PhoneLine:           req.PhoneLine,
		Status:              req.Status,
		Location:            req.Location,
		AdditionalSoftwares: req.AdditionalSoftwares,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Equipment updated successfully", result)
}

// Assign handles POST /equipment/:id/assign
//
//	@Summary	Assign equipment to an employee
//	@Tags		equipment
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		id		path		string					true	"Equipment id"
//	@Param		body	body		AssignEquipmentRequest	true	"Employee"
//	@Success	200		{object}	utils.APIResponse{data=equipmentdto.EquipmentDTO}
//	@Failure	409		{object}	utils.APIResponse
//	@Router		/equipment/{id}/assign [post]
func (h *EquipmentHandler) Assign(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "equipment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignEquipmentRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assignUC.Execute(c.Request.Context(), usecases.AssignEquipmentCommand{ID: id, UserID: req.UserID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Equipment assigned successfully", result)
}

// Release handles POST /equipment/:id/release
//
//	@Summary	Release equipment
//	@Tags		equipment
//	@Produce	json
//	@Security	Bearer
//	@Param		id	path		string	true	"Equipment id"
//	@Success	200	{object}	utils.APIResponse{data=equipmentdto.EquipmentDTO}
//	@Router		/equipment/{id}/release [post]
func (h *EquipmentHandler) Release(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "equipment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	result, err := h.releaseUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Equipment released successfully", result)
}

// Delete handles DELETE /equipment/:id
//
//	@Summary	Delete equipment
//	@Tags		equipment
//	@Security	Bearer
//	@Param		id	path	string	true	"Equipment id"
//	@Success	204
//	@Failure	409	{object}	utils.APIResponse	"Equipment is assigned"
//	@Router		/equipment/{id} [delete]
func (h *EquipmentHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "equipment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
