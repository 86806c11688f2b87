package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	jiradto "github.com/GithubESPI/dotationsFrontend/internal/application/jiraasset/dto"
	"github.com/GithubESPI/dotationsFrontend/internal/application/jiraasset/usecases"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/jiraasset"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/constants"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/errors"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/utils"
)

var _ = jiradto.SyncStatsDTO{}

// JiraAssetHandler exposes the Jira Assets browser, the mapping detector and the
// inventory sync.
type JiraAssetHandler struct {
	workspaceUC  usecases.GetWorkspaceExecutor
	objectTypeUC usecases.GetObjectTypeAssetsExecutor
	searchUC     usecases.SearchAssetsExecutor
	getAssetUC   usecases.GetAssetExecutor
	detectUC     usecases.DetectMappingExecutor
	selectUC     usecases.SelectAssetExecutor
	syncUC       usecases.SyncAssetsExecutor
	syncSchemaUC usecases.SyncSchemaExecutor
	logger       logger.Interface
}

func NewJiraAssetHandler(
	workspaceUC usecases.GetWorkspaceExecutor,
	objectTypeUC usecases.GetObjectTypeAssetsExecutor,
	searchUC usecases.SearchAssetsExecutor,
	getAssetUC usecases.GetAssetExecutor,
	detectUC usecases.DetectMappingExecutor,
	selectUC usecases.SelectAssetExecutor,
	syncUC usecases.SyncAssetsExecutor,
	syncSchemaUC usecases.SyncSchemaExecutor,
	logger logger.Interface,
) *JiraAssetHandler {
	return &JiraAssetHandler{
		workspaceUC:  workspaceUC,
		objectTypeUC: objectTypeUC,
		searchUC:     searchUC,
		getAssetUC:   getAssetUC,
		detectUC:     detectUC,
		selectUC:     selectUC,
		syncUC:       syncUC,
		syncSchemaUC: syncSchemaUC,
		logger:       logger,
	}
}

type SearchAssetsRequest struct {
	ObjectTypeID string                      `json:"objectTypeId" binding:"required,notblank"`
	Query        string                      `json:"query"`
	Limit        int                         `json:"limit" binding:"omitempty,min=1,max=1000"`
	Mapping      *jiraasset.AttributeMapping `json:"attributeMapping"`
}

type DetectMappingRequest struct {
	SchemaName     string `json:"schemaName"`
	ObjectTypeName string `json:"objectTypeName"`
}

type SelectAssetRequest struct {
	AssetID        string                      `json:"assetId" binding:"required,notblank"`
	ObjectTypeID   string                      `json:"objectTypeId"`
	SchemaName     string                      `json:"schemaName"`
	ObjectTypeName string                      `json:"objectTypeName"`
	Mapping        *jiraasset.AttributeMapping `json:"attributeMapping"`
}

type SyncAssetsRequest struct {
	SchemaName     string                      `json:"schemaName"`
	ObjectTypeName string                      `json:"objectTypeName"`
	Limit          int                         `json:"limit" binding:"omitempty,min=1,max=10000"`
	AutoDetect     *bool                       `json:"autoDetectAttributes"`
	Mapping        *jiraasset.AttributeMapping `json:"attributeMapping"`
	RequiredFields []string                    `json:"requiredFields" binding:"omitempty,dive,oneof=serialNumber brand model type status internalId assignedUser"`
}

type SyncSchemaRequest struct {
	ObjectTypeName string                      `json:"objectTypeName"`
	Limit          int                         `json:"limit" binding:"omitempty,min=1,max=10000"`
	Mapping        *jiraasset.AttributeMapping `json:"attributeMapping" binding:"required"`
}

// Workspace handles GET /jira-asset/workspace
//
//	@Summary	Jira Assets workspace
//	@Tags		jira-asset
//	@Produce	json
//	@Security	Bearer
//	@Success	200	{object}	utils.APIResponse{data=jiradto.WorkspaceDTO}
//	@Failure	502	{object}	utils.APIResponse
//	@Router		/jira-asset/workspace [get]
func (h *JiraAssetHandler) Workspace(c *gin.Context) {
	result, err := h.workspaceUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ObjectTypeAssets handles GET /jira-asset/schema/:schema/object-type/:type
//
//	@Summary	Assets of an object type
//	@Tags		jira-asset
//	@Produce	json
//	@Security	Bearer
//	@Param		schema	path		string	true	"Schema name"
//	@Param		type	path		string	true	"Object type name"
//	@Param		limit	query		int		false	"Maximum assets"
//	@Success	200		{object}	utils.APIResponse{data=jiradto.ObjectTypeAssetsDTO}
//	@Failure	404		{object}	utils.APIResponse
//	@Router		/jira-asset/schema/{schema}/object-type/{type} [get]
func (h *JiraAssetHandler) ObjectTypeAssets(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > constants.JiraMaxSearchLimit {
			utils.ErrorResponseWithError(c, errors.NewValidationError("limit must be between 1 and "+strconv.Itoa(constants.JiraMaxSearchLimit)))
			return
		}
		limit = n
	}

	result, err := h.objectTypeUC.Execute(c.Request.Context(), usecases.GetObjectTypeAssetsQuery{
		SchemaName:     c.Param("schema"),
		ObjectTypeName: c.Param("type"),
		Limit:          limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Search handles POST /jira-asset/search
//
//	@Summary	Search assets of an object type
//	@Tags		jira-asset
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		search	body		SearchAssetsRequest	true	"Search"
//	@Success	200		{object}	utils.APIResponse{data=jiradto.SearchResultDTO}
//	@Router		/jira-asset/search [post]
func (h *JiraAssetHandler) Search(c *gin.Context) {
	var req SearchAssetsRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.searchUC.Execute(c.Request.Context(), usecases.SearchAssetsQuery{
		ObjectTypeID: req.ObjectTypeID,
		Query:        req.Query,
		Limit:        req.Limit,
		Mapping:      req.Mapping,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Asset handles GET /jira-asset/asset/:id
//
//	@Summary	Get one asset
//	@Tags		jira-asset
//	@Produce	json
//	@Security	Bearer
//	@Param		id	path		string	true	"Jira object id"
//	@Success	200	{object}	utils.APIResponse{data=jiradto.AssetDTO}
//	@Failure	404	{object}	utils.APIResponse
//	@Router		/jira-asset/asset/{id} [get]
func (h *JiraAssetHandler) Asset(c *gin.Context) {
	result, err := h.getAssetUC.Execute(c.Request.Context(), usecases.GetAssetQuery{
		AssetID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DetectMapping handles POST /jira-asset/mapping/detect
//
//	@Summary		Detect attribute mapping
//	@Description	Samples the object type and guesses which attribute holds each equipment field. The result replaces the cached mapping.
//	@Tags			jira-asset
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			target	body		DetectMappingRequest	false	"Schema and object type, defaults from config"
//	@Success		200		{object}	utils.APIResponse
//	@Router			/jira-asset/mapping/detect [post]
func (h *JiraAssetHandler) DetectMapping(c *gin.Context) {
	var req DetectMappingRequest
	if c.Request.ContentLength != 0 {
		if err := utils.BindJSON(c, &req); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	result, err := h.detectUC.Execute(c.Request.Context(), usecases.DetectMappingCommand{
		SchemaName:     req.SchemaName,
		ObjectTypeName: req.ObjectTypeName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Select handles POST /jira-asset/select
//
//	@Summary		Select an asset for an allocation
//	@Description	Builds the allocation line of a Jira asset and matches it against the local inventory.
//	@Tags			jira-asset
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			selection	body		SelectAssetRequest	true	"Selection"
//	@Success		200			{object}	utils.APIResponse{data=jiradto.SelectionDTO}
//	@Failure		404			{object}	utils.APIResponse
//	@Router			/jira-asset/select [post]
func (h *JiraAssetHandler) Select(c *gin.Context) {
	var req SelectAssetRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.selectUC.Execute(c.Request.Context(), usecases.SelectAssetCommand{
		AssetID:        req.AssetID,
		ObjectTypeID:   req.ObjectTypeID,
		SchemaName:     req.SchemaName,
		ObjectTypeName: req.ObjectTypeName,
		Mapping:        req.Mapping,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// SyncLaptops handles POST /jira-asset/sync/laptops
//
//	@Summary	Sync assets into the inventory
//	@Tags		jira-asset
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		sync	body		SyncAssetsRequest	false	"Options"
//	@Success	200		{object}	utils.APIResponse{data=jiradto.SyncStatsDTO}
//	@Failure	429		{object}	utils.APIResponse
//	@Router		/jira-asset/sync/laptops [post]
func (h *JiraAssetHandler) SyncLaptops(c *gin.Context) {
	var req SyncAssetsRequest
	if c.Request.ContentLength != 0 {
		if err := utils.BindJSON(c, &req); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	required := make([]jiraasset.Field, 0, len(req.RequiredFields))
	for _, f := range req.RequiredFields {
		required = append(required, jiraasset.Field(strings.TrimSpace(f)))
	}

	result, err := h.syncUC.Execute(c.Request.Context(), usecases.SyncAssetsCommand{
		SchemaName:     req.SchemaName,
		ObjectTypeName: req.ObjectTypeName,
		Limit:          req.Limit,
		AutoDetect:     req.AutoDetect,
		Mapping:        req.Mapping,
		RequiredFields: required,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	h.logger.Infow("jira sync requested",
		"user_email", utils.MaskEmail(c.GetString(constants.ContextKeyUserEmail)),
		"created", result.Created,
		"updated", result.Updated,
		"errors", result.Errors,
	)
	utils.SuccessResponse(c, http.StatusOK, "Synchronisation completed", result)
}

// SyncSchema handles POST /jira-asset/sync/schema/:schema
//
//	@Summary	Sync an object type with an explicit mapping
//	@Tags		jira-asset
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		schema	path		string				true	"Schema name"
//	@Param		sync	body		SyncSchemaRequest	true	"Mapping"
//	@Success	200		{object}	utils.APIResponse{data=jiradto.SyncStatsDTO}
//	@Router		/jira-asset/sync/schema/{schema} [post]
func (h *JiraAssetHandler) SyncSchema(c *gin.Context) {
	var req SyncSchemaRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.syncSchemaUC.Execute(c.Request.Context(), usecases.SyncSchemaCommand{
		SchemaName:     c.Param("schema"),
		ObjectTypeName: req.ObjectTypeName,
		Limit:          req.Limit,
		Mapping:        req.Mapping,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Synchronisation completed", result)
}
