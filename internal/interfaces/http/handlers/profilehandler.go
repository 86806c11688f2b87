package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/GithubESPI/dotationsFrontend/internal/domain/permission"
	"github.com/GithubESPI/dotationsFrontend/internal/interfaces/http/middleware"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/constants"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/utils"
)

// ProfileResponse describes the staff member behind the bearer token.
type ProfileResponse struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	Name        string   `json:"name,omitempty"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

type ProfileHandler struct {
	enforcer permission.Enforcer
	logger   logger.Interface
}

func NewProfileHandler(enforcer permission.Enforcer, logger logger.Interface) *ProfileHandler {
	return &ProfileHandler{enforcer: enforcer, logger: logger}
}

// GetProfile handles GET /auth/profile
//
//	@Summary	Current staff profile
//	@Tags		auth
//	@Produce	json
//	@Security	Bearer
//	@Success	200	{object}	utils.APIResponse{data=ProfileResponse}
//	@Failure	401	{object}	utils.APIResponse
//	@Router		/auth/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID := c.GetString(constants.ContextKeyUserID)
	if userID == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}
	role := c.GetString(constants.ContextKeyUserRole)

	rules, err := h.enforcer.GetPermissionsForRole(role)
	if err != nil {
		h.logger.Errorw("failed to load permissions", "role", role, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	seen := make(map[string]struct{}, len(rules))
	perms := make([]string, 0, len(rules))
	for _, rule := range rules {
		// rule is (role, resource, action)
		if len(rule) < 3 {
			continue
		}
		p := rule[1] + ":" + rule[2]
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		perms = append(perms, p)
	}
	sort.Strings(perms)

	utils.SuccessResponse(c, http.StatusOK, "", ProfileResponse{
		ID:          userID,
		Email:       c.GetString(constants.ContextKeyUserEmail),
		Name:        c.GetString(middleware.ContextKeyUserName),
		Role:        role,
		Permissions: perms,
	})
}
