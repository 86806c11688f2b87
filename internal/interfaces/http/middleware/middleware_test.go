package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/GithubESPI/dotationsFrontend/internal/domain/permission/valueobjects"
	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/auth"
	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/ratelimit"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/authorization"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/constants"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testLogger = logger.NewNopLogger()

type stubEnforcer struct {
	allowed map[string]bool
	err     error
}

func (s *stubEnforcer) Enforce(role, resource, action string) (bool, error) {
	return s.allowed[role+":"+resource+":"+action], s.err
}
func (s *stubEnforcer) AddPolicy(string, string, string) error           { return nil }
func (s *stubEnforcer) RemovePolicy(string, string, string) error        { return nil }
func (s *stubEnforcer) GetPermissionsForRole(string) ([][]string, error) { return nil, nil }
func (s *stubEnforcer) LoadPolicy() error                                { return nil }

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	jwtSvc := auth.NewJWTService("test-secret", "dotations", 5)
	token, _, err := jwtSvc.Issue(auth.Identity{
		Subject: "staff-1",
		Email:   "It@Example.com",
		Name:    "Service IT",
		Role:    authorization.RoleStaff,
	})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"lowercase scheme", "bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID, gotEmail, gotRole string
			r := gin.New()
			r.GET("/x", NewAuthMiddleware(jwtSvc, testLogger).RequireAuth(), func(c *gin.Context) {
				gotID = c.GetString(constants.ContextKeyUserID)
				gotEmail = c.GetString(constants.ContextKeyUserEmail)
				gotRole = c.GetString(constants.ContextKeyUserRole)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := serve(r, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.Equal(t, "staff-1", gotID)
				assert.Equal(t, "it@example.com", gotEmail)
				assert.Equal(t, "staff", gotRole)
			}
		})
	}
}

func TestPermissionMiddleware(t *testing.T) {
	enforcer := &stubEnforcer{allowed: map[string]bool{"staff:equipment:write": true}}

	tests := []struct {
		name     string
		role     string
		enforcer *stubEnforcer
		want     int
	}{
		{"allowed", "staff", enforcer, http.StatusOK},
		{"denied", "viewer", enforcer, http.StatusForbidden},
		{"anonymous", "", enforcer, http.StatusUnauthorized},
		{"enforcer failure", "staff", &stubEnforcer{err: errors.New("db down")}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.POST("/equipment", func(c *gin.Context) {
				if tt.role != "" {
					c.Set(constants.ContextKeyUserRole, tt.role)
				}
			}, NewPermissionMiddleware(tt.enforcer, testLogger).RequirePermission(vo.ResourceEquipment, vo.ActionWrite),
				func(c *gin.Context) { c.Status(http.StatusOK) })

			w := serve(r, httptest.NewRequest(http.MethodPost, "/equipment", nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRateLimiter_Limit(t *testing.T) {
	limiter := NewRateLimiter(ratelimit.NewMemoryCounter(time.Hour), "jira-sync", 2, time.Hour, testLogger)
	r := gin.New()
	r.POST("/sync", func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, c.GetHeader("X-User"))
	}, limiter.Limit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	call := func(user string) int {
		req := httptest.NewRequest(http.MethodPost, "/sync", nil)
		req.Header.Set("X-User", user)
		return serve(r, req).Code
	}

	assert.Equal(t, http.StatusOK, call("alice"))
	assert.Equal(t, http.StatusOK, call("alice"))
	assert.Equal(t, http.StatusTooManyRequests, call("alice"))
	assert.Equal(t, http.StatusOK, call("bob"))
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:3000"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := serve(r, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecoveryAndRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Logger(testLogger), Recovery(testLogger))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set("Authorization", "Bearer secret")
	w := serve(r, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error occurred")
	assert.NotEmpty(t, w.Header().Get(constants.HeaderXRequestID))
}
