package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/GithubESPI/dotationsFrontend/internal/shared/biztime"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/errors"
)

// ParseIDParam reads a UUID path parameter. entityName is used in error messages.
func ParseIDParam(c *gin.Context, paramName, entityName string) (string, error) {
	raw := strings.TrimSpace(c.Param(paramName))
	if raw == "" {
		return "", errors.NewValidationError(entityName + " ID is required")
	}
	if _, err := uuid.Parse(raw); err != nil {
		return "", errors.NewValidationError(fmt.Sprintf("invalid %s ID format", entityName))
	}
	return raw, nil
}

// ParseQueryBool reads an optional boolean query parameter.
func ParseQueryBool(c *gin.Context, key string) (*bool, error) {
	switch strings.ToLower(strings.TrimSpace(c.Query(key))) {
	case "":
		return nil, nil
	case "true", "1":
		v := true
		return &v, nil
	case "false", "0":
		v := false
		return &v, nil
	default:
		return nil, errors.NewValidationError(fmt.Sprintf("%s must be true or false", key))
	}
}

// ParseQueryDate reads an optional date query parameter, either YYYY-MM-DD in the
// business timezone or RFC 3339.
func ParseQueryDate(c *gin.Context, key string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	t, err := biztime.ParseDate(raw)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("%s must be a date (YYYY-MM-DD)", key))
	}
	return &t, nil
}
