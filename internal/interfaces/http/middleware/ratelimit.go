package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/ratelimit"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/constants"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/utils"
)

// RateLimiter is a fixed-window limiter keyed by the authenticated staff id, or by
// client IP for anonymous requests. Counter failures let the request through.
type RateLimiter struct {
	counter ratelimit.Counter
	name    string
	limit   int
	window  time.Duration
	logger  logger.Interface
}

func NewRateLimiter(counter ratelimit.Counter, name string, limit int, window time.Duration, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		counter: counter,
		name:    name,
		limit:   limit,
		window:  window,
		logger:  logger,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := c.GetString(constants.ContextKeyUserID)
		if subject == "" {
			subject = "ip:" + c.ClientIP()
		}

		count, err := rl.counter.Incr(c.Request.Context(), fmt.Sprintf("%s:%s", rl.name, subject), rl.window)
		if err != nil {
			rl.logger.Warnw("rate limit counter unavailable", "limiter", rl.name, "error", err)
			c.Next()
			return
		}

		if count > int64(rl.limit) {
			c.Header("Retry-After", fmt.Sprintf("%d", int(rl.window.Seconds())))
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
