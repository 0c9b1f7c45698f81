package middleware

import (
	"net/http"

	"caretrack/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware rejects requests above the limiter's budget with a 429.
// Used on the AI routes, which fan out to a paid provider.
func RateLimitMiddleware(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			lang := GetLang(c)
			c.AbortWithStatusJSON(
				http.StatusTooManyRequests,
				apierrors.CreateError(http.StatusTooManyRequests, apierrors.MsgTooManyRequests, lang),
			)
			return
		}
		c.Next()
	}
}
