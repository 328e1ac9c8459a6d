package middleware

import (
	"fmt"
	"net/http"

	"github.com/SeakMengs/PDFStudio/internal/util"
	"github.com/gin-gonic/gin"
)

func (m Middleware) RateLimiterMiddleware(ctx *gin.Context) {
	allow, retryAfter := m.rateLimiter.Allow(ctx.ClientIP())
	if !allow {
		ctx.Header("Retry-After", fmt.Sprintf("%.0f", retryAfter.Seconds()))
		util.ResponseFailed(ctx, http.StatusTooManyRequests, "Too many requests", nil, nil)
		return
	}

	ctx.Next()
}
