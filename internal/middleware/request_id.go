package middleware

import (
	"github.com/SeakMengs/PDFStudio/internal/util"
	"github.com/gin-gonic/gin"
)

const RequestIdHeader = "X-Request-Id"

// RequestIdMiddleware tags every request with a short id so log lines can be
// correlated with responses. An id supplied by the caller is kept.
func (m Middleware) RequestIdMiddleware(ctx *gin.Context) {
	requestId := ctx.GetHeader(RequestIdHeader)
	if requestId == "" {
		generated, err := util.GenerateNChar(16)
		if err != nil {
			m.app.Logger.Errorf("Failed to generate request id: %v", err)
			ctx.Next()
			return
		}
		requestId = generated
	}

	ctx.Header(RequestIdHeader, requestId)
	ctx.Set("request_id", requestId)
	ctx.Next()
}
