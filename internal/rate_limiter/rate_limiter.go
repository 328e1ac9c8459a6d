package ratelimiter

import (
	"github.com/SeakMengs/PDFStudio/internal/config"
	"github.com/SeakMengs/PDFStudio/internal/util"
	"go.uber.org/zap"
)

func NewRateLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("development")
	}

	return NewFixedWindowLimiter(cfg, logger)
}
