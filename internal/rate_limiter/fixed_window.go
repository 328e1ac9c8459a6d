package ratelimiter

import (
	"sync"
	"time"

	"github.com/SeakMengs/PDFStudio/internal/config"
	"go.uber.org/zap"
)

// FixedWindowRateLimiter counts requests per client within the current time
// frame and resets every window. Counts live in memory, so limits are per
// process.
type FixedWindowRateLimiter struct {
	sync.Mutex
	clients     map[string]int
	windowStart time.Time
	cfg         config.RateLimiterConfig
	logger      *zap.SugaredLogger
}

func NewFixedWindowLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients:     make(map[string]int),
		windowStart: time.Now(),
		cfg:         cfg,
		logger:      logger,
	}
}

// Allow reports whether the client may proceed. When denied it also returns
// how long until the window resets, for the Retry-After header.
func (rl *FixedWindowRateLimiter) Allow(clientKey string) (bool, time.Duration) {
	if !rl.cfg.Enabled {
		return true, 0
	}

	rl.Lock()
	defer rl.Unlock()

	now := time.Now()
	if now.Sub(rl.windowStart) >= rl.cfg.TimeFrame {
		rl.clients = make(map[string]int)
		rl.windowStart = now
	}

	if rl.clients[clientKey] >= rl.cfg.RequestsPerTimeFrame {
		retryAfter := rl.cfg.TimeFrame - now.Sub(rl.windowStart)
		rl.logger.Debugf("Rate limit exceeded for client %s", clientKey)
		return false, retryAfter
	}

	rl.clients[clientKey]++
	return true, 0
}
