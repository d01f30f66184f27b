package middleware

import (
	"snowboarding-assistant/config"
	"snowboarding-assistant/pkg/log"
)

type Middleware struct {
	l       log.Logger
	cors    config.CORSConfig
	limiter *clientLimiter
}

func New(l log.Logger, corsCfg config.CORSConfig, rateCfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		cors:    corsCfg,
		limiter: newClientLimiter(rateCfg.RequestsPerMin, rateCfg.Burst),
	}
}
