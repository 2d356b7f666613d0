package fx

import (
	"context"

	"Caixa/config"
	"Caixa/internal/middleware"

	"go.uber.org/fx"
)

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		newRateLimiter,
	),
)

func newRateLimiter(lc fx.Lifecycle, cfg *config.Config) *middleware.RateLimiter {
	limiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			limiter.Stop()
			return nil
		},
	})
	return limiter
}
