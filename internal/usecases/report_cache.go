package usecases

import (
	"context"

	"go.uber.org/zap"
	"streaming-service.backend/pkg/logger"
)

// ReportCache stores rendered report results between requests
type ReportCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Invalidate(ctx context.Context) (int, error)
}

// invalidateReports drops cached reports after a mutation. Cache errors never fail the mutation.
func invalidateReports(ctx context.Context, cache ReportCache) {
	if cache == nil {
		return
	}
	removed, err := cache.Invalidate(ctx)
	if err != nil {
		logger.Warn(ctx, "Failed to invalidate report cache", zap.Error(err))
		return
	}
	logger.Debug(ctx, "Report cache invalidated", zap.Int("keys", removed))
}
