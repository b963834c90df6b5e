package jobs

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"streaming-service.backend/pkg/logger"
)

// ReportWarmer recomputes cached reports
type ReportWarmer interface {
	WarmUp(ctx context.Context) error
}

// ReportWarmupJob refreshes the report cache on a fixed interval
type ReportWarmupJob struct {
	warmer   ReportWarmer
	interval time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

func NewReportWarmupJob(warmer ReportWarmer, interval time.Duration) *ReportWarmupJob {
	return &ReportWarmupJob{
		warmer:   warmer,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start warms the cache once, then on every tick until ctx is cancelled or Stop is called
func (j *ReportWarmupJob) Start(ctx context.Context) {
	logger.Info(ctx, "Starting report warm-up job", zap.Duration("interval", j.interval))

	j.warm(ctx)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Report warm-up job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "Report warm-up job stopped")
			return
		case <-ticker.C:
			j.warm(ctx)
		}
	}
}

func (j *ReportWarmupJob) Stop() {
	j.stopOnce.Do(func() { close(j.stop) })
}

func (j *ReportWarmupJob) warm(ctx context.Context) {
	start := time.Now()
	if err := j.warmer.WarmUp(ctx); err != nil {
		logger.Warn(ctx, "Report warm-up incomplete", zap.Error(err))
		return
	}
	logger.Debug(ctx, "Report cache warmed", zap.Duration("elapsed", time.Since(start)))
}
