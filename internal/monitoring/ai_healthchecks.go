package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// MonitorEmotionService probes the emotion service every interval and stores
// the outcome in healthy until ctx is done. A non-positive interval disables
// probing and leaves healthy untouched.
func MonitorEmotionService(ctx context.Context, service Pinger, interval time.Duration, healthy *atomic.Bool) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(ctx, interval)
			err := service.Ping(probeCtx)
			cancel()

			isHealthy := err == nil
			if healthy.Swap(isHealthy) != isHealthy {
				if isHealthy {
					slog.Info("[HealthCheck] Emotion service recovered")
				} else {
					slog.Warn("[HealthCheck] Emotion service is unhealthy",
						slog.String("error", err.Error()))
				}
			}
		}
	}
}
