package processor

import (
	"context"

	"lojamoz/internal/app/loja/entity"
	"lojamoz/internal/app/loja/repository"
	"lojamoz/pkg/logger"
	"lojamoz/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// CronScheduler periodically recomputes the orders-by-status gauges so
// dashboards track the database without polling the API.
type CronScheduler struct {
	cron      *cron.Cron
	orderRepo repository.OrderRepository
}

func NewCronScheduler(orderRepo repository.OrderRepository) *CronScheduler {
	return &CronScheduler{
		cron:      cron.New(),
		orderRepo: orderRepo,
	}
}

func (s *CronScheduler) Start(ctx context.Context, schedule string) error {
	_, err := s.cron.AddFunc(schedule, func() {
		s.RefreshOrderGauges(ctx)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	logger.Info().Str("schedule", schedule).Msg("cron scheduler started")

	// Prime the gauges so /metrics is meaningful before the first tick.
	s.RefreshOrderGauges(ctx)

	return nil
}

// RefreshOrderGauges reads per-status order counts and publishes them.
// A failing status count is logged and skipped, leaving the previous
// gauge value in place.
func (s *CronScheduler) RefreshOrderGauges(ctx context.Context) {
	for _, status := range entity.ValidOrderStatuses {
		count, err := s.orderRepo.CountByStatus(ctx, status)
		if err != nil {
			logger.Warn().Err(err).Str("status", string(status)).Msg("order gauge refresh failed")
			continue
		}
		metrics.PedidosByStatus.WithLabelValues(string(status)).Set(float64(count))
	}
}

func (s *CronScheduler) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	logger.Info().Msg("cron scheduler stopped")
}
