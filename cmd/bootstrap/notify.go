package bootstrap

import (
	"context"
	"log/slog"
	"sync"

	"rentalhub/internal/infra/notify"
	sqlc "rentalhub/internal/infra/sqlc/generated"
	"rentalhub/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Invoke(StartRelay),
)

// StartRelay runs the Kafka relay for the lifetime of the app. It needs both brokers and the
// PostgreSQL job table; with the memory driver jobs stay in process.
func StartRelay(lc fx.Lifecycle, pool *pgxpool.Pool, cfg config.Config, logger *slog.Logger) {
	if pool == nil || !cfg.Kafka.Enabled() {
		logger.Info("reservation event relay disabled")
		return
	}

	writer := notify.NewKafkaWriter(cfg.Kafka)
	relay := notify.NewRelay(pool, sqlc.New(), writer, cfg.Kafka)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			wg.Add(1)
			go func() {
				defer wg.Done()
				relay.Run(ctx)
			}()
			logger.Info("reservation event relay started", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			wg.Wait()
			return writer.Close()
		},
	})
}
