package components

import (
	"context"
	"log/slog"

	"camp-pricing/internal/infra/db"
	"camp-pricing/internal/infra/memstore"
	"camp-pricing/internal/infra/rabbitmq"
	"camp-pricing/internal/infra/redis"
	"camp-pricing/internal/infra/repository"
	"camp-pricing/internal/infra/sqlc"
	"camp-pricing/internal/infra/uow"
	"camp-pricing/internal/pkg/clock"
	"camp-pricing/internal/pkg/config"
	"camp-pricing/internal/pkg/errs"
	"camp-pricing/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStores,
		NewRuleCache,
		NewEventPublisher,
	),
)

type Stores struct {
	fx.Out

	Slots   shared.SlotStore
	Rules   shared.RuleStore
	Configs shared.ConfigStore
}

// NewStores picks the backing store by STORAGE_DRIVER. The pool is only
// opened for postgres.
func NewStores(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Stores, error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		logger.Warn("using in-memory stores; data is lost on restart")
		return Stores{
			Slots:   memstore.NewSlotStore(),
			Rules:   memstore.NewRuleStore(),
			Configs: memstore.NewConfigStore(),
		}, nil
	}

	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return Stores{}, errs.Wrap(err, "connect postgres")
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	queries := sqlc.New()
	return Stores{
		Slots:   repository.NewSlotRepository(queries, pool),
		Rules:   repository.NewRuleRepository(queries, uow.NewPostgresUoW(pool)),
		Configs: repository.NewConfigRepository(queries, pool),
	}, nil
}

// NewRuleCache falls back to a per-process cache when REDIS_ADDR is unset.
func NewRuleCache(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) shared.RuleCache {
	if cfg.Redis.Addr == "" {
		return memstore.NewRuleCache(clk)
	}

	client := redis.NewClient(cfg.Redis)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// an unreachable cache only costs store reads
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("redis ping failed", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return redis.NewRuleCache(client)
}

// NewEventPublisher falls back to logging when AMQP_URL is unset or the
// broker is unreachable at startup.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.EventPublisher {
	if cfg.AMQP.URL == "" {
		return shared.NewLogPublisher(logger)
	}

	pub, err := rabbitmq.Dial(cfg.AMQP, logger)
	if err != nil {
		logger.Error("amqp dial failed, events will only be logged", "error", err.Error())
		return shared.NewLogPublisher(logger)
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub
}
