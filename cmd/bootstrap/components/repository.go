package components

import (
	"context"

	"hotel-concierge/internal/infra/gateway"
	"hotel-concierge/internal/infra/quotestore"
	"hotel-concierge/internal/infra/repository"
	"hotel-concierge/internal/pkg/clock"
	"hotel-concierge/internal/pkg/config"
	"hotel-concierge/internal/usecase/commands"
	"hotel-concierge/internal/usecase/queries"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationStore)),
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			gateway.NewPaymentClient,
			fx.As(new(commands.PaymentGateway)),
		),
		NewQuoteLedger,
	),
)

// NewQuoteLedger picks the ledger backend: the in-process map by default, or
// redis when the quotes are shared across instances.
func NewQuoteLedger(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) commands.QuoteLedger {
	if cfg.Quotes.Store == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return client.Ping(ctx).Err()
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		return quotestore.NewRedisStore(client, cfg.Quotes.TTL)
	}

	return quotestore.NewMemoryStore(cfg.Quotes.TTL, clk)
}
