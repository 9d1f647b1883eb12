package bootstrap

import (
	"context"
	"time"

	"rentify-api/internal/pkg/clock"
	"rentify-api/internal/pkg/config"
	"rentify-api/internal/usecase/commands"
	"rentify-api/internal/usecase/shared"

	"go.uber.org/fx"
)

// How often the background sweep looks for stale idempotency keys.
const sweepInterval = time.Hour

var SweeperModule = fx.Module("sweeper",
	fx.Provide(
		NewStaleKeySweeper,
	),
	fx.Invoke(
		startStaleKeySweeper,
	),
)

func NewStaleKeySweeper(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) *commands.StaleKeySweeper {
	return commands.NewStaleKeySweeper(uow, clk, cfg.Idempotency.KeyTTL)
}

func startStaleKeySweeper(lc fx.Lifecycle, sweeper *commands.StaleKeySweeper) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go sweeper.Run(ctx, sweepInterval)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
