package fx

import (
	"context"

	"Caixa/config"
	"Caixa/internal/events"
	"Caixa/internal/logger"

	"go.uber.org/fx"
)

// EventsModule fornece o broker de mensageria e o notificador do livro-caixa
var EventsModule = fx.Module("events",
	fx.Provide(
		newBroker,
		newLedgerNotifier,
	),
)

func newBroker(lc fx.Lifecycle, cfg *config.Config) (events.Broker, error) {
	broker, err := events.NewBroker(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info().Str("backend", cfg.Events.Backend).Msg("Fechando broker de eventos")
			return broker.Close()
		},
	})
	return broker, nil
}

func newLedgerNotifier(cfg *config.Config, broker events.Broker) *events.LedgerNotifier {
	return events.NewLedgerNotifier(broker, cfg.Events.SubjectPrefix)
}
