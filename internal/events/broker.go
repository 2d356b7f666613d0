package events

import (
	"context"
	"fmt"

	"Caixa/config"
	"Caixa/internal/logger"
)

// Broker publica payloads brutos em um subject / routing key.
type Broker interface {
	Publish(ctx context.Context, subject string, payload []byte) error
	Close() error
}

// NewBroker escolhe o broker pelo EVENTS_BACKEND configurado.
func NewBroker(cfg *config.Config) (Broker, error) {
	switch cfg.Events.Backend {
	case config.EventsBackendNATS:
		return NewNATSBroker(cfg.Events.NATSURL)
	case config.EventsBackendAMQP:
		return NewAMQPBroker(cfg.Events.AMQPURL, cfg.Events.AMQPExchange)
	case config.EventsBackendNone, "":
		logger.Info().Msg("Publicação de eventos desabilitada (EVENTS_BACKEND=none)")
		return NoopBroker{}, nil
	default:
		return nil, fmt.Errorf("unknown events backend %q", cfg.Events.Backend)
	}
}

type NoopBroker struct{}

func (NoopBroker) Publish(context.Context, string, []byte) error { return nil }
func (NoopBroker) Close() error                                 { return nil }
