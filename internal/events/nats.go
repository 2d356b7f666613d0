package events

import (
	"context"
	"fmt"
	"time"

	"Caixa/internal/logger"

	"github.com/nats-io/nats.go"
)

type NATSBroker struct {
	conn *nats.Conn
}

func NewNATSBroker(url string) (*NATSBroker, error) {
	conn, err := nats.Connect(url,
		nats.Name("caixa-ledger"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn().Err(err).Msg("Conexão com NATS perdida")
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info().Str("url", c.ConnectedUrl()).Msg("Reconectado ao NATS")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}

	logger.Info().Str("url", conn.ConnectedUrl()).Msg("Conectado ao NATS")
	return &NATSBroker{conn: conn}, nil
}

func (b *NATSBroker) Publish(ctx context.Context, subject string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := b.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

// Close drena as mensagens pendentes antes de fechar a conexão.
func (b *NATSBroker) Close() error {
	return b.conn.Drain()
}
