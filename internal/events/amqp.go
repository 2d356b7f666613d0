package events

import (
	"context"
	"fmt"
	"time"

	"Caixa/internal/logger"

	"github.com/rabbitmq/amqp091-go"
)

type AMQPBroker struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
}

func NewAMQPBroker(url, exchange string) (*AMQPBroker, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"direct", // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	logger.Info().Str("exchange", exchange).Msg("Conectado ao broker AMQP")
	return &AMQPBroker{conn: conn, channel: channel, exchange: exchange}, nil
}

func (b *AMQPBroker) Publish(ctx context.Context, subject string, payload []byte) error {
	err := b.channel.PublishWithContext(ctx,
		b.exchange, // exchange
		subject,    // routing key
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         payload,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

func (b *AMQPBroker) Close() error {
	var firstErr error
	if b.channel != nil {
		if err := b.channel.Close(); err != nil {
			firstErr = err
		}
	}
	if b.conn != nil {
		if err := b.conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
