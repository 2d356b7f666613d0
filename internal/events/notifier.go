package events

import (
	"context"
	"encoding/json"
	"time"

	"Caixa/internal/domain/transaction"

	"github.com/oklog/ulid/v2"
)

const (
	EventTransactionCreated = "created"
	EventTransactionDeleted = "deleted"
)

// LedgerEvent é o envelope publicado a cada escrita no livro-caixa.
type LedgerEvent struct {
	Event         string                   `json:"event"`
	TransactionID string                   `json:"transaction_id"`
	Transaction   *transaction.Transaction `json:"transaction,omitempty"`
	OccurredAt    time.Time                `json:"occurred_at"`
}

// LedgerNotifier publica eventos do livro-caixa em <prefix>.created e <prefix>.deleted.
type LedgerNotifier struct {
	Broker        Broker
	SubjectPrefix string
	now           func() time.Time
}

var _ transaction.Notifier = (*LedgerNotifier)(nil)

func NewLedgerNotifier(broker Broker, subjectPrefix string) *LedgerNotifier {
	return &LedgerNotifier{Broker: broker, SubjectPrefix: subjectPrefix, now: time.Now}
}

func (n *LedgerNotifier) TransactionCreated(ctx context.Context, tx *transaction.Transaction) error {
	return n.publish(ctx, LedgerEvent{
		Event:         EventTransactionCreated,
		TransactionID: tx.Id.String(),
		Transaction:   tx,
	})
}

func (n *LedgerNotifier) TransactionDeleted(ctx context.Context, transactionID ulid.ULID) error {
	return n.publish(ctx, LedgerEvent{
		Event:         EventTransactionDeleted,
		TransactionID: transactionID.String(),
	})
}

func (n *LedgerNotifier) publish(ctx context.Context, event LedgerEvent) error {
	now := time.Now
	if n.now != nil {
		now = n.now
	}
	event.OccurredAt = now().UTC()

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return n.Broker.Publish(ctx, n.Subject(event.Event), payload)
}

func (n *LedgerNotifier) Subject(event string) string {
	if n.SubjectPrefix == "" {
		return event
	}
	return n.SubjectPrefix + "." + event
}
