package transaction

import (
	"context"

	"github.com/oklog/ulid/v2"
)

// Notifier é avisado das escritas no livro-caixa depois de persistidas.
type Notifier interface {
	TransactionCreated(ctx context.Context, transaction *Transaction) error
	TransactionDeleted(ctx context.Context, transactionID ulid.ULID) error
}

type noopNotifier struct{}

func (noopNotifier) TransactionCreated(context.Context, *Transaction) error { return nil }
func (noopNotifier) TransactionDeleted(context.Context, ulid.ULID) error    { return nil }
