package transaction

import (
	"context"
	"errors"

	appErrors "Caixa/internal/errors"
	"Caixa/internal/logger"
	"Caixa/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Service struct {
	Repository       Repository
	Notifier         Notifier
	StrictCategories bool
}

func NewService(repo Repository, notifier Notifier, strictCategories bool) *Service {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &Service{
		Repository:       repo,
		Notifier:         notifier,
		StrictCategories: strictCategories,
	}
}

type Balance struct {
	Revenues decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
}

type PeriodBalance struct {
	Period
	Balance
}

func (s *Service) ListTransactions(ctx context.Context) ([]*Transaction, error) {
	transactions, err := s.Repository.List(ctx)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return transactions, nil
}

func (s *Service) AddTransaction(ctx context.Context, transaction *Transaction) error {
	if err := transaction.Validate(s.StrictCategories); err != nil {
		return err
	}

	TransactionCreateStruct(transaction)
	if err := s.Repository.Create(ctx, transaction); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	if err := s.notifier().TransactionCreated(ctx, transaction); err != nil {
		logger.Warn().
			Err(err).
			Str("transaction_id", transaction.Id.String()).
			Msg("Falha ao publicar evento de transação criada")
	}
	return nil
}

func (s *Service) GetBalance(ctx context.Context) (*Balance, error) {
	return s.balance(ctx, nil)
}

// GetPeriodBalance rejeita limites ausentes ou inválidos antes de qualquer consulta.
func (s *Service) GetPeriodBalance(ctx context.Context, start, end string) (*PeriodBalance, error) {
	period, err := ParsePeriod(start, end)
	if err != nil {
		return nil, err
	}

	balance, err := s.balance(ctx, period)
	if err != nil {
		return nil, err
	}
	return &PeriodBalance{Period: *period, Balance: *balance}, nil
}

func (s *Service) GetInvestedTotal(ctx context.Context) (decimal.Decimal, error) {
	sums, err := s.Repository.SumByCategory(ctx, nil, CategoryInvestment)
	if err != nil {
		return decimal.Zero, appErrors.NewDatabaseError(err)
	}
	return sums[CategoryInvestment], nil
}

func (s *Service) DeleteTransaction(ctx context.Context, transactionID ulid.ULID) error {
	if err := s.Repository.Delete(ctx, transactionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErrors.ErrTransactionNotFound.WithError(err)
		}
		return appErrors.NewDatabaseError(err)
	}

	if err := s.notifier().TransactionDeleted(ctx, transactionID); err != nil {
		logger.Warn().
			Err(err).
			Str("transaction_id", transactionID.String()).
			Msg("Falha ao publicar evento de transação removida")
	}
	return nil
}

func (s *Service) balance(ctx context.Context, period *Period) (*Balance, error) {
	sums, err := s.Repository.SumByCategory(ctx, period, CategoryIncome, CategoryExpense)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	revenues := sums[CategoryIncome]
	expenses := sums[CategoryExpense]
	return &Balance{
		Revenues: revenues,
		Expenses: expenses,
		Balance:  revenues.Sub(expenses),
	}, nil
}

func (s *Service) notifier() Notifier {
	if s.Notifier == nil {
		return noopNotifier{}
	}
	return s.Notifier
}

func TransactionCreateStruct(transaction *Transaction) {
	transaction.Id = pkg.GenerateULIDObject()
	transaction.CreatedAt = pkg.SetTimestamps()
}
