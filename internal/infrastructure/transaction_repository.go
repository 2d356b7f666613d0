package infrastructure

import (
	"context"
	"time"

	"Caixa/internal/domain/transaction"
	"Caixa/internal/pkg"
	"Caixa/internal/pkg/query"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const transactionsTable = "transactions"

type TransactionRepository struct {
	DB *gorm.DB
}

var _ transaction.Repository = (*TransactionRepository)(nil)

type transactionDB struct {
	Id         string          `gorm:"type:varchar(26);primaryKey;column:id"`
	Title      string          `gorm:"type:varchar(255);not null;column:title"`
	Amount     decimal.Decimal `gorm:"type:numeric;not null;column:amount"`
	Type       string          `gorm:"type:varchar(50);column:type"`
	Category   string          `gorm:"type:varchar(50);not null;column:category"`
	TelegramId string          `gorm:"type:varchar(64);column:telegram_id"`
	NameUser   string          `gorm:"type:varchar(255);column:name_user"`
	CreatedAt  time.Time       `gorm:"not null;column:created_at"`
}

type categorySumDB struct {
	Category string          `gorm:"column:category"`
	Total    decimal.Decimal `gorm:"column:total"`
}

func toDomainTransaction(tdb *transactionDB) (*transaction.Transaction, error) {
	id, err := pkg.ParseULID(tdb.Id)
	if err != nil {
		return nil, err
	}
	return &transaction.Transaction{
		Id:         id,
		Title:      tdb.Title,
		Amount:     tdb.Amount,
		Type:       tdb.Type,
		Category:   transaction.Category(tdb.Category),
		TelegramId: tdb.TelegramId,
		NameUser:   tdb.NameUser,
		CreatedAt:  tdb.CreatedAt.UTC(),
	}, nil
}

func toDBTransaction(t *transaction.Transaction) *transactionDB {
	return &transactionDB{
		Id:         t.Id.String(),
		Title:      t.Title,
		Amount:     t.Amount,
		Type:       t.Type,
		Category:   string(t.Category),
		TelegramId: t.TelegramId,
		NameUser:   t.NameUser,
		CreatedAt:  t.CreatedAt,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	tdb := toDBTransaction(t)
	return r.DB.WithContext(ctx).Table(transactionsTable).Create(tdb).Error
}

func (r *TransactionRepository) Delete(ctx context.Context, transactionID ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table(transactionsTable).
		Where("id = ?", transactionID.String()).
		Delete(&transactionDB{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TransactionRepository) List(ctx context.Context) ([]*transaction.Transaction, error) {
	q := query.New[transactionDB](r.DB, transactionsTable).
		Context(ctx).
		Order("created_at DESC, id DESC")
	return query.ExecuteAll(q, toDomainTransaction)
}

func (r *TransactionRepository) SumByCategory(ctx context.Context, period *transaction.Period, categories ...transaction.Category) (map[transaction.Category]decimal.Decimal, error) {
	sums := make(map[transaction.Category]decimal.Decimal, len(categories))
	if len(categories) == 0 {
		return sums, nil
	}

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, string(c))
	}

	q := query.New[categorySumDB](r.DB, transactionsTable).
		Context(ctx).
		Select("category, COALESCE(SUM(amount), 0) AS total").
		Where("category IN ?", names).
		Group("category")
	if period != nil {
		q = q.Scope(query.Between("created_at", period.Start, period.End))
	}

	rows, err := q.Find()
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		sums[transaction.Category(row.Category)] = row.Total
	}
	return sums, nil
}
