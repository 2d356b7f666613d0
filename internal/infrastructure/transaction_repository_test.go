package infrastructure_test

import (
	"context"
	"testing"
	"time"

	"Caixa/internal/domain/transaction"
	"Caixa/internal/infrastructure"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRepository(t *testing.T) *infrastructure.TransactionRepository {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("caixa"),
		tcpostgres.WithUsername("caixa"),
		tcpostgres.WithPassword("caixa"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Skipf("postgres container unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, infrastructure.RunMigrations(dsn))

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = infrastructure.CloseDb(db)
	})

	return &infrastructure.TransactionRepository{DB: db}
}

func newRecord(category transaction.Category, amount string, createdAt time.Time) *transaction.Transaction {
	return &transaction.Transaction{
		Id:         ulid.Make(),
		Title:      "registro " + string(category),
		Amount:     decimal.RequireFromString(amount),
		Type:       "pix",
		Category:   category,
		TelegramId: "42",
		NameUser:   "ana",
		CreatedAt:  createdAt,
	}
}

func TestTransactionRepositoryIntegration(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()
	base := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)

	records := []*transaction.Transaction{
		newRecord(transaction.CategoryIncome, "100.00", base),
		newRecord(transaction.CategoryExpense, "40.25", base.Add(time.Hour)),
		newRecord(transaction.CategoryInvestment, "20.00", base.Add(2*time.Hour)),
		newRecord(transaction.Category("Outros"), "7.00", base.Add(3*time.Hour)),
	}
	for _, r := range records {
		require.NoError(t, repo.Create(ctx, r))
	}

	t.Run("list newest first", func(t *testing.T) {
		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, len(records))
		for i := 1; i < len(list); i++ {
			assert.False(t, list[i-1].CreatedAt.Before(list[i].CreatedAt))
		}
		assert.Equal(t, records[3].Id, list[0].Id)
		assert.Equal(t, "ana", list[0].NameUser)
		assert.Equal(t, "42", list[0].TelegramId)
	})

	t.Run("sum by category in one statement", func(t *testing.T) {
		sums, err := repo.SumByCategory(ctx, nil, transaction.CategoryIncome, transaction.CategoryExpense)
		require.NoError(t, err)
		assert.True(t, sums[transaction.CategoryIncome].Equal(decimal.RequireFromString("100")))
		assert.True(t, sums[transaction.CategoryExpense].Equal(decimal.RequireFromString("40.25")))
		_, hasInvestment := sums[transaction.CategoryInvestment]
		assert.False(t, hasInvestment)
	})

	t.Run("period filter is inclusive", func(t *testing.T) {
		period := &transaction.Period{Start: base.Add(time.Hour), End: base.Add(2 * time.Hour)}
		sums, err := repo.SumByCategory(ctx, period, transaction.CategoryIncome, transaction.CategoryExpense, transaction.CategoryInvestment)
		require.NoError(t, err)
		assert.True(t, sums[transaction.CategoryIncome].IsZero())
		assert.True(t, sums[transaction.CategoryExpense].Equal(decimal.RequireFromString("40.25")))
		assert.True(t, sums[transaction.CategoryInvestment].Equal(decimal.RequireFromString("20")))
	})

	t.Run("inverted period matches nothing", func(t *testing.T) {
		period := &transaction.Period{Start: base.Add(24 * time.Hour), End: base}
		sums, err := repo.SumByCategory(ctx, period, transaction.CategoryIncome, transaction.CategoryExpense)
		require.NoError(t, err)
		assert.Empty(t, sums)
	})

	t.Run("amounts keep every decimal place", func(t *testing.T) {
		precise := newRecord(transaction.CategoryExpense, "10.005", base.Add(-time.Hour))
		require.NoError(t, repo.Create(ctx, precise))
		t.Cleanup(func() { _ = repo.Delete(ctx, precise.Id) })

		list, err := repo.List(ctx)
		require.NoError(t, err)
		var stored *transaction.Transaction
		for _, tx := range list {
			if tx.Id == precise.Id {
				stored = tx
			}
		}
		require.NotNil(t, stored)
		assert.Equal(t, "10.005", stored.Amount.String())

		period := &transaction.Period{Start: precise.CreatedAt, End: precise.CreatedAt}
		sums, err := repo.SumByCategory(ctx, period, transaction.CategoryExpense)
		require.NoError(t, err)
		assert.Equal(t, "10.005", sums[transaction.CategoryExpense].String())
	})

	t.Run("delete is not idempotent", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, records[0].Id))
		assert.ErrorIs(t, repo.Delete(ctx, records[0].Id), gorm.ErrRecordNotFound)

		list, err := repo.List(ctx)
		require.NoError(t, err)
		for _, tx := range list {
			assert.NotEqual(t, records[0].Id, tx.Id)
		}
	})
}
