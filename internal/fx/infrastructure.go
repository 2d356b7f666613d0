package fx

import (
	"context"

	"Caixa/config"
	"Caixa/internal/infrastructure"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newTransactionRepository,
	),
)

func newDatabase(lc fx.Lifecycle, cfg *config.Config) (*gorm.DB, error) {
	db, err := infrastructure.NewDb(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return infrastructure.CloseDb(db)
		},
	})
	return db, nil
}

func newTransactionRepository(db *gorm.DB) *infrastructure.TransactionRepository {
	return &infrastructure.TransactionRepository{DB: db}
}
