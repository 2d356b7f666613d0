package fx

import (
	"Caixa/config"
	"Caixa/internal/domain/transaction"
	"Caixa/internal/events"
	"Caixa/internal/infrastructure"
	"Caixa/internal/logger"

	"go.uber.org/fx"
)

// DomainModule fornece os services do domínio
var DomainModule = fx.Module("domain",
	fx.Provide(
		newTransactionService,
	),
)

func newTransactionService(
	cfg *config.Config,
	repo *infrastructure.TransactionRepository,
	notifier *events.LedgerNotifier,
) *transaction.Service {
	logger.Info().
		Bool("strict_categories", cfg.Ledger.StrictCategories).
		Msg("Serviço de transações configurado")
	return transaction.NewService(repo, notifier, cfg.Ledger.StrictCategories)
}
