package fx

import (
	"Caixa/internal/domain/transaction"
	"Caixa/internal/routes"

	"go.uber.org/fx"
)

// RoutesModule fornece os handlers HTTP
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
	),
)

func newHandler(transactionSvc *transaction.Service) *routes.Handler {
	return &routes.Handler{
		TransactionService: transactionSvc,
	}
}
