package transaction

import (
	"context"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, transaction *Transaction) error
	// Delete devolve gorm.ErrRecordNotFound quando nenhuma linha foi removida.
	Delete(ctx context.Context, transactionID ulid.ULID) error
	// List devolve todas as transações, mais recentes primeiro.
	List(ctx context.Context) ([]*Transaction, error)
	// SumByCategory soma os valores por categoria em uma única consulta. Categorias
	// sem linhas ficam fora do mapa. Period nil considera todos os registros.
	SumByCategory(ctx context.Context, period *Period, categories ...Category) (map[Category]decimal.Decimal, error)
}
