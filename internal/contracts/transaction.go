package contracts

import (
	"time"

	"Caixa/internal/domain/transaction"

	"github.com/shopspring/decimal"
)

type TransactionCreateRequest struct {
	Title      string           `json:"title" binding:"required"`
	Amount     *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number"`
	Type       string           `json:"type"`
	Category   string           `json:"category" binding:"required"`
	TelegramId string           `json:"telegram_id"`
	NameUser   string           `json:"name_user"`
}

func (r TransactionCreateRequest) ToDomain() *transaction.Transaction {
	tx := &transaction.Transaction{
		Title:      r.Title,
		Type:       r.Type,
		Category:   transaction.Category(r.Category),
		TelegramId: r.TelegramId,
		NameUser:   r.NameUser,
	}
	if r.Amount != nil {
		tx.Amount = *r.Amount
	}
	return tx
}

type TransactionCreateResponse struct {
	Message string                   `json:"message"`
	Data    *transaction.Transaction `json:"data"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// BalanceResponse mantém as chaves em português usadas pelos clientes existentes.
type BalanceResponse struct {
	Revenues decimal.Decimal `json:"entradas" swaggertype:"number"`
	Expenses decimal.Decimal `json:"saídas" swaggertype:"number"`
	Balance  decimal.Decimal `json:"saldo" swaggertype:"number"`
}

// PeriodBalanceResponse usa "saidas" sem acento, diferente de BalanceResponse.
// start e end são os limites já interpretados, em UTC.
type PeriodBalanceResponse struct {
	Start    time.Time       `json:"start"`
	End      time.Time       `json:"end"`
	Revenues decimal.Decimal `json:"entradas" swaggertype:"number"`
	Expenses decimal.Decimal `json:"saidas" swaggertype:"number"`
	Balance  decimal.Decimal `json:"saldo" swaggertype:"number"`
}

type InvestedTotal struct {
	Invested decimal.Decimal `json:"investido" swaggertype:"number"`
}

type InvestmentResponse struct {
	Investments InvestedTotal `json:"Investimentos"`
}

func NewBalanceResponse(b *transaction.Balance) BalanceResponse {
	return BalanceResponse{
		Revenues: b.Revenues,
		Expenses: b.Expenses,
		Balance:  b.Balance,
	}
}

func NewPeriodBalanceResponse(b *transaction.PeriodBalance) PeriodBalanceResponse {
	return PeriodBalanceResponse{
		Start:    b.Start.UTC(),
		End:      b.End.UTC(),
		Revenues: b.Revenues,
		Expenses: b.Expenses,
		Balance:  b.Balance.Balance,
	}
}
