package routes

import (
	"context"
	"net/http"

	"Caixa/internal/domain/transaction"
	appErrors "Caixa/internal/errors"
	"Caixa/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// TransactionService é o contrato do livro-caixa consumido pelos handlers.
type TransactionService interface {
	ListTransactions(ctx context.Context) ([]*transaction.Transaction, error)
	AddTransaction(ctx context.Context, tx *transaction.Transaction) error
	GetBalance(ctx context.Context) (*transaction.Balance, error)
	GetPeriodBalance(ctx context.Context, start, end string) (*transaction.PeriodBalance, error)
	GetInvestedTotal(ctx context.Context) (decimal.Decimal, error)
	DeleteTransaction(ctx context.Context, transactionID ulid.ULID) error
}

var _ TransactionService = (*transaction.Service)(nil)

type Handler struct {
	TransactionService TransactionService
}

// failure é o corpo que o endpoint devolve quando a falha não é do cliente.
type failure struct {
	key  string
	text string
}

func (f failure) body() gin.H {
	return gin.H{f.key: f.text}
}

// respondError responde erros de entrada com 400 e o payload do AppError;
// o resto vira 500 com o corpo genérico do endpoint.
func (h *Handler) respondError(c *gin.Context, err error, onFailure failure) {
	appErr := appErrors.FromError(err)

	if appErrors.IsClientError(appErr) {
		logger.Warn().Str("code", appErr.Code).Str("path", c.FullPath()).Msg("request_rejected")
		if appErr.Code == appErrors.ErrMissingPeriod.Code {
			c.JSON(http.StatusBadRequest, gin.H{"message": appErr.Message})
			return
		}
		payload := gin.H{
			"error":   appErr.Code,
			"message": appErr.Message,
		}
		if len(appErr.Details) > 0 {
			payload["details"] = appErr.Details
		}
		c.JSON(http.StatusBadRequest, payload)
		return
	}

	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")
	c.JSON(http.StatusInternalServerError, onFailure.body())
}
