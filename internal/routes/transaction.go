package routes

import (
	"net/http"

	"Caixa/internal/contracts"
	appErrors "Caixa/internal/errors"
	"Caixa/internal/pkg"

	"github.com/gin-gonic/gin"
)

var (
	failedFetch      = failure{key: "error", text: "Failed to fetch transactions"}
	failedAdd        = failure{key: "error", text: "Failed to add transaction"}
	failedDelete     = failure{key: "error", text: "Failed to delete transaction"}
	failedBalance    = failure{key: "message", text: "Erro! Impossível calcular"}
	failedInvestment = failure{key: "message", text: "Erro ao buscar os dados de investimento."}
)

// GetTransactions godoc
// @Summary      Lista as transações, mais recentes primeiro
// @Tags         transactions
// @Produce      json
// @Success      200  {array}   transaction.Transaction
// @Failure      500  {object}  contracts.ErrorResponse
// @Router       /transactions [get]
func (h *Handler) GetTransactions(c *gin.Context) {
	transactions, err := h.TransactionService.ListTransactions(c.Request.Context())
	if err != nil {
		h.respondError(c, err, failedFetch)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// AddTransaction godoc
// @Summary      Registra uma transação
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body      contracts.TransactionCreateRequest  true  "Transação"
// @Success      201   {object}  contracts.TransactionCreateResponse
// @Failure      400   {object}  map[string]interface{}
// @Failure      500   {object}  contracts.ErrorResponse
// @Router       /add-transaction [post]
func (h *Handler) AddTransaction(c *gin.Context) {
	var body contracts.TransactionCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err), failedAdd)
		return
	}

	transactionEntity := body.ToDomain()
	if err := h.TransactionService.AddTransaction(c.Request.Context(), transactionEntity); err != nil {
		h.respondError(c, err, failedAdd)
		return
	}

	c.JSON(http.StatusCreated, contracts.TransactionCreateResponse{
		Message: "Transaction added successfully",
		Data:    transactionEntity,
	})
}

// GetBalance godoc
// @Summary      Saldo total (Entrada - Saida)
// @Tags         balance
// @Produce      json
// @Success      200  {object}  contracts.BalanceResponse
// @Failure      500  {object}  contracts.MessageResponse
// @Router       /balance [get]
func (h *Handler) GetBalance(c *gin.Context) {
	balance, err := h.TransactionService.GetBalance(c.Request.Context())
	if err != nil {
		h.respondError(c, err, failedBalance)
		return
	}

	c.JSON(http.StatusOK, contracts.NewBalanceResponse(balance))
}

// GetPeriodBalance godoc
// @Summary      Saldo em um período fechado [start, end]
// @Tags         balance
// @Produce      json
// @Param        start  query     string  true  "Início (ISO 8601)"
// @Param        end    query     string  true  "Fim (ISO 8601)"
// @Success      200    {object}  contracts.PeriodBalanceResponse
// @Failure      400    {object}  contracts.MessageResponse
// @Failure      500    {object}  contracts.MessageResponse
// @Router       /balance/period [get]
func (h *Handler) GetPeriodBalance(c *gin.Context) {
	balance, err := h.TransactionService.GetPeriodBalance(c.Request.Context(), c.Query("start"), c.Query("end"))
	if err != nil {
		h.respondError(c, err, failedBalance)
		return
	}

	c.JSON(http.StatusOK, contracts.NewPeriodBalanceResponse(balance))
}

// GetInvestment godoc
// @Summary      Total investido
// @Tags         balance
// @Produce      json
// @Success      200  {object}  contracts.InvestmentResponse
// @Failure      500  {object}  contracts.MessageResponse
// @Router       /investment [get]
func (h *Handler) GetInvestment(c *gin.Context) {
	invested, err := h.TransactionService.GetInvestedTotal(c.Request.Context())
	if err != nil {
		h.respondError(c, err, failedInvestment)
		return
	}

	c.JSON(http.StatusOK, contracts.InvestmentResponse{
		Investments: contracts.InvestedTotal{Invested: invested},
	})
}

// DeleteTransaction godoc
// @Summary      Remove uma transação
// @Tags         transactions
// @Produce      json
// @Param        id   path      string  true  "ID (ULID)"
// @Success      200  {object}  contracts.MessageResponse
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  contracts.ErrorResponse
// @Router       /delete-transaction/{id} [delete]
func (h *Handler) DeleteTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido").WithError(err), failedDelete)
		return
	}

	if err := h.TransactionService.DeleteTransaction(c.Request.Context(), transactionID); err != nil {
		h.respondError(c, err, failedDelete)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Transaction deleted successfully"})
}
