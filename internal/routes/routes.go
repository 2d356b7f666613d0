package routes

import "github.com/gin-gonic/gin"

// RegisterLedgerRoutes monta as rotas do livro-caixa sob o grupo informado (normalmente /api).
func RegisterLedgerRoutes(api *gin.RouterGroup, h *Handler) {
	api.GET("/health", h.Health)

	api.GET("/transactions", h.GetTransactions)
	api.POST("/add-transaction", h.AddTransaction)
	api.DELETE("/delete-transaction/:id", h.DeleteTransaction)

	api.GET("/balance", h.GetBalance)
	api.GET("/balance/period", h.GetPeriodBalance)
	api.GET("/investment", h.GetInvestment)
}
