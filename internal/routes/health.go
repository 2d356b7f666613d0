package routes

import (
	"net/http"

	"Caixa/internal/contracts"

	"github.com/gin-gonic/gin"
)

// Health godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  contracts.MessageResponse
// @Router       /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "API is healthy"})
}
