package api

import (
	"net/http"

	resdto "codevend/internal/handler/dto/response"
	"codevend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	inventory queries.InventoryQueries
}

func NewInventoryHandler(inventory queries.InventoryQueries) *InventoryHandler {
	return &InventoryHandler{
		inventory: inventory,
	}
}

// @Summary Inventory status
// @Description Count available and assigned codes for a product
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param product_id path string true "Product ID"
// @Success 200 {object} resdto.InventoryResponse
// @Failure 401 {object} map[string]string
// @Router /inventory/{product_id} [get]
func (h *InventoryHandler) GetStatus(c *gin.Context) {
	productID := c.Param("product_id")

	view, err := h.inventory.Status(c.Request.Context(), productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromInventoryView(productID, view))
}
