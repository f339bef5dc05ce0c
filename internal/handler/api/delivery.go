package api

import (
	"net/http"

	reqdto "codevend/internal/handler/dto/request"
	resdto "codevend/internal/handler/dto/response"
	"codevend/internal/pkg/errs"
	"codevend/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type DeliveryHandler struct {
	delivery commands.DeliveryCommands
}

func NewDeliveryHandler(delivery commands.DeliveryCommands) *DeliveryHandler {
	return &DeliveryHandler{
		delivery: delivery,
	}
}

// @Summary Get a code
// @Description Return the code the user should use for a product, drawing a new one while under the per-user cap
// @Tags delivery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.GetCodeRequest true "Delivery request"
// @Success 200 {object} resdto.DeliverResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /get-code [post]
func (h *DeliveryHandler) GetCode(c *gin.Context) {
	var req reqdto.GetCodeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.delivery.Deliver(c.Request.Context(), req.ProductID, req.User)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
		case errs.Is(err, commands.ErrNoStock):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No codes available",
			})
		case errs.Is(err, commands.ErrContention):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Too much contention, please retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDeliverResult(result))
}
