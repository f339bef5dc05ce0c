package api

import (
	"net/http"
	"strconv"

	"codevend/internal/domain/code"
	reqdto "codevend/internal/handler/dto/request"
	resdto "codevend/internal/handler/dto/response"
	"codevend/internal/pkg/errs"
	"codevend/internal/usecase/commands"
	"codevend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CodeHandler struct {
	loader      commands.CodeLoaderCommands
	admin       commands.CodeAdminCommands
	codeQueries queries.CodeQueries
}

func NewCodeHandler(
	loader commands.CodeLoaderCommands,
	admin commands.CodeAdminCommands,
	codeQueries queries.CodeQueries,
) *CodeHandler {
	return &CodeHandler{
		loader:      loader,
		admin:       admin,
		codeQueries: codeQueries,
	}
}

// @Summary Upload codes
// @Description Bulk-load candidate codes for a product; values already present anywhere are skipped
// @Tags codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UploadCodesRequest true "Upload request"
// @Success 200 {object} resdto.UploadCodesResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /upload-codes [post]
func (h *CodeHandler) UploadCodes(c *gin.Context) {
	var req reqdto.UploadCodesRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	h.load(c, req.ProductID, req.Codes)
}

// @Summary Upload codes for a product
// @Description Bulk-load candidate codes for the product in the path
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.AdminUploadCodesRequest true "Upload request"
// @Success 200 {object} resdto.UploadCodesResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/products/{id}/codes [post]
func (h *CodeHandler) UploadProductCodes(c *gin.Context) {
	var req reqdto.AdminUploadCodesRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	h.load(c, c.Param("id"), req.Codes)
}

func (h *CodeHandler) load(c *gin.Context, productID string, values []string) {
	result, err := h.loader.Load(c.Request.Context(), productID, values)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
		case errs.Is(err, commands.ErrCodeValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid code value",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoadResult(result))
}

// @Summary List codes
// @Description List codes for a product, optionally filtered by status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param status query string false "Filter by status (available or assigned)"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {array} resdto.CodeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/products/{id}/codes [get]
func (h *CodeHandler) ListCodes(c *gin.Context) {
	productID := c.Param("id")

	filters := queries.CodeFilters{}
	if status := c.Query("status"); status != "" {
		if status != string(code.StatusAvailable) && status != string(code.StatusAssigned) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid status filter",
			})
			return
		}
		filters.Status = &status
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit",
			})
			return
		}
		limit = parsed
	}

	views, err := h.codeQueries.ListByProduct(c.Request.Context(), productID, filters, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCodeList(views))
}

// @Summary Assign a code
// @Description Hand a specific code to a user, bypassing the per-user cap
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Code ID"
// @Param request body reqdto.AssignCodeRequest true "Assign request"
// @Success 200 {object} resdto.AssignCodeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/codes/{id}/assign [post]
func (h *CodeHandler) AssignCode(c *gin.Context) {
	codeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid code ID format",
		})
		return
	}

	var req reqdto.AssignCodeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.admin.Assign(c.Request.Context(), codeID, req.User)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrCodeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Code not found",
			})
		case errs.Is(err, commands.ErrCodeAlreadyAssigned):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Code already assigned",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.AssignCodeResponse{Code: result.Code})
}

// @Summary Delete a code
// @Description Remove a code from the pool
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Code ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/codes/{id} [delete]
func (h *CodeHandler) DeleteCode(c *gin.Context) {
	codeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid code ID format",
		})
		return
	}

	if err := h.admin.Delete(c.Request.Context(), codeID); err != nil {
		switch {
		case errs.Is(err, commands.ErrCodeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Code not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
