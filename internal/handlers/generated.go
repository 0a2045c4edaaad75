package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"mockup-catalog-backend/internal/models"
)

type GeneratedHandler struct {
	export ExportAPI
}

func NewGeneratedHandler(export ExportAPI) *GeneratedHandler {
	return &GeneratedHandler{export: export}
}

// ListGenerated godoc
// @Summary     List generated products
// @Description One row per size and mockup color of every stored variant
// @Tags        generated-products
// @Produce     json
// @Param       search   query string false "Case-insensitive name or SKU search"
// @Param       category query string false "Parent category filter"
// @Param       page     query int    false "Page (1-based)"
// @Param       per_page query int    false "Page size"
// @Success     200 {object} models.ListingResponse
// @Router      /generated-products [get]
func (h *GeneratedHandler) ListGenerated(c *gin.Context) {
	if h.export == nil {
		c.JSON(http.StatusInternalServerError, errDatabaseUnavailable)
		return
	}

	var filter models.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid query", Message: err.Error()})
		return
	}

	resp, err := h.export.ListGenerated(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "failed to list generated products")
		return
	}
	if resp.Rows == nil {
		resp.Rows = []models.ListingRow{}
	}
	c.JSON(http.StatusOK, resp)
}

// GetGenerated godoc
// @Summary     Get a generated product
// @Tags        generated-products
// @Produce     json
// @Param       id path int true "Generated product ID"
// @Success     200 {object} models.GeneratedProduct
// @Failure     404 {object} models.ErrorResponse
// @Router      /generated-products/{id} [get]
func (h *GeneratedHandler) GetGenerated(c *gin.Context) {
	if h.export == nil {
		c.JSON(http.StatusInternalServerError, errDatabaseUnavailable)
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	g, err := h.export.GetGenerated(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "generated product not found")
		return
	}
	c.JSON(http.StatusOK, g)
}

// DeleteGenerated godoc
// @Summary     Delete a generated product
// @Tags        generated-products
// @Param       id path int true "Generated product ID"
// @Success     204
// @Failure     404 {object} models.ErrorResponse
// @Router      /generated-products/{id} [delete]
func (h *GeneratedHandler) DeleteGenerated(c *gin.Context) {
	if h.export == nil {
		c.JSON(http.StatusInternalServerError, errDatabaseUnavailable)
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.export.DeleteGenerated(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to delete generated product")
		return
	}
	c.Status(http.StatusNoContent)
}
