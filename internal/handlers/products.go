package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"mockup-catalog-backend/internal/models"
)

type ProductsHandler struct {
	products ProductAPI
}

func NewProductsHandler(products ProductAPI) *ProductsHandler {
	return &ProductsHandler{products: products}
}

// ListTemplates godoc
// @Summary     List mockup templates
// @Description Lists every printable (smart object, template) pair of the rendering account
// @Tags        mockups
// @Produce     json
// @Success     200 {object} models.MockupOptionsResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /mockups/templates [get]
func (h *ProductsHandler) ListTemplates(c *gin.Context) {
	if h.products == nil {
		c.JSON(http.StatusInternalServerError, errDatabaseUnavailable)
		return
	}

	options, err := h.products.MockupOptions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "failed to list mockup templates",
			Message: err.Error(),
		})
		return
	}
	if options == nil {
		options = []models.MockupOption{}
	}
	c.JSON(http.StatusOK, models.MockupOptionsResponse{Options: options})
}

// ListProducts godoc
// @Summary     List blank products
// @Tags        products
// @Produce     json
// @Param       search   query string false "Case-insensitive name or SKU search"
// @Param       category query string false "Category filter"
// @Param       page     query int    false "Page (1-based)"
// @Param       per_page query int    false "Page size"
// @Success     200 {object} models.ProductListResponse
// @Router      /products [get]
func (h *ProductsHandler) ListProducts(c *gin.Context) {
	if h.products == nil {
		c.JSON(http.StatusInternalServerError, errDatabaseUnavailable)
		return
	}

	var filter models.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid query", Message: err.Error()})
		return
	}

	resp, err := h.products.ListProducts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "failed to list products")
		return
	}
	if resp.Products == nil {
		resp.Products = []models.Product{}
	}
	c.JSON(http.StatusOK, resp)
}

// CreateProduct godoc
// @Summary     Create a blank product
// @Description Validates the 4-letter SKU prefix, issues PREFIX-NNNN and stores sizes with per-size SKUs and colors as hex codes
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       request body models.CreateProductRequest true "Product"
// @Success     201 {object} models.Product
// @Failure     400 {object} models.ErrorResponse
// @Router      /products [post]
func (h *ProductsHandler) CreateProduct(c *gin.Context) {
	if h.products == nil {
		c.JSON(http.StatusInternalServerError, errDatabaseUnavailable)
		return
	}

	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	product, err := h.products.CreateProduct(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "failed to create product")
		return
	}
	c.JSON(http.StatusCreated, product)
}

// GetProduct godoc
// @Summary     Get a blank product
// @Tags        products
// @Produce     json
// @Param       id path int true "Product ID"
// @Success     200 {object} models.Product
// @Failure     404 {object} models.ErrorResponse
// @Router      /products/{id} [get]
func (h *ProductsHandler) GetProduct(c *gin.Context) {
	if h.products == nil {
		c.JSON(http.StatusInternalServerError, errDatabaseUnavailable)
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	product, err := h.products.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "product not found")
		return
	}
	c.JSON(http.StatusOK, product)
}

// UpdateProduct godoc
// @Summary     Update a blank product
// @Description Sizes and colors are comma separated. Changing the SKU moves generated products to the new SKU.
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id      path int                         true "Product ID"
// @Param       request body models.UpdateProductRequest true "Product"
// @Success     200 {object} models.Product
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /products/{id} [put]
func (h *ProductsHandler) UpdateProduct(c *gin.Context) {
	if h.products == nil {
		c.JSON(http.StatusInternalServerError, errDatabaseUnavailable)
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	product, err := h.products.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "failed to update product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct godoc
// @Summary     Delete a blank product
// @Tags        products
// @Param       id path int true "Product ID"
// @Success     204
// @Failure     404 {object} models.ErrorResponse
// @Router      /products/{id} [delete]
func (h *ProductsHandler) DeleteProduct(c *gin.Context) {
	if h.products == nil {
		c.JSON(http.StatusInternalServerError, errDatabaseUnavailable)
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.products.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to delete product")
		return
	}
	c.Status(http.StatusNoContent)
}

// SKUPreview godoc
// @Summary     Preview a blank SKU
// @Description Three letters of the name and three random digits. Not reserved.
// @Tags        products
// @Produce     json
// @Param       name query string true "Item name"
// @Success     200 {object} models.SKUPreviewResponse
// @Router      /products/sku-preview [get]
func (h *ProductsHandler) SKUPreview(c *gin.Context) {
	if h.products == nil {
		c.JSON(http.StatusInternalServerError, errDatabaseUnavailable)
		return
	}
	c.JSON(http.StatusOK, models.SKUPreviewResponse{SKU: h.products.PreviewBlankSKU(c.Query("name"))})
}

// PrepareDesign godoc
// @Summary     Prepare a blank for a new design
// @Description Returns the blank, or a new version of it when generated products already use its SKU
// @Tags        products
// @Produce     json
// @Param       id path int true "Product ID"
// @Success     200 {object} models.PrepareDesignResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /products/{id}/design [post]
func (h *ProductsHandler) PrepareDesign(c *gin.Context) {
	if h.products == nil {
		c.JSON(http.StatusInternalServerError, errDatabaseUnavailable)
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	resp, err := h.products.PrepareForDesign(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to prepare product")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DesignSKU godoc
// @Summary     Preview a generated SKU
// @Tags        products
// @Produce     json
// @Param       id    path  int    true  "Product ID"
// @Param       size  query string false "Size"
// @Param       color query string false "Color name or hex"
// @Success     200 {object} models.SKUPreviewResponse
// @Router      /products/{id}/design-sku [get]
func (h *ProductsHandler) DesignSKU(c *gin.Context) {
	if h.products == nil {
		c.JSON(http.StatusInternalServerError, errDatabaseUnavailable)
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	sku, err := h.products.PreviewDesignSKU(c.Request.Context(), id, c.Query("size"), c.Query("color"))
	if err != nil {
		respondError(c, err, "failed to preview sku")
		return
	}
	c.JSON(http.StatusOK, models.SKUPreviewResponse{SKU: sku})
}

// Categories godoc
// @Summary     List product categories
// @Tags        products
// @Produce     json
// @Success     200 {object} models.CategoriesResponse
// @Router      /categories [get]
func (h *ProductsHandler) Categories(c *gin.Context) {
	if h.products == nil {
		c.JSON(http.StatusInternalServerError, errDatabaseUnavailable)
		return
	}

	categories, err := h.products.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list categories")
		return
	}
	if categories == nil {
		categories = []string{}
	}
	c.JSON(http.StatusOK, models.CategoriesResponse{Categories: categories})
}
