package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"mockup-catalog-backend/internal/catalog"
	"mockup-catalog-backend/internal/models"
)

const maxDesignSize = 32 << 20

var designFileFields = []string{"design_image", "image", "file"}

type DesignsHandler struct {
	designs DesignAPI
}

func NewDesignsHandler(designs DesignAPI) *DesignsHandler {
	return &DesignsHandler{designs: designs}
}

// StartRun godoc
// @Summary     Render a design on a blank's mockups
// @Description Uploads the design image, renders it on every template of the product in every selected color, and keeps the run for regeneration and saving.
// @Description Failed renders are listed in the run and do not stop the batch.
// @Tags        designs
// @Accept      multipart/form-data
// @Produce     json
// @Param       design_image      formData file   true "Design image (png, jpg)"
// @Param       product_id        formData int    true "Blank product ID"
// @Param       design_name       formData string true "Design name"
// @Param       marketplace_title formData string true "Marketplace title (max 80)"
// @Param       colors            formData []string true "Palette color names"
// @Success     201 {object} mockup.Run
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /designs/runs [post]
func (h *DesignsHandler) StartRun(c *gin.Context) {
	if h.designs == nil {
		c.JSON(http.StatusInternalServerError, errDatabaseUnavailable)
		return
	}

	if err := c.Request.ParseMultipartForm(maxDesignSize); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to parse multipart form",
			Message: err.Error(),
		})
		return
	}

	var req models.StartRunRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid form", Message: err.Error()})
		return
	}
	if len(req.Colors) == 1 {
		req.Colors = catalog.SplitList(req.Colors[0])
	}

	file := designFile(c.Request.MultipartForm)
	if file == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "no design image uploaded",
			Message: fmt.Sprintf("please provide the image in one of these fields: %s", strings.Join(designFileFields, ", ")),
		})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to open design image", Message: err.Error()})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read design image", Message: err.Error()})
		return
	}

	run, err := h.designs.StartRun(c.Request.Context(), req, file.Filename, data)
	if err != nil {
		respondError(c, err, "failed to generate mockups")
		return
	}
	c.JSON(http.StatusCreated, run)
}

// GetRun godoc
// @Summary     Get a mockup run
// @Tags        designs
// @Produce     json
// @Param       run_id path string true "Run ID"
// @Success     200 {object} mockup.Run
// @Failure     404 {object} models.ErrorResponse
// @Router      /designs/runs/{run_id} [get]
func (h *DesignsHandler) GetRun(c *gin.Context) {
	if h.designs == nil {
		c.JSON(http.StatusInternalServerError, errDatabaseUnavailable)
		return
	}

	run, err := h.designs.GetRun(c.Request.Context(), c.Param("run_id"))
	if err != nil {
		respondError(c, err, "run not found")
		return
	}
	c.JSON(http.StatusOK, run)
}

// DiscardRun godoc
// @Summary     Discard a mockup run
// @Tags        designs
// @Param       run_id path string true "Run ID"
// @Success     204
// @Failure     404 {object} models.ErrorResponse
// @Router      /designs/runs/{run_id} [delete]
func (h *DesignsHandler) DiscardRun(c *gin.Context) {
	if h.designs == nil {
		c.JSON(http.StatusInternalServerError, errDatabaseUnavailable)
		return
	}

	if err := h.designs.DiscardRun(c.Request.Context(), c.Param("run_id")); err != nil {
		respondError(c, err, "failed to discard run")
		return
	}
	c.Status(http.StatusNoContent)
}

// RegenerateColor godoc
// @Summary     Regenerate one color of a run
// @Description Reuses a stored render of the same template and color instead of calling the rendering API again.
// @Tags        designs
// @Accept      json
// @Produce     json
// @Param       run_id  path string                        true "Run ID"
// @Param       request body models.RegenerateColorRequest true "Template and color"
// @Success     200 {object} models.RegenerateColorResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /designs/runs/{run_id}/colors [post]
func (h *DesignsHandler) RegenerateColor(c *gin.Context) {
	if h.designs == nil {
		c.JSON(http.StatusInternalServerError, errDatabaseUnavailable)
		return
	}

	var req models.RegenerateColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	result, cached, err := h.designs.RegenerateColor(c.Request.Context(), c.Param("run_id"), req)
	if err != nil {
		respondError(c, err, "failed to regenerate color")
		return
	}
	c.JSON(http.StatusOK, models.RegenerateColorResponse{
		Color:       result.Color,
		RenderedURL: result.RenderedURL,
		Cached:      cached,
	})
}

// SaveRun godoc
// @Summary     Save a run as generated products
// @Description Stores the chosen mockups and creates one generated product per size and color. Per-mockup failures are returned as warnings.
// @Tags        designs
// @Accept      json
// @Produce     json
// @Param       run_id  path string                true "Run ID"
// @Param       request body models.SaveRunRequest true "Sizes and colors to save"
// @Success     201 {object} models.SaveRunResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     422 {object} models.ErrorResponse
// @Router      /designs/runs/{run_id}/save [post]
func (h *DesignsHandler) SaveRun(c *gin.Context) {
	if h.designs == nil {
		c.JSON(http.StatusInternalServerError, errDatabaseUnavailable)
		return
	}

	var req models.SaveRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	resp, err := h.designs.SaveRun(c.Request.Context(), c.Param("run_id"), req)
	if err != nil {
		if len(resp.Warnings) > 0 {
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
				Error:   err.Error(),
				Message: strings.Join(resp.Warnings, "; "),
			})
			return
		}
		respondError(c, err, "failed to save design")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func designFile(form *multipart.Form) *multipart.FileHeader {
	if form == nil {
		return nil
	}
	for _, field := range designFileFields {
		if files := form.File[field]; len(files) > 0 {
			return files[0]
		}
	}
	return nil
}
