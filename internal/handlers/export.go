package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"mockup-catalog-backend/internal/export"
	"mockup-catalog-backend/internal/models"
)

type ExportHandler struct {
	export ExportAPI
}

func NewExportHandler(export ExportAPI) *ExportHandler {
	return &ExportHandler{export: export}
}

// ExportCSV godoc
// @Summary     Download the product export as CSV
// @Description Parents with blank size and color, each followed by its expanded children; unmatched children last
// @Tags        export
// @Produce     text/csv
// @Success     200 {file} file
// @Failure     500 {object} models.ErrorResponse
// @Router      /export/products.csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	if h.export == nil {
		c.JSON(http.StatusInternalServerError, errDatabaseUnavailable)
		return
	}
	h.download(c, "csv", export.CSVContentType, h.export.WriteCSV)
}

// ExportXLSX godoc
// @Summary     Download the product export as an Excel workbook
// @Tags        export
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success     200 {file} file
// @Failure     500 {object} models.ErrorResponse
// @Router      /export/products.xlsx [get]
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	if h.export == nil {
		c.JSON(http.StatusInternalServerError, errDatabaseUnavailable)
		return
	}
	h.download(c, "xlsx", export.XLSXContentType, h.export.WriteXLSX)
}

// DeliverFTP godoc
// @Summary     Upload the CSV export over FTP
// @Description Uses the given setting, or the default one. Transfer failures come back with success=false.
// @Tags        export
// @Accept      json
// @Produce     json
// @Param       request body models.ExportFTPRequest false "FTP setting to use"
// @Success     200 {object} models.FTPResultResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /export/ftp [post]
func (h *ExportHandler) DeliverFTP(c *gin.Context) {
	if h.export == nil {
		c.JSON(http.StatusInternalServerError, errDatabaseUnavailable)
		return
	}

	var req models.ExportFTPRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
			return
		}
	}

	result, err := h.export.DeliverExport(c.Request.Context(), req.SettingID)
	if err != nil {
		respondError(c, err, "failed to deliver export")
		return
	}
	c.JSON(http.StatusOK, result)
}

type writeFunc func(ctx context.Context, w io.Writer) error

// download renders the whole file before answering so a failure still gets
// a JSON error.
func (h *ExportHandler) download(c *gin.Context, ext, contentType string, write writeFunc) {
	var buf bytes.Buffer
	if err := write(c.Request.Context(), &buf); err != nil {
		respondError(c, err, "failed to export products")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", h.export.Filename(ext)))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
