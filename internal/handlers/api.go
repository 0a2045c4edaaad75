package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"mockup-catalog-backend/internal/mockup"
	"mockup-catalog-backend/internal/models"
	"mockup-catalog-backend/internal/services"
)

type ProductAPI interface {
	MockupOptions(ctx context.Context) ([]models.MockupOption, error)
	PreviewBlankSKU(name string) string
	CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, req models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	ListProducts(ctx context.Context, filter models.ListFilter) (models.ProductListResponse, error)
	Categories(ctx context.Context) ([]string, error)
	PrepareForDesign(ctx context.Context, id int64) (models.PrepareDesignResponse, error)
	PreviewDesignSKU(ctx context.Context, id int64, size, color string) (string, error)
}

type DesignAPI interface {
	StartRun(ctx context.Context, req models.StartRunRequest, filename string, image []byte) (*mockup.Run, error)
	GetRun(ctx context.Context, id string) (*mockup.Run, error)
	DiscardRun(ctx context.Context, id string) error
	RegenerateColor(ctx context.Context, runID string, req models.RegenerateColorRequest) (mockup.ColorResult, bool, error)
	SaveRun(ctx context.Context, runID string, req models.SaveRunRequest) (models.SaveRunResponse, error)
}

type ExportAPI interface {
	ListGenerated(ctx context.Context, filter models.ListFilter) (models.ListingResponse, error)
	GetGenerated(ctx context.Context, id int64) (*models.GeneratedProduct, error)
	DeleteGenerated(ctx context.Context, id int64) error
	WriteCSV(ctx context.Context, w io.Writer) error
	WriteXLSX(ctx context.Context, w io.Writer) error
	Filename(ext string) string
	DeliverExport(ctx context.Context, settingID *int64) (models.FTPResultResponse, error)
}

type FTPSettingsAPI interface {
	List(ctx context.Context) ([]models.FTPSetting, error)
	Create(ctx context.Context, req models.FTPSettingRequest) (*models.FTPSetting, error)
	Update(ctx context.Context, id int64, req models.FTPSettingRequest) (*models.FTPSetting, error)
	Delete(ctx context.Context, id int64) error
	SetDefault(ctx context.Context, id int64) error
	Test(ctx context.Context, req models.FTPSettingRequest) (models.FTPResultResponse, error)
}

var errDatabaseUnavailable = models.ErrorResponse{Error: "database not available"}

// respondError picks the status from the service error.
func respondError(c *gin.Context, err error, msg string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrNothingSaved):
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, models.ErrorResponse{Error: msg, Message: err.Error()})
}

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}
