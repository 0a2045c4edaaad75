package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
	"mockup-catalog-backend/internal/export"
	"mockup-catalog-backend/internal/ftp"
	"mockup-catalog-backend/internal/models"
)

type ExportService struct {
	products  ProductStore
	generated GeneratedStore
	settings  FTPSettingStore
	ftpClient FTPClient
	perPage   int
	logger    *zap.Logger
	now       func() time.Time
}

func NewExportService(
	products ProductStore,
	generated GeneratedStore,
	settings FTPSettingStore,
	ftpClient FTPClient,
	perPage int,
	logger *zap.Logger,
) *ExportService {
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		products:  products,
		generated: generated,
		settings:  settings,
		ftpClient: ftpClient,
		perPage:   perPage,
		logger:    logger,
		now:       time.Now,
	}
}

// ListGenerated returns one page of the generated product listing. The
// category filter applies to the parent blank's category.
func (s *ExportService) ListGenerated(ctx context.Context, filter models.ListFilter) (models.ListingResponse, error) {
	generated, err := s.generated.ListGeneratedProducts(ctx)
	if err != nil {
		return models.ListingResponse{}, err
	}

	if strings.TrimSpace(filter.Category) != "" {
		products, err := s.products.ListProducts(ctx)
		if err != nil {
			return models.ListingResponse{}, err
		}
		categoryBySKU := make(map[string]string, len(products))
		for _, p := range products {
			categoryBySKU[p.ItemSKU] = p.Category
		}

		kept := generated[:0:0]
		for _, g := range generated {
			if inCategory(categoryBySKU[g.ParentSKU], filter.Category) {
				kept = append(kept, g)
			}
		}
		generated = kept
	}

	rows := export.SearchListing(export.Listing(generated), filter.Search)

	perPage := filter.PerPage
	if perPage <= 0 {
		perPage = s.perPage
	}
	page, current, totalPages := export.Paginate(rows, filter.Page, perPage)
	return models.ListingResponse{
		Rows:       page,
		Total:      len(rows),
		Page:       current,
		PerPage:    perPage,
		TotalPages: totalPages,
	}, nil
}

func (s *ExportService) GetGenerated(ctx context.Context, id int64) (*models.GeneratedProduct, error) {
	g, err := s.generated.GetGeneratedProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNotFound
	}
	return g, nil
}

func (s *ExportService) DeleteGenerated(ctx context.Context, id int64) error {
	return storeErr(s.generated.DeleteGeneratedProduct(ctx, id))
}

// Table builds the export table over every blank and generated product.
func (s *ExportService) Table(ctx context.Context) (export.Table, error) {
	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return export.Table{}, err
	}
	generated, err := s.generated.ListGeneratedProducts(ctx)
	if err != nil {
		return export.Table{}, err
	}
	return export.Build(reversed(products), reversed(generated)), nil
}

func (s *ExportService) WriteCSV(ctx context.Context, w io.Writer) error {
	table, err := s.Table(ctx)
	if err != nil {
		return err
	}
	return export.WriteCSV(w, table)
}

func (s *ExportService) WriteXLSX(ctx context.Context, w io.Writer) error {
	table, err := s.Table(ctx)
	if err != nil {
		return err
	}
	return export.WriteXLSX(w, table)
}

// Filename is the export file name stamped with the current time.
func (s *ExportService) Filename(ext string) string {
	return fmt.Sprintf("products_export_%s.%s", s.now().Format("20060102_150405"), ext)
}

// DeliverExport uploads the CSV export through settingID, or through the
// default setting when settingID is nil. Transfer failures are reported in
// the result, not as an error.
func (s *ExportService) DeliverExport(ctx context.Context, settingID *int64) (models.FTPResultResponse, error) {
	var setting *models.FTPSetting
	var err error
	if settingID != nil {
		setting, err = s.settings.GetFTPSetting(ctx, *settingID)
		if err != nil {
			return models.FTPResultResponse{}, err
		}
		if setting == nil {
			return models.FTPResultResponse{}, ErrNotFound
		}
	} else {
		setting, err = s.settings.GetDefaultFTPSetting(ctx)
		if err != nil {
			return models.FTPResultResponse{}, err
		}
	}

	var buf bytes.Buffer
	if err := s.WriteCSV(ctx, &buf); err != nil {
		return models.FTPResultResponse{}, err
	}

	filename := s.Filename("csv")
	msg, err := s.ftpClient.Upload(ctx, ftpSettings(setting), filename, &buf)
	if err != nil {
		s.logger.Warn("export delivery failed", zap.String("file", filename), zap.Error(err))
		return models.FTPResultResponse{Success: false, Message: err.Error()}, nil
	}
	return models.FTPResultResponse{Success: true, Message: msg}, nil
}

func ftpSettings(s *models.FTPSetting) *ftp.Settings {
	if s == nil {
		return nil
	}
	return &ftp.Settings{Host: s.Host, Port: s.Port, Username: s.Username, Password: s.Password}
}

// reversed turns the stores' newest-first order into insertion order.
func reversed[T any](items []T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[len(items)-1-i] = item
	}
	return out
}
