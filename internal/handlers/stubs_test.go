package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"io"

	"mockup-catalog-backend/internal/handlers"
	"mockup-catalog-backend/internal/mockup"
	"mockup-catalog-backend/internal/models"
	"mockup-catalog-backend/internal/services"
)

// Each stub embeds its interface; methods a test does not set up panic.

type stubProducts struct {
	handlers.ProductAPI
	products map[int64]*models.Product
	created  *models.CreateProductRequest
	listErr  error
}

func (s *stubProducts) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return p, nil
}

func (s *stubProducts) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	if len(req.SKUPrefix) != 4 {
		return nil, fmt.Errorf("%w: sku_prefix must be 4 letters", services.ErrValidation)
	}
	s.created = &req
	return &models.Product{ID: 7, ProductName: req.ProductName, ItemSKU: req.SKUPrefix + "-0001", ParentChild: models.ParentChildParent}, nil
}

func (s *stubProducts) ListProducts(ctx context.Context, filter models.ListFilter) (models.ProductListResponse, error) {
	if s.listErr != nil {
		return models.ProductListResponse{}, s.listErr
	}
	return models.ProductListResponse{Page: filter.Page, PerPage: filter.PerPage, TotalPages: 1}, nil
}

func (s *stubProducts) DeleteProduct(ctx context.Context, id int64) error {
	if _, ok := s.products[id]; !ok {
		return services.ErrNotFound
	}
	delete(s.products, id)
	return nil
}

func (s *stubProducts) PreviewBlankSKU(name string) string {
	if name == "" {
		return ""
	}
	return "TSH-123"
}

func (s *stubProducts) MockupOptions(ctx context.Context) ([]models.MockupOption, error) {
	return nil, errors.New("render api: status 401")
}

type stubDesigns struct {
	handlers.DesignAPI
	started  *models.StartRunRequest
	filename string
	image    []byte
	saveResp models.SaveRunResponse
	saveErr  error
}

func (s *stubDesigns) StartRun(ctx context.Context, req models.StartRunRequest, filename string, image []byte) (*mockup.Run, error) {
	s.started = &req
	s.filename = filename
	s.image = image
	return &mockup.Run{ID: "run-1", ProductID: req.ProductID, Colors: req.Colors}, nil
}

func (s *stubDesigns) GetRun(ctx context.Context, id string) (*mockup.Run, error) {
	if id != "run-1" {
		return nil, services.ErrNotFound
	}
	return &mockup.Run{ID: id}, nil
}

func (s *stubDesigns) DiscardRun(ctx context.Context, id string) error {
	if id != "run-1" {
		return services.ErrNotFound
	}
	return nil
}

func (s *stubDesigns) RegenerateColor(ctx context.Context, runID string, req models.RegenerateColorRequest) (mockup.ColorResult, bool, error) {
	return mockup.ColorResult{Color: req.Color, RenderedURL: "https://render/x.png"}, true, nil
}

func (s *stubDesigns) SaveRun(ctx context.Context, runID string, req models.SaveRunRequest) (models.SaveRunResponse, error) {
	return s.saveResp, s.saveErr
}

type stubExport struct {
	handlers.ExportAPI
	csv        string
	writeErr   error
	settingID  *int64
	deliverMsg models.FTPResultResponse
}

func (s *stubExport) WriteCSV(ctx context.Context, w io.Writer) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	_, err := io.WriteString(w, s.csv)
	return err
}

func (s *stubExport) WriteXLSX(ctx context.Context, w io.Writer) error {
	_, err := w.Write([]byte("PK"))
	return err
}

func (s *stubExport) Filename(ext string) string {
	return "products_export_20260101_120000." + ext
}

func (s *stubExport) DeliverExport(ctx context.Context, settingID *int64) (models.FTPResultResponse, error) {
	s.settingID = settingID
	return s.deliverMsg, nil
}

func (s *stubExport) ListGenerated(ctx context.Context, filter models.ListFilter) (models.ListingResponse, error) {
	return models.ListingResponse{Page: 1, PerPage: 5, TotalPages: 1}, nil
}

func (s *stubExport) DeleteGenerated(ctx context.Context, id int64) error {
	return services.ErrNotFound
}

type stubSettings struct {
	handlers.FTPSettingsAPI
	deleteErr error
	tested    *models.FTPSettingRequest
}

func (s *stubSettings) List(ctx context.Context) ([]models.FTPSetting, error) {
	return nil, nil
}

func (s *stubSettings) Create(ctx context.Context, req models.FTPSettingRequest) (*models.FTPSetting, error) {
	return &models.FTPSetting{ID: 1, Host: req.Host, Port: req.Port, Username: req.Username, Password: req.Password, IsDefault: true}, nil
}

func (s *stubSettings) Delete(ctx context.Context, id int64) error {
	return s.deleteErr
}

func (s *stubSettings) Test(ctx context.Context, req models.FTPSettingRequest) (models.FTPResultResponse, error) {
	s.tested = &req
	return models.FTPResultResponse{Success: false, Message: "Failed to connect to FTP server: dial tcp: refused"}, nil
}
