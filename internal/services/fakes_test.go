package services_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"mockup-catalog-backend/internal/database"
	"mockup-catalog-backend/internal/dynamicmockups"
	"mockup-catalog-backend/internal/ftp"
	"mockup-catalog-backend/internal/models"
)

// memDB stands in for the Postgres client. Lists come back newest first,
// like the real queries.
type memDB struct {
	mu        sync.Mutex
	nextID    int64
	products  []models.Product
	generated []models.GeneratedProduct
	settings  []models.FTPSetting

	failGenerated map[string]bool
}

func newMemDB() *memDB {
	return &memDB{failGenerated: make(map[string]bool)}
}

func (m *memDB) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memDB) ListProducts(ctx context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Product, 0, len(m.products))
	for i := len(m.products) - 1; i >= 0; i-- {
		out = append(out, m.products[i])
	}
	return out, nil
}

func (m *memDB) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (m *memDB) CreateProduct(ctx context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.id()
	m.products = append(m.products, *p)
	return nil
}

func (m *memDB) UpdateProduct(ctx context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.products {
		if m.products[i].ID == p.ID {
			m.products[i] = *p
			return nil
		}
	}
	return database.ErrNotFound
}

func (m *memDB) DeleteProduct(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.products {
		if m.products[i].ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return database.ErrNotFound
}

func (m *memDB) CountProducts(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.products), nil
}

func (m *memDB) ProductSKUExists(ctx context.Context, sku string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.products {
		if p.ItemSKU == sku {
			return true, nil
		}
	}
	return false, nil
}

func (m *memDB) ListCategories(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, p := range m.products {
		if p.Category != "" {
			out = append(out, p.Category)
		}
	}
	return out, nil
}

func (m *memDB) RenameParentSKU(ctx context.Context, oldSKU, newSKU string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for i := range m.generated {
		if m.generated[i].ParentSKU == oldSKU {
			m.generated[i].ParentSKU = newSKU
			n++
		}
	}
	return n, nil
}

func (m *memDB) ListGeneratedProducts(ctx context.Context) ([]models.GeneratedProduct, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.GeneratedProduct, 0, len(m.generated))
	for i := len(m.generated) - 1; i >= 0; i-- {
		out = append(out, m.generated[i])
	}
	return out, nil
}

func (m *memDB) GetGeneratedProduct(ctx context.Context, id int64) (*models.GeneratedProduct, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, g := range m.generated {
		if g.ID == id {
			g := g
			return &g, nil
		}
	}
	return nil, nil
}

func (m *memDB) ListGeneratedByParentSKU(ctx context.Context, parentSKU string) ([]models.GeneratedProduct, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.GeneratedProduct
	for _, g := range m.generated {
		if g.ParentSKU == parentSKU {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *memDB) CreateGeneratedProduct(ctx context.Context, g *models.GeneratedProduct) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for prefix := range m.failGenerated {
		if strings.Contains(g.ItemSKU, prefix) {
			return errors.New("insert failed")
		}
	}
	g.ID = m.id()
	m.generated = append(m.generated, *g)
	return nil
}

func (m *memDB) DeleteGeneratedProduct(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.generated {
		if m.generated[i].ID == id {
			m.generated = append(m.generated[:i], m.generated[i+1:]...)
			return nil
		}
	}
	return database.ErrNotFound
}

func (m *memDB) ListFTPSettings(ctx context.Context) ([]models.FTPSetting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.FTPSetting(nil), m.settings...), nil
}

func (m *memDB) GetFTPSetting(ctx context.Context, id int64) (*models.FTPSetting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.settings {
		if s.ID == id {
			s := s
			return &s, nil
		}
	}
	return nil, nil
}

func (m *memDB) GetDefaultFTPSetting(ctx context.Context) (*models.FTPSetting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.settings {
		if s.IsDefault {
			s := s
			return &s, nil
		}
	}
	return nil, nil
}

func (m *memDB) CreateFTPSetting(ctx context.Context, s *models.FTPSetting) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = m.id()
	if s.IsDefault {
		m.clearDefaults()
	}
	m.settings = append(m.settings, *s)
	return nil
}

func (m *memDB) UpdateFTPSetting(ctx context.Context, s *models.FTPSetting) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.settings {
		if m.settings[i].ID == s.ID {
			if s.IsDefault {
				m.clearDefaults()
			}
			m.settings[i] = *s
			return nil
		}
	}
	return database.ErrNotFound
}

func (m *memDB) DeleteFTPSetting(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.settings {
		if m.settings[i].ID == id {
			m.settings = append(m.settings[:i], m.settings[i+1:]...)
			return nil
		}
	}
	return database.ErrNotFound
}

func (m *memDB) SetDefaultFTPSetting(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.settings {
		if m.settings[i].ID == id {
			m.clearDefaults()
			m.settings[i].IsDefault = true
			return nil
		}
	}
	return database.ErrNotFound
}

func (m *memDB) clearDefaults() {
	for i := range m.settings {
		m.settings[i].IsDefault = false
	}
}

type fakeTemplates struct {
	mockups []dynamicmockups.Mockup
	err     error
}

func (f *fakeTemplates) ListMockups(ctx context.Context) ([]dynamicmockups.Mockup, error) {
	return f.mockups, f.err
}

func (f *fakeTemplates) RetryWithBackoff(ctx context.Context, fn func() error, maxRetries int) error {
	return fn()
}

func teeTemplates() *fakeTemplates {
	return &fakeTemplates{mockups: []dynamicmockups.Mockup{
		{
			UUID: "mock-front-000001",
			Name: "Tee Front",
			SmartObjects: []dynamicmockups.MockupSmartObject{
				{UUID: "so-bg", Name: "Background"},
				{UUID: "so-front", Name: "Front Print"},
			},
		},
		{
			UUID:         "mock-back-000002",
			Name:         "Tee Back",
			SmartObjects: []dynamicmockups.MockupSmartObject{{UUID: "so-back", Name: "Back Print"}},
		},
	}}
}

type fakeStorage struct {
	uploads map[string][]byte
	fail    map[string]bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{uploads: make(map[string][]byte), fail: make(map[string]bool)}
}

func (f *fakeStorage) UploadFile(ctx context.Context, storagePath string, data []byte, contentType string) (string, error) {
	for part := range f.fail {
		if strings.Contains(storagePath, part) {
			return "", errors.New("bucket unavailable")
		}
	}
	f.uploads[storagePath] = data
	return "https://storage/" + storagePath, nil
}

type fakeImages struct {
	unreachable bool
	missing     map[string]bool
}

func (f *fakeImages) CheckImage(ctx context.Context, imageURL string) error {
	if f.unreachable {
		return fmt.Errorf("image check failed: status 404")
	}
	return nil
}

func (f *fakeImages) Download(ctx context.Context, downloadURL string) ([]byte, error) {
	if f.missing[downloadURL] {
		return nil, fmt.Errorf("failed to download: status 404")
	}
	return []byte("png:" + downloadURL), nil
}

type fakeRenderer struct {
	calls int
}

func (f *fakeRenderer) Render(ctx context.Context, req dynamicmockups.RenderRequest) (string, error) {
	f.calls++
	color := strings.TrimPrefix(req.SmartObjects[0].Color, "#")
	return fmt.Sprintf("https://render/%s/%s/%d.png", req.MockupUUID, color, f.calls), nil
}

type fakeFTP struct {
	uploads  map[string]string
	settings *ftp.Settings
	err      error
}

func (f *fakeFTP) Upload(ctx context.Context, settings *ftp.Settings, filename string, data io.Reader) (string, error) {
	if settings == nil {
		return "", ftp.ErrNoSettings
	}
	if f.err != nil {
		return "", f.err
	}
	body, _ := io.ReadAll(data)
	if f.uploads == nil {
		f.uploads = make(map[string]string)
	}
	f.uploads[filename] = string(body)
	f.settings = settings
	return fmt.Sprintf("File '%s' uploaded successfully to %s", filename, settings.Host), nil
}

func (f *fakeFTP) Test(ctx context.Context, settings *ftp.Settings) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.settings = settings
	return "Connected successfully to " + settings.Host + ". Server message: ok", nil
}
