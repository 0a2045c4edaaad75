package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"mockup-catalog-backend/internal/catalog"
	"mockup-catalog-backend/internal/mockup"
	"mockup-catalog-backend/internal/models"
	"mockup-catalog-backend/internal/supabase"
)

// ErrNothingSaved is returned when every variant of a save failed.
var ErrNothingSaved = errors.New("no generated products were saved")

type DesignService struct {
	products     ProductStore
	generated    GeneratedStore
	storage      ObjectStorage
	images       ImageFetcher
	orchestrator *mockup.Orchestrator
	runs         RunStore
	validate     *validator.Validate
	logger       *zap.Logger
	now          func() time.Time

	defaultTemplate string
}

func NewDesignService(
	products ProductStore,
	generated GeneratedStore,
	storage ObjectStorage,
	images ImageFetcher,
	orchestrator *mockup.Orchestrator,
	runs RunStore,
	logger *zap.Logger,
) *DesignService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DesignService{
		products:     products,
		generated:    generated,
		storage:      storage,
		images:       images,
		orchestrator: orchestrator,
		runs:         runs,
		validate:     NewValidator(),
		logger:       logger,
		now:          time.Now,
	}
}

// WithDefaultTemplate sets the mockup template rendered for products that
// have none of their own.
func (s *DesignService) WithDefaultTemplate(mockupID string) *DesignService {
	s.defaultTemplate = strings.TrimSpace(mockupID)
	return s
}

// StartRun uploads the design image, renders it on every template of the
// product in every requested color and keeps the run for later edits.
func (s *DesignService) StartRun(ctx context.Context, req models.StartRunRequest, filename string, image []byte) (*mockup.Run, error) {
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}
	if len(image) == 0 {
		return nil, invalid("design image is required")
	}

	product, err := s.products.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	templates := mockup.PairTemplates(product.TemplateIDs(), product.SmartObjectIDs())
	if len(templates) == 0 && s.defaultTemplate != "" {
		s.logger.Info("product has no mockup templates, using default",
			zap.String("item_sku", product.ItemSKU),
			zap.String("mockup_id", s.defaultTemplate))
		templates = []mockup.Template{{MockupID: s.defaultTemplate}}
	}
	if len(templates) == 0 {
		return nil, invalid("product %s has no mockup templates", product.ItemSKU)
	}

	hexes := hexList(req.Colors)
	if len(hexes) == 0 {
		return nil, invalid("no valid colors selected")
	}

	imageURL, err := s.storage.UploadFile(ctx, supabase.DesignPath(filename), image, http.DetectContentType(image))
	if err != nil {
		return nil, fmt.Errorf("failed to upload design image: %w", err)
	}
	if err := s.images.CheckImage(ctx, imageURL); err != nil {
		return nil, fmt.Errorf("uploaded design image is not reachable: %w", err)
	}

	runID := uuid.New().String()
	report, err := s.orchestrator.Generate(ctx, imageURL, hexes, templates, func(p mockup.Progress) {
		s.logger.Debug("mockup progress",
			zap.String("run_id", runID),
			zap.Int("completed", p.Completed),
			zap.Int("total", p.Total))
	})
	if err != nil {
		return nil, invalid("%v", err)
	}

	run := &mockup.Run{
		ID:             runID,
		ProductID:      product.ID,
		ParentSKU:      product.ItemSKU,
		DesignName:     req.DesignName,
		Title:          req.MarketplaceTitle,
		DesignImageURL: imageURL,
		Colors:         hexes,
		Templates:      templates,
		CreatedAt:      s.now(),
	}
	run.Apply(report)

	if err := s.runs.SaveRun(ctx, run); err != nil {
		return nil, err
	}
	return run, nil
}

func (s *DesignService) GetRun(ctx context.Context, id string) (*mockup.Run, error) {
	run, err := s.runs.GetRun(ctx, id)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, ErrNotFound
	}
	return run, nil
}

// DiscardRun forgets a run. Saved generated products are not touched.
func (s *DesignService) DiscardRun(ctx context.Context, id string) error {
	if _, err := s.GetRun(ctx, id); err != nil {
		return err
	}
	if err := s.runs.DeleteRun(ctx, id); err != nil {
		return err
	}
	s.logger.Info("mockup run discarded", zap.String("run_id", id))
	return nil
}

// RegenerateColor renders one color again for one template of a run. The
// second return value reports whether a stored render was reused.
func (s *DesignService) RegenerateColor(ctx context.Context, runID string, req models.RegenerateColorRequest) (mockup.ColorResult, bool, error) {
	if err := validateStruct(s.validate, req); err != nil {
		return mockup.ColorResult{}, false, err
	}

	run, err := s.GetRun(ctx, runID)
	if err != nil {
		return mockup.ColorResult{}, false, err
	}
	if req.TemplateIndex >= len(run.Templates) {
		return mockup.ColorResult{}, false, invalid("template index %d out of range", req.TemplateIndex)
	}
	hex, ok := catalog.HexFor(req.Color)
	if !ok {
		return mockup.ColorResult{}, false, invalid("unknown color %q", req.Color)
	}

	colorIndex := -1
	if req.ColorIndex != nil {
		colorIndex = *req.ColorIndex
	}

	result, cached, err := s.orchestrator.Regenerate(ctx, run, req.TemplateIndex, hex, colorIndex)
	if err != nil {
		return mockup.ColorResult{}, false, err
	}
	if !cached {
		if err := s.runs.SaveRun(ctx, run); err != nil {
			return mockup.ColorResult{}, false, err
		}
	}
	return result, cached, nil
}

type savedMockup struct {
	mockupID      string
	smartObjectID string
	url           string
}

// SaveRun copies the chosen renders into storage and creates one generated
// product per (color, size). Failures on single mockups or rows are returned
// as warnings; ErrNothingSaved means no row was created.
func (s *DesignService) SaveRun(ctx context.Context, runID string, req models.SaveRunRequest) (models.SaveRunResponse, error) {
	var resp models.SaveRunResponse
	if err := validateStruct(s.validate, req); err != nil {
		return resp, err
	}

	run, err := s.GetRun(ctx, runID)
	if err != nil {
		return resp, err
	}

	designName := firstNonEmpty(req.DesignName, run.DesignName)
	if designName == "" {
		return resp, invalid("design name is required")
	}
	title := firstNonEmpty(req.MarketplaceTitle, run.Title)
	if title == "" {
		return resp, invalid("marketplace title is required")
	}

	sizes := catalog.ValidSizes(req.Sizes)
	if len(sizes) == 0 {
		return resp, invalid("no valid sizes selected")
	}
	hexes := hexList(req.Colors)
	if len(req.Colors) > 0 && len(hexes) == 0 {
		return resp, invalid("no valid colors selected")
	}
	if len(hexes) == 0 {
		hexes = run.Colors
	}

	rendered := run.RenderedFor(hexes)
	if len(rendered) == 0 {
		return resp, invalid("no rendered mockups for the selected colors")
	}

	skuOwner := run.ParentSKU
	if skuOwner == "" {
		skuOwner = "unknown"
	}

	byColor := make(map[string][]savedMockup)
	for _, set := range rendered {
		for _, res := range set.Results {
			colorName := catalog.ColorLabel(res.Color)

			data, err := s.images.Download(ctx, res.RenderedURL)
			if err != nil {
				resp.Warnings = append(resp.Warnings, fmt.Sprintf("failed to download %s mockup for %s: %v", colorName, set.MockupID, err))
				continue
			}

			url, err := s.storage.UploadFile(ctx, supabase.MockupPath(skuOwner, colorName, set.MockupID), data, "image/png")
			if err != nil {
				resp.Warnings = append(resp.Warnings, fmt.Sprintf("failed to store %s mockup for %s: %v", colorName, set.MockupID, err))
				continue
			}

			byColor[res.Color] = append(byColor[res.Color], savedMockup{
				mockupID:      set.MockupID,
				smartObjectID: set.SmartObjectID,
				url:           url,
			})
		}
	}

	issuer := catalog.NewIssuer(nil)
	productID := run.ProductID
	for _, hex := range hexes {
		saved := byColor[hex]
		if len(saved) == 0 {
			continue
		}
		colorName := catalog.ColorLabel(hex)

		var urls catalog.MockupMap
		mockupIDs := make(catalog.IDList, 0, len(saved))
		smartObjectIDs := make(catalog.IDList, 0, len(saved))
		for _, m := range saved {
			urls.Add(hex, m.url)
			mockupIDs = append(mockupIDs, m.mockupID)
			smartObjectIDs = append(smartObjectIDs, m.smartObjectID)
		}

		for _, size := range sizes {
			g := &models.GeneratedProduct{
				ProductName:       designName,
				MarketplaceTitle:  title,
				ItemSKU:           issuer.GeneratedSKU(run.ParentSKU, size, colorName, false),
				ParentSKU:         run.ParentSKU,
				Size:              catalog.StringList(size),
				Color:             catalog.StringList(hex),
				OriginalDesignURL: run.DesignImageURL,
				MockupURLs:        urls,
				MockupIDs:         mockupIDs,
				SmartObjectUUIDs:  smartObjectIDs,
			}
			if productID > 0 {
				g.ParentProductID = &productID
			}

			if err := s.generated.CreateGeneratedProduct(ctx, g); err != nil {
				resp.Warnings = append(resp.Warnings, fmt.Sprintf("failed to save %s: %v", g.ItemSKU, err))
				continue
			}
			resp.Created = append(resp.Created, *g)
		}
	}

	s.logger.Info("design saved",
		zap.String("run_id", run.ID),
		zap.Int("created", len(resp.Created)),
		zap.Int("warnings", len(resp.Warnings)))

	if len(resp.Created) == 0 {
		return resp, ErrNothingSaved
	}
	return resp, nil
}

// hexList resolves color names or codes to palette hex codes, dropping
// unknown entries and duplicates.
func hexList(colors []string) []string {
	seen := make(map[string]bool, len(colors))
	var hexes []string
	for _, c := range colors {
		hex, ok := catalog.HexFor(c)
		if !ok || seen[hex] {
			continue
		}
		seen[hex] = true
		hexes = append(hexes, hex)
	}
	return hexes
}
