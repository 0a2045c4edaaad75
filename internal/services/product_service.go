package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"mockup-catalog-backend/internal/catalog"
	"mockup-catalog-backend/internal/dynamicmockups"
	"mockup-catalog-backend/internal/export"
	"mockup-catalog-backend/internal/mockup"
	"mockup-catalog-backend/internal/models"
)

const DefaultPageSize = 5

type ProductService struct {
	store     ProductStore
	generated GeneratedStore
	templates TemplateSource
	issuer    *catalog.Issuer
	validate  *validator.Validate
	perPage   int
	logger    *zap.Logger
}

func NewProductService(
	store ProductStore,
	generated GeneratedStore,
	templates TemplateSource,
	issuer *catalog.Issuer,
	perPage int,
	logger *zap.Logger,
) *ProductService {
	if issuer == nil {
		issuer = catalog.NewIssuer(nil)
	}
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{
		store:     store,
		generated: generated,
		templates: templates,
		issuer:    issuer,
		validate:  NewValidator(),
		perPage:   perPage,
		logger:    logger,
	}
}

// MockupOptions lists the selectable (template, smart object) labels.
func (s *ProductService) MockupOptions(ctx context.Context) ([]models.MockupOption, error) {
	var mockups []dynamicmockups.Mockup
	err := s.templates.RetryWithBackoff(ctx, func() error {
		var err error
		mockups, err = s.templates.ListMockups(ctx)
		return err
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list mockup templates: %w", err)
	}
	return mockup.BuildOptions(mockups), nil
}

func (s *ProductService) PreviewBlankSKU(name string) string {
	return catalog.BlankSKU(name)
}

func (s *ProductService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}
	if req.Price.IsNegative() {
		return nil, invalid("price must not be negative")
	}

	options, err := s.MockupOptions(ctx)
	if err != nil {
		return nil, err
	}
	templates, err := mockup.ResolveSelections(options, req.MockupSelections)
	if err != nil {
		return nil, invalid("%v", err)
	}

	count, err := s.store.CountProducts(ctx)
	if err != nil {
		return nil, err
	}
	sku, err := catalog.FinalSKU(req.SKUPrefix, count)
	if err != nil {
		return nil, invalid("%v", err)
	}

	mockupIDs := make(catalog.IDList, len(templates))
	smartObjectIDs := make(catalog.IDList, len(templates))
	for i, t := range templates {
		mockupIDs[i] = t.MockupID
		smartObjectIDs[i] = t.SmartObjectID
	}

	product := &models.Product{
		ProductName:      strings.TrimSpace(req.ProductName),
		ItemSKU:          sku,
		ParentChild:      models.ParentChildParent,
		Size:             sizeList(req.Sizes, req.SizeName, catalog.ListValue{}),
		Color:            colorList(req.Colors, req.ColorName),
		MockupID:         mockupIDs.At(0),
		MockupIDs:        mockupIDs,
		SmartObjectUUID:  smartObjectIDs.At(0),
		SmartObjectUUIDs: smartObjectIDs,
		Category:         strings.Join(req.MockupSelections, ", "),
		TaxClass:         req.TaxClass,
		Quantity:         req.Quantity,
		Price:            req.Price,
	}
	if err := s.store.CreateProduct(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product created", zap.Int64("id", product.ID), zap.String("sku", product.ItemSKU))
	return product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	product, err := s.store.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// UpdateProduct replaces the editable fields of a blank. When the SKU changes,
// generated products pointing at the old SKU are moved to the new one.
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, req models.UpdateProductRequest) (*models.Product, error) {
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}
	if req.Price.IsNegative() {
		return nil, invalid("price must not be negative")
	}

	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	oldSKU := product.ItemSKU
	newSKU := strings.TrimSpace(req.ItemSKU)
	if newSKU != oldSKU {
		taken, err := s.store.ProductSKUExists(ctx, newSKU)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, invalid("SKU %s is already in use", newSKU)
		}
	}

	product.ProductName = strings.TrimSpace(req.ProductName)
	product.ItemSKU = newSKU
	product.Size = sizeList(catalog.SplitList(req.Sizes), "", product.Size)
	product.Color = colorList(catalog.SplitList(req.Colors), "")
	product.Price = req.Price
	product.Quantity = req.Quantity
	product.TaxClass = req.TaxClass
	product.Category = req.Category
	product.MarketplaceTitle = req.MarketplaceTitle
	product.ImageURL = req.ImageURL

	if err := s.store.UpdateProduct(ctx, product); err != nil {
		return nil, storeErr(err)
	}

	if newSKU != oldSKU && oldSKU != "" {
		moved, err := s.store.RenameParentSKU(ctx, oldSKU, newSKU)
		if err != nil {
			return nil, err
		}
		s.logger.Info("generated products moved to new parent sku",
			zap.String("old_sku", oldSKU),
			zap.String("new_sku", newSKU),
			zap.Int64("count", moved))
	}

	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	return storeErr(s.store.DeleteProduct(ctx, id))
}

// ListProducts filters blanks by a case-insensitive name/SKU search and an
// optional category, then returns one page.
func (s *ProductService) ListProducts(ctx context.Context, filter models.ListFilter) (models.ProductListResponse, error) {
	products, err := s.store.ListProducts(ctx)
	if err != nil {
		return models.ProductListResponse{}, err
	}

	term := strings.ToLower(strings.TrimSpace(filter.Search))
	var matched []models.Product
	for _, p := range products {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.ProductName), term) &&
			!strings.Contains(strings.ToLower(p.ItemSKU), term) {
			continue
		}
		if !inCategory(p.Category, filter.Category) {
			continue
		}
		matched = append(matched, p)
	}

	perPage := filter.PerPage
	if perPage <= 0 {
		perPage = s.perPage
	}
	page, current, totalPages := export.Paginate(matched, filter.Page, perPage)
	return models.ProductListResponse{
		Products:   page,
		Total:      len(matched),
		Page:       current,
		PerPage:    perPage,
		TotalPages: totalPages,
	}, nil
}

func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	return s.store.ListCategories(ctx)
}

// PrepareForDesign returns the blank a new design should attach to. A blank
// that already has generated products is copied under a new version SKU so
// designs do not share a parent.
func (s *ProductService) PrepareForDesign(ctx context.Context, id int64) (models.PrepareDesignResponse, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return models.PrepareDesignResponse{}, err
	}

	existing, err := s.generated.ListGeneratedByParentSKU(ctx, product.ItemSKU)
	if err != nil {
		return models.PrepareDesignResponse{}, err
	}
	if len(existing) == 0 {
		return models.PrepareDesignResponse{Product: *product}, nil
	}

	count, err := s.store.CountProducts(ctx)
	if err != nil {
		return models.PrepareDesignResponse{}, err
	}
	sku, err := catalog.NewVersionSKU(ctx, product.ItemSKU, count, s.store)
	if err != nil {
		return models.PrepareDesignResponse{}, err
	}

	version := *product
	version.ID = 0
	version.ItemSKU = sku
	version.ProductName = fmt.Sprintf("%s (Version %s)", product.ProductName, sku[strings.Index(sku, "-")+1:])
	if err := s.store.CreateProduct(ctx, &version); err != nil {
		return models.PrepareDesignResponse{}, err
	}

	s.logger.Info("new product version created",
		zap.Int64("source_id", product.ID),
		zap.Int64("id", version.ID),
		zap.String("sku", sku))
	return models.PrepareDesignResponse{Product: version, NewVersion: true}, nil
}

// PreviewDesignSKU shows the SKU a variant of the product would get, without
// consuming the number.
func (s *ProductService) PreviewDesignSKU(ctx context.Context, id int64, size, color string) (string, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return "", err
	}
	return s.issuer.GeneratedSKU(product.ItemSKU, size, catalog.ColorLabel(color), true), nil
}

// sizeList keeps the per-size SKUs already assigned in previous and issues
// new ones for added sizes. With no valid size the literal fallback is kept.
func sizeList(sizes []string, fallback string, previous catalog.ListValue) catalog.ListValue {
	valid := catalog.ValidSizes(sizes)
	if len(valid) == 0 {
		if strings.TrimSpace(fallback) != "" {
			return catalog.ParseListValue(fallback)
		}
		return catalog.ListValue{}
	}

	known := make(map[string]string, len(previous.Items))
	for _, item := range previous.Items {
		if item.SKU != "" {
			known[item.Name] = item.SKU
		}
	}

	items := make([]catalog.Item, len(valid))
	for i, size := range valid {
		sku, ok := known[size]
		if !ok {
			sku = catalog.SizeSKU(size)
		}
		items[i] = catalog.Item{Name: size, SKU: sku}
	}
	return catalog.ObjectList(items...)
}

// colorList stores palette colors by hex code.
func colorList(colors []string, fallback string) catalog.ListValue {
	names := catalog.ValidColors(colors)
	if len(names) == 0 {
		if strings.TrimSpace(fallback) != "" {
			return catalog.ParseListValue(fallback)
		}
		return catalog.ListValue{}
	}
	hexes := make([]string, len(names))
	for i, name := range names {
		hexes[i] = catalog.NameToHex(name)
	}
	return catalog.StringList(hexes...)
}

// inCategory matches the whole category or one of its comma separated parts.
func inCategory(category, want string) bool {
	want = strings.TrimSpace(want)
	if want == "" || strings.EqualFold(category, want) {
		return true
	}
	for _, part := range catalog.SplitList(category) {
		if strings.EqualFold(part, want) {
			return true
		}
	}
	return false
}
