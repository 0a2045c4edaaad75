package services_test

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mockup-catalog-backend/internal/catalog"
	"mockup-catalog-backend/internal/models"
	"mockup-catalog-backend/internal/services"
)

func newProductService(db *memDB) *services.ProductService {
	return services.NewProductService(db, db, teeTemplates(), catalog.NewIssuer(nil), 5, nil)
}

func createRequest() models.CreateProductRequest {
	return models.CreateProductRequest{
		ProductName:      "Classic Tee",
		SKUPrefix:        "CLAS",
		Sizes:            []string{"small", "XX-Large", "Huge"},
		Colors:           []string{"Black", "red", "Teal"},
		MockupSelections: []string{"Front Print - Tee Front", "Back Print - Tee Back"},
		Price:            decimal.RequireFromString("19.99"),
		Quantity:         10,
		TaxClass:         "VAT Standard",
	}
}

func TestMockupOptions(t *testing.T) {
	svc := newProductService(newMemDB())

	options, err := svc.MockupOptions(context.Background())
	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Equal(t, "Front Print - Tee Front", options[0].Label)
	assert.Equal(t, "so-front", options[0].SmartObjectID)
}

func TestCreateProduct(t *testing.T) {
	db := newMemDB()
	svc := newProductService(db)

	p, err := svc.CreateProduct(context.Background(), createRequest())
	require.NoError(t, err)

	assert.Equal(t, "CLAS-0001", p.ItemSKU)
	assert.Equal(t, models.ParentChildParent, p.ParentChild)
	assert.Equal(t, []string{"Small", "XX-Large"}, p.Size.Names())
	assert.Equal(t, catalog.ShapeObjects, p.Size.Shape)
	assert.Regexp(t, regexp.MustCompile(`^s-[A-Z0-9]{6}$`), p.Size.Items[0].SKU)
	assert.Regexp(t, regexp.MustCompile(`^x-[A-Z0-9]{6}$`), p.Size.Items[1].SKU)
	assert.Equal(t, []string{"#000000", "#FF0000"}, p.Color.Names())
	assert.Equal(t, "mock-front-000001", p.MockupID)
	assert.Equal(t, catalog.IDList{"mock-front-000001", "mock-back-000002"}, p.MockupIDs)
	assert.Equal(t, catalog.IDList{"so-front", "so-back"}, p.SmartObjectUUIDs)
	assert.Equal(t, "Front Print - Tee Front, Back Print - Tee Back", p.Category)

	second, err := svc.CreateProduct(context.Background(), createRequest())
	require.NoError(t, err)
	assert.Equal(t, "CLAS-0002", second.ItemSKU)
}

func TestCreateProduct_Validation(t *testing.T) {
	svc := newProductService(newMemDB())

	tests := []struct {
		name   string
		mutate func(*models.CreateProductRequest)
	}{
		{"short prefix", func(r *models.CreateProductRequest) { r.SKUPrefix = "CLA" }},
		{"digits in prefix", func(r *models.CreateProductRequest) { r.SKUPrefix = "CL4S" }},
		{"missing name", func(r *models.CreateProductRequest) { r.ProductName = "" }},
		{"no mockups", func(r *models.CreateProductRequest) { r.MockupSelections = nil }},
		{"unknown mockup", func(r *models.CreateProductRequest) { r.MockupSelections = []string{"Nope"} }},
		{"negative price", func(r *models.CreateProductRequest) { r.Price = decimal.NewFromInt(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createRequest()
			tt.mutate(&req)
			_, err := svc.CreateProduct(context.Background(), req)
			assert.ErrorIs(t, err, services.ErrValidation)
		})
	}
}

func TestUpdateProduct_RenamesChildren(t *testing.T) {
	db := newMemDB()
	svc := newProductService(db)
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, createRequest())
	require.NoError(t, err)
	require.NoError(t, db.CreateGeneratedProduct(ctx, &models.GeneratedProduct{ItemSKU: "CLAS-1000-S-Black", ParentSKU: "CLAS-0001"}))

	smallSKU := p.Size.Items[0].SKU
	updated, err := svc.UpdateProduct(ctx, p.ID, models.UpdateProductRequest{
		ProductName: "Classic Tee v2",
		ItemSKU:     "TEES-0001",
		Sizes:       "Small, Medium",
		Colors:      "White",
		Price:       decimal.NewFromInt(20),
		Quantity:    3,
	})
	require.NoError(t, err)
	assert.Equal(t, "TEES-0001", updated.ItemSKU)
	assert.Equal(t, smallSKU, updated.Size.Items[0].SKU, "existing size SKU kept")
	assert.Equal(t, []string{"#FFFFFF"}, updated.Color.Names())

	children, err := db.ListGeneratedByParentSKU(ctx, "TEES-0001")
	require.NoError(t, err)
	assert.Len(t, children, 1)
}

func TestUpdateProduct_Errors(t *testing.T) {
	db := newMemDB()
	svc := newProductService(db)
	ctx := context.Background()

	_, err := svc.UpdateProduct(ctx, 99, models.UpdateProductRequest{ProductName: "x", ItemSKU: "AAAA-0001"})
	assert.ErrorIs(t, err, services.ErrNotFound)

	first, err := svc.CreateProduct(ctx, createRequest())
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, createRequest())
	require.NoError(t, err)

	_, err = svc.UpdateProduct(ctx, first.ID, models.UpdateProductRequest{ProductName: "x", ItemSKU: "CLAS-0002"})
	assert.ErrorIs(t, err, services.ErrValidation, "SKU taken by the second product")

	long := models.UpdateProductRequest{ProductName: "x", ItemSKU: "CLAS-0001", MarketplaceTitle: strings.Repeat("a", 81)}
	_, err = svc.UpdateProduct(ctx, first.ID, long)
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestListProducts(t *testing.T) {
	db := newMemDB()
	ctx := context.Background()
	for i, name := range []string{"Alpha Tee", "Beta Hoodie", "Gamma Tee", "Delta Cap", "Epsilon Tee", "Zeta Tee"} {
		category := "Tees"
		if name == "Beta Hoodie" {
			category = "Hoodies, Winter"
		}
		require.NoError(t, db.CreateProduct(ctx, &models.Product{
			ProductName: name,
			ItemSKU:     "SKU-000" + string(rune('1'+i)),
			Category:    category,
		}))
	}
	svc := newProductService(db)

	all, err := svc.ListProducts(ctx, models.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 6, all.Total)
	assert.Len(t, all.Products, 5)
	assert.Equal(t, 2, all.TotalPages)

	tees, err := svc.ListProducts(ctx, models.ListFilter{Search: "tee", Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.Equal(t, 4, tees.Total)
	assert.Len(t, tees.Products, 2)

	winter, err := svc.ListProducts(ctx, models.ListFilter{Category: "winter"})
	require.NoError(t, err)
	require.Len(t, winter.Products, 1)
	assert.Equal(t, "Beta Hoodie", winter.Products[0].ProductName)

	bySKU, err := svc.ListProducts(ctx, models.ListFilter{Search: "sku-0004"})
	require.NoError(t, err)
	require.Len(t, bySKU.Products, 1)
	assert.Equal(t, "Delta Cap", bySKU.Products[0].ProductName)
}

func TestDeleteProduct(t *testing.T) {
	db := newMemDB()
	svc := newProductService(db)
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, createRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, p.ID))
	assert.ErrorIs(t, svc.DeleteProduct(ctx, p.ID), services.ErrNotFound)
}

func TestPrepareForDesign(t *testing.T) {
	db := newMemDB()
	svc := newProductService(db)
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, createRequest())
	require.NoError(t, err)

	fresh, err := svc.PrepareForDesign(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, fresh.NewVersion)
	assert.Equal(t, p.ID, fresh.Product.ID)

	require.NoError(t, db.CreateGeneratedProduct(ctx, &models.GeneratedProduct{ItemSKU: "CLAS-1000-S-Black", ParentSKU: "CLAS-0001"}))

	version, err := svc.PrepareForDesign(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, version.NewVersion)
	assert.NotEqual(t, p.ID, version.Product.ID)
	assert.Equal(t, "CLAS-0002", version.Product.ItemSKU)
	assert.Equal(t, "Classic Tee (Version 0002)", version.Product.ProductName)
	assert.Equal(t, p.MockupIDs, version.Product.MockupIDs)
}

func TestPreviewDesignSKU(t *testing.T) {
	db := newMemDB()
	svc := newProductService(db)
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, createRequest())
	require.NoError(t, err)

	first, err := svc.PreviewDesignSKU(ctx, p.ID, "XX-Large", "#000000")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^CLAS-\d{4}-XX-Black$`), first)

	_, err = svc.PreviewDesignSKU(ctx, 404, "Small", "Black")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestPreviewBlankSKU(t *testing.T) {
	svc := newProductService(newMemDB())
	assert.Regexp(t, regexp.MustCompile(`^CLA-\d{3}$`), svc.PreviewBlankSKU("classic tee"))
}
