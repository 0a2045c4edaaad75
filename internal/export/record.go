package export

import (
	"github.com/shopspring/decimal"
	"mockup-catalog-backend/internal/catalog"
	"mockup-catalog-backend/internal/models"
)

const (
	ProductTypeRegular   = "Regular"
	ProductTypeGenerated = "Generated"
)

// Record is one stored row from either table, reduced to what the export
// needs. Price and Quantity are nil when the source table has no such column.
type Record struct {
	ID                int64
	ProductType       string
	ProductName       string
	ItemSKU           string
	ParentChild       string
	ParentSKU         string
	ParentProductID   *int64
	Sizes             catalog.ListValue
	Colors            catalog.ListValue
	MockupURLs        catalog.MockupMap
	ImageURL          string
	MarketplaceTitle  string
	Category          string
	TaxClass          string
	Price             *decimal.Decimal
	Quantity          *int
	OriginalDesignURL string
	IsPublished       bool
}

func FromProduct(p models.Product) Record {
	parentChild := p.ParentChild
	if parentChild == "" {
		parentChild = models.ParentChildParent
	}
	price := p.Price
	quantity := p.Quantity
	return Record{
		ID:               p.ID,
		ProductType:      ProductTypeRegular,
		ProductName:      p.ProductName,
		ItemSKU:          p.ItemSKU,
		ParentChild:      parentChild,
		ParentSKU:        p.ParentSKU,
		Sizes:            p.Size,
		Colors:           p.Color,
		ImageURL:         p.ImageURL,
		MarketplaceTitle: p.MarketplaceTitle,
		Category:         p.Category,
		TaxClass:         p.TaxClass,
		Price:            &price,
		Quantity:         &quantity,
	}
}

func FromGenerated(g models.GeneratedProduct) Record {
	return Record{
		ID:                g.ID,
		ProductType:       ProductTypeGenerated,
		ProductName:       g.ProductName,
		ItemSKU:           g.ItemSKU,
		ParentChild:       models.ParentChildChild,
		ParentSKU:         g.ParentSKU,
		ParentProductID:   g.ParentProductID,
		Sizes:             g.Size,
		Colors:            g.Color,
		MockupURLs:        g.MockupURLs,
		MarketplaceTitle:  g.MarketplaceTitle,
		OriginalDesignURL: g.OriginalDesignURL,
		IsPublished:       g.IsPublished,
	}
}

func (r Record) isParent() bool {
	return r.ParentChild == models.ParentChildParent
}
