package models

import (
	"time"

	"mockup-catalog-backend/internal/catalog"
)

// GeneratedProduct is one (size, color) variant of a design applied to a blank.
// ParentSKU is matched against Product.ItemSKU by string equality.
type GeneratedProduct struct {
	ID                int64             `db:"id" json:"id"`
	ProductName       string            `db:"product_name" json:"product_name"`
	MarketplaceTitle  string            `db:"marketplace_title" json:"marketplace_title"`
	ItemSKU           string            `db:"item_sku" json:"item_sku"`
	ParentSKU         string            `db:"parent_sku" json:"parent_sku"`
	ParentProductID   *int64            `db:"parent_product_id" json:"parent_product_id,omitempty"`
	Size              catalog.ListValue `db:"size" json:"size"`
	Color             catalog.ListValue `db:"color" json:"color"`
	OriginalDesignURL string            `db:"original_design_url" json:"original_design_url"`
	MockupURLs        catalog.MockupMap `db:"mockup_urls" json:"mockup_urls"`
	MockupIDs         catalog.IDList    `db:"mockup_ids" json:"mockup_ids"`
	SmartObjectUUIDs  catalog.IDList    `db:"smart_object_uuids" json:"smart_object_uuids"`
	IsPublished       bool              `db:"is_published" json:"is_published"`
	CreatedAt         time.Time         `db:"created_at" json:"created_at"`
}
