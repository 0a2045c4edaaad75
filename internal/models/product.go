package models

import (
	"time"

	"github.com/shopspring/decimal"
	"mockup-catalog-backend/internal/catalog"
)

const (
	ParentChildParent = "Parent"
	ParentChildChild  = "Child"
)

// Product is a blank catalog item. Sizes and colors are embedded lists decoded
// from their JSON text columns.
type Product struct {
	ID               int64             `db:"id" json:"id"`
	ProductName      string            `db:"product_name" json:"product_name"`
	ItemSKU          string            `db:"item_sku" json:"item_sku"`
	ParentChild      string            `db:"parent_child" json:"parent_child"`
	ParentSKU        string            `db:"parent_sku" json:"parent_sku"`
	Size             catalog.ListValue `db:"size" json:"size"`
	Color            catalog.ListValue `db:"color" json:"color"`
	MockupID         string            `db:"mockup_id" json:"mockup_id"`
	MockupIDs        catalog.IDList    `db:"mockup_ids" json:"mockup_ids"`
	SmartObjectUUID  string            `db:"smart_object_uuid" json:"smart_object_uuid"`
	SmartObjectUUIDs catalog.IDList    `db:"smart_object_uuids" json:"smart_object_uuids"`
	ImageURL         string            `db:"image_url" json:"image_url"`
	MarketplaceTitle string            `db:"marketplace_title" json:"marketplace_title"`
	Category         string            `db:"category" json:"category"`
	TaxClass         string            `db:"tax_class" json:"tax_class"`
	Quantity         int               `db:"quantity" json:"quantity"`
	Price            decimal.Decimal   `db:"price" json:"price"`
	CreatedAt        time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time         `db:"updated_at" json:"updated_at"`
}

// TemplateIDs returns the mockup template ids chosen for the product, falling
// back to the single legacy mockup_id column.
func (p *Product) TemplateIDs() []string {
	if len(p.MockupIDs) > 0 {
		return p.MockupIDs
	}
	if p.MockupID != "" {
		return []string{p.MockupID}
	}
	return nil
}

// SmartObjectIDs mirrors TemplateIDs for the smart object column pair.
func (p *Product) SmartObjectIDs() []string {
	if len(p.SmartObjectUUIDs) > 0 {
		return p.SmartObjectUUIDs
	}
	if p.SmartObjectUUID != "" {
		return []string{p.SmartObjectUUID}
	}
	return nil
}
