package models

import "github.com/shopspring/decimal"

type CreateProductRequest struct {
	ProductName      string          `json:"product_name" validate:"required"`
	SKUPrefix        string          `json:"sku_prefix" validate:"required,skuprefix"`
	Sizes            []string        `json:"sizes"`
	Colors           []string        `json:"colors"`
	SizeName         string          `json:"size_name"`
	ColorName        string          `json:"color_name"`
	MockupSelections []string        `json:"mockup_selections" validate:"required,min=1,dive,required"`
	Price            decimal.Decimal `json:"price"`
	Quantity         int             `json:"quantity" validate:"gte=0"`
	TaxClass         string          `json:"tax_class"`
}

// UpdateProductRequest replaces the editable fields of a blank. Sizes and
// colors are comma separated, as typed in the edit form.
type UpdateProductRequest struct {
	ProductName      string          `json:"product_name" validate:"required"`
	ItemSKU          string          `json:"item_sku" validate:"required"`
	Sizes            string          `json:"sizes"`
	Colors           string          `json:"colors"`
	Price            decimal.Decimal `json:"price"`
	Quantity         int             `json:"quantity" validate:"gte=0"`
	TaxClass         string          `json:"tax_class"`
	Category         string          `json:"category"`
	MarketplaceTitle string          `json:"marketplace_title" validate:"max=80"`
	ImageURL         string          `json:"image_url"`
}

type ListFilter struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
}

// StartRunRequest arrives as multipart form data next to the design image.
type StartRunRequest struct {
	ProductID        int64    `form:"product_id" validate:"required,gt=0"`
	DesignName       string   `form:"design_name" validate:"required"`
	MarketplaceTitle string   `form:"marketplace_title" validate:"required,max=80"`
	Colors           []string `form:"colors" validate:"required,min=1,dive,required"`
}

type RegenerateColorRequest struct {
	TemplateIndex int    `json:"template_index" validate:"gte=0"`
	Color         string `json:"color" validate:"required"`
	ColorIndex    *int   `json:"color_index,omitempty"`
}

// SaveRunRequest may override the name and title given when the run started.
type SaveRunRequest struct {
	DesignName       string   `json:"design_name"`
	MarketplaceTitle string   `json:"marketplace_title" validate:"max=80"`
	Sizes            []string `json:"sizes" validate:"required,min=1"`
	Colors           []string `json:"colors"`
}

type FTPSettingRequest struct {
	Host      string `json:"host" validate:"required"`
	Port      int    `json:"port" validate:"min=1,max=65535"`
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
	IsDefault bool   `json:"is_default"`
}

type ExportFTPRequest struct {
	SettingID *int64 `json:"setting_id,omitempty"`
}
