package models

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

type ProductListResponse struct {
	Products   []Product `json:"products"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
	TotalPages int       `json:"total_pages"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type SKUPreviewResponse struct {
	SKU string `json:"sku"`
}

// ListingRow is one displayed line of the generated product listing: a single
// (size, mockup color) of a stored variant.
type ListingRow struct {
	ID                int64  `json:"id"`
	ProductName       string `json:"product_name"`
	ItemSKU           string `json:"item_sku"`
	ParentSKU         string `json:"parent_sku"`
	Size              string `json:"size"`
	Color             string `json:"color"`
	Hex               string `json:"hex"`
	MockupURL         string `json:"mockup_url"`
	MarketplaceTitle  string `json:"marketplace_title"`
	OriginalDesignURL string `json:"original_design_url"`
}

type ListingResponse struct {
	Rows       []ListingRow `json:"rows"`
	Total      int          `json:"total"`
	Page       int          `json:"page"`
	PerPage    int          `json:"per_page"`
	TotalPages int          `json:"total_pages"`
}

type PrepareDesignResponse struct {
	Product    Product `json:"product"`
	NewVersion bool    `json:"new_version"`
}

type RegenerateColorResponse struct {
	Color       string `json:"color"`
	RenderedURL string `json:"rendered_image_url"`
	Cached      bool   `json:"cached"`
}

type SaveRunResponse struct {
	Created  []GeneratedProduct `json:"created"`
	Warnings []string           `json:"warnings,omitempty"`
}

type FTPResultResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type FTPSettingsResponse struct {
	Settings []FTPSetting `json:"settings"`
}

type MockupOption struct {
	Label         string `json:"label"`
	MockupID      string `json:"mockup_id"`
	SmartObjectID string `json:"smart_object_id"`
}

type MockupOptionsResponse struct {
	Options []MockupOption `json:"options"`
}
