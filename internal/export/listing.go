package export

import (
	"strings"

	"mockup-catalog-backend/internal/catalog"
	"mockup-catalog-backend/internal/models"
)

// Listing expands every generated product into one line per (size, mockup
// color). Products without mockups fall back to their stored colors.
func Listing(generated []models.GeneratedProduct) []models.ListingRow {
	var rows []models.ListingRow
	for _, g := range generated {
		sizes := g.Size.Names()
		if len(sizes) == 0 {
			sizes = []string{""}
		}
		colors := g.MockupURLs.Colors()
		if len(colors) == 0 {
			colors = g.Color.Names()
		}
		if len(colors) == 0 {
			colors = []string{""}
		}

		for _, color := range colors {
			url := firstOf(g.MockupURLs.Lookup(color))
			hex := hexDigits(color)
			if hex != "" {
				hex = "#" + hex
			}
			for _, size := range sizes {
				rows = append(rows, models.ListingRow{
					ID:                g.ID,
					ProductName:       g.ProductName,
					ItemSKU:           g.ItemSKU,
					ParentSKU:         g.ParentSKU,
					Size:              size,
					Color:             catalog.ColorLabel(color),
					Hex:               hex,
					MockupURL:         url,
					MarketplaceTitle:  g.MarketplaceTitle,
					OriginalDesignURL: g.OriginalDesignURL,
				})
			}
		}
	}
	return rows
}

// SearchListing keeps rows whose product name or SKU contains term,
// ignoring case. An empty term keeps everything.
func SearchListing(rows []models.ListingRow, term string) []models.ListingRow {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return rows
	}
	var out []models.ListingRow
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.ProductName), term) ||
			strings.Contains(strings.ToLower(r.ItemSKU), term) {
			out = append(out, r)
		}
	}
	return out
}

// Paginate returns one 1-based page of items, the page actually served and
// the page count. Out of range pages are clamped.
func Paginate[T any](items []T, page, perPage int) ([]T, int, int) {
	if perPage <= 0 {
		perPage = 5
	}
	totalPages := (len(items) + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}, page, totalPages
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], page, totalPages
}
