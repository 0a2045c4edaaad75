package export_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mockup-catalog-backend/internal/export"
	"mockup-catalog-backend/internal/models"
)

func TestListing_ExpandsSizesByMockupColor(t *testing.T) {
	g := variant(4, "Sunset", "CLAS-0001", []string{"Small", "Large"}, []string{"#000000"},
		`{"#000000":"https://cdn/black.png","#FF0000":"https://cdn/red.png"}`)

	rows := export.Listing([]models.GeneratedProduct{g})
	require.Len(t, rows, 4)
	assert.Equal(t, "Black", rows[0].Color)
	assert.Equal(t, "#000000", rows[0].Hex)
	assert.Equal(t, "Small", rows[0].Size)
	assert.Equal(t, "Large", rows[1].Size)
	assert.Equal(t, "Red", rows[2].Color)
	assert.Equal(t, "https://cdn/red.png", rows[3].MockupURL)
}

func TestListing_FallsBackToStoredColors(t *testing.T) {
	g := variant(4, "Sunset", "CLAS-0001", []string{"Small"}, []string{"White"}, "")

	rows := export.Listing([]models.GeneratedProduct{g})
	require.Len(t, rows, 1)
	assert.Equal(t, "White", rows[0].Color)
	assert.Equal(t, "#FFFFFF", rows[0].Hex)
	assert.Equal(t, "", rows[0].MockupURL)
}

func TestSearchListing(t *testing.T) {
	rows := []models.ListingRow{
		{ProductName: "Sunset Tee", ItemSKU: "CLAS-1000-S-Black"},
		{ProductName: "Wave", ItemSKU: "WAVE-2000-M-Red"},
	}

	assert.Len(t, export.SearchListing(rows, ""), 2)
	assert.Equal(t, "Wave", export.SearchListing(rows, "wave-2000")[0].ProductName)
	assert.Len(t, export.SearchListing(rows, "SUNSET"), 1)
	assert.Empty(t, export.SearchListing(rows, "nothing"))
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page, current, total := export.Paginate(items, 2, 5)
	assert.Equal(t, []int{6, 7}, page)
	assert.Equal(t, 2, current)
	assert.Equal(t, 2, total)

	page, current, _ = export.Paginate(items, 9, 5)
	assert.Equal(t, 2, current, "clamped to last page")
	assert.Equal(t, []int{6, 7}, page)

	page, current, total = export.Paginate([]int{}, 1, 0)
	assert.Empty(t, page)
	assert.Equal(t, 1, current)
	assert.Equal(t, 1, total)
}
