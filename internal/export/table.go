package export

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"mockup-catalog-backend/internal/catalog"
	"mockup-catalog-backend/internal/models"
)

// RequiredColumns is the fixed leading column order of every export.
var RequiredColumns = []string{
	"product_name",
	"item_sku",
	"parent_child",
	"parent_sku",
	"size",
	"color",
	"image_url",
	"marketplace_title",
	"category",
	"price",
	"quantity",
	"tax_class",
}

// PassthroughColumns follow the required ones.
var PassthroughColumns = []string{
	"id",
	"product_type",
	"original_hex",
	"original_design_url",
	"is_published",
}

type Row map[string]string

type Table struct {
	Columns []string
	Rows    []Row
}

// Values returns row's cells in column order.
func (t Table) Values(row Row) []string {
	values := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		values[i] = row[col]
	}
	return values
}

// Build expands blanks and generated products into the export table. Only
// the products table yields parents and those carry no mockups, so every
// parent produces a single row here. Per-color parent rows come from
// records handed to BuildRecords directly.
func Build(products []models.Product, generated []models.GeneratedProduct) Table {
	records := make([]Record, 0, len(products)+len(generated))
	for _, p := range products {
		records = append(records, FromProduct(p))
	}
	for _, g := range generated {
		records = append(records, FromGenerated(g))
	}
	return BuildRecords(records)
}

type group struct {
	parent   Record
	children []Record
}

// BuildRecords lays out the table: each parent's rows, then the rows of the
// children attached to it, then children that matched no parent.
func BuildRecords(records []Record) Table {
	var groups []*group
	bySKU := make(map[string]*group)
	byID := make(map[int64]*group)
	var children []Record

	for _, r := range records {
		if !r.isParent() {
			children = append(children, r)
			continue
		}
		g := &group{parent: r}
		groups = append(groups, g)
		if r.ItemSKU != "" {
			if _, dup := bySKU[r.ItemSKU]; !dup {
				bySKU[r.ItemSKU] = g
			}
		}
		if r.ProductType == ProductTypeRegular {
			byID[r.ID] = g
		}
	}

	var orphans []Record
	for _, c := range children {
		if g, ok := bySKU[c.ParentSKU]; ok && c.ParentSKU != "" {
			g.children = append(g.children, c)
			continue
		}
		if c.ParentProductID != nil {
			if g, ok := byID[*c.ParentProductID]; ok {
				g.children = append(g.children, c)
				continue
			}
		}
		orphans = append(orphans, c)
	}

	table := Table{Columns: append(append([]string{}, RequiredColumns...), PassthroughColumns...)}
	for _, g := range groups {
		parent := g.parent
		if len(g.children) > 0 && g.children[0].ProductName != "" {
			parent.ProductName = g.children[0].ProductName
		}
		table.Rows = append(table.Rows, parentRows(parent)...)
		for _, c := range g.children {
			table.Rows = append(table.Rows, childRows(c, &g.parent)...)
		}
	}
	for _, c := range orphans {
		table.Rows = append(table.Rows, childRows(c, nil)...)
	}
	return table
}

// parentRows always leaves size and color blank. A parent without mockups is
// a single row; one carrying mockups gets a row per mockup color.
func parentRows(r Record) []Row {
	itemSKU := r.ItemSKU
	if r.ProductType == ProductTypeGenerated {
		itemSKU = ""
	}

	base := baseRow(r, priceOf(r, nil), quantityOf(r, nil), r.TaxClass)
	base["item_sku"] = itemSKU
	base["parent_sku"] = ""
	base["size"] = ""
	base["color"] = ""
	base["marketplace_title"] = r.MarketplaceTitle

	colors := r.MockupURLs.Colors()
	if len(colors) == 0 {
		base["image_url"] = firstNonEmpty(r.ImageURL, r.MockupURLs.First())
		return []Row{base}
	}

	rows := make([]Row, 0, len(colors))
	for _, color := range colors {
		row := copyRow(base)
		row["image_url"] = firstOf(r.MockupURLs.Lookup(color))
		row["original_hex"] = hexDigits(color)
		rows = append(rows, row)
	}
	return rows
}

// childRows expands sizes x colors x the mockup URLs stored for each color.
func childRows(r Record, parent *Record) []Row {
	taxClass := r.TaxClass
	if taxClass == "" && parent != nil {
		taxClass = parent.TaxClass
	}
	base := baseRow(r, priceOf(r, parent), quantityOf(r, parent), taxClass)
	base["parent_sku"] = r.ParentSKU
	if base["category"] == "" && r.ProductType == ProductTypeGenerated {
		base["category"] = r.ProductName
	}

	sizes := r.Sizes.Names()
	if len(sizes) == 0 {
		sizes = []string{""}
	}
	colors := r.Colors.Names()
	if len(colors) == 0 {
		colors = r.MockupURLs.Colors()
	}
	if len(colors) == 0 {
		colors = []string{""}
	}

	var rows []Row
	for _, size := range sizes {
		for _, color := range colors {
			label := catalog.ColorLabel(color)

			row := copyRow(base)
			row["size"] = size
			row["color"] = label
			row["original_hex"] = hexDigits(color)
			row["marketplace_title"] = r.MarketplaceTitle
			if row["marketplace_title"] == "" {
				row["marketplace_title"] = Title(r.ProductName, size, label)
			}

			urls := r.MockupURLs.Lookup(color)
			if len(urls) == 0 {
				row["image_url"] = r.ImageURL
				rows = append(rows, row)
				continue
			}
			for _, url := range urls {
				withImage := copyRow(row)
				withImage["image_url"] = url
				rows = append(rows, withImage)
			}
		}
	}
	return rows
}

// Title joins the non-empty parts with " - ".
func Title(name, size, color string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{name, size, color} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " - ")
}

func baseRow(r Record, price decimal.Decimal, quantity int, taxClass string) Row {
	return Row{
		"product_name":        r.ProductName,
		"item_sku":            r.ItemSKU,
		"parent_child":        r.ParentChild,
		"category":            r.Category,
		"price":               price.StringFixed(2),
		"quantity":            strconv.Itoa(quantity),
		"tax_class":           taxClass,
		"id":                  strconv.FormatInt(r.ID, 10),
		"product_type":        r.ProductType,
		"original_hex":        "",
		"original_design_url": r.OriginalDesignURL,
		"is_published":        strconv.FormatBool(r.IsPublished),
	}
}

func priceOf(r Record, parent *Record) decimal.Decimal {
	if r.Price != nil {
		return *r.Price
	}
	if parent != nil && parent.Price != nil {
		return *parent.Price
	}
	return decimal.Zero
}

func quantityOf(r Record, parent *Record) int {
	if r.Quantity != nil {
		return *r.Quantity
	}
	if parent != nil && parent.Quantity != nil {
		return *parent.Quantity
	}
	return 0
}

// hexDigits is the palette hex of a color value without '#', or "".
func hexDigits(color string) string {
	if catalog.IsPaletteHex(color) {
		return strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(color), "#"))
	}
	if name, ok := catalog.CanonicalColorName(color); ok {
		return strings.TrimPrefix(catalog.NameToHex(name), "#")
	}
	return ""
}

func copyRow(r Row) Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

func firstOf(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
