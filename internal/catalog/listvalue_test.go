package catalog_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mockup-catalog-backend/internal/catalog"
)

func TestParseListValue_Shapes(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		shape catalog.Shape
		names []string
	}{
		{"empty", "", catalog.ShapeEmpty, []string{}},
		{"empty array", "[]", catalog.ShapeEmpty, []string{}},
		{"objects", `[{"name":"Small","sku":"s-ABC123"},{"name":"Large","sku":"l-XYZ789"}]`, catalog.ShapeObjects, []string{"Small", "Large"}},
		{"strings", `["#000000","#FF0000"]`, catalog.ShapeStrings, []string{"#000000", "#FF0000"}},
		{"quoted strings", `["'Small'"]`, catalog.ShapeStrings, []string{"Small"}},
		{"bare string", "Medium", catalog.ShapeLiteral, []string{"Medium"}},
		{"broken json", `[{"name":`, catalog.ShapeLiteral, []string{`[{"name":`}},
		{"object", `{"name":"Small"}`, catalog.ShapeLiteral, []string{`{"name":"Small"}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := catalog.ParseListValue(tt.raw)
			assert.Equal(t, tt.shape, v.Shape)
			assert.Equal(t, tt.names, v.Names())
		})
	}
}

func TestParseListValue_MixedDegradesToStrings(t *testing.T) {
	v := catalog.ParseListValue(`[{"name":"Small"},"Large"]`)
	assert.Equal(t, catalog.ShapeStrings, v.Shape)
	assert.Equal(t, []string{"Small", "Large"}, v.Names())
}

func TestListValue_ObjectsKeepSKU(t *testing.T) {
	v := catalog.ParseListValue(`[{"name":"Small","sku":"s-ABC123"}]`)
	require.Len(t, v.Items, 1)
	assert.Equal(t, "s-ABC123", v.Items[0].SKU)
	assert.Equal(t, `[{"name":"Small","sku":"s-ABC123"}]`, v.Encode())
}

func TestListValue_ScanAndValue(t *testing.T) {
	var v catalog.ListValue
	require.NoError(t, v.Scan([]byte(`["#000000"]`)))
	assert.Equal(t, catalog.ShapeStrings, v.Shape)

	stored, err := v.Value()
	require.NoError(t, err)
	assert.Equal(t, `["#000000"]`, stored)

	require.NoError(t, v.Scan(nil))
	assert.True(t, v.IsEmpty())

	assert.Error(t, v.Scan(42))
}

func TestListValue_JSON(t *testing.T) {
	var payload struct {
		Sizes  catalog.ListValue `json:"sizes"`
		Colors catalog.ListValue `json:"colors"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"sizes":[{"name":"Small","sku":"s-1"}],"colors":"Black"}`), &payload))
	assert.Equal(t, catalog.ShapeObjects, payload.Sizes.Shape)
	assert.Equal(t, catalog.ShapeLiteral, payload.Colors.Shape)

	out, err := json.Marshal(catalog.StringList("#000000"))
	require.NoError(t, err)
	assert.JSONEq(t, `["#000000"]`, string(out))

	out, err = json.Marshal(catalog.ListValue{})
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(out))
}
