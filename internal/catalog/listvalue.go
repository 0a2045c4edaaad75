package catalog

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Shape records how a size or color column was encoded when it was written.
type Shape int

const (
	ShapeEmpty Shape = iota
	// ShapeObjects is a JSON array of {"name": ..., "sku": ...} objects.
	ShapeObjects
	// ShapeStrings is a JSON array of plain strings.
	ShapeStrings
	// ShapeLiteral is a bare string, or any value that did not decode as one
	// of the array shapes.
	ShapeLiteral
)

func (s Shape) String() string {
	switch s {
	case ShapeObjects:
		return "objects"
	case ShapeStrings:
		return "strings"
	case ShapeLiteral:
		return "literal"
	default:
		return "empty"
	}
}

// Item is one entry of a ListValue. SKU is only carried by object-shaped lists.
type Item struct {
	Name string `json:"name"`
	SKU  string `json:"sku"`
}

// ListValue is the decoded form of the JSON-ish size and color columns. The
// column is parsed once on Scan; Shape remembers the original encoding so a
// round trip writes the same shape back.
type ListValue struct {
	Shape Shape
	Items []Item
}

// ObjectList builds an object-shaped list.
func ObjectList(items ...Item) ListValue {
	if len(items) == 0 {
		return ListValue{}
	}
	return ListValue{Shape: ShapeObjects, Items: items}
}

// StringList builds a string-shaped list.
func StringList(values ...string) ListValue {
	if len(values) == 0 {
		return ListValue{}
	}
	items := make([]Item, len(values))
	for i, v := range values {
		items[i] = Item{Name: v}
	}
	return ListValue{Shape: ShapeStrings, Items: items}
}

// ParseListValue decodes a stored column value. It never fails: values that
// are not one of the array shapes become a single literal item.
func ParseListValue(raw string) ListValue {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ListValue{}
	}
	if !strings.HasPrefix(raw, "[") {
		return ListValue{Shape: ShapeLiteral, Items: []Item{{Name: raw}}}
	}

	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		return ListValue{Shape: ShapeLiteral, Items: []Item{{Name: raw}}}
	}
	if len(elems) == 0 {
		return ListValue{}
	}

	items := make([]Item, 0, len(elems))
	allObjects := true
	for _, elem := range elems {
		item, isObject := decodeItem(elem)
		if !isObject {
			allObjects = false
		}
		items = append(items, item)
	}

	shape := ShapeStrings
	if allObjects {
		shape = ShapeObjects
	}
	return ListValue{Shape: shape, Items: items}
}

func decodeItem(elem json.RawMessage) (Item, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(elem, &obj); err == nil {
		var name string
		if rawName, ok := obj["name"]; ok && json.Unmarshal(rawName, &name) == nil {
			var sku string
			if rawSKU, ok := obj["sku"]; ok {
				_ = json.Unmarshal(rawSKU, &sku)
			}
			return Item{Name: name, SKU: sku}, true
		}
		return Item{Name: string(elem)}, false
	}

	var s string
	if err := json.Unmarshal(elem, &s); err == nil {
		return Item{Name: strings.Trim(s, `"'`)}, false
	}
	return Item{Name: strings.Trim(string(elem), `"'`)}, false
}

// Names returns the display name of every item.
func (v ListValue) Names() []string {
	names := make([]string, len(v.Items))
	for i, item := range v.Items {
		names[i] = item.Name
	}
	return names
}

func (v ListValue) IsEmpty() bool {
	return len(v.Items) == 0
}

// Encode renders the value in its original shape.
func (v ListValue) Encode() string {
	switch v.Shape {
	case ShapeObjects:
		data, _ := json.Marshal(v.Items)
		return string(data)
	case ShapeStrings:
		data, _ := json.Marshal(v.Names())
		return string(data)
	case ShapeLiteral:
		return strings.Join(v.Names(), ", ")
	default:
		return ""
	}
}

func (v ListValue) Value() (driver.Value, error) {
	return v.Encode(), nil
}

func (v *ListValue) Scan(src interface{}) error {
	switch s := src.(type) {
	case nil:
		*v = ListValue{}
	case string:
		*v = ParseListValue(s)
	case []byte:
		*v = ParseListValue(string(s))
	default:
		return fmt.Errorf("failed to scan list value: unsupported type %T", src)
	}
	return nil
}

func (v ListValue) MarshalJSON() ([]byte, error) {
	switch v.Shape {
	case ShapeObjects:
		return json.Marshal(v.Items)
	case ShapeLiteral:
		return json.Marshal(v.Encode())
	default:
		names := v.Names()
		if names == nil {
			names = []string{}
		}
		return json.Marshal(names)
	}
}

func (v *ListValue) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*v = ListValue{}
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = ParseListValue(s)
		return nil
	}
	*v = ParseListValue(trimmed)
	return nil
}
