package catalog

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// MockupEntry holds the rendered mockup URLs stored for one color key.
// Color is empty for legacy rows that stored a bare URL list.
type MockupEntry struct {
	Color string
	URLs  []string
}

// MockupMap is the decoded mockup_urls column: color key to rendered URLs,
// in the order the keys were written.
type MockupMap struct {
	Entries []MockupEntry
}

// SplitURLs splits a comma joined URL list.
func SplitURLs(raw string) []string {
	return SplitList(raw)
}

// ParseMockupMap decodes a stored mockup_urls value. Objects keep key order;
// arrays and bare strings become a single unkeyed entry.
func ParseMockupMap(raw string) MockupMap {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return MockupMap{}
	}

	switch raw[0] {
	case '{':
		if m, err := decodeOrderedObject(raw); err == nil {
			return m
		}
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal([]byte(raw), &elems); err == nil {
			var urls []string
			for _, elem := range elems {
				urls = append(urls, decodeURLs(elem)...)
			}
			if len(urls) == 0 {
				return MockupMap{}
			}
			return MockupMap{Entries: []MockupEntry{{URLs: urls}}}
		}
	}
	return MockupMap{Entries: []MockupEntry{{URLs: SplitURLs(raw)}}}
}

func decodeOrderedObject(raw string) (MockupMap, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return MockupMap{}, err
	}

	var m MockupMap
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return MockupMap{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return MockupMap{}, fmt.Errorf("unexpected key token %v", keyTok)
		}
		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return MockupMap{}, err
		}
		m.Entries = append(m.Entries, MockupEntry{Color: key, URLs: decodeURLs(val)})
	}
	if _, err := dec.Token(); err != nil {
		return MockupMap{}, err
	}
	return m, nil
}

func decodeURLs(val json.RawMessage) []string {
	var s string
	if err := json.Unmarshal(val, &s); err == nil {
		return SplitURLs(s)
	}
	var list []string
	if err := json.Unmarshal(val, &list); err == nil {
		var urls []string
		for _, item := range list {
			urls = append(urls, SplitURLs(item)...)
		}
		return urls
	}
	return []string{strings.TrimSpace(string(val))}
}

// Add appends url under color, creating the key if needed.
func (m *MockupMap) Add(color, url string) {
	for i := range m.Entries {
		if m.Entries[i].Color == color {
			m.Entries[i].URLs = append(m.Entries[i].URLs, url)
			return
		}
	}
	m.Entries = append(m.Entries, MockupEntry{Color: color, URLs: []string{url}})
}

// Colors returns the keyed colors in stored order.
func (m MockupMap) Colors() []string {
	colors := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		if e.Color != "" {
			colors = append(colors, e.Color)
		}
	}
	return colors
}

func (m MockupMap) IsEmpty() bool {
	return len(m.Entries) == 0
}

// First returns the first stored URL.
func (m MockupMap) First() string {
	for _, e := range m.Entries {
		if len(e.URLs) > 0 {
			return e.URLs[0]
		}
	}
	return ""
}

// Lookup resolves the URLs stored for color. Keys are tried by exact match,
// then with the '#' prefix added or removed, then case-insensitively, then by
// palette name. An unkeyed legacy entry answers any color.
func (m MockupMap) Lookup(color string) []string {
	color = strings.TrimSpace(color)
	if color == "" {
		return m.unkeyed()
	}

	for _, e := range m.Entries {
		if e.Color == color {
			return e.URLs
		}
	}

	alt := "#" + color
	if strings.HasPrefix(color, "#") {
		alt = strings.TrimPrefix(color, "#")
	}
	for _, e := range m.Entries {
		if e.Color == alt {
			return e.URLs
		}
	}

	want := normalizeHex(color)
	for _, e := range m.Entries {
		if e.Color != "" && normalizeHex(e.Color) == want {
			return e.URLs
		}
	}

	wantName := colorNameOf(color)
	if wantName != "" {
		for _, e := range m.Entries {
			if strings.EqualFold(colorNameOf(e.Color), wantName) {
				return e.URLs
			}
		}
	}

	return m.unkeyed()
}

func (m MockupMap) unkeyed() []string {
	for _, e := range m.Entries {
		if e.Color == "" {
			return e.URLs
		}
	}
	return nil
}

func colorNameOf(value string) string {
	if name, ok := HexToName(value); ok {
		return name
	}
	if name, ok := CanonicalColorName(value); ok {
		return name
	}
	return ""
}

// Encode writes the column form: {"#000000": "u1, u2"}, or a JSON array for
// an unkeyed legacy list.
func (m MockupMap) Encode() string {
	if len(m.Entries) == 0 {
		return ""
	}
	if len(m.Entries) == 1 && m.Entries[0].Color == "" {
		data, _ := json.Marshal(m.Entries[0].URLs)
		return string(data)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.Entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(e.Color)
		val, _ := json.Marshal(strings.Join(e.URLs, ", "))
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.String()
}

func (m MockupMap) Value() (driver.Value, error) {
	return m.Encode(), nil
}

func (m *MockupMap) Scan(src interface{}) error {
	switch s := src.(type) {
	case nil:
		*m = MockupMap{}
	case string:
		*m = ParseMockupMap(s)
	case []byte:
		*m = ParseMockupMap(string(s))
	default:
		return fmt.Errorf("failed to scan mockup map: unsupported type %T", src)
	}
	return nil
}

// MarshalJSON renders {"color": ["url", ...]} keeping key order.
func (m MockupMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.Entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Color)
		if err != nil {
			return nil, err
		}
		urls := e.URLs
		if urls == nil {
			urls = []string{}
		}
		val, err := json.Marshal(urls)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m *MockupMap) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		*m = MockupMap{}
		return nil
	}
	*m = ParseMockupMap(string(data))
	return nil
}

// IDList is a JSON array of identifiers stored in a text column.
type IDList []string

// ParseIDList accepts a JSON array or a single bare identifier.
func ParseIDList(raw string) IDList {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if strings.HasPrefix(raw, "[") {
		var elems []json.RawMessage
		if err := json.Unmarshal([]byte(raw), &elems); err == nil {
			ids := make(IDList, 0, len(elems))
			for _, elem := range elems {
				var s string
				if json.Unmarshal(elem, &s) == nil {
					ids = append(ids, s)
				} else {
					// non-string entries keep their slot so ids stay aligned
					ids = append(ids, "")
				}
			}
			return ids
		}
	}
	return IDList{raw}
}

// At returns the id at index i, or "" when out of range.
func (l IDList) At(i int) string {
	if i < 0 || i >= len(l) {
		return ""
	}
	return l[i]
}

func (l IDList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *IDList) Scan(src interface{}) error {
	switch s := src.(type) {
	case nil:
		*l = nil
	case string:
		*l = ParseIDList(s)
	case []byte:
		*l = ParseIDList(string(s))
	default:
		return fmt.Errorf("failed to scan id list: unsupported type %T", src)
	}
	return nil
}
