package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// Fields is a decoded JSON object. Numbers are kept as json.Number so amounts
// survive decoding without float rounding. Accessors never fail: a missing or
// mistyped field yields the zero value.
type Fields map[string]any

var errNotObject = errors.New("response is not a JSON object")

// DecodeFields reads a single JSON object from r.
func DecodeFields(r io.Reader) (Fields, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return unmarshalFields(body)
}

func unmarshalFields(body []byte) (Fields, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	var raw any
	if err := decoder.Decode(&raw); err != nil {
		return nil, err
	}
	if decoder.More() {
		return nil, fmt.Errorf("unexpected data after JSON value")
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, errNotObject
	}
	return Fields(obj), nil
}

func (f Fields) Value(key string) (any, bool) {
	v, ok := f[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// String returns a string field. Numbers and booleans are rendered as text.
func (f Fields) String(key string) string {
	v, ok := f.Value(key)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return fmt.Sprintf("%t", t)
	default:
		return ""
	}
}

// Decimal returns a numeric field, accepting both JSON numbers and numeric strings.
func (f Fields) Decimal(key string) decimal.NullDecimal {
	v, ok := f.Value(key)
	if !ok {
		return decimal.NullDecimal{}
	}
	var text string
	switch t := v.(type) {
	case json.Number:
		text = t.String()
	case string:
		text = t
	default:
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// Items returns an array field with every element as decoded. A present
// value that is not an array comes back as a single element.
func (f Fields) Items(key string) []any {
	v, ok := f.Value(key)
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		return []any{v}
	}
	return items
}

// List returns the object elements of an array field.
func (f Fields) List(key string) []Fields {
	items := f.Items(key)
	if items == nil {
		return nil
	}
	list := make([]Fields, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			list = append(list, Fields(obj))
		}
	}
	return list
}

// Message returns the gateway's soft error message, if any. Objects and
// arrays are rendered as JSON so any non-null message is reported.
func (f Fields) Message() string {
	v, ok := f.Value("message")
	if !ok {
		return ""
	}
	switch v.(type) {
	case string, json.Number, bool:
		return f.String("message")
	}
	text, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(text)
}
