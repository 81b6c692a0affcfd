package domain

import (
	"fmt"
	"math"
	"reflect"
)

// DefaultDisplayKey is the field read when no display key is configured
const DefaultDisplayKey = "title"

// SubmittedTextKey is the only field of an item synthesized from typed text
const SubmittedTextKey = "text"

// Item is one selectable candidate record. Apart from the display field
// the widget treats it as opaque payload.
type Item map[string]any

// DisplayValue returns the display field of an item as text.
// ok is false when the field is missing or falsy (nil, "", false, zero).
func DisplayValue(item Item, key string) (string, bool) {
	if item == nil {
		return "", false
	}
	v, found := item[key]
	if !found || isFalsy(v) {
		return "", false
	}
	if s, isString := v.(string); isString {
		return s, true
	}
	return fmt.Sprint(v), true
}

// SyntheticItem builds the item dispatched when typed text is submitted
// as the selection itself
func SyntheticItem(text string) Item {
	return Item{SubmittedTextKey: text}
}

// SameItem reports whether two items are the same record (not merely equal)
func SameItem(a, b Item) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

func isFalsy(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
