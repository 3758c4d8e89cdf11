package core

import (
	"reflect"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

type fieldKey struct {
	typ reflect.Type
	key string
}

type fieldLookup struct {
	path []int
	ok   bool
}

var fieldCache, _ = lru.New[fieldKey, fieldLookup](512)

// IsStructType reports whether t is a struct or a pointer to one.
func IsStructType(t reflect.Type) bool {
	if t == nil {
		return false
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

// ResolveField returns the index path of the field of t named by key.
// Matching order: Go field name, `table` tag, `json` tag, then the field
// name ignoring case. Unexported fields never match.
func ResolveField(t reflect.Type, key string) ([]int, bool) {
	if !IsStructType(t) || key == "" {
		return nil, false
	}

	ck := fieldKey{typ: t, key: key}
	if cached, ok := fieldCache.Get(ck); ok {
		return cached.path, cached.ok
	}

	path, ok := resolveField(t, key)
	fieldCache.Add(ck, fieldLookup{path: path, ok: ok})
	return path, ok
}

func resolveField(t reflect.Type, key string) ([]int, bool) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	fields := make([]reflect.StructField, 0, t.NumField())
	for _, f := range reflect.VisibleFields(t) {
		if f.Anonymous || !f.IsExported() || f.Tag.Get("table") == "-" {
			continue
		}
		fields = append(fields, f)
	}

	matchers := []func(reflect.StructField) bool{
		func(f reflect.StructField) bool { return f.Name == key },
		func(f reflect.StructField) bool { return tagName(f, "table") == key },
		func(f reflect.StructField) bool { return tagName(f, "json") == key },
		func(f reflect.StructField) bool { return strings.EqualFold(f.Name, key) },
	}

	for _, match := range matchers {
		for _, f := range fields {
			if match(f) {
				return f.Index, true
			}
		}
	}
	return nil, false
}

func tagName(f reflect.StructField, tag string) string {
	name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
	if name == "-" {
		return ""
	}
	return name
}

// FieldValue reads the field at path from v, following pointers. It
// reports false when v is a nil pointer. A nil embedded pointer on the
// way to the field yields a nil value.
func FieldValue(v reflect.Value, path []int) (any, bool) {
	v = reflect.Indirect(v)
	if !v.IsValid() {
		return nil, false
	}

	for n, i := range path {
		if n > 0 {
			for v.Kind() == reflect.Pointer {
				if v.IsNil() {
					return nil, true
				}
				v = v.Elem()
			}
		}
		if v.Kind() != reflect.Struct || i < 0 || i >= v.NumField() {
			return nil, false
		}
		v = v.Field(i)
	}

	if !v.CanInterface() {
		return nil, false
	}
	return v.Interface(), true
}
