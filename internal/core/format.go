package core

import (
	"fmt"
	"reflect"
)

// DisplayString is the default string form of a cell value. Nil values,
// including nil pointers, display as the empty string.
func DisplayString(value any) string {
	if value == nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		if isNilPointer(value) {
			return ""
		}
		return v.String()
	case error:
		if isNilPointer(value) {
			return ""
		}
		return v.Error()
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		return DisplayString(rv.Elem().Interface())
	}

	return fmt.Sprint(value)
}

func isNilPointer(value any) bool {
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
