package datatable

import (
	"errors"
	"fmt"
	"reflect"
)

// LookupValue returns the value of the field or map entry
// of row identified by key.
// Struct fields are matched by naming, see StructFieldNaming.FieldByKey,
// maps must have a string key type.
// The result is false for rows without such a field or entry.
func LookupValue(row any, key string, naming *StructFieldNaming) (any, bool) {
	v := reflect.ValueOf(row)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Struct:
		field, ok := naming.FieldByKey(v, key)
		if !ok || !field.IsValid() || !field.CanInterface() {
			return nil, false
		}
		return field.Interface(), true

	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		entry := v.MapIndex(reflect.ValueOf(key).Convert(v.Type().Key()))
		if !entry.IsValid() {
			return nil, false
		}
		return entry.Interface(), true
	}
	return nil, false
}

// FormatValue returns the display text of a cell value
// using formatter with a fallback to fmt.Sprint of the
// dereferenced value.
// Null-like values are formatted as Placeholder.
func FormatValue(value any, formatter Formatter) (string, error) {
	v := reflect.ValueOf(value)
	if IsNullLike(v) {
		return Placeholder, nil
	}
	if formatter != nil {
		str, err := formatter.Format(v)
		if err == nil {
			return str, nil
		}
		if !errors.Is(err, errors.ErrUnsupported) {
			return "", err
		}
	}
	// In case of errors.ErrUnsupported
	// use fallback method of formatting
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return fmt.Sprint(v.Interface()), nil
}
