package datatable

import (
	"fmt"
	"reflect"
	"strings"
)

// StructFieldNaming defines how struct fields
// are mapped to column keys and headers.
//
// nil is a valid value for *StructFieldNaming
// and is equal to the zero value
// which will use all exported struct fields
// with their field name as column header.
type StructFieldNaming struct {
	// Tag is the struct field tag to be used as column header.
	// If Tag is empty, then every struct field will be treated as untagged.
	Tag string
	// Ignore is the header value that excludes
	// a struct field from derived column schemas.
	Ignore string
	// Untagged will be called with the struct field name to
	// return a header in case the struct field has no tag named Tag.
	// If Untagged is nil, then the struct field name will be used.
	Untagged func(fieldName string) (column string)
}

// String implements the fmt.Stringer interface for StructFieldNaming.
func (n *StructFieldNaming) String() string {
	if n == nil {
		return `StructFieldNaming{Tag: "", Ignore: ""}`
	}
	return fmt.Sprintf("StructFieldNaming{Tag: %#v, Ignore: %#v}", n.Tag, n.Ignore)
}

// StructFieldColumn returns the column header for a struct field.
func (n *StructFieldNaming) StructFieldColumn(structField reflect.StructField) string {
	if n == nil {
		return structField.Name
	}
	if tag := tagName(structField, n.Tag); tag != "" {
		return tag
	}
	if n.Untagged == nil {
		return structField.Name
	}
	return n.Untagged(structField.Name)
}

// StructFieldKey returns the column key for a struct field:
// the name from the json tag if there is one,
// else the struct field name.
func (n *StructFieldNaming) StructFieldKey(structField reflect.StructField) string {
	if name := tagName(structField, "json"); name != "" && name != "-" {
		return name
	}
	return structField.Name
}

// IsIgnored returns if the struct field has the Ignore header.
func (n *StructFieldNaming) IsIgnored(structField reflect.StructField) bool {
	return n != nil && n.Ignore != "" && n.StructFieldColumn(structField) == n.Ignore
}

// Columns returns the column headers of the exported
// fields of strct that are not ignored.
func (n *StructFieldNaming) Columns(strct any) []string {
	fields := StructFieldTypes(reflect.TypeOf(strct))
	columns := make([]string, 0, len(fields))
	for _, field := range fields {
		if n.IsIgnored(field) {
			continue
		}
		columns = append(columns, n.StructFieldColumn(field))
	}
	return columns
}

// FieldByKey returns the value of the exported struct field
// that matches the column key. The json tag names and the
// case-insensitive field names of all fields are matched first,
// then the Tag header names.
// The struct may be passed as pointer, a nil pointer
// results in an invalid value and false.
func (n *StructFieldNaming) FieldByKey(strct reflect.Value, key string) (reflect.Value, bool) {
	for strct.Kind() == reflect.Pointer || strct.Kind() == reflect.Interface {
		if strct.IsNil() {
			return reflect.Value{}, false
		}
		strct = strct.Elem()
	}
	if strct.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	fields := StructFieldTypes(strct.Type())
	values := StructFieldValues(strct)
	for i, field := range fields {
		if tagName(field, "json") == key || strings.EqualFold(field.Name, key) {
			return values[i], true
		}
	}
	if n == nil || n.Tag == "" {
		return reflect.Value{}, false
	}
	for i, field := range fields {
		if tagName(field, n.Tag) == key {
			return values[i], true
		}
	}
	return reflect.Value{}, false
}

func tagName(structField reflect.StructField, tag string) string {
	if tag == "" {
		return ""
	}
	value, ok := structField.Tag.Lookup(tag)
	if !ok {
		return ""
	}
	if i := strings.IndexByte(value, ','); i != -1 {
		value = value[:i]
	}
	return value
}
