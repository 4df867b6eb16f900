package datatable

import (
	"reflect"
	"slices"
	"strings"
	"unicode"
)

// StructFieldTypes returns the exported fields of a struct type
// including the promoted fields of anonymously embedded structs
// in declaration order.
// The Index of a returned field is the index sequence
// for reflect.Value.FieldByIndex from the outer struct.
func StructFieldTypes(structType reflect.Type) []reflect.StructField {
	return appendStructFields(nil, derefType(structType), nil)
}

func appendStructFields(fields []reflect.StructField, structType reflect.Type, index []int) []reflect.StructField {
	for i := range structType.NumField() {
		field := structType.Field(i)
		field.Index = append(slices.Clip(index), i)
		if embedded := derefType(field.Type); field.Anonymous && embedded.Kind() == reflect.Struct {
			fields = appendStructFields(fields, embedded, field.Index)
			continue
		}
		if field.IsExported() {
			fields = append(fields, field)
		}
	}
	return fields
}

// StructFieldValues returns the values of the fields
// returned by StructFieldTypes for the type of structValue.
// Fields of nil embedded struct pointers are returned as invalid values.
func StructFieldValues(structValue reflect.Value) []reflect.Value {
	fields := StructFieldTypes(structValue.Type())
	values := make([]reflect.Value, len(fields))
	if structValue.Kind() == reflect.Pointer {
		if structValue.IsNil() {
			return values
		}
		structValue = structValue.Elem()
	}
	for i, field := range fields {
		// Error only for nil embedded pointers
		if v, err := structValue.FieldByIndexErr(field.Index); err == nil {
			values[i] = v
		}
	}
	return values
}

func derefType(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}

// SpacePascalCase splits PascalCase or camelCase names
// into space separated words.
// Underscores '_' separate words as well.
// Usable for StructFieldNaming.Untagged
func SpacePascalCase(name string) string {
	var words []string
	isSeparator := func(r rune) bool { return r == '_' || unicode.IsSpace(r) }
	for _, part := range strings.FieldsFunc(name, isSeparator) {
		runes := []rune(part)
		start := 0
		for i := 1; i < len(runes); i++ {
			if unicode.IsUpper(runes[i]) && !unicode.IsUpper(runes[i-1]) {
				words = append(words, string(runes[start:i]))
				start = i
			}
		}
		words = append(words, string(runes[start:]))
	}
	return strings.Join(words, " ")
}

// IsNullLike returns true if the passed reflect.Value
// is not valid, nil (of a type that can be nil),
// of type struct{}, or implements interface{ IsNull() bool }
// and that method returns true.
//
// Nullable types from github.com/domonda/go-types/nullable
// implement IsNull and are treated as null when empty.
func IsNullLike(val reflect.Value) bool {
	if !val.IsValid() {
		return true
	}
	switch val.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if val.IsNil() {
			return true
		}
	case reflect.Struct:
		if t := val.Type(); t.NumField() == 0 && t.NumMethod() == 0 {
			// Treat a value of type struct{} like nil
			return true
		}
	}
	if val.CanInterface() {
		if nullable, ok := val.Interface().(interface{ IsNull() bool }); ok {
			return nullable.IsNull()
		}
	}
	return false
}
