package datatable

import (
	"fmt"
	"reflect"
)

// Column defines how a row of type T is projected into one cell.
type Column[T any] struct {
	// Key identifies the column within its schema.
	// Without Render and Value the key is also
	// used to look up the cell value on the row.
	Key string
	// Header is the display label of the column.
	Header string
	// Render is an optional projection of the row to the
	// displayed cell value. Render must not panic,
	// a panic aborts the render pass with a *ProjectionError.
	Render func(row T) any
	// Value is an optional typed accessor used
	// instead of looking up Key on the row.
	Value func(row T) any
	// Class is an optional style hint passed through to writers.
	Class string
}

func (c *Column[T]) String() string {
	return fmt.Sprintf("Column{Key: %q, Header: %q}", c.Key, c.Header)
}

// Columns is an ordered column schema.
type Columns[T any] []Column[T]

// NewColumns returns the passed columns as schema
// or a *SchemaError if a column has an empty key or header,
// or if a key is used by more than one column.
func NewColumns[T any](cols ...Column[T]) (Columns[T], error) {
	schema := Columns[T](cols)
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	return schema, nil
}

// MustColumns is like NewColumns but panics on error.
func MustColumns[T any](cols ...Column[T]) Columns[T] {
	schema, err := NewColumns(cols...)
	if err != nil {
		panic(err)
	}
	return schema
}

// StructColumns returns a schema with one column per exported
// field of the struct type T (or the struct type T points to).
// Keys are taken from json tags or field names,
// headers are derived by the passed naming that may be nil.
// Fields with the Ignore header of naming are skipped.
func StructColumns[T any](naming *StructFieldNaming) (Columns[T], error) {
	structType := derefType(reflect.TypeFor[T]())
	if structType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("row type must be a struct but is %s", structType)
	}
	var cols Columns[T]
	for _, field := range StructFieldTypes(structType) {
		if naming.IsIgnored(field) {
			continue
		}
		cols = append(cols, Column[T]{
			Key:    naming.StructFieldKey(field),
			Header: naming.StructFieldColumn(field),
		})
	}
	if err := cols.Validate(); err != nil {
		return nil, err
	}
	return cols, nil
}

// Validate returns a *SchemaError for the first column
// with an empty key or header, or a key already
// used by a previous column.
func (cols Columns[T]) Validate() error {
	seen := make(map[string]int, len(cols))
	for i := range cols {
		col := &cols[i]
		switch {
		case col.Key == "":
			return &SchemaError{Index: i, Key: col.Key, Reason: "empty key"}
		case col.Header == "":
			return &SchemaError{Index: i, Key: col.Key, Reason: "empty header"}
		}
		if first, ok := seen[col.Key]; ok {
			return &SchemaError{Index: i, Key: col.Key, Reason: fmt.Sprintf("key already used by column %d", first)}
		}
		seen[col.Key] = i
	}
	return nil
}

// Keys returns the column keys in schema order.
func (cols Columns[T]) Keys() []string {
	keys := make([]string, len(cols))
	for i := range cols {
		keys[i] = cols[i].Key
	}
	return keys
}

// Headers returns the column headers in schema order.
func (cols Columns[T]) Headers() []string {
	headers := make([]string, len(cols))
	for i := range cols {
		headers[i] = cols[i].Header
	}
	return headers
}

// Index returns the schema index of the column with key or -1.
func (cols Columns[T]) Index(key string) int {
	for i := range cols {
		if cols[i].Key == key {
			return i
		}
	}
	return -1
}

// Select returns a schema with the columns of the passed keys
// in the order of the keys.
// Unknown keys result in an error wrapping ErrColumnNotFound.
func (cols Columns[T]) Select(keys ...string) (Columns[T], error) {
	selected := make(Columns[T], 0, len(keys))
	for _, key := range keys {
		i := cols.Index(key)
		if i < 0 {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, key)
		}
		selected = append(selected, cols[i])
	}
	return selected, nil
}
