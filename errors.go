package datatable

import (
	"errors"
	"fmt"
)

var (
	ErrRowNotFound    = errors.New("row not found")
	ErrColumnNotFound = errors.New("column not found")
	ErrActionNotFound = errors.New("action not found")
)

// SchemaError is returned for an invalid column schema.
type SchemaError struct {
	// Index of the offending column in the schema
	Index  int
	Key    string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid column %d %q: %s", e.Index, e.Key, e.Reason)
}

// ProjectionError is returned when the value projection
// of a cell panicked or its formatting failed.
// The render pass that produced it was aborted.
type ProjectionError struct {
	RowKey string
	Column string
	// Panic holds the recovered value if the projection panicked
	Panic any
	// Err is the formatting error or
	// the recovered value if it was an error
	Err error
}

func (e *ProjectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("projection of column %q for row %q failed: %s", e.Column, e.RowKey, e.Err)
	}
	return fmt.Sprintf("projection of column %q for row %q panicked: %v", e.Column, e.RowKey, e.Panic)
}

func (e *ProjectionError) Unwrap() error { return e.Err }

// DuplicateRowKeyError is returned when the key extractor
// returned the same key for two rows of one render pass.
type DuplicateRowKeyError struct {
	Key    string
	First  int
	Second int
}

func (e *DuplicateRowKeyError) Error() string {
	return fmt.Sprintf("duplicate row key %q for rows %d and %d", e.Key, e.First, e.Second)
}
