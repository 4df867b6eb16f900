package datatable

import (
	"context"
	"fmt"
	"log/slog"
)

// Renderer renders rows of type T through a column schema into a Grid.
//
// A Renderer is immutable, all With* methods return a modified copy,
// so it can be shared and used concurrently.
//
// Example:
//
//	renderer := datatable.NewRenderer(columns, func(o Order) string { return o.ID }).
//	    WithRowClick(func(o Order) { navigate("/orders/" + o.ID) }).
//	    WithEmptyMessage("No orders found")
//	grid, err := renderer.Render(ctx, orders)
type Renderer[T any] struct {
	columns      Columns[T]
	keyExtractor func(T) string
	onRowClick   func(T)
	emptyMessage string
	options      Option
	formatter    Formatter
	naming       *StructFieldNaming
	logger       *slog.Logger
}

// NewRenderer returns a Renderer for the column schema
// using keyExtractor to derive a unique key for every row.
// The schema is not validated, use NewColumns for that.
//
// Panics if keyExtractor is nil.
func NewRenderer[T any](columns Columns[T], keyExtractor func(T) string) *Renderer[T] {
	if keyExtractor == nil {
		panic("datatable: nil keyExtractor")
	}
	return &Renderer[T]{
		columns:      columns,
		keyExtractor: keyExtractor,
		formatter:    DefaultTypeFormatter,
		naming:       &DefaultStructFieldNaming,
	}
}

// Render renders rows through columns into a Grid
// using the default configuration of a Renderer.
// If onRowClick is not nil, every row of the grid is clickable.
// The first non empty emptyMessage is used as message
// of the empty state for zero rows.
func Render[T any](ctx context.Context, columns Columns[T], rows []T, keyExtractor func(T) string, onRowClick func(T), emptyMessage ...string) (*Grid[T], error) {
	r := NewRenderer(columns, keyExtractor).WithRowClick(onRowClick)
	for _, msg := range emptyMessage {
		if msg != "" {
			r.emptyMessage = msg
			break
		}
	}
	return r.Render(ctx, rows)
}

func (r *Renderer[T]) clone() *Renderer[T] {
	c := new(Renderer[T])
	*c = *r
	return c
}

// Columns returns the column schema of the renderer.
func (r *Renderer[T]) Columns() Columns[T] {
	return r.columns
}

// WithColumns returns a new renderer using the passed column schema.
func (r *Renderer[T]) WithColumns(columns Columns[T]) *Renderer[T] {
	mod := r.clone()
	mod.columns = columns
	return mod
}

// WithRowClick returns a new renderer that makes every row clickable
// calling onRowClick with the row item.
// Passing nil removes the row click handler.
func (r *Renderer[T]) WithRowClick(onRowClick func(T)) *Renderer[T] {
	mod := r.clone()
	mod.onRowClick = onRowClick
	return mod
}

// WithEmptyMessage returns a new renderer using message
// for the empty state of tables without rows.
// An empty message results in DefaultEmptyMessage.
func (r *Renderer[T]) WithEmptyMessage(message string) *Renderer[T] {
	mod := r.clone()
	mod.emptyMessage = message
	return mod
}

// WithOptions returns a new renderer with the passed options.
func (r *Renderer[T]) WithOptions(options ...Option) *Renderer[T] {
	mod := r.clone()
	mod.options = 0
	for _, o := range options {
		mod.options |= o
	}
	return mod
}

// WithFormatter returns a new renderer formatting cell values with formatter.
// Passing nil formats all values with fmt.Sprint.
func (r *Renderer[T]) WithFormatter(formatter Formatter) *Renderer[T] {
	mod := r.clone()
	mod.formatter = formatter
	return mod
}

// WithStructFieldNaming returns a new renderer
// looking up cell values of struct rows with naming.
func (r *Renderer[T]) WithStructFieldNaming(naming *StructFieldNaming) *Renderer[T] {
	mod := r.clone()
	mod.naming = naming
	return mod
}

// WithLogger returns a new renderer logging to logger.
// A nil logger disables logging.
func (r *Renderer[T]) WithLogger(logger *slog.Logger) *Renderer[T] {
	mod := r.clone()
	mod.logger = logger
	return mod
}

// Render renders rows into a Grid.
//
// Zero rows result in a grid with only an empty state.
// Otherwise every row is rendered in order with one cell per column.
//
// Returns a *DuplicateRowKeyError if two rows have the same key,
// and a *ProjectionError if a projection panicked or
// a value could not be formatted.
func (r *Renderer[T]) Render(ctx context.Context, rows []T) (*Grid[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	grid := &Grid[T]{Options: r.options}

	if len(rows) == 0 {
		grid.Empty = ResolveEmptyState(r.emptyMessage)
		if r.options.Has(OptionHeaderOnEmpty) {
			grid.Headers = r.headers()
		}
		r.logDebug(ctx, "rendered empty table", slog.String("message", grid.Empty.Message))
		return grid, nil
	}

	grid.Headers = r.headers()
	grid.Rows = make([]*Row[T], len(rows))
	rowIndex := make(map[string]int, len(rows))
	for i, item := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		key := r.keyExtractor(item)
		if first, ok := rowIndex[key]; ok {
			return nil, &DuplicateRowKeyError{Key: key, First: first, Second: i}
		}
		rowIndex[key] = i

		cells, err := r.renderCells(key, item)
		if err != nil {
			if r.logger != nil {
				r.logger.WarnContext(ctx, "table render aborted", slog.String("row", key), slog.Any("error", err))
			}
			return nil, err
		}
		grid.Rows[i] = &Row[T]{
			Key:       key,
			Index:     i,
			Item:      item,
			Cells:     cells,
			Clickable: r.onRowClick != nil,
			Striped:   r.options.Has(OptionStripedRows) && i%2 == 1,
			onClick:   r.onRowClick,
		}
	}

	r.logDebug(ctx, "rendered table", slog.Int("rows", len(grid.Rows)), slog.Int("columns", len(r.columns)))
	return grid, nil
}

func (r *Renderer[T]) headers() []Header {
	headers := make([]Header, len(r.columns))
	for i := range r.columns {
		headers[i] = Header{
			Key:   r.columns[i].Key,
			Title: r.columns[i].Header,
			Class: r.columns[i].Class,
		}
	}
	return headers
}

func (r *Renderer[T]) renderCells(rowKey string, item T) ([]Cell, error) {
	cells := make([]Cell, len(r.columns))
	for i := range r.columns {
		col := &r.columns[i]
		value, err := r.project(col, rowKey, item)
		if err != nil {
			return nil, err
		}
		text, err := FormatValue(value, r.formatter)
		if err != nil {
			return nil, &ProjectionError{RowKey: rowKey, Column: col.Key, Err: err}
		}
		cells[i] = Cell{
			Key:   col.Key,
			Class: col.Class,
			Value: value,
			Text:  text,
		}
	}
	return cells, nil
}

// project returns the cell value for a column,
// a missing key results in a nil value.
func (r *Renderer[T]) project(col *Column[T], rowKey string, item T) (value any, err error) {
	defer func() {
		if p := recover(); p != nil {
			e := &ProjectionError{RowKey: rowKey, Column: col.Key, Panic: p}
			if pErr, ok := p.(error); ok {
				e.Err = pErr
			}
			value, err = nil, e
		}
	}()

	switch {
	case col.Render != nil:
		return col.Render(item), nil
	case col.Value != nil:
		return col.Value(item), nil
	}
	value, _ = LookupValue(item, col.Key, r.naming)
	return value, nil
}

func (r *Renderer[T]) logDebug(ctx context.Context, msg string, attrs ...slog.Attr) {
	if r.logger == nil {
		return
	}
	r.logger.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

func (r *Renderer[T]) String() string {
	return fmt.Sprintf("Renderer{Columns: %d, Options: %s}", len(r.columns), r.options)
}
