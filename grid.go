package datatable

import (
	"fmt"
	"unicode/utf8"
)

// Grid is the result of a render pass.
//
// A grid either has an Empty state and no Rows,
// or Rows and no Empty state.
// Headers are nil for an empty grid unless
// it was rendered with OptionHeaderOnEmpty.
type Grid[T any] struct {
	Headers []Header
	Rows    []*Row[T]
	Empty   *EmptyState
	Options Option
}

// Header of a grid column.
type Header struct {
	Key   string
	Title string
	Class string
}

// Row is one rendered row of a Grid.
type Row[T any] struct {
	// Key is the result of the key extractor for Item
	Key string
	// Index of the row in the rendered rows
	Index int
	Item  T
	Cells []Cell
	// Clickable is true if the grid has a row click handler
	Clickable bool
	// Striped is true for every second row
	// if the grid was rendered with OptionStripedRows
	Striped bool

	onClick func(T)
}

// Cell is one rendered cell of a Row.
type Cell struct {
	// Key of the column of the cell
	Key   string
	Class string
	// Value is the projected value of the cell
	Value any
	// Text is the display text of Value
	Text string
}

// Actions returns the inline actions of the cell.
func (c *Cell) Actions() Actions {
	return cellActions(c.Value)
}

// IsEmpty returns true if the grid shows an empty state.
func (g *Grid[T]) IsEmpty() bool {
	return g.Empty != nil
}

// NumRows returns the number of data rows.
func (g *Grid[T]) NumRows() int {
	return len(g.Rows)
}

// Row returns the row with key or nil.
func (g *Grid[T]) Row(key string) *Row[T] {
	for _, row := range g.Rows {
		if row.Key == key {
			return row
		}
	}
	return nil
}

// ClickRow dispatches a click on the row with key
// to the row click handler of the grid.
// It returns false if the grid has no row click handler.
func (g *Grid[T]) ClickRow(key string) (clicked bool, err error) {
	row := g.Row(key)
	if row == nil {
		return false, fmt.Errorf("%w: %q", ErrRowNotFound, key)
	}
	return row.Click(&ClickEvent{RowKey: key}), nil
}

// ClickAction dispatches a click on the named inline action
// within the cell of column of the row with key.
// The action's click handler is called first,
// then the row click handler if the action did not
// stop the propagation of the event.
// The result reports if the row click handler was called.
func (g *Grid[T]) ClickAction(key, column, action string) (rowClicked bool, err error) {
	row := g.Row(key)
	if row == nil {
		return false, fmt.Errorf("%w: %q", ErrRowNotFound, key)
	}
	cell := row.Cell(column)
	if cell == nil {
		return false, fmt.Errorf("%w: %q", ErrColumnNotFound, column)
	}
	for _, a := range cell.Actions() {
		if a.Name != action {
			continue
		}
		event := &ClickEvent{RowKey: key, Column: column, Action: action}
		if a.OnClick != nil {
			a.OnClick(event)
		}
		return row.Click(event), nil
	}
	return false, fmt.Errorf("%w: %q in column %q of row %q", ErrActionNotFound, action, column, key)
}

// Strings returns the cell texts of all rows,
// preceded by the header titles if header is true
// and the grid has headers.
func (g *Grid[T]) Strings(header bool) [][]string {
	rows := make([][]string, 0, len(g.Rows)+1)
	if header && g.Headers != nil {
		titles := make([]string, len(g.Headers))
		for i, h := range g.Headers {
			titles[i] = h.Title
		}
		rows = append(rows, titles)
	}
	for _, row := range g.Rows {
		texts := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			texts[i] = cell.Text
		}
		rows = append(rows, texts)
	}
	return rows
}

// Cell returns the cell of the column with key or nil.
func (r *Row[T]) Cell(key string) *Cell {
	for i := range r.Cells {
		if r.Cells[i].Key == key {
			return &r.Cells[i]
		}
	}
	return nil
}

// Click calls the row click handler with the row item
// unless the row is not clickable or the propagation
// of the event was stopped.
// A nil event is a click on the row itself.
func (r *Row[T]) Click(event *ClickEvent) bool {
	if r.onClick == nil || (event != nil && event.PropagationStopped()) {
		return false
	}
	r.onClick(r.Item)
	return true
}

// StringColumnWidths returns the column widths of the passed
// table as count of UTF-8 runes.
// If numCols is negative, then the maximum
// number of columns of any row is used.
func StringColumnWidths(rows [][]string, numCols int) []int {
	if numCols < 0 {
		for _, row := range rows {
			if rowCols := len(row); rowCols > numCols {
				numCols = rowCols
			}
		}
		if numCols <= 0 {
			return nil
		}
	}
	colWidths := make([]int, numCols)
	for row := range rows {
		for col := 0; col < numCols && col < len(rows[row]); col++ {
			numRunes := utf8.RuneCountInString(rows[row][col])
			if numRunes > colWidths[col] {
				colWidths[col] = numRunes
			}
		}
	}
	return colWidths
}
