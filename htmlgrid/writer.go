// Package htmlgrid writes rendered datatable grids as HTML.
//
// Rows are written as table rows carrying their key
// in a data-key attribute, clickable and striped rows
// are marked with configurable classes so that a page
// can dispatch clicks back to datatable.Grid.ClickRow
// and datatable.Grid.ClickAction.
//
// Cell values are HTML-escaped unless they are template.HTML,
// implement HTMLValue, are datatable.Actions rendered as buttons,
// or a RawFormatter was registered for their column.
//
// Example usage:
//
//	grid, err := datatable.Render(ctx, columns, orders, orderKey, onOrderClick, "No orders found")
//	...
//	err = htmlgrid.NewWriter[Order]().
//	    WithTableClass("data-table").
//	    Write(ctx, os.Stdout, grid, "Orders")
package htmlgrid

import (
	"context"
	"errors"
	"html/template"
	"io"
	"reflect"
	"strings"

	"github.com/domonda/go-datatable"
)

// Writer writes a datatable.Grid as HTML table.
//
// Writer is immutable after creation - all With* methods return
// a new Writer instance with the modified configuration.
type Writer[T any] struct {
	tableClass       string
	emptyClass       string
	clickableClass   string
	stripedClass     string
	columnFormatters map[string]RawFormatter
	headerTemplate   *template.Template
	rowTemplate      *template.Template
	emptyRowTemplate *template.Template
	footerTemplate   *template.Template
	emptyTemplate    *template.Template
}

// NewWriter creates a new HTML grid writer for rows of type T.
//
// Default configuration:
//   - No table class
//   - "empty-state" as class of the empty state
//   - "clickable" as class of clickable rows
//   - "striped" as class of striped rows
//   - Standard HTML table templates
func NewWriter[T any]() *Writer[T] {
	return &Writer[T]{
		emptyClass:       "empty-state",
		clickableClass:   "clickable",
		stripedClass:     "striped",
		headerTemplate:   HeaderTemplate,
		rowTemplate:      RowTemplate,
		emptyRowTemplate: EmptyRowTemplate,
		footerTemplate:   FooterTemplate,
		emptyTemplate:    EmptyTemplate,
	}
}

// Write writes grid as HTML to dest.
//
// An empty grid without headers is written as the
// empty state block only, an empty grid with headers
// as table with a single row spanning all columns
// that holds the empty state message.
//
// The optional caption strings are joined with spaces.
func (w *Writer[T]) Write(ctx context.Context, dest io.Writer, grid *datatable.Grid[T], caption ...string) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	templData := &RowTemplateContext{
		TemplateContext: TemplateContext{
			TableClass: w.tableClass,
			EmptyClass: w.emptyClass,
			Caption:    strings.Join(caption, " "),
		},
	}
	if grid.Headers != nil {
		templData.Headers = make([]HeaderTemplateContext, len(grid.Headers))
		for i, h := range grid.Headers {
			templData.Headers[i] = HeaderTemplateContext(h)
		}
	}

	if grid.IsEmpty() {
		templData.Message = grid.Empty.Message
		if templData.Headers == nil {
			return w.emptyTemplate.Execute(dest, templData.TemplateContext)
		}
		err := w.headerTemplate.Execute(dest, templData.TemplateContext)
		if err != nil {
			return err
		}
		err = w.emptyRowTemplate.Execute(dest, templData.TemplateContext)
		if err != nil {
			return err
		}
		return w.footerTemplate.Execute(dest, templData.TemplateContext)
	}

	err := w.headerTemplate.Execute(dest, templData.TemplateContext)
	if err != nil {
		return err
	}

	for _, row := range grid.Rows {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		templData.Key = row.Key
		templData.RowIndex = row.Index
		templData.RowClass = w.rowClass(row.Clickable, row.Striped)
		templData.Cells = templData.Cells[:0]
		for i := range row.Cells {
			cell := &row.Cells[i]
			html, err := w.cellHTML(ctx, cell)
			if err != nil {
				return err
			}
			templData.Cells = append(templData.Cells, CellTemplateContext{
				Key:   cell.Key,
				Class: cell.Class,
				HTML:  html,
			})
		}
		err = w.rowTemplate.Execute(dest, templData)
		if err != nil {
			return err
		}
	}

	return w.footerTemplate.Execute(dest, templData.TemplateContext)
}

func (w *Writer[T]) rowClass(clickable, striped bool) string {
	var classes []string
	if clickable && w.clickableClass != "" {
		classes = append(classes, w.clickableClass)
	}
	if striped && w.stripedClass != "" {
		classes = append(classes, w.stripedClass)
	}
	return strings.Join(classes, " ")
}

// cellHTML formats a cell using the formatter cascade:
//  1. Column formatter registered for the cell's column key
//  2. template.HTML values, HTMLValue implementations and actions
//  3. The escaped cell text
func (w *Writer[T]) cellHTML(ctx context.Context, cell *datatable.Cell) (template.HTML, error) {
	if colFormatter, ok := w.columnFormatters[cell.Key]; ok {
		html, err := colFormatter.RawHTML(ctx, cell)
		if err == nil {
			return html, nil
		}
		if !errors.Is(err, errors.ErrUnsupported) {
			return "", err
		}
		// Continue after errors.ErrUnsupported
	}

	if datatable.IsNullLike(reflect.ValueOf(cell.Value)) {
		return template.HTML(template.HTMLEscapeString(cell.Text)), nil //#nosec G203
	}
	switch v := cell.Value.(type) {
	case template.HTML:
		return v, nil
	case HTMLValue:
		return v.HTML(), nil
	}
	if actions := cell.Actions(); actions != nil {
		return ActionsHTML(actions), nil
	}
	return template.HTML(template.HTMLEscapeString(cell.Text)), nil //#nosec G203
}

func (w *Writer[T]) clone() *Writer[T] {
	c := new(Writer[T])
	*c = *w
	return c
}

// WithTableClass returns a new writer with the specified CSS class for the table element.
// The class will be rendered as: <table class='tableClass'>
func (w *Writer[T]) WithTableClass(tableClass string) *Writer[T] {
	mod := w.clone()
	mod.tableClass = tableClass
	return mod
}

// WithEmptyClass returns a new writer using emptyClass
// as CSS class of the empty state.
func (w *Writer[T]) WithEmptyClass(emptyClass string) *Writer[T] {
	mod := w.clone()
	mod.emptyClass = emptyClass
	return mod
}

// WithRowClasses returns a new writer using the passed
// CSS classes for clickable and striped rows.
// Empty strings disable the respective class.
func (w *Writer[T]) WithRowClasses(clickableClass, stripedClass string) *Writer[T] {
	mod := w.clone()
	mod.clickableClass = clickableClass
	mod.stripedClass = stripedClass
	return mod
}

// WithColumnFormatter returns a new writer with the formatter
// registered for the column with key.
// Column formatters take precedence over the default cell formatting.
// If nil is passed as formatter, any previously registered formatter for this column is removed.
func (w *Writer[T]) WithColumnFormatter(key string, formatter RawFormatter) *Writer[T] {
	mod := w.clone()
	mod.columnFormatters = make(map[string]RawFormatter)
	for k, f := range w.columnFormatters {
		mod.columnFormatters[k] = f
	}
	if formatter != nil {
		mod.columnFormatters[key] = formatter
	} else {
		delete(mod.columnFormatters, key)
	}
	return mod
}

// WithRawColumn returns a new writer that interprets the cell texts
// of the column with key as raw HTML.
//
// Warning: Only use this for trusted content to avoid XSS vulnerabilities.
func (w *Writer[T]) WithRawColumn(key string) *Writer[T] {
	return w.WithColumnFormatter(key, RawTextFormatter)
}

// WithTemplate returns a new writer with custom templates for rendering the HTML table.
// The templates receive TemplateContext except for rowTemplate
// that receives a RowTemplateContext.
// Nil templates keep the current template.
func (w *Writer[T]) WithTemplate(headerTemplate, rowTemplate, footerTemplate, emptyTemplate *template.Template) *Writer[T] {
	mod := w.clone()
	if headerTemplate != nil {
		mod.headerTemplate = headerTemplate
	}
	if rowTemplate != nil {
		mod.rowTemplate = rowTemplate
	}
	if footerTemplate != nil {
		mod.footerTemplate = footerTemplate
	}
	if emptyTemplate != nil {
		mod.emptyTemplate = emptyTemplate
	}
	return mod
}

// TableClass returns the CSS class configured for the table element.
func (w *Writer[T]) TableClass() string {
	return w.tableClass
}

// EmptyClass returns the CSS class configured for the empty state.
func (w *Writer[T]) EmptyClass() string {
	return w.emptyClass
}
