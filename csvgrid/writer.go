// Package csvgrid writes rendered datatable grids as CSV.
package csvgrid

import (
	"context"
	"errors"
	"io"
	"maps"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/domonda/go-types/charset"
	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-datatable"
)

// Encoder is an interface to encode byte strings.
// It is implemented by *encoding.Encoder of golang.org/x/text.
type Encoder interface {
	Bytes([]byte) ([]byte, error)
}

// EncoderFunc implements the Encoder interface for a function.
type EncoderFunc func([]byte) ([]byte, error)

func (f EncoderFunc) Bytes(data []byte) ([]byte, error) {
	return f(data)
}

type Padding int

const (
	NoPadding Padding = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// Writer writes the cell texts of a datatable.Grid as CSV.
// The empty state of a grid without rows is written
// as a single field row after the optional header row.
type Writer[T any] struct {
	columnFormatters map[string]datatable.Formatter
	padding          Padding
	headerRow        bool
	quoteAllFields   bool
	quoteEmptyFields bool
	escapeQuotes     string
	delimiter        rune
	newLine          string
	encoder          Encoder
}

func NewWriter[T any]() *Writer[T] {
	return &Writer[T]{
		padding:          NoPadding,
		headerRow:        false,
		quoteAllFields:   false,
		quoteEmptyFields: false,
		escapeQuotes:     `""`,
		delimiter:        ';',
		newLine:          "\r\n",
		encoder:          nil,
	}
}

func (w *Writer[T]) clone() *Writer[T] {
	c := new(Writer[T])
	*c = *w
	return c
}

// Write writes grid to dest formatted as CSV.
// The whole output is encoded at once if the writer has an Encoder.
func (w *Writer[T]) Write(ctx context.Context, dest io.Writer, grid *datatable.Grid[T]) error {
	data, err := w.Bytes(ctx, grid)
	if err != nil {
		return err
	}
	_, err = dest.Write(data)
	return err
}

// WriteFile writes grid as CSV to file.
func (w *Writer[T]) WriteFile(ctx context.Context, file fs.File, grid *datatable.Grid[T]) error {
	data, err := w.Bytes(ctx, grid)
	if err != nil {
		return err
	}
	return file.WriteAll(data)
}

// Bytes returns grid formatted as CSV.
func (w *Writer[T]) Bytes(ctx context.Context, grid *datatable.Grid[T]) ([]byte, error) {
	rows, err := w.GridStrings(ctx, grid)
	if err != nil {
		return nil, err
	}
	var widths []int
	if w.padding != NoPadding {
		widths = datatable.StringColumnWidths(rows, -1)
	}
	var b strings.Builder
	for _, row := range rows {
		for col, field := range row {
			if col > 0 {
				b.WriteRune(w.delimiter)
			}
			if widths != nil {
				field = w.padding.pad(field, widths[col])
			}
			b.WriteString(field)
		}
		b.WriteString(w.newLine)
	}
	if grid.IsEmpty() {
		b.WriteString(w.escapeString(grid.Empty.Message))
		b.WriteString(w.newLine)
	}
	if w.encoder == nil {
		return []byte(b.String()), nil
	}
	return w.encoder.Bytes([]byte(b.String()))
}

func (p Padding) pad(field string, width int) string {
	fill := width - utf8.RuneCountInString(field)
	if fill <= 0 {
		return field
	}
	switch p {
	case AlignLeft:
		return field + strings.Repeat(" ", fill)
	case AlignRight:
		return strings.Repeat(" ", fill) + field
	case AlignCenter:
		return strings.Repeat(" ", fill/2) + field + strings.Repeat(" ", fill-fill/2)
	}
	return field
}

// GridStrings returns the escaped CSV fields of grid,
// starting with the header row if the writer has one enabled
// and the grid has headers.
func (w *Writer[T]) GridStrings(ctx context.Context, grid *datatable.Grid[T]) ([][]string, error) {
	var rows [][]string
	if w.headerRow && grid.Headers != nil {
		titles := make([]string, 0, len(grid.Headers))
		for _, h := range grid.Headers {
			titles = append(titles, w.escapeString(h.Title))
		}
		rows = append(rows, titles)
	}
	for _, row := range grid.Rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fields := make([]string, 0, len(row.Cells))
		for i := range row.Cells {
			text, err := w.cellString(&row.Cells[i])
			if err != nil {
				return nil, err
			}
			fields = append(fields, w.escapeString(text))
		}
		rows = append(rows, fields)
	}
	return rows, nil
}

func (w *Writer[T]) cellString(cell *datatable.Cell) (string, error) {
	colFormatter, ok := w.columnFormatters[cell.Key]
	if !ok || datatable.IsNullLike(reflect.ValueOf(cell.Value)) {
		return cell.Text, nil
	}
	str, err := colFormatter.Format(reflect.ValueOf(cell.Value))
	if err == nil {
		return str, nil
	}
	if !errors.Is(err, errors.ErrUnsupported) {
		return "", err
	}
	// Continue after errors.ErrUnsupported
	return cell.Text, nil
}

// escapeString quotes fields containing the delimiter,
// a quote, or a line break.
// Carriage returns are dropped, a bare '\n' is valid within quotes.
func (w *Writer[T]) escapeString(field string) string {
	quote := w.quoteAllFields || strings.ContainsAny(field, string(w.delimiter)+"\"\r\n")
	field = strings.ReplaceAll(field, "\r", "")
	escaped := strings.ReplaceAll(field, `"`, w.escapeQuotes)
	if quote {
		return `"` + escaped + `"`
	}
	if field == "" && w.quoteEmptyFields {
		return `""`
	}
	return escaped
}

func (w *Writer[T]) WithHeaderRow(headerRow bool) *Writer[T] {
	mod := w.clone()
	mod.headerRow = headerRow
	return mod
}

// WithColumnFormatter returns a new writer that formats the cell values
// of the column with key using formatter instead of the rendered cell text.
// If nil is passed as formatter, then a previous registered column formatter is removed.
func (w *Writer[T]) WithColumnFormatter(key string, formatter datatable.Formatter) *Writer[T] {
	mod := w.clone()
	mod.columnFormatters = maps.Clone(w.columnFormatters)
	if mod.columnFormatters == nil {
		mod.columnFormatters = make(map[string]datatable.Formatter)
	}
	if formatter != nil {
		mod.columnFormatters[key] = formatter
	} else {
		delete(mod.columnFormatters, key)
	}
	return mod
}

func (w *Writer[T]) WithPadding(padding Padding) *Writer[T] {
	mod := w.clone()
	mod.padding = padding
	return mod
}

func (w *Writer[T]) WithQuoteAllFields(quoteAllFields bool) *Writer[T] {
	mod := w.clone()
	mod.quoteAllFields = quoteAllFields
	return mod
}

func (w *Writer[T]) WithQuoteEmptyFields(quoteEmptyFields bool) *Writer[T] {
	mod := w.clone()
	mod.quoteEmptyFields = quoteEmptyFields
	return mod
}

func (w *Writer[T]) WithEscapeQuotes(escapeQuotes string) *Writer[T] {
	mod := w.clone()
	mod.escapeQuotes = escapeQuotes
	return mod
}

func (w *Writer[T]) WithDelimiter(delimiter rune) *Writer[T] {
	mod := w.clone()
	mod.delimiter = delimiter
	return mod
}

func (w *Writer[T]) WithNewLine(newLine string) *Writer[T] {
	mod := w.clone()
	mod.newLine = newLine
	return mod
}

func (w *Writer[T]) WithEncoder(encoder Encoder) *Writer[T] {
	mod := w.clone()
	mod.encoder = encoder
	return mod
}

// WithEncoding returns a new writer encoding the UTF-8 output
// to the named character encoding of the go-types charset package.
// The names "UTF-8" and "" keep the output unchanged.
func (w *Writer[T]) WithEncoding(name string) (*Writer[T], error) {
	if name == "" || strings.EqualFold(name, "UTF-8") {
		return w.WithEncoder(nil), nil
	}
	enc, err := charset.GetEncoding(name)
	if err != nil {
		return nil, err
	}
	return w.WithEncoder(EncoderFunc(enc.Encode)), nil
}

func (w *Writer[T]) Delimiter() rune {
	return w.delimiter
}

func (w *Writer[T]) NewLine() string {
	return w.newLine
}
