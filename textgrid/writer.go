// Package textgrid writes rendered datatable grids as terminal tables
// using github.com/charmbracelet/lipgloss/table.
package textgrid

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/domonda/go-datatable"
)

var (
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	RowStyle     = lipgloss.NewStyle().Padding(0, 1)
	StripedStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245"))
	EmptyStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
)

// Writer writes a datatable.Grid as text table for terminals.
// An empty grid is written as its header table if it has headers
// followed by the empty state message as a single line.
//
// Writer is immutable after creation - all With* methods return
// a new Writer instance with the modified configuration.
type Writer[T any] struct {
	border       lipgloss.Border
	headerStyle  lipgloss.Style
	rowStyle     lipgloss.Style
	stripedStyle lipgloss.Style
	emptyStyle   lipgloss.Style
}

// NewWriter returns a Writer with rounded borders
// using the package level styles.
func NewWriter[T any]() *Writer[T] {
	return &Writer[T]{
		border:       lipgloss.RoundedBorder(),
		headerStyle:  HeaderStyle,
		rowStyle:     RowStyle,
		stripedStyle: StripedStyle,
		emptyStyle:   EmptyStyle,
	}
}

func (w *Writer[T]) clone() *Writer[T] {
	c := new(Writer[T])
	*c = *w
	return c
}

// Write writes grid as text to dest followed by a newline.
func (w *Writer[T]) Write(ctx context.Context, dest io.Writer, grid *datatable.Grid[T]) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	_, err := io.WriteString(dest, w.Render(grid)+"\n")
	return err
}

// Render returns grid rendered as text.
func (w *Writer[T]) Render(grid *datatable.Grid[T]) string {
	var b strings.Builder
	if grid.Headers != nil {
		titles := make([]string, len(grid.Headers))
		for i, h := range grid.Headers {
			titles[i] = h.Title
		}
		rows := grid.Strings(false)
		t := table.New().
			Border(w.border).
			Headers(titles...).
			Rows(rows...).
			StyleFunc(func(row, _ int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return w.headerStyle
				case row >= 0 && row < len(grid.Rows) && grid.Rows[row].Striped:
					return w.stripedStyle
				}
				return w.rowStyle
			})
		b.WriteString(t.Render())
	}
	if grid.IsEmpty() {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(w.emptyStyle.Render(grid.Empty.Message))
	}
	return b.String()
}

// WithBorder returns a new writer using border for the table.
func (w *Writer[T]) WithBorder(border lipgloss.Border) *Writer[T] {
	mod := w.clone()
	mod.border = border
	return mod
}

// WithStyles returns a new writer using the passed styles
// for the header, regular, and striped rows.
func (w *Writer[T]) WithStyles(header, row, striped lipgloss.Style) *Writer[T] {
	mod := w.clone()
	mod.headerStyle = header
	mod.rowStyle = row
	mod.stripedStyle = striped
	return mod
}

// WithEmptyStyle returns a new writer rendering
// the empty state message with style.
func (w *Writer[T]) WithEmptyStyle(style lipgloss.Style) *Writer[T] {
	mod := w.clone()
	mod.emptyStyle = style
	return mod
}
