// Package xlsxgrid writes rendered datatable grids as Excel workbooks
// using the excelize library (github.com/xuri/excelize/v2).
//
// Example usage:
//
//	grid, err := datatable.Render(ctx, columns, products, productKey, nil)
//	...
//	err = xlsxgrid.NewWriter[Product]().
//	    WithSheetName("Products").
//	    WriteFile(ctx, fs.File("products.xlsx"), grid)
package xlsxgrid

import (
	"bytes"
	"context"
	"errors"
	"io"
	"reflect"

	fs "github.com/ungerik/go-fs"
	"github.com/xuri/excelize/v2"

	"github.com/domonda/go-datatable"
)

// Writer writes a datatable.Grid as single sheet Excel workbook.
//
// Integer and float cell values are written as numbers,
// all other cells as their rendered text.
// An empty grid is written as its header row if it has headers
// followed by the empty state message in the first column.
//
// Writer is immutable after creation - all With* methods return
// a new Writer instance with the modified configuration.
type Writer[T any] struct {
	sheetName    string
	headerRow    bool
	boldHeader   bool
	autoColWidth bool
}

// NewWriter returns a Writer with a bold header row
// on a sheet named "Sheet1" and column widths fitted to the cell texts.
func NewWriter[T any]() *Writer[T] {
	return &Writer[T]{
		sheetName:    "Sheet1",
		headerRow:    true,
		boldHeader:   true,
		autoColWidth: true,
	}
}

func (w *Writer[T]) clone() *Writer[T] {
	c := new(Writer[T])
	*c = *w
	return c
}

// Write writes grid as XLSX workbook to dest.
func (w *Writer[T]) Write(ctx context.Context, dest io.Writer, grid *datatable.Grid[T]) (err error) {
	f, err := w.NewFile(ctx, grid)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return f.Write(dest)
}

// WriteFile writes grid as XLSX workbook to file.
func (w *Writer[T]) WriteFile(ctx context.Context, file fs.File, grid *datatable.Grid[T]) error {
	var buf bytes.Buffer
	err := w.Write(ctx, &buf, grid)
	if err != nil {
		return err
	}
	return file.WriteAll(buf.Bytes())
}

// NewFile returns a new excelize.File with grid written to its sheet.
// The caller is responsible for closing the file.
func (w *Writer[T]) NewFile(ctx context.Context, grid *datatable.Grid[T]) (*excelize.File, error) {
	f := excelize.NewFile()
	err := w.writeSheet(ctx, f, grid)
	if err != nil {
		return nil, errors.Join(err, f.Close())
	}
	return f, nil
}

func (w *Writer[T]) writeSheet(ctx context.Context, f *excelize.File, grid *datatable.Grid[T]) error {
	sheet := w.sheetName
	if sheet == "" {
		sheet = "Sheet1"
	}
	if defaultSheet := f.GetSheetName(0); defaultSheet != sheet {
		err := f.SetSheetName(defaultSheet, sheet)
		if err != nil {
			return err
		}
	}

	row := 1
	if w.headerRow && grid.Headers != nil {
		for col, header := range grid.Headers {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			err = f.SetCellStr(sheet, cell, header.Title)
			if err != nil {
				return err
			}
		}
		if w.boldHeader && len(grid.Headers) > 0 {
			err := w.setBold(f, sheet, row, len(grid.Headers))
			if err != nil {
				return err
			}
		}
		row++
	}

	if grid.IsEmpty() {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		return f.SetCellStr(sheet, cell, grid.Empty.Message)
	}

	for _, gridRow := range grid.Rows {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		for col := range gridRow.Cells {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			err = setCell(f, sheet, cell, &gridRow.Cells[col])
			if err != nil {
				return err
			}
		}
		row++
	}

	if w.autoColWidth {
		return w.setColWidths(f, sheet, grid)
	}
	return nil
}

func setCell(f *excelize.File, sheet, cell string, c *datatable.Cell) error {
	v := reflect.ValueOf(c.Value)
	if datatable.IsNullLike(v) {
		return f.SetCellStr(sheet, cell, c.Text)
	}
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return f.SetCellValue(sheet, cell, v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return f.SetCellValue(sheet, cell, v.Uint())
	case reflect.Float32, reflect.Float64:
		return f.SetCellValue(sheet, cell, v.Float())
	}
	return f.SetCellStr(sheet, cell, c.Text)
}

func (w *Writer[T]) setBold(f *excelize.File, sheet string, row, numCols int) error {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(numCols, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, first, last, style)
}

func (w *Writer[T]) setColWidths(f *excelize.File, sheet string, grid *datatable.Grid[T]) error {
	for col, width := range datatable.StringColumnWidths(grid.Strings(w.headerRow), -1) {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		err = f.SetColWidth(sheet, name, name, float64(width+2))
		if err != nil {
			return err
		}
	}
	return nil
}

// WithSheetName returns a new writer using sheetName as name of the sheet.
func (w *Writer[T]) WithSheetName(sheetName string) *Writer[T] {
	mod := w.clone()
	mod.sheetName = sheetName
	return mod
}

func (w *Writer[T]) WithHeaderRow(headerRow bool) *Writer[T] {
	mod := w.clone()
	mod.headerRow = headerRow
	return mod
}

func (w *Writer[T]) WithBoldHeader(boldHeader bool) *Writer[T] {
	mod := w.clone()
	mod.boldHeader = boldHeader
	return mod
}

func (w *Writer[T]) WithAutoColWidth(autoColWidth bool) *Writer[T] {
	mod := w.clone()
	mod.autoColWidth = autoColWidth
	return mod
}

func (w *Writer[T]) SheetName() string {
	return w.sheetName
}
