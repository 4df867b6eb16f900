package xlsxgrid

import (
	"errors"
	"io"

	"github.com/xuri/excelize/v2"
)

// ErrEmptySheet indicates that an Excel sheet contains no data.
var ErrEmptySheet = errors.New("empty sheet")

type ErrSheetNotExist = excelize.ErrSheetNotExist

// ReadFirstSheet reads the cell strings of the first sheet
// of an Excel workbook including the header row.
// Trailing empty cells of rows are omitted.
func ReadFirstSheet(reader io.Reader) (rows [][]string, err error) {
	f, e := excelize.OpenReader(reader)
	if e != nil {
		return nil, e
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrSheetNotExist{SheetName: "<FirstSheet>"}
	}
	rows, err = f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}
	return rows, nil
}
