package datatable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewColumns(t *testing.T) {
	tests := []struct {
		name    string
		cols    []Column[testVendor]
		wantErr *SchemaError
	}{
		{name: "empty schema", cols: nil},
		{
			name: "valid",
			cols: []Column[testVendor]{{Key: "name", Header: "Name"}, {Key: "status", Header: "Status"}},
		},
		{
			name:    "empty key",
			cols:    []Column[testVendor]{{Key: "name", Header: "Name"}, {Header: "Status"}},
			wantErr: &SchemaError{Index: 1, Reason: "empty key"},
		},
		{
			name:    "empty header",
			cols:    []Column[testVendor]{{Key: "name"}},
			wantErr: &SchemaError{Index: 0, Key: "name", Reason: "empty header"},
		},
		{
			name:    "duplicate key",
			cols:    []Column[testVendor]{{Key: "name", Header: "Name"}, {Key: "name", Header: "Vendor"}},
			wantErr: &SchemaError{Index: 1, Key: "name", Reason: "key already used by column 0"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, err := NewColumns(tt.cols...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Len(t, cols, len(tt.cols))
				return
			}
			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, tt.wantErr, schemaErr)
			assert.Nil(t, cols)
		})
	}
}

func TestMustColumns_Panics(t *testing.T) {
	require.Panics(t, func() { MustColumns(Column[testVendor]{Key: "name"}) })
}

func TestStructColumns(t *testing.T) {
	type product struct {
		ID       string  `json:"id" col:"-"`
		Name     string  `json:"name"`
		UnitCost float64 `json:"unitCost"`
		Vendor   string  `col:"Supplier"`
		internal string
	}

	cols, err := StructColumns[*product](&DefaultStructFieldNaming)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "unitCost", "Vendor"}, cols.Keys())
	assert.Equal(t, []string{"Name", "Unit Cost", "Supplier"}, cols.Headers())

	_, err = StructColumns[string](nil)
	require.Error(t, err)
}

func TestColumns_Select(t *testing.T) {
	cols := MustColumns(
		Column[testVendor]{Key: "id", Header: "ID"},
		Column[testVendor]{Key: "name", Header: "Name"},
		Column[testVendor]{Key: "status", Header: "Status"},
	)
	assert.Equal(t, 2, cols.Index("status"))
	assert.Equal(t, -1, cols.Index("email"))

	selected, err := cols.Select("status", "id")
	require.NoError(t, err)
	assert.Equal(t, []string{"status", "id"}, selected.Keys())
	assert.Equal(t, []string{"Status", "ID"}, selected.Headers())

	_, err = cols.Select("email")
	require.ErrorIs(t, err, ErrColumnNotFound)
}
