package datatable

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/domonda/go-types/date"
	"github.com/domonda/go-types/money"
	"github.com/domonda/go-types/nullable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCustomer struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Status    string                 `json:"status"`
	Phone     nullable.TrimmedString `json:"phone"`
	Joined    date.Date              `json:"joined"`
	Credit    money.Amount           `json:"credit"`
	CreatedAt time.Time              `json:"createdAt"`
	Manager   *string                `json:"manager"`
}

func customerKey(c testCustomer) string { return c.ID }

func TestRender_Example(t *testing.T) {
	columns := MustColumns(
		Column[testCustomer]{Key: "name", Header: "Name"},
		Column[testCustomer]{Key: "status", Header: "Status", Render: func(c testCustomer) any { return strings.ToUpper(c.Status) }},
	)
	rows := []testCustomer{{ID: "1", Name: "Acme", Status: "pending"}}

	grid, err := Render(context.Background(), columns, rows, customerKey, nil)
	require.NoError(t, err)
	require.False(t, grid.IsEmpty())
	require.Equal(t, 1, grid.NumRows())
	assert.Equal(t, "1", grid.Rows[0].Key)
	assert.Equal(t, "Acme", grid.Rows[0].Cells[0].Text)
	assert.Equal(t, "PENDING", grid.Rows[0].Cells[1].Text)
	assert.Equal(t, []Header{{Key: "name", Title: "Name"}, {Key: "status", Title: "Status"}}, grid.Headers)
}

func TestRender_Empty(t *testing.T) {
	columns := MustColumns(Column[testCustomer]{Key: "name", Header: "Name"})

	t.Run("custom message", func(t *testing.T) {
		grid, err := Render(context.Background(), columns, nil, customerKey, nil, "No customers found")
		require.NoError(t, err)
		require.True(t, grid.IsEmpty())
		assert.Equal(t, "No customers found", grid.Empty.Message)
		assert.Nil(t, grid.Headers)
		assert.Empty(t, grid.Rows)
		assert.Empty(t, grid.Strings(true))
	})

	t.Run("default message", func(t *testing.T) {
		grid, err := Render(context.Background(), columns, []testCustomer{}, customerKey, nil)
		require.NoError(t, err)
		require.True(t, grid.IsEmpty())
		assert.Equal(t, DefaultEmptyMessage, grid.Empty.Message)
	})

	t.Run("header on empty", func(t *testing.T) {
		grid, err := NewRenderer(columns, customerKey).
			WithOptions(OptionHeaderOnEmpty).
			Render(context.Background(), nil)
		require.NoError(t, err)
		require.True(t, grid.IsEmpty())
		assert.Equal(t, []Header{{Key: "name", Title: "Name"}}, grid.Headers)
		assert.Equal(t, [][]string{{"Name"}}, grid.Strings(true))
	})
}

func TestRender_RowOrderAndCount(t *testing.T) {
	columns := MustColumns(Column[testCustomer]{Key: "name", Header: "Name"})
	rows := []testCustomer{
		{ID: "c", Name: "Charlie"},
		{ID: "a", Name: "Alice"},
		{ID: "b", Name: "Bob"},
	}
	grid, err := Render(context.Background(), columns, rows, customerKey, nil)
	require.NoError(t, err)
	require.Len(t, grid.Rows, len(rows))
	for i, row := range grid.Rows {
		assert.Equal(t, i, row.Index)
		assert.Equal(t, rows[i].ID, row.Key)
		assert.Equal(t, rows[i], row.Item)
		assert.Equal(t, rows[i].Name, row.Cells[0].Text)
	}
	assert.Equal(t, [][]string{{"Name"}, {"Charlie"}, {"Alice"}, {"Bob"}}, grid.Strings(true))
	assert.Equal(t, [][]string{{"Charlie"}, {"Alice"}, {"Bob"}}, grid.Strings(false))
}

func TestRender_CellValues(t *testing.T) {
	manager := "Diana Miller"
	columns := MustColumns(
		Column[testCustomer]{Key: "name", Header: "Name"},
		Column[testCustomer]{Key: "phone", Header: "Phone"},
		Column[testCustomer]{Key: "joined", Header: "Joined"},
		Column[testCustomer]{Key: "credit", Header: "Credit"},
		Column[testCustomer]{Key: "createdAt", Header: "Created At"},
		Column[testCustomer]{Key: "manager", Header: "Manager"},
		Column[testCustomer]{Key: "website", Header: "Website"},
		Column[testCustomer]{Key: "initial", Header: "Initial", Value: func(c testCustomer) any { return c.Name[:1] }},
		Column[testCustomer]{Key: "note", Header: "Note", Render: func(testCustomer) any { return nil }},
	)
	rows := []testCustomer{
		{
			ID:        "1",
			Name:      "John Doe",
			Phone:     "+43 1 234",
			Joined:    date.Date("2024-01-15"),
			Credit:    money.Amount(1250.5),
			CreatedAt: time.Date(2024, 1, 18, 14, 20, 0, 0, time.UTC),
			Manager:   &manager,
		},
		{ID: "2", Name: "Jane Smith"},
	}
	grid, err := Render(context.Background(), columns, rows, customerKey, nil)
	require.NoError(t, err)
	assert.Equal(t,
		[][]string{
			{"John Doe", "+43 1 234", "Jan 15, 2024", "1250.50", "Jan 18, 2024", "Diana Miller", "-", "J", "-"},
			{"Jane Smith", "-", "-", "0.00", "-", "-", "-", "J", "-"},
		},
		grid.Strings(false),
	)
}

func TestRender_MapRows(t *testing.T) {
	columns := MustColumns(
		Column[map[string]any]{Key: "name", Header: "Name"},
		Column[map[string]any]{Key: "totalItems", Header: "Items"},
		Column[map[string]any]{Key: "vendor", Header: "Vendor"},
	)
	rows := []map[string]any{
		{"id": "ORD-001", "name": "John Doe", "totalItems": 5, "vendor": nil},
	}
	grid, err := Render(context.Background(), columns, rows, func(m map[string]any) string { return m["id"].(string) }, nil)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"John Doe", "5", "-"}}, grid.Strings(false))
}

func TestRender_DuplicateRowKey(t *testing.T) {
	columns := MustColumns(Column[testCustomer]{Key: "name", Header: "Name"})
	rows := []testCustomer{{ID: "1"}, {ID: "2"}, {ID: "1"}}
	_, err := Render(context.Background(), columns, rows, customerKey, nil)
	var dupErr *DuplicateRowKeyError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, DuplicateRowKeyError{Key: "1", First: 0, Second: 2}, *dupErr)
}

func TestRender_ProjectionPanicAbortsPass(t *testing.T) {
	var rendered []string
	columns := MustColumns(
		Column[testCustomer]{Key: "name", Header: "Name", Render: func(c testCustomer) any {
			rendered = append(rendered, c.ID)
			if c.ID == "2" {
				panic("boom")
			}
			return c.Name
		}},
	)
	rows := []testCustomer{{ID: "1"}, {ID: "2"}, {ID: "3"}}
	grid, err := Render(context.Background(), columns, rows, customerKey, nil)
	require.Nil(t, grid)
	var projErr *ProjectionError
	require.ErrorAs(t, err, &projErr)
	assert.Equal(t, "2", projErr.RowKey)
	assert.Equal(t, "name", projErr.Column)
	assert.Equal(t, "boom", projErr.Panic)
	assert.Equal(t, []string{"1", "2"}, rendered, "no rows rendered after the failing one")
}

func TestRender_ProjectionPanicWithError(t *testing.T) {
	errBadStatus := errors.New("bad status")
	columns := MustColumns(
		Column[testCustomer]{Key: "status", Header: "Status", Render: func(c testCustomer) any { panic(errBadStatus) }},
	)
	_, err := Render(context.Background(), columns, []testCustomer{{ID: "1"}}, customerKey, nil)
	require.ErrorIs(t, err, errBadStatus)
}

func TestRender_FormatterError(t *testing.T) {
	errNoNames := errors.New("names not allowed")
	columns := MustColumns(Column[testCustomer]{Key: "name", Header: "Name"})
	renderer := NewRenderer(columns, customerKey).
		WithFormatter(FormatterFunc(func(reflect.Value) (string, error) { return "", errNoNames }))
	_, err := renderer.Render(context.Background(), []testCustomer{{ID: "1", Name: "John"}})
	var projErr *ProjectionError
	require.ErrorAs(t, err, &projErr)
	assert.Equal(t, "name", projErr.Column)
	assert.Nil(t, projErr.Panic)
	assert.ErrorIs(t, err, errNoNames)
}

func TestRender_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	columns := MustColumns(Column[testCustomer]{Key: "name", Header: "Name"})
	_, err := Render(ctx, columns, []testCustomer{{ID: "1"}}, customerKey, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRenderer_StripedRows(t *testing.T) {
	columns := MustColumns(Column[testCustomer]{Key: "name", Header: "Name"})
	rows := []testCustomer{{ID: "1"}, {ID: "2"}, {ID: "3"}}
	grid, err := NewRenderer(columns, customerKey).
		WithOptions(OptionStripedRows).
		Render(context.Background(), rows)
	require.NoError(t, err)
	assert.False(t, grid.Rows[0].Striped)
	assert.True(t, grid.Rows[1].Striped)
	assert.False(t, grid.Rows[2].Striped)
}

func TestRenderer_WithFormatter(t *testing.T) {
	columns := MustColumns(Column[testCustomer]{Key: "credit", Header: "Credit"})
	rows := []testCustomer{{ID: "1", Credit: 10}}
	base := NewRenderer(columns, customerKey)
	custom := base.WithFormatter(DefaultTypeFormatter.WithTypeFormatter(typeOfAmount, PrecisionFormatter(1)))

	grid, err := custom.Render(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, "10.0", grid.Rows[0].Cells[0].Text)

	grid, err = base.Render(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, "10.00", grid.Rows[0].Cells[0].Text, "With* must not modify the original renderer")
}

func TestNewRenderer_NilKeyExtractor(t *testing.T) {
	require.Panics(t, func() {
		NewRenderer[testCustomer](nil, nil)
	})
}

func TestRender_NilEmbeddedStruct(t *testing.T) {
	type Approval struct {
		Approver string `json:"approver"`
	}
	type vendorRow struct {
		*Approval
		ID string `json:"id"`
	}
	columns := MustColumns(
		Column[vendorRow]{Key: "id", Header: "ID"},
		Column[vendorRow]{Key: "approver", Header: "Approver"},
	)
	rows := []vendorRow{
		{ID: "1"},
		{ID: "2", Approval: &Approval{Approver: "admin"}},
	}
	grid, err := Render(context.Background(), columns, rows, func(v vendorRow) string { return v.ID }, nil)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "-"}, {"2", "admin"}}, grid.Strings(false))
}
