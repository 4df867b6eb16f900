package datatable_test

import (
	"context"
	"fmt"
	"strings"

	datatable "github.com/domonda/go-datatable"
)

type customer struct {
	ID     string
	Name   string
	Status string
}

func ExampleRender() {
	columns := datatable.MustColumns(
		datatable.Column[customer]{Key: "name", Header: "Name"},
		datatable.Column[customer]{Key: "status", Header: "Status", Render: func(c customer) any {
			return strings.ToUpper(c.Status)
		}},
		datatable.Column[customer]{Key: "email", Header: "Email"},
	)
	rows := []customer{
		{ID: "1", Name: "Acme", Status: "pending"},
		{ID: "2", Name: "Globex", Status: "approved"},
	}
	grid, err := datatable.Render(context.Background(), columns, rows, func(c customer) string { return c.ID }, nil)
	if err != nil {
		panic(err)
	}
	for _, row := range grid.Strings(true) {
		fmt.Println(strings.Join(row, " | "))
	}

	// Output:
	// Name | Status | Email
	// Acme | PENDING | -
	// Globex | APPROVED | -
}

func ExampleRender_empty() {
	columns := datatable.MustColumns(datatable.Column[customer]{Key: "name", Header: "Name"})
	grid, err := datatable.Render(context.Background(), columns, nil, func(c customer) string { return c.ID }, nil, "No customers found")
	if err != nil {
		panic(err)
	}
	fmt.Println(grid.IsEmpty(), grid.Empty.Message, len(grid.Headers))

	// Output:
	// true No customers found 0
}

func ExampleGrid_ClickAction() {
	columns := datatable.MustColumns(
		datatable.Column[customer]{Key: "name", Header: "Name"},
		datatable.Column[customer]{Key: "actions", Header: "Actions", Render: func(c customer) any {
			return datatable.Actions{
				{Name: "approve", Label: "Approve", OnClick: datatable.StopPropagation(func() {
					fmt.Println("approve", c.ID)
				})},
				{Name: "view", Label: "View", OnClick: func(*datatable.ClickEvent) {
					fmt.Println("view", c.ID)
				}},
			}
		}},
	)
	grid, err := datatable.NewRenderer(columns, func(c customer) string { return c.ID }).
		WithRowClick(func(c customer) { fmt.Println("open", c.Name) }).
		Render(context.Background(), []customer{{ID: "1", Name: "Acme"}})
	if err != nil {
		panic(err)
	}
	fmt.Println(grid.Rows[0].Cell("actions").Text)
	grid.ClickAction("1", "actions", "approve")
	grid.ClickAction("1", "actions", "view")

	// Output:
	// Approve / View
	// approve 1
	// view 1
	// open Acme
}
