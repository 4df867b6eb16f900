package marketplace

import (
	"log/slog"
	"strconv"

	"github.com/domonda/go-datatable"
)

// TableNames lists the tables of the console in menu order.
var TableNames = []string{"customers", "vendors", "orders", "products", "featured", "recent-orders", "recent-vendors"}

// NoFeaturedProductsMessage is the empty message of the featured products table.
const NoFeaturedProductsMessage = "No featured products. Add products to feature them on the homepage."

// CustomerColumns returns the column schema of the customers table.
// Pending customers get approve and reject actions
// that change their status in store.
func CustomerColumns(store *Store) datatable.Columns[Customer] {
	return datatable.MustColumns(
		datatable.Column[Customer]{Key: "name", Header: "Name"},
		datatable.Column[Customer]{Key: "email", Header: "Email"},
		datatable.Column[Customer]{Key: "status", Header: "Status", Render: func(c Customer) any {
			return StatusBadge(c.Status)
		}},
		datatable.Column[Customer]{Key: "createdAt", Header: "Created At"},
		datatable.Column[Customer]{Key: "actions", Header: "Actions", Render: func(c Customer) any {
			if c.Status != StatusPending {
				return nil
			}
			return datatable.Actions{
				{
					Name:    "approve",
					Label:   "Approve",
					Class:   "text-success",
					OnClick: datatable.StopPropagation(func() { store.logErr(store.ApproveCustomer(c.ID)) }),
				},
				{
					Name:    "reject",
					Label:   "Reject",
					Class:   "text-destructive",
					OnClick: datatable.StopPropagation(func() { store.logErr(store.RejectCustomer(c.ID)) }),
				},
			}
		}},
	)
}

// CustomersTable returns the renderer of the customers table.
// Customer rows are not clickable.
func CustomersTable(store *Store) *datatable.Renderer[Customer] {
	return datatable.NewRenderer(CustomerColumns(store), CustomerKey).
		WithEmptyMessage("No customers found")
}

// VendorColumns returns the column schema of the vendors table.
func VendorColumns(store *Store) datatable.Columns[Vendor] {
	return datatable.MustColumns(
		datatable.Column[Vendor]{Key: "name", Header: "Vendor Name"},
		datatable.Column[Vendor]{Key: "email", Header: "Email"},
		datatable.Column[Vendor]{Key: "status", Header: "Status", Render: func(v Vendor) any {
			return StatusBadge(v.Status)
		}},
		datatable.Column[Vendor]{Key: "createdAt", Header: "Created At"},
		datatable.Column[Vendor]{Key: "actions", Header: "Actions", Render: func(v Vendor) any {
			return viewAction(store, "/vendors/"+v.ID)
		}},
	)
}

// VendorsTable returns the renderer of the vendors table
// navigating to the vendor's detail page on row clicks.
func VendorsTable(store *Store) *datatable.Renderer[Vendor] {
	return datatable.NewRenderer(VendorColumns(store), VendorKey).
		WithRowClick(func(v Vendor) { store.Navigate("/vendors/" + v.ID) }).
		WithEmptyMessage("No vendors found")
}

// OrderColumns returns the column schema of the orders table.
func OrderColumns(store *Store) datatable.Columns[Order] {
	return datatable.MustColumns(
		datatable.Column[Order]{Key: "id", Header: "Order ID", Class: "font-mono"},
		datatable.Column[Order]{Key: "customerName", Header: "Customer"},
		datatable.Column[Order]{Key: "vendorName", Header: "Vendor"},
		datatable.Column[Order]{Key: "totalItems", Header: "Items"},
		datatable.Column[Order]{Key: "status", Header: "Status", Render: func(o Order) any {
			return StatusBadge(o.Status)
		}},
		datatable.Column[Order]{Key: "createdAt", Header: "Created At"},
		datatable.Column[Order]{Key: "actions", Header: "Actions", Render: func(o Order) any {
			return viewAction(store, "/orders/"+o.ID)
		}},
	)
}

// OrdersTable returns the renderer of the orders table
// navigating to the order's detail page on row clicks.
func OrdersTable(store *Store) *datatable.Renderer[Order] {
	return datatable.NewRenderer(OrderColumns(store), OrderKey).
		WithRowClick(func(o Order) { store.Navigate("/orders/" + o.ID) }).
		WithEmptyMessage("No orders found")
}

// ProductColumns returns the column schema of the products table.
func ProductColumns(store *Store) datatable.Columns[Product] {
	return datatable.MustColumns(
		datatable.Column[Product]{Key: "name", Header: "Product Name"},
		datatable.Column[Product]{Key: "vendorName", Header: "Vendor"},
		datatable.Column[Product]{Key: "categoryName", Header: "Category"},
		datatable.Column[Product]{Key: "moq", Header: "MOQ", Class: "right", Render: func(p Product) any {
			return groupThousands(p.MOQ)
		}},
		datatable.Column[Product]{Key: "status", Header: "Status", Render: func(p Product) any {
			return StatusBadge(p.Status)
		}},
		datatable.Column[Product]{Key: "actions", Header: "Actions", Render: func(p Product) any {
			return viewAction(store, "/products/"+p.ID)
		}},
	)
}

// ProductsTable returns the renderer of the products table
// navigating to the product's detail page on row clicks.
func ProductsTable(store *Store) *datatable.Renderer[Product] {
	return datatable.NewRenderer(ProductColumns(store), ProductKey).
		WithRowClick(func(p Product) { store.Navigate("/products/" + p.ID) }).
		WithEmptyMessage("No products found")
}

// FeaturedProductColumns returns the column schema of the featured products table
// with actions to move a product up or down in the homepage order
// and to remove it from the featured products.
func FeaturedProductColumns(store *Store) datatable.Columns[FeaturedProduct] {
	return datatable.MustColumns(
		datatable.Column[FeaturedProduct]{Key: "priority", Header: "Priority", Class: "priority"},
		datatable.Column[FeaturedProduct]{Key: "productName", Header: "Product Name"},
		datatable.Column[FeaturedProduct]{Key: "productId", Header: "Product ID", Class: "font-mono"},
		datatable.Column[FeaturedProduct]{Key: "actions", Header: "Actions", Render: func(f FeaturedProduct) any {
			return datatable.Actions{
				{
					Name:    "up",
					Label:   "Up",
					OnClick: datatable.StopPropagation(func() { store.logErr(store.MoveFeaturedProduct(f.ID, -1)) }),
				},
				{
					Name:    "down",
					Label:   "Down",
					OnClick: datatable.StopPropagation(func() { store.logErr(store.MoveFeaturedProduct(f.ID, 1)) }),
				},
				{
					Name:    "remove",
					Label:   "Remove",
					Class:   "text-destructive",
					OnClick: datatable.StopPropagation(func() { store.logErr(store.RemoveFeaturedProduct(f.ID)) }),
				},
			}
		}},
	)
}

// FeaturedProductsTable returns the renderer of the featured products table.
// Featured product rows are not clickable.
func FeaturedProductsTable(store *Store) *datatable.Renderer[FeaturedProduct] {
	return datatable.NewRenderer(FeaturedProductColumns(store), FeaturedProductKey).
		WithEmptyMessage(NoFeaturedProductsMessage)
}

// RecentOrdersTable returns the renderer of the recent orders
// on the dashboard, see RecentOrders.
func RecentOrdersTable(store *Store) *datatable.Renderer[Order] {
	columns := datatable.MustColumns(
		datatable.Column[Order]{Key: "id", Header: "Order ID", Render: func(o Order) any { return "#" + o.ID }},
		datatable.Column[Order]{Key: "customerName", Header: "Customer"},
		datatable.Column[Order]{Key: "vendorName", Header: "Vendor"},
		datatable.Column[Order]{Key: "totalItems", Header: "Items"},
		datatable.Column[Order]{Key: "status", Header: "Status", Render: func(o Order) any {
			return StatusBadge(o.Status)
		}},
		datatable.Column[Order]{Key: "createdAt", Header: "Date"},
	)
	return datatable.NewRenderer(columns, OrderKey).
		WithRowClick(func(o Order) { store.Navigate("/orders/" + o.ID) })
}

// RecentVendorsTable returns the renderer of the recent
// vendor applications on the dashboard, see RecentVendors.
func RecentVendorsTable(store *Store) *datatable.Renderer[Vendor] {
	columns := datatable.MustColumns(
		datatable.Column[Vendor]{Key: "name", Header: "Vendor Name"},
		datatable.Column[Vendor]{Key: "email", Header: "Email"},
		datatable.Column[Vendor]{Key: "status", Header: "Status", Render: func(v Vendor) any {
			return StatusBadge(v.Status)
		}},
		datatable.Column[Vendor]{Key: "createdAt", Header: "Applied"},
	)
	return datatable.NewRenderer(columns, VendorKey).
		WithRowClick(func(v Vendor) { store.Navigate("/vendors/" + v.ID) })
}

// viewAction navigates to path without
// triggering the row click handler.
func viewAction(store *Store, path string) datatable.Action {
	return datatable.Action{
		Name:    "view",
		Label:   "View",
		OnClick: datatable.StopPropagation(func() { store.Navigate(path) }),
	}
}

func (s *Store) logErr(err error) {
	if err != nil {
		s.logger.Error("action failed", slog.Any("error", err))
	}
}

// groupThousands formats n with comma separated digit groups.
func groupThousands(n int) string {
	str := strconv.Itoa(n)
	sign := ""
	if n < 0 {
		sign, str = "-", str[1:]
	}
	for i := len(str) - 3; i > 0; i -= 3 {
		str = str[:i] + "," + str[i:]
	}
	return sign + str
}
