package marketplace

import (
	"slices"
	"strings"
	"time"
)

// Search returns the rows where at least one of the fields
// contains query ignoring case.
// An empty query returns all rows.
func Search[T any](rows []T, query string, fields func(T) []string) []T {
	if query == "" {
		return rows
	}
	query = strings.ToLower(query)
	var found []T
	for _, row := range rows {
		for _, field := range fields(row) {
			if strings.Contains(strings.ToLower(field), query) {
				found = append(found, row)
				break
			}
		}
	}
	return found
}

func SearchCustomers(customers []Customer, query string) []Customer {
	return Search(customers, query, func(c Customer) []string { return []string{c.Name, c.Email} })
}

func SearchVendors(vendors []Vendor, query string) []Vendor {
	return Search(vendors, query, func(v Vendor) []string { return []string{v.Name, v.Email} })
}

func SearchOrders(orders []Order, query string) []Order {
	return Search(orders, query, func(o Order) []string { return []string{o.ID, o.CustomerName, o.VendorName} })
}

func SearchProducts(products []Product, query string) []Product {
	return Search(products, query, func(p Product) []string { return []string{p.Name, p.VendorName, p.CategoryName} })
}

func SearchFeaturedProducts(featured []FeaturedProduct, query string) []FeaturedProduct {
	return Search(featured, query, func(f FeaturedProduct) []string { return []string{f.ProductName, f.ProductID} })
}

// DashboardLimit is the number of rows of the dashboard tables.
const DashboardLimit = 5

// RecentOrders returns up to limit orders, newest first.
func RecentOrders(orders []Order, limit int) []Order {
	return newest(orders, limit, func(o Order) time.Time { return o.CreatedAt })
}

// RecentVendors returns up to limit vendor applications, newest first.
func RecentVendors(vendors []Vendor, limit int) []Vendor {
	return newest(vendors, limit, func(v Vendor) time.Time { return v.CreatedAt })
}

func newest[T any](rows []T, limit int, createdAt func(T) time.Time) []T {
	rows = slices.Clone(rows)
	slices.SortStableFunc(rows, func(a, b T) int { return createdAt(b).Compare(createdAt(a)) })
	if limit >= 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
