package marketplace

import "time"

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// SampleCustomers returns the customers of the demo console.
func SampleCustomers() []Customer {
	return []Customer{
		{ID: "1", Name: "John Doe", Email: "john@company.com", Status: StatusApproved, CreatedAt: ts("2024-01-15T10:30:00Z")},
		{ID: "2", Name: "Jane Smith", Email: "jane@business.com", Status: StatusPending, CreatedAt: ts("2024-01-18T14:20:00Z")},
		{ID: "3", Name: "Bob Wilson", Email: "bob@enterprise.com", Status: StatusApproved, CreatedAt: ts("2024-01-10T09:15:00Z")},
		{ID: "4", Name: "Alice Brown", Email: "alice@corp.com", Status: StatusRejected, CreatedAt: ts("2024-01-12T16:45:00Z")},
		{ID: "5", Name: "Charlie Davis", Email: "charlie@startup.com", Status: StatusPending, CreatedAt: ts("2024-01-20T11:00:00Z")},
		{ID: "6", Name: "Diana Miller", Email: "diana@firm.com", Status: StatusApproved, CreatedAt: ts("2024-01-08T08:30:00Z")},
		{ID: "7", Name: "Edward Lee", Email: "edward@inc.com", Status: StatusPending, CreatedAt: ts("2024-01-21T13:15:00Z")},
	}
}

// SampleVendors returns the vendors of the demo console.
func SampleVendors() []Vendor {
	return []Vendor{
		{ID: "1", Name: "ABC Supplies Co.", Email: "contact@abcsupplies.com", Status: StatusApproved, CreatedAt: ts("2024-01-15T10:30:00Z")},
		{ID: "2", Name: "XYZ Trading Ltd", Email: "info@xyztrading.com", Status: StatusPending, CreatedAt: ts("2024-01-18T14:20:00Z")},
		{ID: "3", Name: "Global Parts Inc", Email: "sales@globalparts.com", Status: StatusApproved, CreatedAt: ts("2024-01-10T09:15:00Z")},
		{ID: "4", Name: "Tech Wholesale", Email: "hello@techwholesale.com", Status: StatusRejected, CreatedAt: ts("2024-01-12T16:45:00Z")},
		{ID: "5", Name: "Fresh Goods Market", Email: "vendor@freshgoods.com", Status: StatusPending, CreatedAt: ts("2024-01-20T11:00:00Z")},
		{ID: "6", Name: "Premium Distributors", Email: "contact@premiumdist.com", Status: StatusApproved, CreatedAt: ts("2024-01-08T08:30:00Z")},
		{ID: "7", Name: "QuickShip Supplies", Email: "info@quickship.com", Status: StatusPending, CreatedAt: ts("2024-01-21T13:15:00Z")},
	}
}

// SampleOrders returns the orders of the demo console.
func SampleOrders() []Order {
	return []Order{
		{ID: "ORD-001", CustomerName: "John Doe", VendorName: "ABC Supplies", TotalItems: 5, Status: StatusPending, CreatedAt: ts("2024-01-20T10:30:00Z")},
		{ID: "ORD-002", CustomerName: "Jane Smith", VendorName: "XYZ Trading", TotalItems: 3, Status: StatusConfirmed, CreatedAt: ts("2024-01-19T14:20:00Z")},
		{ID: "ORD-003", CustomerName: "Bob Wilson", VendorName: "Global Parts", TotalItems: 12, Status: StatusShipped, CreatedAt: ts("2024-01-18T09:15:00Z")},
		{ID: "ORD-004", CustomerName: "Alice Brown", VendorName: "Tech Wholesale", TotalItems: 2, Status: StatusDelivered, CreatedAt: ts("2024-01-17T16:45:00Z")},
		{ID: "ORD-005", CustomerName: "Charlie Davis", VendorName: "ABC Supplies", TotalItems: 8, Status: StatusCancelled, CreatedAt: ts("2024-01-16T11:00:00Z")},
		{ID: "ORD-006", CustomerName: "Diana Miller", VendorName: "Premium Distributors", TotalItems: 15, Status: StatusProcessing, CreatedAt: ts("2024-01-15T08:30:00Z")},
	}
}

// SampleProducts returns the products of the demo console.
func SampleProducts() []Product {
	return []Product{
		{ID: "1", Name: "Industrial Steel Pipes", VendorName: "ABC Supplies", CategoryName: "Building Materials", MOQ: 100, Status: StatusActive},
		{ID: "2", Name: "LED Panel Lights", VendorName: "Tech Wholesale", CategoryName: "Lighting", MOQ: 50, Status: StatusActive},
		{ID: "3", Name: "Office Chairs Ergonomic", VendorName: "Premium Distributors", CategoryName: "Office Furniture", MOQ: 20, Status: StatusActive},
		{ID: "4", Name: "Packaging Boxes Cardboard", VendorName: "Global Parts", CategoryName: "Packaging", MOQ: 500, Status: StatusActive},
		{ID: "5", Name: "Safety Helmets Industrial", VendorName: "XYZ Trading", CategoryName: "Safety Equipment", MOQ: 100, Status: StatusInactive},
		{ID: "6", Name: "Copper Wire 2.5mm", VendorName: "ABC Supplies", CategoryName: "Electrical", MOQ: 1000, Status: StatusActive},
		{ID: "7", Name: "Hydraulic Pumps", VendorName: "Tech Wholesale", CategoryName: "Machinery", MOQ: 5, Status: StatusActive},
	}
}

// SampleFeaturedProducts returns the featured products of the demo console.
func SampleFeaturedProducts() []FeaturedProduct {
	return []FeaturedProduct{
		{ID: "1", ProductID: "1", ProductName: "Industrial Steel Pipes", Priority: 1},
		{ID: "2", ProductID: "2", ProductName: "LED Panel Lights", Priority: 2},
		{ID: "3", ProductID: "3", ProductName: "Office Chairs Ergonomic", Priority: 3},
	}
}
