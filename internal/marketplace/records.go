// Package marketplace holds the records, sample data and
// table definitions of the marketplace admin console.
package marketplace

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type Vendor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type Order struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	VendorName   string    `json:"vendorName"`
	TotalItems   int       `json:"totalItems"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Product struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	VendorName   string `json:"vendorName"`
	CategoryName string `json:"categoryName"`
	// MOQ is the minimum order quantity
	MOQ    int    `json:"moq"`
	Status Status `json:"status"`
}

// FeaturedProduct is a product shown on the homepage.
// Lower priorities appear first.
type FeaturedProduct struct {
	ID          string `json:"id"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Priority    int    `json:"priority"`
}

func CustomerKey(c Customer) string               { return c.ID }
func VendorKey(v Vendor) string                   { return v.ID }
func OrderKey(o Order) string                     { return o.ID }
func ProductKey(p Product) string                 { return p.ID }
func FeaturedProductKey(f FeaturedProduct) string { return f.ID }
