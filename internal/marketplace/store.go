package marketplace

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"sync"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyFeatured = errors.New("product already featured")
	ErrInvalidPriority = errors.New("priority must be greater than zero")
)

// Store holds the records of the console in memory.
// Approving and rejecting change the status of a record,
// navigations to detail pages are recorded in order.
//
// Store is safe for concurrent use.
type Store struct {
	mu          sync.Mutex
	customers   []Customer
	vendors     []Vendor
	orders      []Order
	products    []Product
	featured    []FeaturedProduct
	featuredSeq int
	navigations []string
	logger      *slog.Logger
}

// NewStore returns a Store filled with the sample data.
// A nil logger discards all log records.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		customers: SampleCustomers(),
		vendors:   SampleVendors(),
		orders:    SampleOrders(),
		products:  SampleProducts(),
		featured:  SampleFeaturedProducts(),
		logger:    logger,
	}
}

func (s *Store) Customers() []Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.customers)
}

func (s *Store) Vendors() []Vendor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.vendors)
}

func (s *Store) Orders() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.orders)
}

func (s *Store) Products() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.products)
}

// FeaturedProducts returns the featured products ordered by priority.
func (s *Store) FeaturedProducts() []FeaturedProduct {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.featured)
}

// AddFeaturedProduct features the product with productID at priority.
func (s *Store) AddFeaturedProduct(productID string, priority int) error {
	if priority < 1 {
		return ErrInvalidPriority
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.products, func(p Product) bool { return p.ID == productID })
	if i < 0 {
		return fmt.Errorf("product %q: %w", productID, ErrNotFound)
	}
	if slices.ContainsFunc(s.featured, func(f FeaturedProduct) bool { return f.ProductID == productID }) {
		return fmt.Errorf("product %q: %w", productID, ErrAlreadyFeatured)
	}
	s.featuredSeq++
	s.featured = append(s.featured, FeaturedProduct{
		ID:          "new-" + strconv.Itoa(s.featuredSeq),
		ProductID:   productID,
		ProductName: s.products[i].Name,
		Priority:    priority,
	})
	s.sortFeatured()
	s.logger.Info("product featured", slog.String("product", productID), slog.Int("priority", priority))
	return nil
}

// RemoveFeaturedProduct removes the featured product with id.
func (s *Store) RemoveFeaturedProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.featuredIndex(id)
	if i < 0 {
		return fmt.Errorf("featured product %q: %w", id, ErrNotFound)
	}
	s.logger.Info("product no longer featured", slog.String("product", s.featured[i].ProductID))
	s.featured = slices.Delete(s.featured, i, i+1)
	return nil
}

// MoveFeaturedProduct swaps the priority of the featured product with id
// with its neighbor, up for a negative and down for a positive offset.
// Moving the first product up or the last one down changes nothing.
func (s *Store) MoveFeaturedProduct(id string, offset int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.featuredIndex(id)
	if i < 0 {
		return fmt.Errorf("featured product %q: %w", id, ErrNotFound)
	}
	j := i + 1
	if offset < 0 {
		j = i - 1
	}
	if offset == 0 || j < 0 || j >= len(s.featured) {
		return nil
	}
	a, b := &s.featured[i], &s.featured[j]
	a.Priority, b.Priority = b.Priority, a.Priority
	if a.Priority == b.Priority {
		// Equal priorities keep their order, so swap positions as well
		*a, *b = *b, *a
	}
	s.sortFeatured()
	return nil
}

func (s *Store) featuredIndex(id string) int {
	return slices.IndexFunc(s.featured, func(f FeaturedProduct) bool { return f.ID == id })
}

func (s *Store) sortFeatured() {
	slices.SortStableFunc(s.featured, func(a, b FeaturedProduct) int { return a.Priority - b.Priority })
}

// ApproveCustomer sets the status of a customer to approved.
func (s *Store) ApproveCustomer(id string) error {
	return s.setCustomerStatus(id, StatusApproved)
}

// RejectCustomer sets the status of a customer to rejected.
func (s *Store) RejectCustomer(id string) error {
	return s.setCustomerStatus(id, StatusRejected)
}

func (s *Store) setCustomerStatus(id string, status Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.customers, func(c Customer) bool { return c.ID == id })
	if i < 0 {
		return fmt.Errorf("customer %q: %w", id, ErrNotFound)
	}
	s.customers[i].Status = status
	s.logger.Info("customer status changed", slog.String("customer", id), slog.String("status", string(status)))
	return nil
}

// Navigate records a navigation to path.
func (s *Store) Navigate(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.navigations = append(s.navigations, path)
	s.logger.Debug("navigate", slog.String("path", path))
}

// Navigations returns all recorded navigation paths in order.
func (s *Store) Navigations() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.navigations)
}
