package catalog

import (
	"errors"
	"strings"
	"sync"

	"marketplace-service/internal/models"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrSellerNotFound  = errors.New("seller not found")
)

// Catalog holds the product list and the seller registry. Products handed to
// the cart engine are snapshots, so catalog mutations from the seller
// dashboard never reach existing cart lines.
type Catalog struct {
	mu       sync.RWMutex
	products []models.Product
	sellers  []models.Seller
}

func New() *Catalog {
	return &Catalog{
		products: seedProducts(),
		sellers:  seedSellers(),
	}
}

// Products returns a snapshot of the catalog, newest first.
func (c *Catalog) Products() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ProductByID returns the product with the given ID.
func (c *Catalog) ProductByID(id string) (*models.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.products {
		if c.products[i].ID == id {
			p := c.products[i]
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

// ProductsBySeller returns the products listed by one seller.
func (c *Catalog) ProductsBySeller(sellerID string) []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []models.Product
	for _, p := range c.products {
		if p.SellerID == sellerID {
			out = append(out, p)
		}
	}
	return out
}

// Search filters products by free-text query and category. Empty arguments
// match everything.
func (c *Catalog) Search(query, category string) []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))

	var out []models.Product
	for _, p := range c.products {
		if category != "" && p.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// AddProduct prepends a product to the catalog, assigning an ID if empty.
func (c *Catalog) AddProduct(p models.Product) models.Product {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Currency == "" {
		p.Currency = "AOA"
	}

	c.mu.Lock()
	c.products = append([]models.Product{p}, c.products...)
	c.mu.Unlock()

	return p
}

// UpdateProduct replaces the product with the same ID.
func (c *Catalog) UpdateProduct(p models.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID == p.ID {
			c.products[i] = p
			return nil
		}
	}
	return ErrProductNotFound
}

// DeleteProduct removes a product from the catalog.
func (c *Catalog) DeleteProduct(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// Sellers returns the registered store profiles.
func (c *Catalog) Sellers() []models.Seller {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Seller, len(c.sellers))
	copy(out, c.sellers)
	return out
}

// SellerByID returns one store profile.
func (c *Catalog) SellerByID(id string) (*models.Seller, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.sellers {
		if c.sellers[i].ID == id {
			s := c.sellers[i]
			return &s, nil
		}
	}
	return nil, ErrSellerNotFound
}

// RegisterSeller adds a new, unverified store profile.
func (c *Catalog) RegisterSeller(s models.Seller) models.Seller {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	s.IsVerified = false
	if s.OpeningHours == "" {
		s.OpeningHours = "09:00 - 18:00"
	}

	c.mu.Lock()
	c.sellers = append(c.sellers, s)
	c.mu.Unlock()

	return s
}

// UpdateSellerProfile replaces the store profile with the same ID.
func (c *Catalog) UpdateSellerProfile(s models.Seller) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.sellers {
		if c.sellers[i].ID == s.ID {
			c.sellers[i] = s
			return nil
		}
	}
	return ErrSellerNotFound
}
