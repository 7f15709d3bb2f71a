package models

import "time"

// ProductOption is a named customization axis with its allowed values,
// e.g. {Name: "Cor", Values: ["Preto", "Branco"]}.
type ProductOption struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Product represents an immutable catalog entry.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         int64           `json:"price"`
	OriginalPrice int64           `json:"original_price,omitempty"`
	Currency      string          `json:"currency"`
	Stock         int             `json:"stock"`
	SellerID      string          `json:"seller_id"`
	SellerName    string          `json:"seller_name"`
	Location      string          `json:"location"`
	ImageURL      string          `json:"image_url"`
	Category      string          `json:"category"`
	Options       []ProductOption `json:"options,omitempty"`
	// UnavailableOptions lists specific option values (not axes) that are
	// sold out across all combinations, e.g. "44" or "Titânio Azul".
	UnavailableOptions []string `json:"unavailable_options,omitempty"`
}

// HasOptions reports whether the product declares any customization axes.
func (p *Product) HasOptions() bool {
	return len(p.Options) > 0
}

// OnPromotion reports whether the product carries a meaningful promotional
// reference price.
func (p *Product) OnPromotion() bool {
	return p.OriginalPrice > p.Price
}

// CartLine is one addressable row in the cart. It snapshots product data at
// add-time, so later catalog changes do not affect existing lines.
type CartLine struct {
	LineID          string          `json:"line_id"`
	ProductID       string          `json:"product_id"`
	ProductName     string          `json:"product_name"`
	UnitPrice       int64           `json:"unit_price"`
	Stock           int             `json:"stock"`
	Quantity        int             `json:"quantity"`
	Options         []ProductOption `json:"options,omitempty"`
	SelectedOptions OptionSelection `json:"selected_options,omitempty"`
	AddedAt         time.Time       `json:"added_at"`
}

// LineTotal returns unit price times quantity.
func (l *CartLine) LineTotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// Seller represents a store profile.
type Seller struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	NIF              string   `json:"nif,omitempty"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone,omitempty"`
	Location         string   `json:"location,omitempty"`
	StoreDescription string   `json:"store_description,omitempty"`
	CoverImage       string   `json:"cover_image,omitempty"`
	Rating           float64  `json:"rating,omitempty"`
	ReviewCount      int      `json:"review_count,omitempty"`
	OpeningHours     string   `json:"opening_hours,omitempty"`
	Tags             []string `json:"tags,omitempty"`
	IsVerified       bool     `json:"is_verified"`
}

// ShippingInfo holds the checkout shipping form fields.
type ShippingInfo struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Province string `json:"province"`
	City     string `json:"city"`
	Address  string `json:"address"`
	Notes    string `json:"notes,omitempty"`
}

// Payment methods
const (
	PaymentMethodMulticaixa = "mcx"
	PaymentMethodTransfer   = "transfer"
)

// Order is the finalized record handed off when a checkout settles.
type Order struct {
	ID            string       `json:"id"`
	Lines         []CartLine   `json:"lines"`
	Shipping      ShippingInfo `json:"shipping"`
	PaymentMethod string       `json:"payment_method"`
	Subtotal      int64        `json:"subtotal"`
	ShippingCost  int64        `json:"shipping_cost"`
	Total         int64        `json:"total"`
	TrackingCode  string       `json:"tracking_code"`
	CreatedAt     time.Time    `json:"created_at"`
}

// Delivery statuses
const (
	DeliveryStatusPending    = "Pendente"
	DeliveryStatusProcessing = "Em Processamento"
	DeliveryStatusInTransit  = "Em Trânsito"
	DeliveryStatusDelivered  = "Entregue"
	DeliveryStatusFailed     = "Falhou"
)

// DeliveryEvent is one entry in a delivery's status history.
type DeliveryEvent struct {
	Date     string `json:"date"`
	Status   string `json:"status"`
	Location string `json:"location"`
}

// Delivery represents a shipment tracked by its code, e.g. KZ-998877.
type Delivery struct {
	ID              string          `json:"id"`
	TrackingCode    string          `json:"tracking_code"`
	ProductName     string          `json:"product_name"`
	ClientName      string          `json:"client_name"`
	ClientPhone     string          `json:"client_phone,omitempty"`
	DeliveryAddress string          `json:"delivery_address,omitempty"`
	Status          string          `json:"status"`
	EstimatedDate   string          `json:"estimated_date"`
	History         []DeliveryEvent `json:"history"`
}

// Contract statuses
const (
	ContractStatusActive   = "Ativo"
	ContractStatusFinished = "Finalizado"
)

// Contract represents a seller/client supply agreement shown in the admin
// panel.
type Contract struct {
	ID         string `json:"id"`
	SellerName string `json:"seller_name"`
	ClientName string `json:"client_name"`
	ClientNIF  string `json:"client_nif"`
	Date       string `json:"date"`
	Terms      string `json:"terms"`
	Value      int64  `json:"value"`
	Status     string `json:"status"`
}
