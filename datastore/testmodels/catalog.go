// Package testmodels holds shop entities shared by the memrepo test suites.
// They cover each way an entity can expose its identifier.
package testmodels

import "github.com/go-openapi/strfmt"

// BaseEntity carries the identifier and audit fields of catalog entities.
type BaseEntity struct {

	// Unique identifier, assigned on first save.
	ID int64 `memrepo:"id" json:"id"`

	// Timestamp when the entity was created.
	// Format: date-time
	CreatedAt *strfmt.DateTime `json:"createdAt,omitempty"`
}

// Product is identified through its embedded BaseEntity.
type Product struct {
	BaseEntity

	// Display name of the product.
	Name string `json:"name"`

	// Stock keeping unit.
	SKU string `json:"sku"`

	// Unit price in cents.
	Price int64 `json:"price"`

	// Free-form labels.
	Tags []string `json:"tags,omitempty"`
}

// DigitalProduct declares its own identifier, shadowing the one of the
// embedded Product.
type DigitalProduct struct {
	Product

	// Download identifier, used as the entity identifier.
	DownloadID string `memrepo:"id" json:"downloadId"`

	// Location of the downloadable asset.
	URL string `json:"url"`
}

// Bundle embeds its BaseEntity through a pointer.
type Bundle struct {
	*BaseEntity

	// Display name of the bundle.
	Name string `json:"name"`

	// Identifiers of the bundled products.
	ProductIDs []int64 `json:"productIds"`
}

// Order exposes its identifier through methods only.
type Order struct {
	id strfmt.UUID

	// Customer placing the order.
	Customer string `json:"customer"`

	// Order total in cents.
	Total int64 `json:"total"`
}

// GetID returns the order identifier.
func (o *Order) GetID() strfmt.UUID { return o.id }

// SetID sets the order identifier.
func (o *Order) SetID(id strfmt.UUID) { o.id = id }

// Cart is identified by a ULID.
type Cart struct {
	ID strfmt.ULID `memrepo:"id"`

	// Owner of the cart.
	Owner string `json:"owner"`

	// Line items.
	Items []CartItem `json:"items"`
}

// CartItem is a single cart line.
type CartItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// InventoryItem exposes a read-only identifier.
type InventoryItem struct {
	sku string

	// Units on hand.
	Quantity int `json:"quantity"`
}

// NewInventoryItem creates an inventory item for sku.
func NewInventoryItem(sku string, quantity int) *InventoryItem {
	return &InventoryItem{sku: sku, Quantity: quantity}
}

// GetID returns the SKU.
func (i *InventoryItem) GetID() string { return i.sku }

// Voucher declares no identifier at all.
type Voucher struct {
	Code   string `json:"code"`
	Amount int64  `json:"amount"`
}

// Coupon tags an unexported identifier field.
type Coupon struct {
	code string `memrepo:"id"`

	Percent int `json:"percent"`
}

// Code returns the coupon code.
func (c *Coupon) Code() string { return c.code }
