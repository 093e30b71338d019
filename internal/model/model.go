package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role identifies which side of the marketplace an actor is on.
type Role string

const (
	RoleVendor   Role = "vendor"
	RoleSupplier Role = "supplier"
)

// Vendor is a buyer: sources raw materials and places orders.
type Vendor struct {
	ID           string
	FullName     string
	Phone        string
	BusinessName string
	Email        string
}

// Supplier is a seller. Products is a derived view, populated on read from the
// canonical product collection rather than stored alongside the supplier.
type Supplier struct {
	ID           string
	FullName     string
	Phone        string
	BusinessName string
	Email        string
	Products     []Product
}

// Product is a catalog entry owned by exactly one supplier. SupplierName is a
// copy of the owner's business name taken at creation time; it is not re-synced
// if the supplier's name later changes.
type Product struct {
	ID           string
	Name         string
	Price        decimal.Decimal
	Stock        int
	SupplierID   string
	SupplierName string
}

// CartItem is a line snapshot: name, price and supplier name are captured from
// the product when it is added and stay frozen even if the product is later
// updated or deleted. Quantity is always >= 1.
type CartItem struct {
	ProductID    string
	Name         string
	Price        decimal.Decimal
	Quantity     int
	SupplierName string
}

// Order is immutable after checkout. Total is computed at placement time from
// the cart lines and never recomputed.
type Order struct {
	ID              string
	VendorID        string
	Items           []CartItem
	DeliveryAddress string
	Total           decimal.Decimal
	Date            time.Time
}

// Session holds the single active actor. Exactly one of Vendor or Supplier is
// set when Role is non-empty; both are nil for an anonymous session.
type Session struct {
	Role     Role
	Vendor   *Vendor
	Supplier *Supplier
}

// ActorID returns the id of the logged-in actor, or "" when anonymous.
func (s Session) ActorID() string {
	switch {
	case s.Vendor != nil:
		return s.Vendor.ID
	case s.Supplier != nil:
		return s.Supplier.ID
	}
	return ""
}

// VendorFields are the caller-supplied attributes of a new vendor.
type VendorFields struct {
	FullName     string
	Phone        string
	BusinessName string
	Email        string
}

// SupplierFields are the caller-supplied attributes of a new supplier.
type SupplierFields struct {
	FullName     string
	Phone        string
	BusinessName string
	Email        string
}

// ProductFields are the caller-supplied attributes of a new product; the id
// and supplier stamps are allocated by the store.
type ProductFields struct {
	Name  string
	Price decimal.Decimal
	Stock int
}

// ProductUpdate is a partial update; nil fields are left untouched.
type ProductUpdate struct {
	Name  *string
	Price *decimal.Decimal
	Stock *int
}
