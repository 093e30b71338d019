package store

import (
	"github.com/shopspring/decimal"

	"github.com/streetsupply/marketplace-api/internal/model"
)

// Read accessors. Everything returned here is a copy; mutating it has no
// effect on the store.

// Vendors returns all registered vendors in registration order.
func (s *Store) Vendors() []model.Vendor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Vendor, len(s.vendors))
	copy(out, s.vendors)
	return out
}

// Suppliers returns all registered suppliers, each with its derived catalog.
func (s *Store) Suppliers() []model.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Supplier, len(s.suppliers))
	for i := range s.suppliers {
		out[i] = s.supplierView(i)
	}
	return out
}

// Supplier returns one supplier with its derived catalog.
func (s *Store) Supplier(id string) (model.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.findSupplier(id)
	if i < 0 {
		return model.Supplier{}, ErrSupplierNotFound
	}
	return s.supplierView(i), nil
}

// Products returns the whole catalog in insertion order.
func (s *Store) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Product returns one catalog entry.
func (s *Store) Product(id string) (model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.findProduct(id)
	if i < 0 {
		return model.Product{}, ErrProductNotFound
	}
	return s.products[i], nil
}

// ProductsBySupplier returns the catalog entries owned by one supplier.
func (s *Store) ProductsBySupplier(supplierID string) []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.productsOf(supplierID)
}

// Cart returns the current cart lines.
func (s *Store) Cart() []model.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneItems(s.cart)
}

// CartTotal returns the sum of price times quantity over the cart.
func (s *Store) CartTotal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, item := range s.cart {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// Orders returns all placed orders in placement order.
func (s *Store) Orders() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Order, len(s.orders))
	for i, o := range s.orders {
		o.Items = cloneItems(o.Items)
		out[i] = o
	}
	return out
}

// Order returns one placed order.
func (s *Store) Order(id string) (model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			o.Items = cloneItems(o.Items)
			return o, nil
		}
	}
	return model.Order{}, ErrOrderNotFound
}

// OrdersByVendor returns the orders placed by one vendor.
func (s *Store) OrdersByVendor(vendorID string) []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Order
	for _, o := range s.orders {
		if o.VendorID == vendorID {
			o.Items = cloneItems(o.Items)
			out = append(out, o)
		}
	}
	return out
}

// Session returns the current session actor and role. The supplier's catalog
// in the returned view is derived from the canonical collection, so it always
// matches ProductsBySupplier for the same id.
func (s *Store) Session() model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session()
}

// FindVendorByIdentifier looks a vendor up by phone or email, the way the
// login form identifies an account.
func (s *Store) FindVendorByIdentifier(identifier string) (model.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.vendors {
		if v.Phone == identifier || v.Email == identifier {
			return v, nil
		}
	}
	return model.Vendor{}, ErrVendorNotFound
}

// FindSupplierByIdentifier looks a supplier up by phone or email.
func (s *Store) FindSupplierByIdentifier(identifier string) (model.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i, sup := range s.suppliers {
		if sup.Phone == identifier || sup.Email == identifier {
			return s.supplierView(i), nil
		}
	}
	return model.Supplier{}, ErrSupplierNotFound
}
