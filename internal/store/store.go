// Package store holds the marketplace's process-local state: vendors,
// suppliers, the product catalog, the active cart and placed orders, plus the
// session actor. The flat product collection is the single source of truth;
// supplier catalogs and the session actor's product view are derived from it
// on read, so the collections cannot drift apart.
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/streetsupply/marketplace-api/internal/model"
)

var (
	ErrVendorNotFound   = errors.New("vendor not found")
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrNotAuthenticated = errors.New("no active session")
)

// Store owns all collections for one session. All methods are safe for
// concurrent use; every mutation is atomic as observed by readers, and every
// read accessor returns copies that callers may not use to mutate state.
type Store struct {
	mu    sync.RWMutex
	newID func() string
	now   func() time.Time

	vendors   []model.Vendor
	suppliers []model.Supplier // Products left nil; derived on read
	products  []model.Product  // canonical collection, insertion order
	cart      []model.CartItem
	orders    []model.Order

	sessionID   string
	sessionRole model.Role
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the id source. The generator must return
// process-unique strings for the lifetime of the store.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithClock replaces the order timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns an empty store. Ids default to random UUIDs, so uniqueness does
// not depend on clock resolution.
func New(opts ...Option) *Store {
	s := &Store{
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterVendor creates a vendor and makes it the session actor.
func (s *Store) RegisterVendor(fields model.VendorFields) model.Vendor {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := model.Vendor{
		ID:           s.newID(),
		FullName:     fields.FullName,
		Phone:        fields.Phone,
		BusinessName: fields.BusinessName,
		Email:        fields.Email,
	}
	s.vendors = append(s.vendors, v)
	s.sessionID = v.ID
	s.sessionRole = model.RoleVendor
	return v
}

// RegisterSupplier creates a supplier together with its initial catalog and
// makes it the session actor. Initial product ids are derived from the
// supplier id and the entry's position, which keeps them stable and
// collision-free given unique supplier ids. Each product is stamped with the
// supplier's id and business name; the name stamp is a snapshot and is never
// re-synced.
func (s *Store) RegisterSupplier(fields model.SupplierFields, initial []model.ProductFields) model.Supplier {
	s.mu.Lock()
	defer s.mu.Unlock()

	sup := model.Supplier{
		ID:           s.newID(),
		FullName:     fields.FullName,
		Phone:        fields.Phone,
		BusinessName: fields.BusinessName,
		Email:        fields.Email,
	}
	for i, pf := range initial {
		s.products = append(s.products, model.Product{
			ID:           fmt.Sprintf("%s-%d", sup.ID, i),
			Name:         pf.Name,
			Price:        pf.Price,
			Stock:        pf.Stock,
			SupplierID:   sup.ID,
			SupplierName: sup.BusinessName,
		})
	}
	s.suppliers = append(s.suppliers, sup)
	s.sessionID = sup.ID
	s.sessionRole = model.RoleSupplier

	sup.Products = s.productsOf(sup.ID)
	return sup
}

// Login sets the session actor to the vendor or supplier with the given id.
// The session is left unchanged on error.
func (s *Store) Login(id string, role model.Role) (model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch role {
	case model.RoleVendor:
		if s.findVendor(id) < 0 {
			return model.Session{}, ErrVendorNotFound
		}
	case model.RoleSupplier:
		if s.findSupplier(id) < 0 {
			return model.Session{}, ErrSupplierNotFound
		}
	default:
		return model.Session{}, fmt.Errorf("login: unknown role %q", role)
	}
	s.sessionID = id
	s.sessionRole = role
	return s.session(), nil
}

// AddToCart adds quantity units of a product to the cart. If the product is
// already in the cart its quantity is incremented; otherwise a new line is
// created snapshotting the product's current name, price and supplier name.
// Stock is advisory display data, not a cap.
func (s *Store) AddToCart(productID string, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pi := s.findProduct(productID)
	if pi < 0 {
		return ErrProductNotFound
	}
	if ci := s.findCartItem(productID); ci >= 0 {
		s.cart[ci].Quantity += quantity
		return nil
	}
	p := s.products[pi]
	s.cart = append(s.cart, model.CartItem{
		ProductID:    p.ID,
		Name:         p.Name,
		Price:        p.Price,
		Quantity:     quantity,
		SupplierName: p.SupplierName,
	})
	return nil
}

// UpdateCartQuantity replaces a line's quantity. A quantity of zero or less
// removes the line, so the cart never stores a non-positive quantity.
func (s *Store) UpdateCartQuantity(productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ci := s.findCartItem(productID)
	if ci < 0 {
		return ErrCartItemNotFound
	}
	if quantity <= 0 {
		s.cart = append(s.cart[:ci], s.cart[ci+1:]...)
		return nil
	}
	s.cart[ci].Quantity = quantity
	return nil
}

// RemoveFromCart deletes the line for the given product id.
func (s *Store) RemoveFromCart(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ci := s.findCartItem(productID)
	if ci < 0 {
		return ErrCartItemNotFound
	}
	s.cart = append(s.cart[:ci], s.cart[ci+1:]...)
	return nil
}

// ClearCart empties the cart unconditionally.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

// PlaceOrder creates an order from the current cart for the session actor,
// then empties the cart. The total is computed here and frozen; later price
// changes do not touch placed orders.
func (s *Store) PlaceOrder(deliveryAddress string) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessionID == "" {
		return model.Order{}, ErrNotAuthenticated
	}
	if len(s.cart) == 0 {
		return model.Order{}, ErrEmptyCart
	}

	total := decimal.Zero
	for _, item := range s.cart {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	order := model.Order{
		ID:              "ORDER-" + s.newID(),
		VendorID:        s.sessionID,
		Items:           cloneItems(s.cart),
		DeliveryAddress: deliveryAddress,
		Total:           total,
		Date:            s.now(),
	}
	s.orders = append(s.orders, order)
	s.cart = nil

	order.Items = cloneItems(order.Items)
	return order, nil
}

// AddProduct creates a product owned by the given supplier. The product
// becomes visible in the flat catalog, the supplier's derived catalog and the
// session actor's view in one step, since the latter two are computed from
// the former.
func (s *Store) AddProduct(supplierID string, fields model.ProductFields) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	si := s.findSupplier(supplierID)
	if si < 0 {
		return model.Product{}, ErrSupplierNotFound
	}
	p := model.Product{
		ID:           s.newID(),
		Name:         fields.Name,
		Price:        fields.Price,
		Stock:        fields.Stock,
		SupplierID:   supplierID,
		SupplierName: s.suppliers[si].BusinessName,
	}
	s.products = append(s.products, p)
	return p, nil
}

// UpdateProduct applies a partial update to the product's name, price and
// stock. Existing cart lines and orders keep their snapshots.
func (s *Store) UpdateProduct(productID string, upd model.ProductUpdate) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pi := s.findProduct(productID)
	if pi < 0 {
		return model.Product{}, ErrProductNotFound
	}
	p := &s.products[pi]
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.Stock != nil {
		p.Stock = *upd.Stock
	}
	return *p, nil
}

// DeleteProduct removes the product from the catalog. Cart lines and order
// items referencing it are snapshots and stay as captured.
func (s *Store) DeleteProduct(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pi := s.findProduct(productID)
	if pi < 0 {
		return ErrProductNotFound
	}
	s.products = append(s.products[:pi], s.products[pi+1:]...)
	return nil
}

// locked helpers

func (s *Store) findVendor(id string) int {
	for i := range s.vendors {
		if s.vendors[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) findSupplier(id string) int {
	for i := range s.suppliers {
		if s.suppliers[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) findProduct(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) findCartItem(productID string) int {
	for i := range s.cart {
		if s.cart[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// productsOf returns copies of the canonical products owned by the supplier,
// in catalog order.
func (s *Store) productsOf(supplierID string) []model.Product {
	var out []model.Product
	for _, p := range s.products {
		if p.SupplierID == supplierID {
			out = append(out, p)
		}
	}
	return out
}

// supplierView assembles a supplier with its derived catalog.
func (s *Store) supplierView(i int) model.Supplier {
	sup := s.suppliers[i]
	sup.Products = s.productsOf(sup.ID)
	return sup
}

func (s *Store) session() model.Session {
	switch s.sessionRole {
	case model.RoleVendor:
		if i := s.findVendor(s.sessionID); i >= 0 {
			v := s.vendors[i]
			return model.Session{Role: model.RoleVendor, Vendor: &v}
		}
	case model.RoleSupplier:
		if i := s.findSupplier(s.sessionID); i >= 0 {
			sup := s.supplierView(i)
			return model.Session{Role: model.RoleSupplier, Supplier: &sup}
		}
	}
	return model.Session{}
}

func cloneItems(items []model.CartItem) []model.CartItem {
	if items == nil {
		return nil
	}
	out := make([]model.CartItem, len(items))
	copy(out, items)
	return out
}
