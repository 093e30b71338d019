package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/streetsupply/marketplace-api/internal/model"
)

// --- Accounts ---

type RegisterVendorRequest struct {
	FullName     string `json:"full_name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	BusinessName string `json:"business_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
}

type RegisterSupplierRequest struct {
	FullName     string                 `json:"full_name" binding:"required"`
	Phone        string                 `json:"phone" binding:"required"`
	BusinessName string                 `json:"business_name" binding:"required"`
	Email        string                 `json:"email" binding:"required,email"`
	Products     []CreateProductRequest `json:"products" binding:"dive"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Role       string `json:"role" binding:"required,oneof=vendor supplier"`
}

type VendorResponse struct {
	ID           string `json:"id"`
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	BusinessName string `json:"business_name"`
	Email        string `json:"email"`
}

type SupplierResponse struct {
	ID           string            `json:"id"`
	FullName     string            `json:"full_name"`
	Phone        string            `json:"phone"`
	BusinessName string            `json:"business_name"`
	Email        string            `json:"email"`
	Products     []ProductResponse `json:"products"`
}

type SessionResponse struct {
	Role     string            `json:"role,omitempty"`
	Vendor   *VendorResponse   `json:"vendor,omitempty"`
	Supplier *SupplierResponse `json:"supplier,omitempty"`
}

// --- Products ---

type CreateProductRequest struct {
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price" binding:"required"`
	Stock int             `json:"stock" binding:"min=0"`
}

type UpdateProductRequest struct {
	Name  *string          `json:"name"`
	Price *decimal.Decimal `json:"price"`
	Stock *int             `json:"stock"`
}

type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	SupplierID   string          `json:"supplier_id"`
	SupplierName string          `json:"supplier_name"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

// --- Cart ---

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CartItemResponse struct {
	ProductID    string          `json:"product_id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	SupplierName string          `json:"supplier_name"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

// --- Orders ---

type PlaceOrderRequest struct {
	DeliveryAddress string `json:"delivery_address" binding:"required"`
}

type OrderResponse struct {
	ID              string             `json:"id"`
	VendorID        string             `json:"vendor_id"`
	Items           []CartItemResponse `json:"items"`
	DeliveryAddress string             `json:"delivery_address"`
	Total           decimal.Decimal    `json:"total"`
	Date            time.Time          `json:"date"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

// --- Mapping ---

func ToVendorResponse(v model.Vendor) VendorResponse {
	return VendorResponse{
		ID: v.ID, FullName: v.FullName, Phone: v.Phone,
		BusinessName: v.BusinessName, Email: v.Email,
	}
}

func ToSupplierResponse(s model.Supplier) SupplierResponse {
	products := make([]ProductResponse, 0, len(s.Products))
	for _, p := range s.Products {
		products = append(products, ToProductResponse(p))
	}
	return SupplierResponse{
		ID: s.ID, FullName: s.FullName, Phone: s.Phone,
		BusinessName: s.BusinessName, Email: s.Email, Products: products,
	}
}

func ToProductResponse(p model.Product) ProductResponse {
	return ProductResponse{
		ID: p.ID, Name: p.Name, Price: p.Price, Stock: p.Stock,
		SupplierID: p.SupplierID, SupplierName: p.SupplierName,
	}
}

func ToCartItemResponse(item model.CartItem) CartItemResponse {
	return CartItemResponse{
		ProductID: item.ProductID, Name: item.Name, Price: item.Price,
		Quantity: item.Quantity, SupplierName: item.SupplierName,
	}
}

func ToOrderResponse(o model.Order) OrderResponse {
	items := make([]CartItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, ToCartItemResponse(item))
	}
	return OrderResponse{
		ID: o.ID, VendorID: o.VendorID, Items: items,
		DeliveryAddress: o.DeliveryAddress, Total: o.Total, Date: o.Date,
	}
}

func ToSessionResponse(s model.Session) SessionResponse {
	resp := SessionResponse{Role: string(s.Role)}
	if s.Vendor != nil {
		v := ToVendorResponse(*s.Vendor)
		resp.Vendor = &v
	}
	if s.Supplier != nil {
		sup := ToSupplierResponse(*s.Supplier)
		resp.Supplier = &sup
	}
	return resp
}
