package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streetsupply/marketplace-api/internal/dto"
	"github.com/streetsupply/marketplace-api/internal/middleware"
	"github.com/streetsupply/marketplace-api/internal/model"
	"github.com/streetsupply/marketplace-api/internal/store"
)

func setupRouter(st *store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)

	accountH := NewAccountHandler(st)
	supplierH := NewSupplierHandler(st)
	productH := NewProductHandler(st)
	cartH := NewCartHandler(st)
	orderH := NewOrderHandler(st, 0)

	router := gin.New()
	v1 := router.Group("/api/v1")

	v1.POST("/vendors", accountH.RegisterVendor)
	v1.POST("/suppliers", accountH.RegisterSupplier)
	v1.POST("/login", accountH.Login)
	v1.GET("/session", accountH.Session)

	v1.GET("/suppliers", supplierH.List)
	v1.GET("/suppliers/:id", supplierH.GetByID)

	v1.GET("/products", productH.List)
	v1.GET("/products/:id", productH.GetByID)

	catalog := v1.Group("", middleware.RequireRole(st, model.RoleSupplier))
	catalog.POST("/suppliers/:id/products", productH.Create)
	catalog.PUT("/products/:id", productH.Update)
	catalog.DELETE("/products/:id", productH.Delete)

	cart := v1.Group("/cart")
	cart.GET("", cartH.GetCart)
	cart.POST("/items", cartH.AddItem)
	cart.PUT("/items/:id", cartH.UpdateItem)
	cart.DELETE("/items/:id", cartH.DeleteItem)
	cart.DELETE("", cartH.Clear)

	orders := v1.Group("/orders", middleware.RequireSession(st))
	orders.POST("", orderH.PlaceOrder)
	orders.GET("", orderH.ListOrders)
	orders.GET("/:id", orderH.GetOrder)

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body, out any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if out != nil && w.Code < 300 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w
}

func registerAcmeHTTP(t *testing.T, router *gin.Engine) dto.SupplierResponse {
	t.Helper()
	var resp dto.SupplierResponse
	w := doJSON(t, router, http.MethodPost, "/api/v1/suppliers", dto.RegisterSupplierRequest{
		FullName: "Alice Smith", Phone: "0400000001",
		BusinessName: "Acme", Email: "alice@acme.test",
		Products: []dto.CreateProductRequest{
			{Name: "Tomatoes", Price: decimal.NewFromFloat(1.50), Stock: 100},
		},
	}, &resp)
	require.Equal(t, http.StatusCreated, w.Code)
	return resp
}

func registerBobHTTP(t *testing.T, router *gin.Engine) dto.VendorResponse {
	t.Helper()
	var resp dto.VendorResponse
	w := doJSON(t, router, http.MethodPost, "/api/v1/vendors", dto.RegisterVendorRequest{
		FullName: "Bob Jones", Phone: "0400000002",
		BusinessName: "Bob's Stand", Email: "bob@stand.test",
	}, &resp)
	require.Equal(t, http.StatusCreated, w.Code)
	return resp
}

func TestRegisterAndLoginFlow(t *testing.T) {
	st := store.New()
	router := setupRouter(st)

	acme := registerAcmeHTTP(t, router)
	require.Len(t, acme.Products, 1)
	registerBobHTTP(t, router)

	// registration leaves the vendor logged in; log back in as the supplier
	var sess dto.SessionResponse
	w := doJSON(t, router, http.MethodPost, "/api/v1/login", dto.LoginRequest{
		Identifier: "alice@acme.test", Role: "supplier",
	}, &sess)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "supplier", sess.Role)
	require.NotNil(t, sess.Supplier)
	assert.Equal(t, acme.ID, sess.Supplier.ID)

	w = doJSON(t, router, http.MethodPost, "/api/v1/login", dto.LoginRequest{
		Identifier: "nobody@nowhere.test", Role: "vendor",
	}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutFlow(t *testing.T) {
	st := store.New()
	router := setupRouter(st)

	acme := registerAcmeHTTP(t, router)
	bob := registerBobHTTP(t, router)
	tomatoes := acme.Products[0]

	var cart dto.CartResponse
	w := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", dto.AddCartItemRequest{
		ProductID: tomatoes.ID, Quantity: 4,
	}, &cart)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 4, cart.Items[0].Quantity)
	assert.True(t, cart.Total.Equal(decimal.NewFromFloat(6.00)))

	var order dto.OrderResponse
	w = doJSON(t, router, http.MethodPost, "/api/v1/orders", dto.PlaceOrderRequest{
		DeliveryAddress: "221B Baker St",
	}, &order)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, bob.ID, order.VendorID)
	assert.Equal(t, "221B Baker St", order.DeliveryAddress)
	assert.True(t, order.Total.Equal(decimal.NewFromFloat(6.00)))

	w = doJSON(t, router, http.MethodGet, "/api/v1/cart", nil, &cart)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cart.Items)

	var fetched dto.OrderResponse
	w = doJSON(t, router, http.MethodGet, "/api/v1/orders/"+order.ID, nil, &fetched)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, order.ID, fetched.ID)
}

func TestPlaceOrder_RequiresSession(t *testing.T) {
	st := store.New()
	router := setupRouter(st)

	w := doJSON(t, router, http.MethodPost, "/api/v1/orders", dto.PlaceOrderRequest{
		DeliveryAddress: "nowhere",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProductCRUD_SupplierOnly(t *testing.T) {
	st := store.New()
	router := setupRouter(st)

	acme := registerAcmeHTTP(t, router)

	var created dto.ProductResponse
	w := doJSON(t, router, http.MethodPost, "/api/v1/suppliers/"+acme.ID+"/products",
		dto.CreateProductRequest{Name: "Rice", Price: decimal.NewFromInt(10), Stock: 5}, &created)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Acme", created.SupplierName)

	var list dto.ProductListResponse
	w = doJSON(t, router, http.MethodGet, "/api/v1/products?supplier_id="+acme.ID, nil, &list)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, list.Total)

	// a vendor session must not manage the catalog
	registerBobHTTP(t, router)
	w = doJSON(t, router, http.MethodDelete, "/api/v1/products/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateCartItem_ZeroRemoves(t *testing.T) {
	st := store.New()
	router := setupRouter(st)

	acme := registerAcmeHTTP(t, router)
	registerBobHTTP(t, router)
	pid := acme.Products[0].ID

	w := doJSON(t, router, http.MethodPost, "/api/v1/cart/items",
		dto.AddCartItemRequest{ProductID: pid, Quantity: 2}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var cart dto.CartResponse
	w = doJSON(t, router, http.MethodPut, "/api/v1/cart/items/"+pid,
		dto.UpdateCartItemRequest{Quantity: 0}, &cart)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cart.Items)
}
