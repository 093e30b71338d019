package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/streetsupply/marketplace-api/internal/dto"
	"github.com/streetsupply/marketplace-api/internal/middleware"
	"github.com/streetsupply/marketplace-api/internal/store"
)

type OrderHandler struct {
	store         *store.Store
	checkoutDelay time.Duration
}

func NewOrderHandler(st *store.Store, checkoutDelay time.Duration) *OrderHandler {
	return &OrderHandler{store: st, checkoutDelay: checkoutDelay}
}

// PlaceOrder checks out the current cart. The configured delay mimics a
// payment roundtrip; the store is not touched until it elapses.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.checkoutDelay > 0 {
		select {
		case <-time.After(h.checkoutDelay):
		case <-c.Request.Context().Done():
			c.Status(http.StatusRequestTimeout)
			return
		}
	}

	order, err := h.store.PlaceOrder(req.DeliveryAddress)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotAuthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
		case errors.Is(err, store.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders := h.store.OrdersByVendor(middleware.GetSession(c).ActorID())
	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, dto.ToOrderResponse(o))
	}
	c.JSON(http.StatusOK, dto.OrderListResponse{Orders: items, Total: len(items)})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.store.Order(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}
