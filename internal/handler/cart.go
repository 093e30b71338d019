package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/streetsupply/marketplace-api/internal/dto"
	"github.com/streetsupply/marketplace-api/internal/store"
)

type CartHandler struct {
	store *store.Store
}

func NewCartHandler(st *store.Store) *CartHandler {
	return &CartHandler{store: st}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartResponse())
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.AddToCart(req.ProductID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, store.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		case errors.Is(err, store.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, h.cartResponse())
}

// UpdateItem replaces the line's quantity; zero or less removes the line.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.UpdateCartQuantity(c.Param("id"), req.Quantity); err != nil {
		if errors.Is(err, store.ErrCartItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, h.cartResponse())
}

func (h *CartHandler) DeleteItem(c *gin.Context) {
	if err := h.store.RemoveFromCart(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrCartItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) Clear(c *gin.Context) {
	h.store.ClearCart()
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) cartResponse() dto.CartResponse {
	cart := h.store.Cart()
	items := make([]dto.CartItemResponse, 0, len(cart))
	for _, item := range cart {
		items = append(items, dto.ToCartItemResponse(item))
	}
	return dto.CartResponse{Items: items, Total: h.store.CartTotal()}
}
