package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/streetsupply/marketplace-api/internal/dto"
	"github.com/streetsupply/marketplace-api/internal/store"
)

type SupplierHandler struct {
	store *store.Store
}

func NewSupplierHandler(st *store.Store) *SupplierHandler {
	return &SupplierHandler{store: st}
}

func (h *SupplierHandler) List(c *gin.Context) {
	suppliers := h.store.Suppliers()
	items := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		items = append(items, dto.ToSupplierResponse(s))
	}
	c.JSON(http.StatusOK, gin.H{"suppliers": items, "total": len(items)})
}

func (h *SupplierHandler) GetByID(c *gin.Context) {
	supplier, err := h.store.Supplier(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrSupplierNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "supplier not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}
