package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/streetsupply/marketplace-api/internal/store"
)

type HealthHandler struct {
	store *store.Store
}

func NewHealthHandler(st *store.Store) *HealthHandler {
	return &HealthHandler{store: st}
}

func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readyz reports collection sizes; with no external dependencies the store is
// ready as soon as the process is.
func (h *HealthHandler) Readyz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"vendors":   len(h.store.Vendors()),
		"suppliers": len(h.store.Suppliers()),
		"products":  len(h.store.Products()),
		"orders":    len(h.store.Orders()),
	})
}
