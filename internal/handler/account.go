package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/streetsupply/marketplace-api/internal/dto"
	"github.com/streetsupply/marketplace-api/internal/model"
	"github.com/streetsupply/marketplace-api/internal/store"
)

type AccountHandler struct {
	store *store.Store
}

func NewAccountHandler(st *store.Store) *AccountHandler {
	return &AccountHandler{store: st}
}

func (h *AccountHandler) RegisterVendor(c *gin.Context) {
	var req dto.RegisterVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendor := h.store.RegisterVendor(model.VendorFields{
		FullName:     req.FullName,
		Phone:        req.Phone,
		BusinessName: req.BusinessName,
		Email:        req.Email,
	})
	c.JSON(http.StatusCreated, dto.ToVendorResponse(vendor))
}

func (h *AccountHandler) RegisterSupplier(c *gin.Context) {
	var req dto.RegisterSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	initial := make([]model.ProductFields, 0, len(req.Products))
	for _, p := range req.Products {
		initial = append(initial, model.ProductFields{Name: p.Name, Price: p.Price, Stock: p.Stock})
	}

	supplier := h.store.RegisterSupplier(model.SupplierFields{
		FullName:     req.FullName,
		Phone:        req.Phone,
		BusinessName: req.BusinessName,
		Email:        req.Email,
	}, initial)
	c.JSON(http.StatusCreated, dto.ToSupplierResponse(supplier))
}

// Login resolves the phone-or-email identifier against the requested role's
// collection, then switches the session to the matched account.
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var id string
	switch model.Role(req.Role) {
	case model.RoleVendor:
		vendor, err := h.store.FindVendorByIdentifier(req.Identifier)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
			return
		}
		id = vendor.ID
	case model.RoleSupplier:
		supplier, err := h.store.FindSupplierByIdentifier(req.Identifier)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
			return
		}
		id = supplier.ID
	}

	sess, err := h.store.Login(id, model.Role(req.Role))
	if err != nil {
		if errors.Is(err, store.ErrVendorNotFound) || errors.Is(err, store.ErrSupplierNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(sess))
}

func (h *AccountHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToSessionResponse(h.store.Session()))
}
