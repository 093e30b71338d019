package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/streetsupply/marketplace-api/internal/dto"
	"github.com/streetsupply/marketplace-api/internal/model"
	"github.com/streetsupply/marketplace-api/internal/store"
)

type ProductHandler struct {
	store *store.Store
}

func NewProductHandler(st *store.Store) *ProductHandler {
	return &ProductHandler{store: st}
}

func (h *ProductHandler) List(c *gin.Context) {
	var products []model.Product
	if supplierID := c.Query("supplier_id"); supplierID != "" {
		products = h.store.ProductsBySupplier(supplierID)
	} else {
		products = h.store.Products()
	}

	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, dto.ToProductResponse(p))
	}
	c.JSON(http.StatusOK, dto.ProductListResponse{Products: items, Total: len(items)})
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	product, err := h.store.Product(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.store.AddProduct(c.Param("id"), model.ProductFields{
		Name: req.Name, Price: req.Price, Stock: req.Stock,
	})
	if err != nil {
		if errors.Is(err, store.ErrSupplierNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "supplier not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.store.UpdateProduct(c.Param("id"), model.ProductUpdate{
		Name: req.Name, Price: req.Price, Stock: req.Stock,
	})
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteProduct(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}
