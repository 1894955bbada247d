package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sweetline/mithas-api/internal/application/service"
	"github.com/sweetline/mithas-api/internal/presentation/http/dto/request"
	"github.com/sweetline/mithas-api/internal/presentation/http/dto/response"
)

// ProductHandler handles catalog product HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create handles adding a product to the catalog
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Unit:     req.Unit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Product created successfully", product)
}

// List handles listing the whole catalog
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Products retrieved successfully", products)
}

// Get handles retrieving one product
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.productService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product retrieved successfully", product)
}

// Update handles editing a product
func (h *ProductHandler) Update(c *gin.Context) {
	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("id"), &service.UpdateProductInput{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Unit:     req.Unit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product updated successfully", product)
}

// Delete handles removing a product from the catalog
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.productService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product deleted successfully", nil)
}
