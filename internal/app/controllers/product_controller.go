package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/NotMomex/my-store-crm/internal/domain/models"
	"github.com/NotMomex/my-store-crm/internal/domain/services"
	"github.com/NotMomex/my-store-crm/internal/domain/services/container"
	"github.com/NotMomex/my-store-crm/internal/error/code"
	"github.com/NotMomex/my-store-crm/internal/error/response"
)

// InterfaceProductController product controller interface
type InterfaceProductController interface {
	GetProducts()
	GetProduct()
	CreateProduct()
	UpdateProduct()
	DeleteProduct()
}

// ProductController product controller
type ProductController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewProductController creates a product controller
func NewProductController(ctx *gin.Context, container *container.ServiceContainer) *ProductController {
	return &ProductController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleProductFunc returns a gin handler for product requests
func HandleProductFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewProductController(ctx, container)

		switch method {
		case "getProducts":
			controller.GetProducts()
		case "getProduct":
			controller.GetProduct()
		case "createProduct":
			controller.CreateProduct()
		case "updateProduct":
			controller.UpdateProduct()
		case "deleteProduct":
			controller.DeleteProduct()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

func (c *ProductController) service() services.InterfaceProductService {
	return c.Container.GetService("product").(services.InterfaceProductService)
}

// 1. GetProducts lists products
// @Summary      List products
// @Tags         Product
// @Produce      json
// @Success      200  {array}   models.Product
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /products [get]
// @Security     BearerAuth
func (c *ProductController) GetProducts() {
	products, err := c.service().GetAll(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err, "Failed to get products")
		return
	}
	response.Success(c.Ctx, products)
}

// 2. GetProduct returns one product
// @Summary      Get product
// @Tags         Product
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200  {object}  models.Product
// @Failure      404  {object}  ErrorResponse
// @Router       /products/{id} [get]
// @Security     BearerAuth
func (c *ProductController) GetProduct() {
	product, err := c.service().GetByID(c.Ctx.Request.Context(), c.Ctx.Param("id"))
	if err != nil {
		response.Error(c.Ctx, err, "Failed to get product")
		return
	}
	response.Success(c.Ctx, product)
}

// 3. CreateProduct creates a product
// @Summary      Create product
// @Tags         Product
// @Accept       json
// @Produce      json
// @Param        request body models.ProductInput true "Product"
// @Success      201  {object}  CreatedData
// @Failure      400  {object}  ErrorResponse
// @Router       /products [post]
// @Security     BearerAuth
func (c *ProductController) CreateProduct() {
	var req models.ProductInput
	if !bindJSON(c.Ctx, &req) {
		return
	}

	id, err := c.service().Create(c.Ctx.Request.Context(), req)
	if err != nil {
		response.Error(c.Ctx, err, "Failed to create product")
		return
	}
	response.Created(c.Ctx, "Product created successfully", CreatedData{ID: id})
}

// 4. UpdateProduct updates the supplied fields of a product
// @Summary      Update product
// @Tags         Product
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        request body models.ProductInput true "Fields to update"
// @Success      200  {object}  models.Product
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /products/{id} [put]
// @Security     BearerAuth
func (c *ProductController) UpdateProduct() {
	var req models.ProductInput
	if !bindJSON(c.Ctx, &req) {
		return
	}

	product, err := c.service().Update(c.Ctx.Request.Context(), c.Ctx.Param("id"), req)
	if err != nil {
		response.Error(c.Ctx, err, "Failed to update product")
		return
	}
	response.SuccessWithMessage(c.Ctx, "Product updated successfully", product)
}

// 5. DeleteProduct deletes a product
// @Summary      Delete product
// @Tags         Product
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /products/{id} [delete]
// @Security     BearerAuth
func (c *ProductController) DeleteProduct() {
	if err := c.service().Delete(c.Ctx.Request.Context(), c.Ctx.Param("id")); err != nil {
		response.Error(c.Ctx, err, "Failed to delete product")
		return
	}
	response.SuccessWithMessage(c.Ctx, "Product deleted successfully", nil)
}
