package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/NotMomex/my-store-crm/internal/domain/models"
	"github.com/NotMomex/my-store-crm/internal/domain/services"
	"github.com/NotMomex/my-store-crm/internal/domain/services/container"
	"github.com/NotMomex/my-store-crm/internal/error/code"
	"github.com/NotMomex/my-store-crm/internal/error/response"
)

// InterfaceCustomerController customer controller interface
type InterfaceCustomerController interface {
	GetCustomers()
	GetCustomer()
	CreateCustomer()
	UpdateCustomer()
	DeleteCustomer()
}

// CustomerController customer controller
type CustomerController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewCustomerController creates a customer controller
func NewCustomerController(ctx *gin.Context, container *container.ServiceContainer) *CustomerController {
	return &CustomerController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleCustomerFunc returns a gin handler for customer requests
func HandleCustomerFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewCustomerController(ctx, container)

		switch method {
		case "getCustomers":
			controller.GetCustomers()
		case "getCustomer":
			controller.GetCustomer()
		case "createCustomer":
			controller.CreateCustomer()
		case "updateCustomer":
			controller.UpdateCustomer()
		case "deleteCustomer":
			controller.DeleteCustomer()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

func (c *CustomerController) service() services.InterfaceCustomerService {
	return c.Container.GetService("customer").(services.InterfaceCustomerService)
}

// 1. GetCustomers lists customers
// @Summary      List customers
// @Tags         Customer
// @Produce      json
// @Success      200  {array}   models.Customer
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /customers [get]
// @Security     BearerAuth
func (c *CustomerController) GetCustomers() {
	customers, err := c.service().GetAll(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err, "Failed to get customers")
		return
	}
	response.Success(c.Ctx, customers)
}

// 2. GetCustomer returns one customer
// @Summary      Get customer
// @Tags         Customer
// @Produce      json
// @Param        id path string true "Customer ID"
// @Success      200  {object}  models.Customer
// @Failure      404  {object}  ErrorResponse
// @Router       /customers/{id} [get]
// @Security     BearerAuth
func (c *CustomerController) GetCustomer() {
	customer, err := c.service().GetByID(c.Ctx.Request.Context(), c.Ctx.Param("id"))
	if err != nil {
		response.Error(c.Ctx, err, "Failed to get customer")
		return
	}
	response.Success(c.Ctx, customer)
}

// 3. CreateCustomer creates a customer
// @Summary      Create customer
// @Tags         Customer
// @Accept       json
// @Produce      json
// @Param        request body models.CustomerInput true "Customer"
// @Success      201  {object}  CreatedData
// @Failure      400  {object}  ErrorResponse
// @Router       /customers [post]
// @Security     BearerAuth
func (c *CustomerController) CreateCustomer() {
	var req models.CustomerInput
	if !bindJSON(c.Ctx, &req) {
		return
	}

	id, err := c.service().Create(c.Ctx.Request.Context(), req)
	if err != nil {
		response.Error(c.Ctx, err, "Failed to create customer")
		return
	}
	response.Created(c.Ctx, "Customer created successfully", CreatedData{ID: id})
}

// 4. UpdateCustomer updates the supplied fields of a customer
// @Summary      Update customer
// @Tags         Customer
// @Accept       json
// @Produce      json
// @Param        id path string true "Customer ID"
// @Param        request body models.CustomerInput true "Fields to update"
// @Success      200  {object}  models.Customer
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /customers/{id} [put]
// @Security     BearerAuth
func (c *CustomerController) UpdateCustomer() {
	var req models.CustomerInput
	if !bindJSON(c.Ctx, &req) {
		return
	}

	customer, err := c.service().Update(c.Ctx.Request.Context(), c.Ctx.Param("id"), req)
	if err != nil {
		response.Error(c.Ctx, err, "Failed to update customer")
		return
	}
	response.SuccessWithMessage(c.Ctx, "Customer updated successfully", customer)
}

// 5. DeleteCustomer deletes a customer
// @Summary      Delete customer
// @Tags         Customer
// @Produce      json
// @Param        id path string true "Customer ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /customers/{id} [delete]
// @Security     BearerAuth
func (c *CustomerController) DeleteCustomer() {
	if err := c.service().Delete(c.Ctx.Request.Context(), c.Ctx.Param("id")); err != nil {
		response.Error(c.Ctx, err, "Failed to delete customer")
		return
	}
	response.SuccessWithMessage(c.Ctx, "Customer deleted successfully", nil)
}
