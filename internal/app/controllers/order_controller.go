package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/NotMomex/my-store-crm/internal/domain/models"
	"github.com/NotMomex/my-store-crm/internal/domain/services"
	"github.com/NotMomex/my-store-crm/internal/domain/services/container"
	"github.com/NotMomex/my-store-crm/internal/error/code"
	"github.com/NotMomex/my-store-crm/internal/error/response"
)

// OrderController order controller
type OrderController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewOrderController creates an order controller
func NewOrderController(ctx *gin.Context, container *container.ServiceContainer) *OrderController {
	return &OrderController{
		Ctx:       ctx,
		Container: container,
	}
}

// PaymentRequest payment update request
type PaymentRequest struct {
	AmountCollected *models.FlexString `json:"amount_collected" swaggertype:"string" example:"150000"`
	PaymentStatus   string             `json:"payment_status" example:"paid"`
}

// HandleOrderFunc returns a gin handler for order requests
func HandleOrderFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewOrderController(ctx, container)

		switch method {
		case "getOrders":
			controller.GetOrders()
		case "getOrder":
			controller.GetOrder()
		case "createOrder":
			controller.CreateOrder()
		case "addOrderItem":
			controller.AddOrderItem()
		case "updateStatus":
			controller.UpdateStatus()
		case "updatePayment":
			controller.UpdatePayment()
		case "deleteOrder":
			controller.DeleteOrder()
		case "weeklySales":
			controller.WeeklySales()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

func (c *OrderController) service() services.InterfaceOrderService {
	return c.Container.GetService("order").(services.InterfaceOrderService)
}

// 1. GetOrders lists orders with the customer name
// @Summary      List orders
// @Tags         Order
// @Produce      json
// @Success      200  {array}   models.OrderSummary
// @Failure      401  {object}  ErrorResponse
// @Router       /orders [get]
// @Security     BearerAuth
func (c *OrderController) GetOrders() {
	orders, err := c.service().GetAll(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err, "Failed to get orders")
		return
	}
	response.Success(c.Ctx, orders)
}

// 2. GetOrder returns an order with its customer and items
// @Summary      Get order
// @Tags         Order
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200  {object}  models.OrderDetail
// @Failure      404  {object}  ErrorResponse
// @Router       /orders/{id} [get]
// @Security     BearerAuth
func (c *OrderController) GetOrder() {
	order, err := c.service().GetByID(c.Ctx.Request.Context(), c.Ctx.Param("id"))
	if err != nil {
		response.Error(c.Ctx, err, "Failed to get order")
		return
	}
	response.Success(c.Ctx, order)
}

// 3. CreateOrder creates an order and its items
// @Summary      Create order
// @Tags         Order
// @Accept       json
// @Produce      json
// @Param        request body models.OrderInput true "Order"
// @Success      201  {object}  CreatedData
// @Failure      400  {object}  ErrorResponse
// @Router       /orders [post]
// @Security     BearerAuth
func (c *OrderController) CreateOrder() {
	var req models.OrderInput
	if !bindJSON(c.Ctx, &req) {
		return
	}

	id, err := c.service().Create(c.Ctx.Request.Context(), req)
	if err != nil {
		response.Error(c.Ctx, err, "Failed to create order")
		return
	}
	response.Created(c.Ctx, "Order created successfully", CreatedData{ID: id})
}

// 4. AddOrderItem adds an item to an order
// @Summary      Add order item
// @Tags         Order
// @Accept       json
// @Produce      json
// @Param        id path string true "Order ID"
// @Param        request body models.OrderItemInput true "Item"
// @Success      201  {object}  CreatedData
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /orders/{id}/items [post]
// @Security     BearerAuth
func (c *OrderController) AddOrderItem() {
	var req models.OrderItemInput
	if !bindJSON(c.Ctx, &req) {
		return
	}

	id, err := c.service().AddItem(c.Ctx.Request.Context(), c.Ctx.Param("id"), req)
	if err != nil {
		response.Error(c.Ctx, err, "Failed to add order item")
		return
	}
	response.Created(c.Ctx, "Order item added successfully", CreatedData{ID: id})
}

// 5. UpdateStatus sets the order status
// @Summary      Update order status
// @Tags         Order
// @Accept       json
// @Produce      json
// @Param        id path string true "Order ID"
// @Param        request body StatusRequest true "Status"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /orders/{id}/status [patch]
// @Security     BearerAuth
func (c *OrderController) UpdateStatus() {
	var req StatusRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	if err := c.service().UpdateStatus(c.Ctx.Request.Context(), c.Ctx.Param("id"), req.Status); err != nil {
		response.Error(c.Ctx, err, "Failed to update order status")
		return
	}
	response.SuccessWithMessage(c.Ctx, "Order status updated successfully", nil)
}

// 6. UpdatePayment sets the collected amount and payment status
// @Summary      Update order payment
// @Tags         Order
// @Accept       json
// @Produce      json
// @Param        id path string true "Order ID"
// @Param        request body PaymentRequest true "Payment"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /orders/{id}/payment [patch]
// @Security     BearerAuth
func (c *OrderController) UpdatePayment() {
	var req PaymentRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	err := c.service().UpdatePayment(c.Ctx.Request.Context(), c.Ctx.Param("id"), req.AmountCollected.String(), req.PaymentStatus)
	if err != nil {
		response.Error(c.Ctx, err, "Failed to update order payment")
		return
	}
	response.SuccessWithMessage(c.Ctx, "Order payment updated successfully", nil)
}

// 7. DeleteOrder deletes an order and its items
// @Summary      Delete order
// @Tags         Order
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /orders/{id} [delete]
// @Security     BearerAuth
func (c *OrderController) DeleteOrder() {
	if err := c.service().Delete(c.Ctx.Request.Context(), c.Ctx.Param("id")); err != nil {
		response.Error(c.Ctx, err, "Failed to delete order")
		return
	}
	response.SuccessWithMessage(c.Ctx, "Order deleted successfully", nil)
}

// 8. WeeklySales reports sales per ISO week, newest first
// @Summary      Weekly sales report
// @Tags         Order
// @Produce      json
// @Success      200  {array}   models.WeeklySales
// @Router       /orders/reports/weekly [get]
// @Security     BearerAuth
func (c *OrderController) WeeklySales() {
	report, err := c.service().WeeklySales(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err, "Failed to get weekly sales")
		return
	}
	response.Success(c.Ctx, report)
}
