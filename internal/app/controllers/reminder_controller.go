package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/NotMomex/my-store-crm/internal/domain/models"
	"github.com/NotMomex/my-store-crm/internal/domain/services"
	"github.com/NotMomex/my-store-crm/internal/domain/services/container"
	"github.com/NotMomex/my-store-crm/internal/error/code"
	"github.com/NotMomex/my-store-crm/internal/error/response"
)

// ReminderController reminder controller
type ReminderController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewReminderController creates a reminder controller
func NewReminderController(ctx *gin.Context, container *container.ServiceContainer) *ReminderController {
	return &ReminderController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleReminderFunc returns a gin handler for reminder requests
func HandleReminderFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewReminderController(ctx, container)

		switch method {
		case "getReminders":
			controller.GetReminders()
		case "getPendingReminders":
			controller.GetPendingReminders()
		case "createReminder":
			controller.CreateReminder()
		case "updateStatus":
			controller.UpdateStatus()
		case "deleteReminder":
			controller.DeleteReminder()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

func (c *ReminderController) service() services.InterfaceReminderService {
	return c.Container.GetService("reminder").(services.InterfaceReminderService)
}

// 1. GetReminders lists reminders with order and customer details
// @Summary      List reminders
// @Tags         Reminder
// @Produce      json
// @Success      200  {array}   models.ReminderDetail
// @Router       /reminders [get]
// @Security     BearerAuth
func (c *ReminderController) GetReminders() {
	reminders, err := c.service().GetAll(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err, "Failed to get reminders")
		return
	}
	response.Success(c.Ctx, reminders)
}

// 2. GetPendingReminders lists pending reminders
// @Summary      List pending reminders
// @Tags         Reminder
// @Produce      json
// @Success      200  {array}   models.ReminderDetail
// @Router       /reminders/pending [get]
// @Security     BearerAuth
func (c *ReminderController) GetPendingReminders() {
	reminders, err := c.service().GetPending(c.Ctx.Request.Context())
	if err != nil {
		response.Error(c.Ctx, err, "Failed to get pending reminders")
		return
	}
	response.Success(c.Ctx, reminders)
}

// 3. CreateReminder creates a reminder
// @Summary      Create reminder
// @Tags         Reminder
// @Accept       json
// @Produce      json
// @Param        request body models.ReminderInput true "Reminder"
// @Success      201  {object}  CreatedData
// @Failure      400  {object}  ErrorResponse
// @Router       /reminders [post]
// @Security     BearerAuth
func (c *ReminderController) CreateReminder() {
	var req models.ReminderInput
	if !bindJSON(c.Ctx, &req) {
		return
	}

	id, err := c.service().Create(c.Ctx.Request.Context(), req)
	if err != nil {
		response.Error(c.Ctx, err, "Failed to create reminder")
		return
	}
	response.Created(c.Ctx, "Reminder created successfully", CreatedData{ID: id})
}

// 4. UpdateStatus sets the reminder status
// @Summary      Update reminder status
// @Tags         Reminder
// @Accept       json
// @Produce      json
// @Param        id path string true "Reminder ID"
// @Param        request body StatusRequest true "Status"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /reminders/{id}/status [patch]
// @Security     BearerAuth
func (c *ReminderController) UpdateStatus() {
	var req StatusRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	if err := c.service().UpdateStatus(c.Ctx.Request.Context(), c.Ctx.Param("id"), req.Status); err != nil {
		response.Error(c.Ctx, err, "Failed to update reminder status")
		return
	}
	response.SuccessWithMessage(c.Ctx, "Reminder status updated successfully", nil)
}

// 5. DeleteReminder deletes a reminder
// @Summary      Delete reminder
// @Tags         Reminder
// @Produce      json
// @Param        id path string true "Reminder ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /reminders/{id} [delete]
// @Security     BearerAuth
func (c *ReminderController) DeleteReminder() {
	if err := c.service().Delete(c.Ctx.Request.Context(), c.Ctx.Param("id")); err != nil {
		response.Error(c.Ctx, err, "Failed to delete reminder")
		return
	}
	response.SuccessWithMessage(c.Ctx, "Reminder deleted successfully", nil)
}
