package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NotMomex/my-store-crm/internal/domain/services/container"
	"github.com/NotMomex/my-store-crm/internal/error/code"
	"github.com/NotMomex/my-store-crm/internal/error/response"
	"github.com/NotMomex/my-store-crm/internal/infrastructure/config"
)

// HealthController health check controller
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController creates a health check controller
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc returns a gin handler for health requests
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "test":
			controller.Test()
		case "ping":
			controller.Ping()
		case "health":
			controller.Health()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. Test liveness message
// @Summary      API test
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /test [get]
func (h *HealthController) Test() {
	response.SuccessWithMessage(h.Ctx, "API is working!", nil)
}

// 2. Ping health check
// @Summary      Ping
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /ping [get]
func (h *HealthController) Ping() {
	response.Success(h.Ctx, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// 3. Health reports the store driver and whether Redis is in use
// @Summary      Service health
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *HealthController) Health() {
	cfg := h.Container.GetService("config").(*config.Config)
	response.Success(h.Ctx, gin.H{
		"status":        "healthy",
		"store_driver":  cfg.StoreDriver,
		"redis_enabled": h.Container.GetService("redis") != nil,
		"time":          time.Now().UTC().Format(time.RFC3339),
	})
}
