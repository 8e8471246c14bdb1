package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/NotMomex/my-store-crm/docs"
	"github.com/NotMomex/my-store-crm/internal/app/controllers"
	"github.com/NotMomex/my-store-crm/internal/app/middleware"
	"github.com/NotMomex/my-store-crm/internal/domain/services"
	"github.com/NotMomex/my-store-crm/internal/domain/services/container"
	"github.com/NotMomex/my-store-crm/internal/infrastructure/config"
	Logger "github.com/NotMomex/my-store-crm/pkg/logger"
)

// SetupRouter builds the engine with every route registered
func SetupRouter(serviceContainer *container.ServiceContainer) *gin.Engine {
	cfg := serviceContainer.GetConfig()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	if err := controllers.RegisterValidators(); err != nil {
		Logger.Error("register validators failed: %v", err)
	}

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer, cfg)
	return r
}

// registerRoutes registers every API route under /api
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
	cfg *config.Config,
) {
	api := r.Group("/api")
	api.Use(middleware.JSONContentType())
	api.Use(middleware.IPRateLimiter(float64(cfg.RateLimitRPS), cfg.RateLimitBurst))

	registerPublicRoutes(api, container, cfg)
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes registers the routes that need no token
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
	cfg *config.Config,
) {
	api.GET("/test", controllers.HandleHealthFunc(container, "test"))
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "health"))

	var redisService services.InterfaceRedisService
	if svc, ok := container.GetService("redis").(services.InterfaceRedisService); ok {
		redisService = svc
	}
	loginLimiter := middleware.LoginRateLimiter(redisService, cfg.LoginRateLimitPerMinute)

	api.POST("/auth/login", loginLimiter, controllers.HandleAuthFunc(container, "login"))
	api.POST("/auth/register-first", loginLimiter, controllers.HandleAuthFunc(container, "registerFirst"))
}

// registerAuthenticatedRoutes registers the routes behind the JWT check
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	jwtService := container.GetService("jwt").(services.InterfaceJWTService)

	auth := api.Group("")
	auth.Use(middleware.Authentication(jwtService))

	viewer := middleware.ViewerAndAbove()
	agent := middleware.AgentAndAbove()
	admin := middleware.AdminOnly()

	// users
	authGroup := auth.Group("/auth")
	authGroup.POST("/register", admin, controllers.HandleAuthFunc(container, "register"))
	authGroup.GET("/me", controllers.HandleAuthFunc(container, "me"))
	authGroup.GET("/users", admin, controllers.HandleAuthFunc(container, "getUsers"))
	authGroup.PUT("/users/:id", controllers.HandleAuthFunc(container, "updateUser"))
	authGroup.DELETE("/users/:id", admin, controllers.HandleAuthFunc(container, "deleteUser"))

	// customers
	customerGroup := auth.Group("/customers")
	customerGroup.GET("", viewer, controllers.HandleCustomerFunc(container, "getCustomers"))
	customerGroup.GET("/:id", viewer, controllers.HandleCustomerFunc(container, "getCustomer"))
	customerGroup.POST("", agent, controllers.HandleCustomerFunc(container, "createCustomer"))
	customerGroup.PUT("/:id", agent, controllers.HandleCustomerFunc(container, "updateCustomer"))
	customerGroup.DELETE("/:id", admin, controllers.HandleCustomerFunc(container, "deleteCustomer"))

	// products
	productGroup := auth.Group("/products")
	productGroup.GET("", viewer, controllers.HandleProductFunc(container, "getProducts"))
	productGroup.GET("/:id", viewer, controllers.HandleProductFunc(container, "getProduct"))
	productGroup.POST("", agent, controllers.HandleProductFunc(container, "createProduct"))
	productGroup.PUT("/:id", agent, controllers.HandleProductFunc(container, "updateProduct"))
	productGroup.DELETE("/:id", admin, controllers.HandleProductFunc(container, "deleteProduct"))

	// orders
	orderGroup := auth.Group("/orders")
	orderGroup.GET("", viewer, controllers.HandleOrderFunc(container, "getOrders"))
	orderGroup.GET("/reports/weekly", viewer, controllers.HandleOrderFunc(container, "weeklySales"))
	orderGroup.GET("/:id", viewer, controllers.HandleOrderFunc(container, "getOrder"))
	orderGroup.POST("", agent, controllers.HandleOrderFunc(container, "createOrder"))
	orderGroup.POST("/:id/items", agent, controllers.HandleOrderFunc(container, "addOrderItem"))
	orderGroup.PATCH("/:id/status", agent, controllers.HandleOrderFunc(container, "updateStatus"))
	orderGroup.PATCH("/:id/payment", agent, controllers.HandleOrderFunc(container, "updatePayment"))
	orderGroup.DELETE("/:id", admin, controllers.HandleOrderFunc(container, "deleteOrder"))

	// reminders
	reminderGroup := auth.Group("/reminders")
	reminderGroup.GET("", viewer, controllers.HandleReminderFunc(container, "getReminders"))
	reminderGroup.GET("/pending", viewer, controllers.HandleReminderFunc(container, "getPendingReminders"))
	reminderGroup.POST("", agent, controllers.HandleReminderFunc(container, "createReminder"))
	reminderGroup.PATCH("/:id/status", agent, controllers.HandleReminderFunc(container, "updateStatus"))
	reminderGroup.DELETE("/:id", agent, controllers.HandleReminderFunc(container, "deleteReminder"))
}
