package container

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/NotMomex/my-store-crm/internal/domain/services"
	"github.com/NotMomex/my-store-crm/internal/infrastructure/config"
	"github.com/NotMomex/my-store-crm/internal/infrastructure/sheetstore"
	Logger "github.com/NotMomex/my-store-crm/pkg/logger"
)

// ServiceContainer wires every service onto one sheet store
type ServiceContainer struct {
	config *config.Config
	store  *sheetstore.Store

	// base services
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService

	// business services
	authService     services.InterfaceAuthService
	customerService services.InterfaceCustomerService
	productService  services.InterfaceProductService
	orderService    services.InterfaceOrderService
	reminderService services.InterfaceReminderService

	mu sync.RWMutex
}

// NewServiceContainer creates the container. redisClient may be nil; an
// unreachable Redis is logged and left out.
func NewServiceContainer(cfg *config.Config, store *sheetstore.Store, redisClient *redis.Client) *ServiceContainer {
	if cfg == nil {
		panic("config is nil")
	}
	if store == nil {
		panic("sheet store is nil")
	}

	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			Logger.Warning("Redis ping failed: %v, falling back to in-memory rate limiting", err)
			redisClient = nil
		}
	}

	c := &ServiceContainer{
		config: cfg,
		store:  store,
	}
	c.initializeServices(redisClient)
	return c
}

func (c *ServiceContainer) initializeServices(redisClient *redis.Client) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.jwtService = services.NewJWTService(c.config)
	if redisClient != nil {
		c.redisService = services.NewRedisService(redisClient)
	}

	c.authService = services.NewAuthService(c.store, c.jwtService)
	c.customerService = services.NewCustomerService(c.store)
	c.productService = services.NewProductService(c.store)
	c.orderService = services.NewOrderService(c.store)
	c.reminderService = services.NewReminderService(c.store)
}

// GetService returns the service registered under name, nil if unknown
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "jwt":
		return c.jwtService
	case "redis":
		if c.redisService == nil {
			return nil
		}
		return c.redisService
	case "auth":
		return c.authService
	case "customer":
		return c.customerService
	case "product":
		return c.productService
	case "order":
		return c.orderService
	case "reminder":
		return c.reminderService
	default:
		return nil
	}
}

// GetConfig returns the configuration
func (c *ServiceContainer) GetConfig() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

// Close releases external connections
func (c *ServiceContainer) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.redisService != nil {
		return c.redisService.Close()
	}
	return nil
}
