package services

import (
	"github.com/NotMomex/my-store-crm/internal/domain/models"
	"github.com/NotMomex/my-store-crm/internal/infrastructure/sheetstore"
)

// SheetCollections lists every sheet the application reads, with its header row
func SheetCollections() []sheetstore.Collection {
	return []sheetstore.Collection{
		{Name: models.SheetCustomers, Headers: models.CustomerColumns},
		{Name: models.SheetProducts, Headers: models.ProductColumns},
		{Name: models.SheetOrders, Headers: models.OrderColumns},
		{Name: models.SheetOrderItems, Headers: models.OrderItemColumns},
		{Name: models.SheetReminders, Headers: models.ReminderColumns},
		{Name: models.SheetUsers, Headers: models.UserColumns},
	}
}
