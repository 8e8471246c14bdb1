package services

import (
	"context"
	"time"

	"github.com/NotMomex/my-store-crm/internal/domain/models"
	"github.com/NotMomex/my-store-crm/internal/error/apperror"
	"github.com/NotMomex/my-store-crm/internal/infrastructure/sheetstore"
)

// InterfaceReminderService reminder service interface
type InterfaceReminderService interface {
	GetAll(ctx context.Context) ([]models.ReminderDetail, error)
	GetPending(ctx context.Context) ([]models.ReminderDetail, error)
	Create(ctx context.Context, in models.ReminderInput) (string, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

// ReminderService manages the Reminders sheet
type ReminderService struct {
	Store *sheetstore.Store
	now   func() time.Time
}

// NewReminderService creates a reminder service
func NewReminderService(store *sheetstore.Store) InterfaceReminderService {
	return &ReminderService{Store: store, now: time.Now}
}

// 1 GetAll lists reminders joined through their order to the customer
func (s *ReminderService) GetAll(ctx context.Context) ([]models.ReminderDetail, error) {
	return s.list(ctx, func(models.Reminder) bool { return true })
}

// 2 GetPending lists reminders still pending
func (s *ReminderService) GetPending(ctx context.Context) ([]models.ReminderDetail, error) {
	return s.list(ctx, func(r models.Reminder) bool {
		return r.Status == models.ReminderStatusPending
	})
}

// 3 Create appends a reminder and returns its new ID
func (s *ReminderService) Create(ctx context.Context, in models.ReminderInput) (string, error) {
	now := s.now()
	reminder := models.NewReminder(
		sheetstore.GenerateID(),
		models.FormatTimestamp(now),
		now.UTC().Format(models.DateLayout),
		in,
	)
	if err := s.Store.AppendRow(ctx, models.SheetReminders, reminder.Record()); err != nil {
		return "", err
	}
	return reminder.ID, nil
}

// 4 UpdateStatus sets the reminder status, leaving every other column untouched
func (s *ReminderService) UpdateStatus(ctx context.Context, id, status string) error {
	if status == "" {
		return apperror.Validation("Status is required")
	}
	err := s.Store.PatchRow(ctx, models.SheetReminders, id, sheetstore.Record{"Status": status})
	return notFoundAs(err, "Reminder not found")
}

// 5 Delete removes a reminder
func (s *ReminderService) Delete(ctx context.Context, id string) error {
	return notFoundAs(s.Store.DeleteRow(ctx, models.SheetReminders, id), "Reminder not found")
}

func (s *ReminderService) list(ctx context.Context, keep func(models.Reminder) bool) ([]models.ReminderDetail, error) {
	rows, err := s.Store.ListRows(ctx, models.SheetReminders)
	if err != nil {
		return nil, err
	}
	details := make([]models.ReminderDetail, 0, len(rows))
	if len(rows) == 0 {
		return details, nil
	}

	orderRows, err := s.Store.ListRows(ctx, models.SheetOrders)
	if err != nil {
		return nil, err
	}
	orders := make(map[string]models.Order, len(orderRows))
	for _, r := range orderRows {
		o := models.OrderFromRecord(r)
		orders[o.ID] = o
	}
	customerRows, err := s.Store.ListRows(ctx, models.SheetCustomers)
	if err != nil {
		return nil, err
	}
	customers := make(map[string]models.Customer, len(customerRows))
	for _, r := range customerRows {
		c := models.CustomerFromRecord(r)
		customers[c.ID] = c
	}

	for _, r := range rows {
		reminder := models.ReminderFromRecord(r)
		if !keep(reminder) {
			continue
		}
		detail := models.ReminderDetail{
			Reminder:      reminder,
			LinkedOrderID: reminder.OrderID,
			CustomerName:  models.UnknownCustomer,
		}
		if order, ok := orders[reminder.OrderID]; ok {
			if c, ok := customers[order.CustomerID]; ok {
				detail.CustomerName = c.Name
				detail.CustomerPhone = c.Phone
			}
		}
		details = append(details, detail)
	}
	return details, nil
}
