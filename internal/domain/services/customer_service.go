package services

import (
	"context"
	"time"

	"github.com/NotMomex/my-store-crm/internal/domain/models"
	"github.com/NotMomex/my-store-crm/internal/error/apperror"
	"github.com/NotMomex/my-store-crm/internal/infrastructure/sheetstore"
)

// InterfaceCustomerService customer service interface
type InterfaceCustomerService interface {
	GetAll(ctx context.Context) ([]models.Customer, error)
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	Create(ctx context.Context, in models.CustomerInput) (string, error)
	Update(ctx context.Context, id string, in models.CustomerInput) (*models.Customer, error)
	Delete(ctx context.Context, id string) error
}

// CustomerService manages rows of the Customers sheet
type CustomerService struct {
	Store *sheetstore.Store
	now   func() time.Time
}

// NewCustomerService creates a customer service
func NewCustomerService(store *sheetstore.Store) InterfaceCustomerService {
	return &CustomerService{Store: store, now: time.Now}
}

// 1 GetAll lists every customer in sheet order
func (s *CustomerService) GetAll(ctx context.Context) ([]models.Customer, error) {
	rows, err := s.Store.ListRows(ctx, models.SheetCustomers)
	if err != nil {
		return nil, err
	}
	customers := make([]models.Customer, 0, len(rows))
	for _, r := range rows {
		customers = append(customers, models.CustomerFromRecord(r))
	}
	return customers, nil
}

// 2 GetByID returns one customer
func (s *CustomerService) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	rec, err := s.Store.FindRow(ctx, models.SheetCustomers, id)
	if err != nil {
		return nil, notFoundAs(err, "Customer not found")
	}
	customer := models.CustomerFromRecord(rec)
	return &customer, nil
}

// 3 Create appends a customer and returns its new ID
func (s *CustomerService) Create(ctx context.Context, in models.CustomerInput) (string, error) {
	customer := models.NewCustomer(sheetstore.GenerateID(), models.FormatTimestamp(s.now()), in)
	if err := s.Store.AppendRow(ctx, models.SheetCustomers, customer.Record()); err != nil {
		return "", err
	}
	return customer.ID, nil
}

// 4 Update merges the supplied fields over the stored customer
func (s *CustomerService) Update(ctx context.Context, id string, in models.CustomerInput) (*models.Customer, error) {
	customer, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	customer.Apply(in)
	if err := s.Store.PatchRow(ctx, models.SheetCustomers, id, customer.Record()); err != nil {
		return nil, notFoundAs(err, "Customer not found")
	}
	return customer, nil
}

// 5 Delete removes a customer. Orders referencing it are kept.
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	return notFoundAs(s.Store.DeleteRow(ctx, models.SheetCustomers, id), "Customer not found")
}

// notFoundAs replaces the store's generic not-found message with one fit for clients
func notFoundAs(err error, message string) error {
	if apperror.IsNotFound(err) {
		return &apperror.Error{Kind: apperror.KindNotFound, Message: message, Err: err}
	}
	return err
}
