package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/NotMomex/my-store-crm/internal/domain/models"
	"github.com/NotMomex/my-store-crm/internal/error/apperror"
	"github.com/NotMomex/my-store-crm/internal/infrastructure/sheetstore"
	Logger "github.com/NotMomex/my-store-crm/pkg/logger"
)

// InterfaceOrderService order service interface
type InterfaceOrderService interface {
	GetAll(ctx context.Context) ([]models.OrderSummary, error)
	GetByID(ctx context.Context, id string) (*models.OrderDetail, error)
	Create(ctx context.Context, in models.OrderInput) (string, error)
	AddItem(ctx context.Context, orderID string, in models.OrderItemInput) (string, error)
	UpdateStatus(ctx context.Context, id, status string) error
	UpdatePayment(ctx context.Context, id, amountCollected, paymentStatus string) error
	Delete(ctx context.Context, id string) error
	WeeklySales(ctx context.Context) ([]models.WeeklySales, error)
}

// OrderService manages the Orders and OrderItems sheets
type OrderService struct {
	Store *sheetstore.Store
	now   func() time.Time
}

// NewOrderService creates an order service
func NewOrderService(store *sheetstore.Store) InterfaceOrderService {
	return &OrderService{Store: store, now: time.Now}
}

// 1 GetAll lists every order with its customer's name
func (s *OrderService) GetAll(ctx context.Context) ([]models.OrderSummary, error) {
	orders, err := s.Store.ListRows(ctx, models.SheetOrders)
	if err != nil {
		return nil, err
	}
	customers, err := s.customersByID(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.OrderSummary, 0, len(orders))
	for _, r := range orders {
		order := models.OrderFromRecord(r)
		name := models.UnknownCustomer
		if c, ok := customers[order.CustomerID]; ok {
			name = c.Name
		}
		summaries = append(summaries, models.OrderSummary{Order: order, CustomerName: name})
	}
	return summaries, nil
}

// 2 GetByID returns an order joined to its customer and line items
func (s *OrderService) GetByID(ctx context.Context, id string) (*models.OrderDetail, error) {
	rec, err := s.Store.FindRow(ctx, models.SheetOrders, id)
	if err != nil {
		return nil, notFoundAs(err, "Order not found")
	}
	detail := &models.OrderDetail{
		Order:        models.OrderFromRecord(rec),
		CustomerName: models.UnknownCustomer,
		Items:        []models.OrderItemDetail{},
	}

	customers, err := s.customersByID(ctx)
	if err != nil {
		return nil, err
	}
	if c, ok := customers[detail.CustomerID]; ok {
		detail.CustomerName = c.Name
		detail.CustomerPhone = c.Phone
		detail.CustomerAddress = c.Address
	}

	items, err := s.itemsOf(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return detail, nil
	}
	products, err := s.Store.ListRows(ctx, models.SheetProducts)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p[sheetstore.IDField]] = p["Name"]
	}
	for _, item := range items {
		name, ok := names[item.ProductID]
		if !ok {
			name = models.UnknownProduct
		}
		detail.Items = append(detail.Items, models.OrderItemDetail{OrderItem: item, ProductName: name})
	}
	return detail, nil
}

// 3 Create appends the order and then one item row per requested item
func (s *OrderService) Create(ctx context.Context, in models.OrderInput) (string, error) {
	now := models.FormatTimestamp(s.now())
	order := models.NewOrder(sheetstore.GenerateID(), now, in)
	if err := s.Store.AppendRow(ctx, models.SheetOrders, order.Record()); err != nil {
		return "", err
	}
	for i, itemIn := range in.Items {
		item := models.NewOrderItem(sheetstore.GenerateID(), order.ID, now, itemIn)
		if err := s.Store.AppendRow(ctx, models.SheetOrderItems, item.Record()); err != nil {
			Logger.Error("order %s created but item %d of %d failed: %v", order.ID, i+1, len(in.Items), err)
			return "", err
		}
	}
	return order.ID, nil
}

// 4 AddItem appends one item to an existing order
func (s *OrderService) AddItem(ctx context.Context, orderID string, in models.OrderItemInput) (string, error) {
	if _, err := s.Store.FindRow(ctx, models.SheetOrders, orderID); err != nil {
		return "", notFoundAs(err, "Order not found")
	}
	item := models.NewOrderItem(sheetstore.GenerateID(), orderID, models.FormatTimestamp(s.now()), in)
	if err := s.Store.AppendRow(ctx, models.SheetOrderItems, item.Record()); err != nil {
		return "", err
	}
	return item.ID, nil
}

// 5 UpdateStatus sets the order status, leaving every other column untouched
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) error {
	if status == "" {
		return apperror.Validation("Status is required")
	}
	err := s.Store.PatchRow(ctx, models.SheetOrders, id, sheetstore.Record{"Status": status})
	return notFoundAs(err, "Order not found")
}

// 6 UpdatePayment sets the collected amount and/or the payment status
func (s *OrderService) UpdatePayment(ctx context.Context, id, amountCollected, paymentStatus string) error {
	fields := sheetstore.Record{}
	if amountCollected != "" {
		fields["AmountCollected"] = amountCollected
	}
	if paymentStatus != "" {
		fields["PaymentStatus"] = paymentStatus
	}
	if len(fields) == 0 {
		return apperror.Validation("amount_collected or payment_status is required")
	}
	err := s.Store.PatchRow(ctx, models.SheetOrders, id, fields)
	return notFoundAs(err, "Order not found")
}

// 7 Delete removes the order's items and then the order. Nothing is rolled
// back if a step fails, so a failure can leave orphaned items behind.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	if _, err := s.Store.FindRow(ctx, models.SheetOrders, id); err != nil {
		return notFoundAs(err, "Order not found")
	}
	items, err := s.itemsOf(ctx, id)
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := s.Store.DeleteRow(ctx, models.SheetOrderItems, item.ID); err != nil {
			Logger.Error("delete order %s aborted at item %s, order left partially deleted: %v", id, item.ID, err)
			return err
		}
	}
	if err := s.Store.DeleteRow(ctx, models.SheetOrders, id); err != nil {
		Logger.Error("order %s items removed but the order row was not: %v", id, err)
		return notFoundAs(err, "Order not found")
	}
	return nil
}

// 8 WeeklySales sums TotalAmount per ISO week of OrderDate, newest week
// first. Non-numeric amounts count as 0; orders with an unparseable date
// are skipped.
func (s *OrderService) WeeklySales(ctx context.Context) ([]models.WeeklySales, error) {
	rows, err := s.Store.ListRows(ctx, models.SheetOrders)
	if err != nil {
		return nil, err
	}

	weeks := make(map[string]*models.WeeklySales)
	for _, r := range rows {
		order := models.OrderFromRecord(r)
		t, err := models.ParseTimestamp(order.OrderDate)
		if err != nil {
			Logger.Debug("weekly sales: skip order %s with date %q", order.ID, order.OrderDate)
			continue
		}
		key := weekKey(t)
		w, ok := weeks[key]
		if !ok {
			w = &models.WeeklySales{Week: key}
			weeks[key] = w
		}
		w.TotalSales += parseAmount(order.TotalAmount)
		w.OrderCount++
	}

	result := make([]models.WeeklySales, 0, len(weeks))
	for _, w := range weeks {
		result = append(result, *w)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Week > result[j].Week
	})
	return result, nil
}

func (s *OrderService) customersByID(ctx context.Context) (map[string]models.Customer, error) {
	rows, err := s.Store.ListRows(ctx, models.SheetCustomers)
	if err != nil {
		return nil, err
	}
	customers := make(map[string]models.Customer, len(rows))
	for _, r := range rows {
		c := models.CustomerFromRecord(r)
		customers[c.ID] = c
	}
	return customers, nil
}

func (s *OrderService) itemsOf(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	rows, err := s.Store.ListRows(ctx, models.SheetOrderItems)
	if err != nil {
		return nil, err
	}
	var items []models.OrderItem
	for _, r := range rows {
		if r["OrderID"] == orderID {
			items = append(items, models.OrderItemFromRecord(r))
		}
	}
	return items, nil
}

// weekKey formats the ISO-8601 week of t as "{isoYear}-{ww}"
func weekKey(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%d-%02d", year, week)
}

func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
