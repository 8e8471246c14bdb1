package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NotMomex/my-store-crm/internal/domain/models"
	"github.com/NotMomex/my-store-crm/internal/error/apperror"
	"github.com/NotMomex/my-store-crm/internal/infrastructure/sheetstore"
)

func flex(s string) *models.FlexString {
	f := models.FlexString(s)
	return &f
}

func TestCreateOrderWithItems(t *testing.T) {
	ctx := context.Background()
	store, client := newTestStore()
	client.Seed(models.SheetCustomers, models.CustomerColumns,
		[]string{"c1", "Ann Lee", "", "0901", "12 Market St"})
	client.Seed(models.SheetProducts, models.ProductColumns,
		[]string{"p1", "Tea", "", "10"})
	svc := &OrderService{Store: store, now: fixedClock}

	id, err := svc.Create(ctx, models.OrderInput{
		CustomerID:  "c1",
		TotalAmount: flex("120"),
		Items: []models.OrderItemInput{
			{ProductID: "p1", Quantity: flex("2"), Price: flex("10")},
			{ProductID: "gone"},
		},
	})
	require.NoError(t, err)

	detail, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "pending", detail.Status)
	assert.Equal(t, "unpaid", detail.PaymentStatus)
	assert.Equal(t, "0", detail.DeliveryFee)
	assert.Equal(t, "0", detail.AmountCollected)
	assert.Equal(t, "120", detail.TotalAmount)
	assert.Equal(t, "2024-03-14T09:30:00.000Z", detail.OrderDate)
	assert.Equal(t, "Ann Lee", detail.CustomerName)
	assert.Equal(t, "0901", detail.CustomerPhone)
	assert.Equal(t, "12 Market St", detail.CustomerAddress)

	require.Len(t, detail.Items, 2)
	assert.Equal(t, "Tea", detail.Items[0].ProductName)
	assert.Equal(t, "2", detail.Items[0].Quantity)
	assert.Equal(t, models.UnknownProduct, detail.Items[1].ProductName)
	assert.Equal(t, "1", detail.Items[1].Quantity)
	assert.Equal(t, "0", detail.Items[1].Price)
}

func TestGetAllOrdersJoinsCustomerName(t *testing.T) {
	ctx := context.Background()
	store, client := newTestStore()
	client.Seed(models.SheetCustomers, models.CustomerColumns, []string{"c1", "Ann Lee"})
	client.Seed(models.SheetOrders, models.OrderColumns,
		[]string{"o1", "c1", "2024-01-01T10:00:00.000Z"},
		[]string{"o2", "c404", "2024-01-02T10:00:00.000Z"},
	)
	svc := NewOrderService(store)

	orders, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "Ann Lee", orders[0].CustomerName)
	assert.Equal(t, models.UnknownCustomer, orders[1].CustomerName)
}

func TestGetOrderWithoutCustomerOrItems(t *testing.T) {
	ctx := context.Background()
	store, client := newTestStore()
	client.Seed(models.SheetOrders, models.OrderColumns, []string{"o1", "c404"})
	svc := NewOrderService(store)

	detail, err := svc.GetByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, models.UnknownCustomer, detail.CustomerName)
	assert.Equal(t, "", detail.CustomerPhone)
	assert.NotNil(t, detail.Items)
	assert.Empty(t, detail.Items)

	_, err = svc.GetByID(ctx, "o2")
	assert.True(t, apperror.IsNotFound(err))
}

func TestAddItem(t *testing.T) {
	ctx := context.Background()
	store, client := newTestStore()
	client.Seed(models.SheetOrders, models.OrderColumns, []string{"o1", "c1"})
	svc := &OrderService{Store: store, now: fixedClock}

	itemID, err := svc.AddItem(ctx, "o1", models.OrderItemInput{ProductID: "p1"})
	require.NoError(t, err)
	assert.Len(t, itemID, 16)

	_, err = svc.AddItem(ctx, "o404", models.OrderItemInput{ProductID: "p1"})
	assert.True(t, apperror.IsNotFound(err))
	assert.Len(t, client.Rows(models.SheetOrderItems), 2)
}

func TestUpdateStatusAndPayment(t *testing.T) {
	ctx := context.Background()
	store, client := newTestStore()
	client.Seed(models.SheetOrders, models.OrderColumns,
		[]string{"o1", "c1", "2024-01-01T10:00:00.000Z", "pending", "5", "100", "0", "", "unpaid", "note", "t0"})
	svc := NewOrderService(store)

	require.NoError(t, svc.UpdateStatus(ctx, "o1", "delivered"))
	require.NoError(t, svc.UpdatePayment(ctx, "o1", "100", "paid"))

	row := client.Rows(models.SheetOrders)[1]
	assert.Equal(t, []string{"o1", "c1", "2024-01-01T10:00:00.000Z", "delivered", "5", "100", "100", "", "paid", "note", "t0"}, row)

	require.NoError(t, svc.UpdatePayment(ctx, "o1", "", "refunded"))
	assert.Equal(t, "100", client.Rows(models.SheetOrders)[1][6])

	assert.True(t, apperror.IsValidation(svc.UpdatePayment(ctx, "o1", "", "")))
	assert.True(t, apperror.IsValidation(svc.UpdateStatus(ctx, "o1", "")))
	assert.True(t, apperror.IsNotFound(svc.UpdateStatus(ctx, "o404", "delivered")))
}

func TestDeleteOrderCascadesToItems(t *testing.T) {
	ctx := context.Background()
	store, client := newTestStore()
	client.Seed(models.SheetOrders, models.OrderColumns,
		[]string{"o1", "c1"},
		[]string{"o2", "c1"},
	)
	client.Seed(models.SheetOrderItems, models.OrderItemColumns,
		[]string{"i1", "o1", "p1"},
		[]string{"i2", "o2", "p1"},
		[]string{"i3", "o1", "p2"},
	)
	svc := NewOrderService(store)

	require.NoError(t, svc.Delete(ctx, "o1"))

	items, err := store.ListRows(ctx, models.SheetOrderItems)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "i2", items[0]["ID"])

	_, err = svc.GetByID(ctx, "o1")
	assert.True(t, apperror.IsNotFound(err))
	assert.True(t, apperror.IsNotFound(svc.Delete(ctx, "o1")))
}

func TestDeleteOrderStopsOnItemFailure(t *testing.T) {
	ctx := context.Background()
	store, client := newTestStore()
	client.Seed(models.SheetOrders, models.OrderColumns, []string{"o1", "c1"})
	client.Seed(models.SheetOrderItems, models.OrderItemColumns, []string{"i1", "o1", "p1"})
	client.FailNext(sheetstore.OpDelete, errors.New("backend error"))
	svc := NewOrderService(store)

	err := svc.Delete(ctx, "o1")
	assert.True(t, apperror.IsStore(err))
	assert.Len(t, client.Rows(models.SheetOrders), 2, "order row is kept when an item delete fails")
}

func TestWeeklySales(t *testing.T) {
	ctx := context.Background()
	store, client := newTestStore()
	client.Seed(models.SheetOrders, models.OrderColumns,
		[]string{"o1", "c1", "2024-01-01T08:00:00.000Z", "", "", "100"},
		[]string{"o2", "c1", "2024-01-08T08:00:00.000Z", "", "", "50"},
		[]string{"o3", "c1", "2024-01-03T08:00:00.000Z", "", "", "abc"},
		[]string{"o4", "c1", "not a date", "", "", "999"},
		[]string{"o5", "c1", "2020-12-31T23:00:00.000Z", "", "", "7.5"},
	)
	svc := NewOrderService(store)

	report, err := svc.WeeklySales(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.WeeklySales{
		{Week: "2024-02", TotalSales: 50, OrderCount: 1},
		{Week: "2024-01", TotalSales: 100, OrderCount: 2},
		{Week: "2020-53", TotalSales: 7.5, OrderCount: 1},
	}, report)
}

func TestWeekKeyUsesISOYear(t *testing.T) {
	// Monday 2024-12-30 belongs to ISO week 1 of 2025
	assert.Equal(t, "2025-01", weekKey(time.Date(2024, 12, 30, 12, 0, 0, 0, time.UTC)))
	// Friday 2021-01-01 belongs to ISO week 53 of 2020
	assert.Equal(t, "2020-53", weekKey(time.Date(2021, 1, 1, 12, 0, 0, 0, time.UTC)))
}
