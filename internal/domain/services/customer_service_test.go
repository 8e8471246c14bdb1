package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NotMomex/my-store-crm/internal/domain/models"
	"github.com/NotMomex/my-store-crm/internal/error/apperror"
)

func TestCustomerLifecycle(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()
	svc := &CustomerService{Store: store, now: fixedClock}

	id, err := svc.Create(ctx, models.CustomerInput{
		Name:  strPtr("Ann Lee"),
		Phone: strPtr("0901"),
	})
	require.NoError(t, err)
	assert.Len(t, id, 16)

	customer, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee", customer.Name)
	assert.Equal(t, "", customer.Email)
	assert.Equal(t, "2024-03-14T09:30:00.000Z", customer.CreatedAt)

	updated, err := svc.Update(ctx, id, models.CustomerInput{Address: strPtr("12 Market St")})
	require.NoError(t, err)
	assert.Equal(t, "12 Market St", updated.Address)

	customer, err = svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee", customer.Name, "untouched fields survive an update")
	assert.Equal(t, "0901", customer.Phone)
	assert.Equal(t, id, customer.ID)
	assert.Equal(t, "2024-03-14T09:30:00.000Z", customer.CreatedAt)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.Delete(ctx, id))
	_, err = svc.GetByID(ctx, id)
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, "Customer not found", apperror.MessageOf(err))
}

func TestCustomerMissing(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()
	svc := NewCustomerService(store)

	_, err := svc.Update(ctx, "nope", models.CustomerInput{Name: strPtr("x")})
	assert.True(t, apperror.IsNotFound(err))
	assert.True(t, apperror.IsNotFound(svc.Delete(ctx, "nope")))

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestProductDefaults(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()
	svc := &ProductService{Store: store, now: fixedClock}

	id, err := svc.Create(ctx, models.ProductInput{Name: strPtr("Tea")})
	require.NoError(t, err)

	product, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "0", product.Price)
	assert.Equal(t, "0", product.StockQuantity)

	price := models.FlexString("45000")
	_, err = svc.Update(ctx, id, models.ProductInput{Price: &price})
	require.NoError(t, err)

	product, err = svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "45000", product.Price)
	assert.Equal(t, "Tea", product.Name)
}
