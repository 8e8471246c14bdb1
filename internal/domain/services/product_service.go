package services

import (
	"context"
	"time"

	"github.com/NotMomex/my-store-crm/internal/domain/models"
	"github.com/NotMomex/my-store-crm/internal/infrastructure/sheetstore"
)

// InterfaceProductService product service interface
type InterfaceProductService interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, in models.ProductInput) (string, error)
	Update(ctx context.Context, id string, in models.ProductInput) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

// ProductService manages rows of the Products sheet
type ProductService struct {
	Store *sheetstore.Store
	now   func() time.Time
}

// NewProductService creates a product service
func NewProductService(store *sheetstore.Store) InterfaceProductService {
	return &ProductService{Store: store, now: time.Now}
}

// 1 GetAll lists every product in sheet order
func (s *ProductService) GetAll(ctx context.Context) ([]models.Product, error) {
	rows, err := s.Store.ListRows(ctx, models.SheetProducts)
	if err != nil {
		return nil, err
	}
	products := make([]models.Product, 0, len(rows))
	for _, r := range rows {
		products = append(products, models.ProductFromRecord(r))
	}
	return products, nil
}

// 2 GetByID returns one product
func (s *ProductService) GetByID(ctx context.Context, id string) (*models.Product, error) {
	rec, err := s.Store.FindRow(ctx, models.SheetProducts, id)
	if err != nil {
		return nil, notFoundAs(err, "Product not found")
	}
	product := models.ProductFromRecord(rec)
	return &product, nil
}

// 3 Create appends a product and returns its new ID
func (s *ProductService) Create(ctx context.Context, in models.ProductInput) (string, error) {
	product := models.NewProduct(sheetstore.GenerateID(), models.FormatTimestamp(s.now()), in)
	if err := s.Store.AppendRow(ctx, models.SheetProducts, product.Record()); err != nil {
		return "", err
	}
	return product.ID, nil
}

// 4 Update merges the supplied fields over the stored product
func (s *ProductService) Update(ctx context.Context, id string, in models.ProductInput) (*models.Product, error) {
	product, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Apply(in)
	if err := s.Store.PatchRow(ctx, models.SheetProducts, id, product.Record()); err != nil {
		return nil, notFoundAs(err, "Product not found")
	}
	return product, nil
}

// 5 Delete removes a product. Order items referencing it are kept.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	return notFoundAs(s.Store.DeleteRow(ctx, models.SheetProducts, id), "Product not found")
}
