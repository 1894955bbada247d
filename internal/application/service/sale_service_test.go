package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetline/mithas-api/internal/domain/entity"
	"github.com/sweetline/mithas-api/internal/domain/repository"
)

type fakeSaleRepo struct {
	sales []entity.Sale
}

func (f *fakeSaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	f.sales = append(f.sales, *sale)
	return nil
}
func (f *fakeSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	for i := range f.sales {
		if f.sales[i].ID == id {
			return &f.sales[i], nil
		}
	}
	return nil, nil
}
func (f *fakeSaleRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	return f.GetByID(ctx, id)
}
func (f *fakeSaleRepo) List(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	return f.sales, int64(len(f.sales)), nil
}
func (f *fakeSaleRepo) TotalsBetween(ctx context.Context, start, end time.Time) (int64, float64, error) {
	var count int64
	var sum float64
	for _, s := range f.sales {
		if !s.SaleDate.Before(start) && !s.SaleDate.After(end) {
			count++
			sum += s.TotalAmount
		}
	}
	return count, sum, nil
}
func (f *fakeSaleRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeSimpleSaleRepo struct {
	sales []entity.SimpleSale
}

func (f *fakeSimpleSaleRepo) Create(ctx context.Context, sale *entity.SimpleSale) error {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	f.sales = append(f.sales, *sale)
	return nil
}
func (f *fakeSimpleSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.SimpleSale, error) {
	for i := range f.sales {
		if f.sales[i].ID == id {
			return &f.sales[i], nil
		}
	}
	return nil, nil
}
func (f *fakeSimpleSaleRepo) List(ctx context.Context, params *repository.SaleFilterParams) ([]entity.SimpleSale, int64, error) {
	return f.sales, int64(len(f.sales)), nil
}
func (f *fakeSimpleSaleRepo) TotalsBetween(ctx context.Context, start, end time.Time) (int64, float64, error) {
	var count int64
	var sum float64
	for _, s := range f.sales {
		if !s.SaleDate.Before(start) && !s.SaleDate.After(end) {
			count++
			sum += s.Amount
		}
	}
	return count, sum, nil
}
func (f *fakeSimpleSaleRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeProductRepo struct {
	products map[string]entity.Product
}

func (f *fakeProductRepo) List(ctx context.Context) ([]entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Get(ctx context.Context, id string) (*entity.Product, error) {
	if p, ok := f.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}
func (f *fakeProductRepo) Save(ctx context.Context, product *entity.Product) error { return nil }
func (f *fakeProductRepo) Delete(ctx context.Context, id string) error             { return nil }

func newSaleFixture() (*SaleService, *fakeSaleRepo, *fakeProductRepo) {
	sales := &fakeSaleRepo{}
	simple := &fakeSimpleSaleRepo{}
	products := &fakeProductRepo{products: map[string]entity.Product{}}
	return NewSaleService(sales, simple, products), sales, products
}

func TestCreateSale_ComputesTotals(t *testing.T) {
	svc, _, products := newSaleFixture()
	products.products["kaju-katli"] = entity.Product{ID: "kaju-katli", Name: "Kaju Katli"}

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		CustomerName: "Anita",
		Items: []SaleItemInput{
			{ProductID: "kaju-katli", Quantity: 2.0, Price: 200.0},
			{ProductID: "rasgulla", Name: "Rasgulla", Quantity: 1.0, Price: 250.0},
		},
		Discount: 50.0,
		Tax:      10.0,
	})
	require.NoError(t, err)
	require.Len(t, sale.Items, 2)

	assert.Equal(t, 650.0, sale.SubTotal)
	assert.Equal(t, 610.0, sale.TotalAmount)
	assert.Equal(t, 400.0, sale.Items[0].LineTotal)
	assert.Equal(t, "Kaju Katli", sale.Items[0].ProductName)
	assert.Equal(t, "Rasgulla", sale.Items[1].ProductName)
}

func TestCreateSale_DropsInvalidItems(t *testing.T) {
	svc, _, _ := newSaleFixture()

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		CustomerName: "Anita",
		Items: []SaleItemInput{
			{ProductID: "laddu", Quantity: 2.0, Price: 100.0},
			{ProductID: "barfi", Price: 80.0},                         // missing quantity
			{ProductID: "", Quantity: 1.0, Price: 50.0},               // missing product
			{ProductID: "jalebi", Quantity: "abc", Price: 60.0},       // non-numeric quantity
			{ProductID: "peda", Quantity: 1.0, Price: map[string]any{}}, // non-numeric price
		},
	})
	require.NoError(t, err)
	require.Len(t, sale.Items, 1)
	assert.Equal(t, "laddu", sale.Items[0].ProductID)
	assert.Equal(t, 200.0, sale.SubTotal)
	assert.Equal(t, 200.0, sale.TotalAmount)
}

func TestCreateSale_CoercesNumericStrings(t *testing.T) {
	svc, _, _ := newSaleFixture()

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		CustomerName: "Anita",
		Items: []SaleItemInput{
			{ProductID: "laddu", Quantity: "2.5", Price: " 100 "},
		},
		Discount: "nope", // malformed discount reads as 0
	})
	require.NoError(t, err)
	require.Len(t, sale.Items, 1)
	assert.Equal(t, 2.5, sale.Items[0].Quantity)
	assert.Equal(t, 100.0, sale.Items[0].UnitPrice)
	assert.Equal(t, 250.0, sale.SubTotal)
	assert.Equal(t, 0.0, sale.Discount)
}

func TestCreateSale_TotalClampsAtZero(t *testing.T) {
	svc, _, _ := newSaleFixture()

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		CustomerName: "Anita",
		Items: []SaleItemInput{
			{ProductID: "laddu", Quantity: 1.0, Price: 100.0},
		},
		Discount: 500.0,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, sale.TotalAmount)
}

func TestCreateSale_EmptyItemListStillRecords(t *testing.T) {
	svc, sales, _ := newSaleFixture()

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		CustomerName: "Anita",
		Items:        []SaleItemInput{{ProductID: "barfi"}}, // drops to nothing
	})
	require.NoError(t, err)
	assert.Empty(t, sale.Items)
	assert.Equal(t, 0.0, sale.SubTotal)
	assert.Equal(t, 0.0, sale.TotalAmount)
	assert.Len(t, sales.sales, 1)
}

func TestCreateSale_FallsBackToGenericName(t *testing.T) {
	svc, _, _ := newSaleFixture()

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		CustomerName: "Anita",
		Items: []SaleItemInput{
			{ProductID: "unknown-key", Quantity: 1.0, Price: 10.0},
		},
	})
	require.NoError(t, err)
	require.Len(t, sale.Items, 1)
	assert.Equal(t, "Product", sale.Items[0].ProductName)
}

func TestCreateSale_RequiresCustomerName(t *testing.T) {
	svc, _, _ := newSaleFixture()
	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{CustomerName: "  "})
	assert.Error(t, err)
}

func TestCreateSimpleSale(t *testing.T) {
	svc, _, _ := newSaleFixture()

	when := time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC)
	sale, err := svc.CreateSimpleSale(context.Background(), &CreateSimpleSaleInput{
		CustomerName:  "Walk-in",
		Amount:        320,
		PaymentMethod: "cash",
		SaleDate:      &when,
	})
	require.NoError(t, err)
	assert.Equal(t, 320.0, sale.Amount)
	assert.Equal(t, when, sale.SaleDate)

	_, err = svc.CreateSimpleSale(context.Background(), &CreateSimpleSaleInput{CustomerName: "X", Amount: -1})
	assert.Error(t, err)
}
