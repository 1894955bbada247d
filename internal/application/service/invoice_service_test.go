package service

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetline/mithas-api/internal/domain/entity"
	"github.com/sweetline/mithas-api/internal/infrastructure/printing"
	"github.com/sweetline/mithas-api/pkg/utils"
)

type fakeRenderer struct {
	lastHTML string
}

func (f *fakeRenderer) Render(ctx context.Context, req *printing.RenderRequest) (*printing.RenderResult, error) {
	f.lastHTML = req.HTML
	return &printing.RenderResult{PDFData: []byte("%PDF-1.4 fake")}, nil
}
func (f *fakeRenderer) Close() error { return nil }

func newInvoiceFixture() (*InvoiceService, *fakeSaleRepo, *fakeSimpleSaleRepo, *fakeRenderer) {
	sales := &fakeSaleRepo{}
	simple := &fakeSimpleSaleRepo{}
	renderer := &fakeRenderer{}
	svc := NewInvoiceService(sales, simple, renderer, BusinessInfo{
		Name:    "Mithas Sweets Factory",
		Address: "12 Halwai Gali, Jaipur",
		Phone:   "98765 43210",
	}, 10*time.Second)
	return svc, sales, simple, renderer
}

func TestBuildInvoice_FromItemisedSale(t *testing.T) {
	svc, sales, _, _ := newInvoiceFixture()

	saleID := uuid.New()
	sales.sales = []entity.Sale{{
		ID:           saleID,
		CustomerName: "Anita",
		SubTotal:     650,
		Discount:     50,
		Tax:          10,
		TotalAmount:  610,
		SaleDate:     time.Date(2025, time.July, 4, 0, 0, 0, 0, time.UTC),
		Items: []entity.SaleItem{
			{ProductName: "Kaju Katli", Quantity: 2, UnitPrice: 200, LineTotal: 400},
			{ProductName: "Rasgulla", Quantity: 1, UnitPrice: 250, LineTotal: 250},
		},
	}}

	invoice, err := svc.BuildInvoice(context.Background(), saleID)
	require.NoError(t, err)

	assert.Equal(t, utils.InvoiceNumber(saleID), invoice.Number)
	assert.Len(t, invoice.Number, 8)
	require.Len(t, invoice.Lines, 2)
	assert.Equal(t, 610.0, invoice.Total)
}

func TestBuildInvoice_FallsThroughToSimpleSale(t *testing.T) {
	svc, _, simple, _ := newInvoiceFixture()

	saleID := uuid.New()
	simple.sales = []entity.SimpleSale{{
		ID:           saleID,
		CustomerName: "Walk-in",
		Amount:       320,
		SaleDate:     time.Date(2025, time.July, 5, 0, 0, 0, 0, time.UTC),
	}}

	invoice, err := svc.BuildInvoice(context.Background(), saleID)
	require.NoError(t, err)
	require.Len(t, invoice.Lines, 1)
	assert.Equal(t, "Sale", invoice.Lines[0].Name)
	assert.Equal(t, 320.0, invoice.Total)
}

func TestBuildInvoice_NotFound(t *testing.T) {
	svc, _, _, _ := newInvoiceFixture()
	_, err := svc.BuildInvoice(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestBuildInvoice_RebuildsNonFiniteLineTotals(t *testing.T) {
	svc, sales, _, _ := newInvoiceFixture()

	saleID := uuid.New()
	sales.sales = []entity.Sale{{
		ID:           saleID,
		CustomerName: "Anita",
		Items: []entity.SaleItem{
			{ProductName: "Barfi", Quantity: 3, UnitPrice: 40, LineTotal: math.NaN()},
			{ProductName: "Peda", Quantity: 2, UnitPrice: 25, LineTotal: math.Inf(1)},
		},
	}}

	invoice, err := svc.BuildInvoice(context.Background(), saleID)
	require.NoError(t, err)
	assert.Equal(t, 120.0, invoice.Lines[0].LineTotal)
	assert.Equal(t, 50.0, invoice.Lines[1].LineTotal)
}

func TestRenderHTML_CurrencyAndConditionalRows(t *testing.T) {
	svc, _, _, _ := newInvoiceFixture()

	invoice := &Invoice{
		Number:       "a1b2c3d4",
		Date:         time.Date(2025, time.July, 4, 0, 0, 0, 0, time.UTC),
		CustomerName: "Anita",
		Lines:        []InvoiceLine{{Name: "Kaju Katli", Quantity: 2, UnitPrice: 200, LineTotal: 400}},
		SubTotal:     400,
		Total:        400,
		Business:     BusinessInfo{Name: "Mithas Sweets Factory"},
	}

	html, err := svc.RenderHTML(invoice)
	require.NoError(t, err)
	assert.Contains(t, html, "Invoice #a1b2c3d4")
	assert.Contains(t, html, "₹400.00")
	assert.NotContains(t, html, "Discount")
	assert.NotContains(t, html, "Tax")

	invoice.Discount = 50
	invoice.Tax = 10
	html, err = svc.RenderHTML(invoice)
	require.NoError(t, err)
	assert.Contains(t, html, "Discount")
	assert.Contains(t, html, "-₹50.00")
	assert.Contains(t, html, "₹10.00")
}

func TestGeneratePDF_FileName(t *testing.T) {
	svc, sales, _, renderer := newInvoiceFixture()

	saleID := uuid.New()
	sales.sales = []entity.Sale{{ID: saleID, CustomerName: "Anita", SaleDate: time.Now()}}

	pdf, err := svc.GeneratePDF(context.Background(), saleID)
	require.NoError(t, err)
	assert.Equal(t, "invoice-"+utils.InvoiceNumber(saleID)+".pdf", pdf.FileName)
	assert.NotEmpty(t, pdf.Data)
	assert.Contains(t, renderer.lastHTML, "Mithas Sweets Factory")
}

func TestINR(t *testing.T) {
	assert.Equal(t, "₹0.00", INR(0))
	assert.Equal(t, "₹1234.50", INR(1234.5))
}
