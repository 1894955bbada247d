package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sweetline/mithas-api/internal/domain/entity"
	"github.com/sweetline/mithas-api/internal/domain/repository"
	"github.com/sweetline/mithas-api/internal/infrastructure/printing"
	"github.com/sweetline/mithas-api/pkg/apperror"
	"github.com/sweetline/mithas-api/pkg/utils"
)

// BusinessInfo is the letterhead printed on every invoice
type BusinessInfo struct {
	Name    string
	Address string
	Phone   string
}

// Invoice is the display model an invoice is rendered from. It is built
// entirely from the persisted sale; the live catalog plays no part.
type Invoice struct {
	Number          string
	Date            time.Time
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Lines           []InvoiceLine
	SubTotal        float64
	Discount        float64
	Tax             float64
	Total           float64
	Business        BusinessInfo
}

// InvoiceLine is one printed row of an invoice
type InvoiceLine struct {
	Name      string
	Quantity  float64
	UnitPrice float64
	LineTotal float64
}

// InvoicePDF is a rendered invoice ready for download
type InvoicePDF struct {
	Number   string
	FileName string
	Data     []byte
}

// InvoiceService renders sales into printable invoices
type InvoiceService struct {
	saleRepo       repository.SaleRepository
	simpleSaleRepo repository.SimpleSaleRepository
	renderer       printing.PDFRenderer
	business       BusinessInfo
	renderTimeout  time.Duration
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	saleRepo repository.SaleRepository,
	simpleSaleRepo repository.SimpleSaleRepository,
	renderer printing.PDFRenderer,
	business BusinessInfo,
	renderTimeout time.Duration,
) *InvoiceService {
	return &InvoiceService{
		saleRepo:       saleRepo,
		simpleSaleRepo: simpleSaleRepo,
		renderer:       renderer,
		business:       business,
		renderTimeout:  renderTimeout,
	}
}

// BuildInvoice assembles the display model for a sale. Itemised sales are
// looked up first; the ID falls through to the simple sale table.
func (s *InvoiceService) BuildInvoice(ctx context.Context, saleID uuid.UUID) (*Invoice, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale != nil {
		return s.fromSale(sale), nil
	}

	simple, err := s.simpleSaleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if simple == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return s.fromSimpleSale(simple), nil
}

func (s *InvoiceService) fromSale(sale *entity.Sale) *Invoice {
	lines := make([]InvoiceLine, 0, len(sale.Items))
	for _, item := range sale.Items {
		total := item.LineTotal
		// A corrupt stored total is rebuilt from its factors rather than
		// printed as NaN or Inf.
		if math.IsNaN(total) || math.IsInf(total, 0) {
			total = item.Quantity * item.UnitPrice
		}
		lines = append(lines, InvoiceLine{
			Name:      item.ProductName,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: total,
		})
	}

	return &Invoice{
		Number:          utils.InvoiceNumber(sale.ID),
		Date:            sale.SaleDate,
		CustomerName:    sale.CustomerName,
		CustomerPhone:   sale.CustomerPhone,
		CustomerAddress: sale.CustomerAddress,
		Lines:           lines,
		SubTotal:        sale.SubTotal,
		Discount:        sale.Discount,
		Tax:             sale.Tax,
		Total:           sale.TotalAmount,
		Business:        s.business,
	}
}

func (s *InvoiceService) fromSimpleSale(sale *entity.SimpleSale) *Invoice {
	return &Invoice{
		Number:        utils.InvoiceNumber(sale.ID),
		Date:          sale.SaleDate,
		CustomerName:  sale.CustomerName,
		CustomerPhone: sale.CustomerPhone,
		Lines: []InvoiceLine{
			{Name: "Sale", Quantity: 1, UnitPrice: sale.Amount, LineTotal: sale.Amount},
		},
		SubTotal: sale.Amount,
		Total:    sale.Amount,
		Business: s.business,
	}
}

// RenderHTML renders the invoice display model into a printable document
func (s *InvoiceService) RenderHTML(invoice *Invoice) (string, error) {
	var buf bytes.Buffer
	if err := invoiceTemplate.Execute(&buf, invoice); err != nil {
		return "", fmt.Errorf("render invoice %s: %w", invoice.Number, err)
	}
	return buf.String(), nil
}

// GeneratePDF builds, renders and prints the invoice for a sale
func (s *InvoiceService) GeneratePDF(ctx context.Context, saleID uuid.UUID) (*InvoicePDF, error) {
	invoice, err := s.BuildInvoice(ctx, saleID)
	if err != nil {
		return nil, err
	}

	html, err := s.RenderHTML(invoice)
	if err != nil {
		return nil, err
	}

	result, err := s.renderer.Render(ctx, &printing.RenderRequest{
		HTML:    html,
		Title:   "Invoice " + invoice.Number,
		Timeout: s.renderTimeout,
	})
	if err != nil {
		return nil, err
	}

	return &InvoicePDF{
		Number:   invoice.Number,
		FileName: fmt.Sprintf("invoice-%s.pdf", invoice.Number),
		Data:     result.PDFData,
	}, nil
}

// INR formats an amount as Indian rupees with two decimals
func INR(amount float64) string {
	return fmt.Sprintf("₹%.2f", amount)
}

var invoiceTemplate = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"inr": INR,
	"qty": func(q float64) string { return fmt.Sprintf("%g", q) },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
  body { font-family: "Helvetica Neue", Arial, sans-serif; color: #222; margin: 0; }
  .header { text-align: center; border-bottom: 2px solid #b5651d; padding-bottom: 12px; }
  .header h1 { margin: 0; color: #b5651d; }
  .header p { margin: 2px 0; font-size: 12px; }
  .meta { display: flex; justify-content: space-between; margin: 16px 0; font-size: 13px; }
  table { width: 100%; border-collapse: collapse; font-size: 13px; }
  th { background: #fdf3e7; text-align: left; padding: 6px 8px; border-bottom: 1px solid #ddd; }
  td { padding: 6px 8px; border-bottom: 1px solid #eee; }
  .num { text-align: right; }
  .totals { margin-top: 12px; margin-left: auto; width: 45%; font-size: 13px; }
  .totals td { border: none; padding: 3px 8px; }
  .totals .grand td { border-top: 1px solid #222; font-weight: bold; }
  .footer { margin-top: 28px; text-align: center; font-size: 11px; color: #888; }
</style>
</head>
<body>
<div class="header">
  <h1>{{.Business.Name}}</h1>
  {{if .Business.Address}}<p>{{.Business.Address}}</p>{{end}}
  {{if .Business.Phone}}<p>Phone: {{.Business.Phone}}</p>{{end}}
</div>
<div class="meta">
  <div>
    <strong>Billed to</strong><br>
    {{.CustomerName}}<br>
    {{if .CustomerPhone}}{{.CustomerPhone}}<br>{{end}}
    {{if .CustomerAddress}}{{.CustomerAddress}}{{end}}
  </div>
  <div>
    <strong>Invoice #{{.Number}}</strong><br>
    Date: {{.Date.Format "02 Jan 2006"}}
  </div>
</div>
<table>
  <thead>
    <tr><th>Item</th><th class="num">Qty</th><th class="num">Rate</th><th class="num">Amount</th></tr>
  </thead>
  <tbody>
    {{range .Lines}}
    <tr>
      <td>{{.Name}}</td>
      <td class="num">{{qty .Quantity}}</td>
      <td class="num">{{inr .UnitPrice}}</td>
      <td class="num">{{inr .LineTotal}}</td>
    </tr>
    {{end}}
  </tbody>
</table>
<table class="totals">
  <tr><td>Subtotal</td><td class="num">{{inr .SubTotal}}</td></tr>
  {{if gt .Discount 0.0}}<tr><td>Discount</td><td class="num">-{{inr .Discount}}</td></tr>{{end}}
  {{if gt .Tax 0.0}}<tr><td>Tax</td><td class="num">{{inr .Tax}}</td></tr>{{end}}
  <tr class="grand"><td>Total</td><td class="num">{{inr .Total}}</td></tr>
</table>
<div class="footer">Thank you for your business.</div>
</body>
</html>`))
