package service

import (
	"context"
	"time"

	"github.com/sweetline/mithas-api/internal/domain/repository"
)

// DashboardService aggregates headline figures for the admin landing page
type DashboardService struct {
	employeeRepo   repository.EmployeeRepository
	saleRepo       repository.SaleRepository
	simpleSaleRepo repository.SimpleSaleRepository
	productRepo    repository.ProductRepository
	stockRepo      repository.StockRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	employeeRepo repository.EmployeeRepository,
	saleRepo repository.SaleRepository,
	simpleSaleRepo repository.SimpleSaleRepository,
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
) *DashboardService {
	return &DashboardService{
		employeeRepo:   employeeRepo,
		saleRepo:       saleRepo,
		simpleSaleRepo: simpleSaleRepo,
		productRepo:    productRepo,
		stockRepo:      stockRepo,
	}
}

// DashboardStats is the headline summary for the current calendar month
type DashboardStats struct {
	ActiveEmployees int64   `json:"active_employees"`
	Products        int     `json:"products"`
	StockItems      int     `json:"stock_items"`
	MonthSalesCount int64   `json:"month_sales_count"`
	MonthSalesTotal float64 `json:"month_sales_total"`
}

// GetStats computes the dashboard summary as of now
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	now := time.Now()
	start, end := monthWindow(int(now.Month()), now.Year())
	// End of the last day, so today's sales with a time component count.
	end = endOfDay(end)

	employees, err := s.employeeRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	stock, err := s.stockRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	saleCount, saleTotal, err := s.saleRepo.TotalsBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	simpleCount, simpleTotal, err := s.simpleSaleRepo.TotalsBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		ActiveEmployees: employees,
		Products:        len(products),
		StockItems:      len(stock),
		MonthSalesCount: saleCount + simpleCount,
		MonthSalesTotal: saleTotal + simpleTotal,
	}, nil
}
