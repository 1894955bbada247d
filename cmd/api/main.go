package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/sweetline/mithas-api/internal/application/service"
	"github.com/sweetline/mithas-api/internal/config"
	"github.com/sweetline/mithas-api/internal/infrastructure/catalogfile"
	"github.com/sweetline/mithas-api/internal/infrastructure/database"
	"github.com/sweetline/mithas-api/internal/infrastructure/printing"
	"github.com/sweetline/mithas-api/internal/infrastructure/repository"
	"github.com/sweetline/mithas-api/internal/presentation/http/handler"
	"github.com/sweetline/mithas-api/internal/presentation/http/routes"
	"github.com/sweetline/mithas-api/pkg/utils"
)

func main() {
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.SeedAdminUser(db); err != nil {
		log.Printf("Warning: Failed to seed admin user: %v", err)
	}

	// Flat-file catalog stores
	productStore, err := catalogfile.NewProductStore(cfg.Catalog.Dir)
	if err != nil {
		log.Fatalf("Failed to open product catalog: %v", err)
	}
	stockStore, err := catalogfile.NewStockStore(cfg.Catalog.Dir)
	if err != nil {
		log.Fatalf("Failed to open stock ledger: %v", err)
	}

	// PDF renderer
	renderer, err := printing.NewChromedpRenderer(&printing.ChromedpConfig{
		DefaultTimeout: cfg.Invoice.RenderTimeout,
		RemoteURL:      cfg.Invoice.ChromeRemoteURL,
		NoSandbox:      true,
	})
	if err != nil {
		log.Fatalf("Failed to initialize PDF renderer: %v", err)
	}
	defer renderer.Close()

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	advanceRepo := repository.NewAdvanceRepository(db)
	salaryRepo := repository.NewSalaryRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	simpleSaleRepo := repository.NewSimpleSaleRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager)
	employeeService := service.NewEmployeeService(employeeRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo, employeeRepo)
	advanceService := service.NewAdvanceService(advanceRepo, employeeRepo)
	payrollService := service.NewPayrollService(employeeRepo, attendanceRepo, advanceRepo, salaryRepo)
	saleService := service.NewSaleService(saleRepo, simpleSaleRepo, productStore)
	productService := service.NewProductService(productStore)
	stockService := service.NewStockService(stockStore)
	invoiceService := service.NewInvoiceService(saleRepo, simpleSaleRepo, renderer, service.BusinessInfo{
		Name:    cfg.Invoice.BusinessName,
		Address: cfg.Invoice.BusinessAddress,
		Phone:   cfg.Invoice.BusinessPhone,
	}, cfg.Invoice.RenderTimeout)
	dashboardService := service.NewDashboardService(employeeRepo, saleRepo, simpleSaleRepo, productStore, stockStore)

	// Handlers
	handlers := &routes.Handlers{
		Auth:       handler.NewAuthHandler(authService, cfg),
		Employee:   handler.NewEmployeeHandler(employeeService),
		Attendance: handler.NewAttendanceHandler(attendanceService),
		Advance:    handler.NewAdvanceHandler(advanceService),
		Salary:     handler.NewSalaryHandler(payrollService),
		Sale:       handler.NewSaleHandler(saleService),
		Product:    handler.NewProductHandler(productService),
		Stock:      handler.NewStockHandler(stockService),
		Invoice:    handler.NewInvoiceHandler(invoiceService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
	}

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	addr := ":" + cfg.App.Port
	log.Printf("Starting %s on %s", cfg.App.Name, addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
