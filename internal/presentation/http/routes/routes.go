package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sweetline/mithas-api/internal/config"
	"github.com/sweetline/mithas-api/internal/presentation/http/handler"
	"github.com/sweetline/mithas-api/internal/presentation/http/middleware"
	"github.com/sweetline/mithas-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth       *handler.AuthHandler
	Employee   *handler.EmployeeHandler
	Attendance *handler.AttendanceHandler
	Advance    *handler.AdvanceHandler
	Salary     *handler.SalaryHandler
	Sale       *handler.SaleHandler
	Product    *handler.ProductHandler
	Stock      *handler.StockHandler
	Invoice    *handler.InvoiceHandler
	Dashboard  *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// Target of the unauthenticated-browser redirect. The API serves no
	// UI itself; a frontend deployment rewrites this route.
	router.GET("/login", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Login required", "login": "/api/v1/auth/login"})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
		}

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager, deps.Cfg.JWT.CookieName))

		rateLimiter := middleware.NewClientRateLimiter(&deps.Cfg.RateLimit)
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.Profile)

	protected.GET("/dashboard", h.Dashboard.Stats)

	employees := protected.Group("/employees")
	{
		employees.POST("", h.Employee.Create)
		employees.GET("", h.Employee.List)
		employees.GET("/:id", h.Employee.Get)
		employees.PUT("/:id", h.Employee.Update)
		employees.DELETE("/:id", h.Employee.Delete)
		employees.GET("/:id/attendance", h.Attendance.Monthly)
		employees.GET("/:id/advances", h.Advance.ListByEmployee)
	}

	attendance := protected.Group("/attendance")
	{
		attendance.POST("", h.Attendance.Mark)
		attendance.PUT("", h.Attendance.Update)
		attendance.GET("/daily", h.Attendance.Daily)
		attendance.DELETE("/:id", h.Attendance.Delete)
	}

	advances := protected.Group("/advances")
	{
		advances.POST("", h.Advance.Create)
		advances.DELETE("/:id", h.Advance.Delete)
	}

	salaries := protected.Group("/salaries")
	{
		salaries.POST("/generate", h.Salary.Generate)
		salaries.GET("", h.Salary.List)
		salaries.GET("/:id", h.Salary.Get)
		salaries.PATCH("/:id/pay", h.Salary.MarkPaid)
	}

	sales := protected.Group("/sales")
	{
		sales.POST("", h.Sale.Create)
		sales.GET("", h.Sale.List)
		sales.POST("/simple", h.Sale.CreateSimple)
		sales.GET("/simple", h.Sale.ListSimple)
		sales.DELETE("/simple/:id", h.Sale.DeleteSimple)
		sales.GET("/:id", h.Sale.Get)
		sales.DELETE("/:id", h.Sale.Delete)
		sales.GET("/:id/invoice", h.Invoice.Download)
		sales.GET("/:id/invoice/preview", h.Invoice.Preview)
	}

	invoices := protected.Group("/invoices")
	{
		// Sale ID via ?sale_id= or JSON body, for older clients.
		invoices.GET("/download", h.Invoice.Download)
		invoices.POST("/download", h.Invoice.Download)
	}

	products := protected.Group("/products")
	{
		products.POST("", h.Product.Create)
		products.GET("", h.Product.List)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}

	stock := protected.Group("/stock")
	{
		stock.POST("", h.Stock.Upsert)
		stock.GET("", h.Stock.List)
		stock.PATCH("/:id/adjust", h.Stock.Adjust)
		stock.DELETE("/:id", h.Stock.Delete)
	}
}
