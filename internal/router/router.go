package router

import (
	"time"

	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/config"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/handler"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/middleware"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/repository"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/service"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	stockRepo := repository.NewStockItemRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	customerSvc := service.NewCustomerService(customerRepo)
	stockSvc := service.NewStockService(stockRepo, dispatcher, cfg.AlertEmail)
	recipeSvc := service.NewRecipeService(recipeRepo)
	allocator := service.NewInvoiceNumberAllocator(invoiceRepo)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, customerSvc, allocator, dispatcher, cfg.PDFStoragePath)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	customersH := handler.NewCustomersHandler(customerSvc)
	stockH := handler.NewStockItemsHandler(stockSvc, rdb)
	recipesH := handler.NewRecipesHandler(recipeSvc)
	invoicesH := handler.NewInvoicesHandler(invoiceSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/", handler.Welcome)
	r.GET("/health", handler.Health(db, rdb))
	r.POST("/api/token", middleware.LoginRateLimiter(), authH.Token)
	r.GET("/api/stock_items_public", stockH.ListPublic)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret, userRepo)
	api := r.Group("/api", jwtMW)
	{
		api.GET("/customers", customersH.List)
		api.GET("/customers/:id", customersH.Get)

		api.GET("/stock_items", stockH.List)
		api.POST("/stock_items", stockH.Create)
		api.PUT("/stock_items/:item_id", stockH.Update)
		api.DELETE("/stock_items/:item_id", stockH.Delete)
		api.POST("/stock_items/:item_id/purchases", stockH.RecordPurchase)

		api.GET("/recipes", recipesH.List)
		api.POST("/recipes", recipesH.Create)
		api.PUT("/recipes/:recipe_id", recipesH.Update)
		api.DELETE("/recipes/:recipe_id", recipesH.Delete)

		api.GET("/invoices", invoicesH.List)
		api.POST("/invoices", invoicesH.Create)
		api.PUT("/invoices/:invoice_id", invoicesH.Revise)
		api.GET("/invoices/:invoice_id/pdf", invoicesH.DownloadPDF)
		api.POST("/invoices/:invoice_id/send", invoicesH.Send)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
