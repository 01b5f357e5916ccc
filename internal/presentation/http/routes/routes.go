package routes

import (
	"net/http"

	"github.com/billerone/billerone-web/internal/application/service"
	"github.com/billerone/billerone-web/internal/config"
	"github.com/billerone/billerone-web/internal/domain/entity"
	"github.com/billerone/billerone-web/internal/presentation/http/handler"
	"github.com/billerone/billerone-web/internal/presentation/http/middleware"
	"github.com/billerone/billerone-web/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth       *handler.AuthHandler
	Notice     *handler.NoticeHandler
	Clients    *handler.ResourceHandler[entity.Client]
	Vendors    *handler.ResourceHandler[entity.Vendor]
	Sellers    *handler.ResourceHandler[entity.Seller]
	Articles   *handler.ResourceHandler[entity.Article]
	Entries    *handler.ResourceHandler[entity.AccountingEntry]
	Invoices   *handler.ResourceHandler[entity.Invoice]
	Invoice    *handler.InvoiceHandler
	Receipt    *handler.ReceiptHandler
	Accounting *handler.AccountingHandler
	Draft      *handler.DraftHandler
	Dashboard  *handler.DashboardHandler
}

// NewHandlers wires every handler to its service.
func NewHandlers(
	authService *service.AuthService,
	invoiceService *service.InvoiceService,
	accountingService *service.AccountingService,
	dashboardService *service.DashboardService,
	receiptService *service.ReceiptService,
) *Handlers {
	return &Handlers{
		Auth:   handler.NewAuthHandler(authService),
		Notice: handler.NewNoticeHandler(),
		Clients: handler.NewResourceHandler(func(ws *service.Workspace) *service.ResourceList[entity.Client] {
			return ws.Clients
		}),
		Vendors: handler.NewResourceHandler(func(ws *service.Workspace) *service.ResourceList[entity.Vendor] {
			return ws.Vendors
		}),
		Sellers: handler.NewResourceHandler(func(ws *service.Workspace) *service.ResourceList[entity.Seller] {
			return ws.Sellers
		}),
		Articles: handler.NewResourceHandler(func(ws *service.Workspace) *service.ResourceList[entity.Article] {
			return ws.Articles
		}),
		Entries: handler.NewResourceHandler(func(ws *service.Workspace) *service.ResourceList[entity.AccountingEntry] {
			return ws.Entries
		}),
		Invoices: handler.NewResourceHandler(func(ws *service.Workspace) *service.ResourceList[entity.Invoice] {
			return ws.Invoices
		}),
		Invoice:    handler.NewInvoiceHandler(invoiceService),
		Receipt:    handler.NewReceiptHandler(receiptService),
		Accounting: handler.NewAccountingHandler(accountingService),
		Draft:      handler.NewDraftHandler(invoiceService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
	}
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager  *utils.JWTManager
	Workspaces  *service.WorkspaceStore
	RateLimiter *middleware.SessionRateLimiter
	Cfg         *config.Config
	Logger      *zap.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "ok",
			"service":    deps.Cfg.App.Name,
			"workspaces": deps.Workspaces.Len(),
		})
	}
	router.GET("/health", health)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", health)

		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager, deps.Workspaces))
		if deps.RateLimiter != nil {
			protected.Use(deps.RateLimiter.Middleware())
		}

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(rg *gin.RouterGroup, h *Handlers) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
	}
}

func registerProtectedRoutes(rg *gin.RouterGroup, h *Handlers) {
	auth := rg.Group("/auth")
	{
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/me", h.Auth.Me)
	}

	notices := rg.Group("/notices")
	{
		notices.GET("", h.Notice.List)
		notices.DELETE("/:id", h.Notice.Dismiss)
	}

	registerResource(rg.Group("/clients"), h.Clients)
	registerResource(rg.Group("/vendors"), h.Vendors)
	registerResource(rg.Group("/sellers"), h.Sellers)
	registerResource(rg.Group("/articles"), h.Articles)

	entries := rg.Group("/entries")
	{
		entries.GET("", h.Entries.List)
		entries.POST("", h.Accounting.Submit)
		entries.GET("/suggestion/:invoice_id", h.Accounting.Suggest)
	}

	invoices := rg.Group("/invoices")
	{
		invoices.GET("", h.Invoices.List)
		invoices.GET("/export", h.Invoice.Export)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.GET("/:id/pdf", h.Invoice.PDF)
		invoices.POST("/:id/receipt", h.Receipt.Print)
	}

	rg.GET("/printer/status", h.Receipt.Status)

	draft := rg.Group("/draft")
	{
		draft.GET("", h.Draft.Get)
		draft.PUT("", h.Draft.SetHeader)
		draft.DELETE("", h.Draft.Reset)
		draft.GET("/products", h.Draft.SearchProducts)
		draft.POST("/items", h.Draft.AddItem)
		draft.PUT("/items/:key", h.Draft.SetQuantity)
		draft.DELETE("/items/:key", h.Draft.RemoveItem)
		draft.POST("/submit", h.Draft.Submit)
	}

	rg.GET("/dashboard", h.Dashboard.GetStats)
	rg.GET("/reports/sales", h.Dashboard.GetSalesReport)
}

type resourceRoutes interface {
	List(c *gin.Context)
	Form(c *gin.Context)
	CloseForm(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func registerResource(rg *gin.RouterGroup, h resourceRoutes) {
	rg.GET("", h.List)
	rg.GET("/form", h.Form)
	rg.DELETE("/form", h.CloseForm)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}
