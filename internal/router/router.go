package router

import (
	"github.com/gin-gonic/gin"

	"github.com/catharsis02/usc.kiit-shopvision/internal/auth"
	"github.com/catharsis02/usc.kiit-shopvision/internal/billing"
	"github.com/catharsis02/usc.kiit-shopvision/internal/catalog"
	"github.com/catharsis02/usc.kiit-shopvision/internal/dashboard"
	"github.com/catharsis02/usc.kiit-shopvision/internal/franchise"
	"github.com/catharsis02/usc.kiit-shopvision/internal/middleware"
	"github.com/catharsis02/usc.kiit-shopvision/internal/scanner"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth      *auth.Handler
	Catalog   *catalog.Handler
	Scanner   *scanner.Handler
	Billing   *billing.Handler
	Franchise *franchise.Handler
	Dashboard *dashboard.Handler
}

// New assembles the route tree. Franchise routes carry the billing
// scanner and per-shop dashboard; admin routes carry franchise CRUD
// and the aggregate dashboard.
func New(r *gin.Engine, h Handlers) *gin.Engine {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.POST("/auth/login", h.Auth.Login)

	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/catalog", h.Catalog.List)
	}

	franchiseRoutes := r.Group("/")
	franchiseRoutes.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleFranchise),
	)
	{
		franchiseRoutes.POST("/scan", h.Scanner.Scan)

		franchiseRoutes.GET("/bill", h.Billing.Get)
		franchiseRoutes.POST("/bill/items", h.Billing.AddItem)
		franchiseRoutes.PATCH("/bill/items/:itemID", h.Billing.UpdateQuantity)
		franchiseRoutes.DELETE("/bill/items/:itemID", h.Billing.RemoveItem)
		franchiseRoutes.DELETE("/bill", h.Billing.Clear)
		franchiseRoutes.POST("/bill/complete", h.Billing.Complete)
		franchiseRoutes.GET("/bill/history", h.Billing.History)

		franchiseRoutes.GET("/dashboard/stats", h.Dashboard.FranchiseStats)

		franchiseRoutes.POST("/logout", h.Billing.Logout)
	}

	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		admin.POST("/franchises", h.Franchise.Create)
		admin.GET("/franchises", h.Franchise.List)
		admin.GET("/franchises/:id", h.Franchise.Get)
		admin.PATCH("/franchises/:id", h.Franchise.Update)
		admin.DELETE("/franchises/:id", h.Franchise.Delete)

		admin.GET("/dashboard/stats", h.Dashboard.AdminStats)
	}

	return r
}
