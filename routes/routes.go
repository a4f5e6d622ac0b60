package routes

import (
	"database/sql"
	"time"

	"restaurant-management-api/auth"
	"restaurant-management-api/config"
	"restaurant-management-api/handlers"
	"restaurant-management-api/middleware"
	"restaurant-management-api/models"
	"restaurant-management-api/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Deps is everything the router needs to wire handlers and middleware.
type Deps struct {
	Config      *config.Config
	Services    *services.Services
	Credentials *auth.Credentials
	Logger      *zap.Logger
	DB          *sql.DB
	Registry    *prometheus.Registry
	LoginLimit  *middleware.RateLimiter
}

// NewRouter builds the engine with the shared middleware and every route.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(d.Logger))
	r.Use(middleware.NewMetrics(d.Registry).Handler())
	r.Use(cors.New(corsConfig(d.Config.CORSOrigins)))

	r.GET("/health", handlers.Health(d.DB))
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))

	SetupRoutes(r, d)
	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	// Session cookies only travel cross-origin to explicitly listed origins.
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

func SetupRoutes(r *gin.Engine, d Deps) {
	h := handlers.New(d.Services, d.Config, d.Logger)
	requireAdmin := middleware.RequireAdmin(d.Credentials, d.Services.Admins, d.Logger)
	requireStaff := middleware.RequireStaff(d.Credentials, d.Services.Staff, d.Logger, models.StaffRoles...)
	loginLimit := middleware.RateLimit(d.LoginLimit, d.Logger)

	// ── Public routes ──────────────────────────────────────────────
	r.GET("/menu/:qrcodeId", h.GetMenu)

	// ── Admin accounts ─────────────────────────────────────────────
	admin := r.Group("/admin")
	{
		admin.POST("/signup", h.Signup)
		admin.POST("/login", loginLimit, h.Login)
		admin.POST("/logout", h.Logout)

		admin.GET("/profile", requireAdmin, h.Profile)
		admin.POST("/create-chef-waiter", requireAdmin, h.CreateChefWaiter)
		admin.POST("/add-categories", requireAdmin, h.AddCategory)
		admin.POST("/add-items", requireAdmin, h.AddItem)
	}

	// ── Restaurant management ──────────────────────────────────────
	owner := r.Group("/")
	owner.Use(requireAdmin)
	{
		owner.POST("/create-restaurant", h.CreateRestaurant)
		owner.GET("/restaurants", h.ListRestaurants)
		owner.GET("/restaurants/:id", h.GetRestaurant)

		owner.GET("/view/all-categories", h.ListCategories)
		owner.GET("/view/category-items", h.ListItems)

		owner.PATCH("/edit/restaurant/:id", h.UpdateRestaurant)
		owner.PATCH("/edit/category/:id", h.EditCategory)
		owner.PATCH("/edit/item/:id", h.EditItem)

		owner.DELETE("/delete/category/:id", h.DeleteCategory)
		owner.DELETE("/delete/item/:id", h.DeleteItem)
		owner.DELETE("/delete/chef-waiter/:id", h.DeleteChefWaiter)
	}

	// ── Chef / waiter ──────────────────────────────────────────────
	staff := r.Group("/chef-waiter")
	{
		staff.POST("/login", loginLimit, h.StaffLogin)
		staff.POST("/logout", h.StaffLogout)
		staff.GET("/profile", requireStaff, h.StaffProfile)
	}
}
