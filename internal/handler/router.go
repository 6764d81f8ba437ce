package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"canteen-coupon/internal/handler/api"
	"canteen-coupon/internal/handler/middleware"
	"canteen-coupon/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers bundles every API handler the router mounts.
type Handlers struct {
	Order  *api.OrderHandler
	Menu   *api.MenuHandler
	Coupon *api.CouponHandler
	Admin  *api.AdminHandler
	Auth   *api.AuthHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	engine.NoRoute(middleware.NoRoute())
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAdmin := authMiddleware.RequireAdmin()

	apiGroup := engine.Group("/api")
	{
		orders := apiGroup.Group("/orders")
		addRoutes(orders, []route{
			{Method: http.MethodPost, Path: "/initiate", Handler: h.Order.Initiate, Mw: []gin.HandlerFunc{limiter.Middleware()}},
			{Method: http.MethodPost, Path: "/:orderId/confirm", Handler: h.Order.Confirm, Mw: []gin.HandlerFunc{requireAdmin}},
			{Method: http.MethodGet, Path: "/:orderId", Handler: h.Order.Receipt},
		})

		menu := apiGroup.Group("/menu")
		addRoutes(menu, []route{
			{Method: http.MethodGet, Path: "/active", Handler: h.Menu.Active},
			{Method: http.MethodPost, Path: "/upload", Handler: h.Menu.Upload, Mw: []gin.HandlerFunc{requireAdmin}},
		})

		coupons := apiGroup.Group("/coupons")
		addRoutes(coupons, []route{
			{Method: http.MethodGet, Path: "/:id", Handler: h.Coupon.Get},
			{Method: http.MethodPost, Path: "/:id/redeem", Handler: h.Coupon.Redeem, Mw: []gin.HandlerFunc{requireAdmin}},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			adminOnly := admin.Group("")
			adminOnly.Use(requireAdmin)
			addRoutes(adminOnly, []route{
				{Method: http.MethodGet, Path: "/verify", Handler: h.Auth.Verify},
				{Method: http.MethodGet, Path: "/menu", Handler: h.Menu.AdminList},
				{Method: http.MethodGet, Path: "/menu/history", Handler: h.Menu.History},
				{Method: http.MethodGet, Path: "/summary/today", Handler: h.Admin.SummaryToday},
				{Method: http.MethodGet, Path: "/coupons", Handler: h.Admin.SearchCoupons},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
