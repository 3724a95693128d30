package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"camp-pricing/internal/domain/auth"
	"camp-pricing/internal/handler/api"
	"camp-pricing/internal/handler/middleware"
	"camp-pricing/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	observer middleware.RequestObserver,
	quoteHandler *api.QuoteHandler,
	slotHandler *api.SlotHandler,
	ruleHandler *api.RuleHandler,
	configHandler *api.PricingConfigHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger, observer)
	setupRoutes(engine, quoteHandler, slotHandler, ruleHandler, configHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, observer middleware.RequestObserver) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.MetricsMiddleware(observer))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	quoteHandler *api.QuoteHandler,
	slotHandler *api.SlotHandler,
	ruleHandler *api.RuleHandler,
	configHandler *api.PricingConfigHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	organizerOnly := []gin.HandlerFunc{authMiddleware.RequireRole(auth.RoleOrganizer)}

	apiGroup := engine.Group("/api")
	{
		// booking flow is public
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/quotes", Handler: quoteHandler.GetQuote},
			{Method: http.MethodPost, Path: "/reservations", Handler: quoteHandler.Reserve},
		})

		staff := apiGroup.Group("")
		staff.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(auth.RoleStaff))
		{
			addRoutes(staff.Group("/rules"), []route{
				{Method: http.MethodPost, Path: "", Handler: ruleHandler.Create, Mw: organizerOnly},
				{Method: http.MethodGet, Path: "/:id", Handler: ruleHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: ruleHandler.Update, Mw: organizerOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: ruleHandler.Delete, Mw: organizerOnly},
				{Method: http.MethodPatch, Path: "/:id/active", Handler: ruleHandler.SetActive, Mw: organizerOnly},
			})

			camps := staff.Group("/camps/:camp_id")
			addRoutes(camps, []route{
				{Method: http.MethodGet, Path: "/rules", Handler: ruleHandler.ListByCamp},
				{Method: http.MethodGet, Path: "/pricing-config", Handler: configHandler.Get},
				{Method: http.MethodPatch, Path: "/pricing-config", Handler: configHandler.Patch, Mw: organizerOnly},
				{Method: http.MethodGet, Path: "/slots/:date", Handler: slotHandler.Get},
				{Method: http.MethodPut, Path: "/slots/:date", Handler: slotHandler.Open, Mw: organizerOnly},
				{Method: http.MethodPost, Path: "/slots/:date/block", Handler: slotHandler.Block, Mw: organizerOnly},
				{Method: http.MethodPost, Path: "/slots/:date/unblock", Handler: slotHandler.Unblock, Mw: organizerOnly},
				{Method: http.MethodPost, Path: "/slots/:date/release", Handler: slotHandler.Release, Mw: organizerOnly},
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
