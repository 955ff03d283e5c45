package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"rentalhub/internal/handler/api"
	"rentalhub/internal/handler/middleware"
	"rentalhub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine             *gin.Engine
	Config             config.Config
	Logger             *middleware.Logger
	ReservationHandler *api.ReservationHandler
	ListingHandler     *api.ListingHandler
	FavoriteHandler    *api.FavoriteHandler
	UserHandler        *api.UserHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := []gin.HandlerFunc{p.AuthMiddleware.RequireAuth()}

	apiGroup := engine.Group("/api")
	{
		reservations := apiGroup.Group("/reservations")
		addRoutes(reservations, []route{
			{Method: http.MethodGet, Path: "", Handler: p.ReservationHandler.List},
			{Method: http.MethodPost, Path: "", Handler: p.ReservationHandler.Submit, Mw: requireAuth},
			{Method: http.MethodDelete, Path: "/:id", Handler: p.ReservationHandler.Cancel, Mw: requireAuth},
		})

		listings := apiGroup.Group("/listings")
		addRoutes(listings, []route{
			{Method: http.MethodGet, Path: "", Handler: p.ListingHandler.Search},
			{Method: http.MethodPost, Path: "", Handler: p.ListingHandler.Create, Mw: requireAuth},
			{Method: http.MethodGet, Path: "/:id", Handler: p.ListingHandler.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: p.ListingHandler.Delete, Mw: requireAuth},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: p.ListingHandler.Availability},
			{Method: http.MethodGet, Path: "/:id/quote", Handler: p.ListingHandler.Quote},
		})

		favorites := apiGroup.Group("/favorites")
		favorites.Use(p.AuthMiddleware.RequireAuth())
		{
			addRoutes(favorites, []route{
				{Method: http.MethodGet, Path: "", Handler: p.FavoriteHandler.List},
				{Method: http.MethodPost, Path: "/:listingId", Handler: p.FavoriteHandler.Add},
				{Method: http.MethodDelete, Path: "/:listingId", Handler: p.FavoriteHandler.Remove},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(p.AuthMiddleware.RequireAuth())
		{
			addRoutes(users, []route{
				{Method: http.MethodPost, Path: "", Handler: p.UserHandler.Register},
				{Method: http.MethodGet, Path: "/me", Handler: p.UserHandler.Me},
				{Method: http.MethodPatch, Path: "/me", Handler: p.UserHandler.UpdateMe},
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
