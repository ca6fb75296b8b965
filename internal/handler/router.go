package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-concierge/internal/handler/api"
	"hotel-concierge/internal/handler/middleware"
	"hotel-concierge/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, conciergeHandler *api.ConciergeHandler, resourceHandler *api.ResourceHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, conciergeHandler, resourceHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, conciergeHandler *api.ConciergeHandler, resourceHandler *api.ResourceHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	engine.GET("/widget", resourceHandler.Widget)
	engine.GET("/reservations.json", resourceHandler.ReservationsData)

	apiGroup := engine.Group("/api")
	{
		// Tool names are the stable surface conversational callers invoke.
		tools := apiGroup.Group("/tools")
		{
			addRoutes(tools, []route{
				{Method: http.MethodPost, Path: "/lookup_reservation", Handler: conciergeHandler.LookupReservation},
				{Method: http.MethodPost, Path: "/quote_add_breakfast", Handler: conciergeHandler.QuoteAddBreakfast},
				{Method: http.MethodPost, Path: "/confirm_add_breakfast", Handler: conciergeHandler.ConfirmAddBreakfast},
			})
		}
	}
}

func addRoutes(group *gin.RouterGroup, routes []route) {
	for _, r := range routes {
		group.Handle(r.Method, r.Path, r.Handler)
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
