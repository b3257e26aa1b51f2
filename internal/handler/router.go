package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"procure-chef/internal/handler/api"
	"procure-chef/internal/handler/middleware"
	"procure-chef/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, requestHandler *api.RequestHandler, quoteHandler *api.QuoteHandler, offeringHandler *api.OfferingHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, requestHandler, quoteHandler, offeringHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, requestHandler *api.RequestHandler, quoteHandler *api.QuoteHandler, offeringHandler *api.OfferingHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		requests := apiGroup.Group("/requests")
		{
			addRoutes(requests, []route{
				{Method: http.MethodPost, Path: "", Handler: requestHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: requestHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: requestHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: requestHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: requestHandler.Delete},
				{Method: http.MethodGet, Path: "/:id/quotes", Handler: quoteHandler.ListForRequest},
			})
		}

		quotes := apiGroup.Group("/quotes")
		{
			addRoutes(quotes, []route{
				{Method: http.MethodPost, Path: "/bundled", Handler: quoteHandler.Bundle},
			})
		}

		products := apiGroup.Group("/products")
		{
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "/:id/offerings", Handler: offeringHandler.ListByProduct},
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
