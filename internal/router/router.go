// Package router assembles the gin engine.
package router

import (
	"net/http"

	_ "clientmap-api/docs"
	"clientmap-api/internal/auth"
	"clientmap-api/internal/handler"
	"clientmap-api/internal/logger"
	"clientmap-api/internal/mapview"
	"clientmap-api/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups everything the engine routes to.
type Handlers struct {
	Clients *handler.ClientHandler
	Map     *handler.MapHandler
	Auth    *handler.AuthHandler
}

// New builds the engine with logging, metrics and recovery middleware. API routes live under
// /api/v1 and require an operator token when a is enabled.
func New(h Handlers, a *auth.Authenticator) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logger.Middleware(), metrics.Middleware())
	r.SetHTMLTemplate(mapview.Templates())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.POST("/auth/login", h.Auth.Login)

	protected := v1.Group("", a.Middleware())
	{
		clients := protected.Group("/clients")
		clients.GET("", h.Clients.List)
		clients.DELETE("", h.Clients.Clear)
		clients.POST("/import", h.Clients.Import)
		clients.GET("/search", h.Clients.Search)
		clients.GET("/ranked", h.Clients.Ranked)
		clients.GET("/stats", h.Clients.Stats)
		clients.GET("/export.xlsx", h.Clients.ExportXLSX)
		clients.GET("/export.pdf", h.Clients.ExportPDF)

		protected.GET("/map", h.Map.Map)
		protected.GET("/map/page", h.Map.Page)
	}

	return r
}
