// Package http is the REST transport: gin routing, request validation,
// and the domain-error-to-status mapping.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers groups the route handlers the router mounts.
type Handlers struct {
	Products   *ProductsHandler
	Categories *CategoriesHandler
	Sales      *SalesHandler
	Events     *EventsHandler
}

// NewRouter builds the gin engine with all routes mounted under /api/v1.
func NewRouter(h *Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(RequestLogger(logger), Recovery(logger))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := engine.Group("/api/v1")
	h.Products.Register(v1)
	h.Categories.Register(v1)
	h.Sales.Register(v1)
	h.Events.Register(v1)

	return engine
}
