// Package api exposes the locator over HTTP.
package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/waypoint/internal/models"
	"github.com/gin-gonic/gin"
)

// Locator answers nearest service location lookups.
type Locator interface {
	Nearest(ctx context.Context, coords models.Coordinates) (*models.NearestResult, error)
	NearestByAddress(ctx context.Context, address string) (*models.NearestResult, error)
}

// Handler holds the dependencies of the HTTP endpoints.
type Handler struct {
	locator Locator
	log     *slog.Logger
}

// NewRouter builds the gin engine serving the public API.
func NewRouter(locator Locator, log *slog.Logger) *gin.Engine {
	h := &Handler{locator: locator, log: log}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log))

	router.GET("/", h.handleRoot)
	router.GET("/nearest", h.handleNearest)
	router.GET("/nearest/address", h.handleNearestByAddress)

	return router
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.InfoContext(c.Request.Context(), "Request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
