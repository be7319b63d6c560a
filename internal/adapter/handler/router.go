package handler

import (
	"context"
	stdErrors "errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/mom-generator/errors"
	"github.com/johnquangdev/mom-generator/internal/adapter/dto/common"
	"github.com/johnquangdev/mom-generator/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	momHandler      *MoM
	zoomHandler     *Zoom
	identityHandler *Identity
	authMW          echo.MiddlewareFunc
	gatherer        prometheus.Gatherer
}

// NewRouter creates a new router with all handlers. authMW may be nil when
// API tokens are disabled.
func NewRouter(cfg *config.Config, momHandler *MoM, zoomHandler *Zoom, identityHandler *Identity, authMW echo.MiddlewareFunc, gatherer prometheus.Gatherer) *Router {
	return &Router{
		cfg:             cfg,
		momHandler:      momHandler,
		zoomHandler:     zoomHandler,
		identityHandler: identityHandler,
		authMW:          authMW,
		gatherer:        gatherer,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(rt.gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	if rt.authMW != nil {
		api.Use(rt.authMW)
	}

	api.POST("/generate-mom", rt.momHandler.GenerateMoM, transportTimeout(rt.cfg.Server.RequestTimeout))
	api.GET("/zoom/recordings", rt.zoomHandler.GetRecordings)
	rt.identityHandler.register(api)
}

// transportTimeout puts a deadline of d on the request context. The handler
// keeps the request goroutine and renders the 503 itself when the deadline
// is what stopped it; errors escaping with the deadline get the same answer.
// The generation deadline is configured shorter, so it normally answers first.
func transportTimeout(d time.Duration) echo.MiddlewareFunc {
	if d <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: d,
		ErrorHandler: func(err error, c echo.Context) error {
			if stdErrors.Is(err, context.DeadlineExceeded) {
				return errors.ErrRequestTimeout(err)
			}
			return err
		},
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, common.HealthResponse{
		Status:      "ok",
		Environment: rt.cfg.Server.Environment,
	})
}
