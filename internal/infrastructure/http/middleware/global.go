package middleware

import (
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/johnquangdev/mom-generator/pkg/config"
)

// accessLogFormat is the one-line access log written for every request
const accessLogFormat = "${time_rfc3339} | ${id} | ${status} | ${method} ${uri} | ${latency_human}\n"

// Global returns the chain every route runs behind, outermost first. Access
// lines go to accessLog.
func Global(cfg config.ServerConfig, accessLog io.Writer) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		echomw.RequestIDWithConfig(echomw.RequestIDConfig{
			Generator: uuid.NewString,
		}),
		RequestContext(),
		echomw.LoggerWithConfig(echomw.LoggerConfig{
			Format: accessLogFormat,
			Output: accessLog,
		}),
		echomw.Recover(),
		echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: cfg.AllowedOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, echo.HeaderXRequestID},
		}),
	}
}
