package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/mom-generator/pkg/reqctx"
)

// RequestContext copies the request id set by echo's RequestID middleware
// into the request context so use cases can log it.
func RequestContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = req.Header.Get(echo.HeaderXRequestID)
			}
			ctx := reqctx.Begin(req.Context(), requestID, req.Method+" "+c.Path())
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}
