package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// RequestID propagates the inbound X-Request-ID header, minting a fresh
// UUID when the client did not send one. The ID is echoed back in the
// response so clients can correlate logs.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(requestIDHeader)
			if rid == "" {
				rid = uuid.NewString()
			}
			c.Set("rid", rid)
			c.Response().Header().Set(requestIDHeader, rid)
			return next(c)
		}
	}
}
