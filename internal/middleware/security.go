package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"
)

// SecurityHeaders adds security headers to responses
func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
			h.Set("Referrer-Policy", "no-referrer")

			// reports are rebuilt from the export on every request
			h.Set("Cache-Control", "no-store")

			return next(c)
		}
	}
}

// CORS allows the listed origins to read the API; "*" allows any origin.
// An empty list disables cross-origin access.
func CORS(allowOrigins []string) echo.MiddlewareFunc {
	allowAny := slices.Contains(allowOrigins, "*")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			origin := c.Request().Header.Get(echo.HeaderOrigin)
			if origin == "" || (!allowAny && !slices.Contains(allowOrigins, origin)) {
				return next(c)
			}

			h := c.Response().Header()
			h.Add(echo.HeaderVary, echo.HeaderOrigin)
			if allowAny {
				h.Set(echo.HeaderAccessControlAllowOrigin, "*")
			} else {
				h.Set(echo.HeaderAccessControlAllowOrigin, origin)
			}

			if c.Request().Method != http.MethodOptions {
				h.Set(echo.HeaderAccessControlExposeHeaders, TraceIDHeader)
				return next(c)
			}

			h.Set(echo.HeaderAccessControlAllowMethods, strings.Join([]string{http.MethodGet, http.MethodOptions}, ", "))
			h.Set(echo.HeaderAccessControlAllowHeaders, strings.Join([]string{echo.HeaderContentType, TraceIDHeader}, ", "))
			h.Set(echo.HeaderAccessControlMaxAge, "3600")
			return c.NoContent(http.StatusNoContent)
		}
	}
}
