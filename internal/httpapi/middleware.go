package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"apiTareas/internal/auth"
)

// SessionMiddleware verifies the Authorization bearer token on protected
// routes. A missing token is 401; a present but invalid or expired one is 403.
// On success the decoded principal is attached to the request context.
func SessionMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			p, err := auth.ParseFromHeader(header, secret)
			if err != nil {
				if errors.Is(err, auth.ErrMissingToken) {
					return echo.NewHTTPError(http.StatusUnauthorized, "Token requerido")
				}
				return echo.NewHTTPError(http.StatusForbidden, "Token inválido o expirado")
			}
			ctx := auth.WithPrincipal(c.Request().Context(), p)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
