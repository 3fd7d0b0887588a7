package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edukatsiya/education-platform/internal/api/middleware"
	"github.com/edukatsiya/education-platform/internal/pkg/token"
)

// ctxClaims extracts the verified claims injected by the Auth middleware and
// performs a fast-fail check before any service call: an email must be
// present, since ownership checks key on it.
func ctxClaims(c echo.Context) (*token.Claims, error) {
	claims, _ := c.Get(middleware.ClaimsKey).(*token.Claims)
	if claims == nil || claims.Email == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
