package http

import (
	"net/http"
	"strings"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const principalContextKey = "principal"

// AuthMiddleware verifies the Bearer token on every request and stores the
// resulting principal in the echo context. Authorization decisions stay in
// the use cases; this middleware only answers "who is calling".
func AuthMiddleware(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			principal, err := tokens.Verify(token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid token",
				})
			}

			ctx.Set(principalContextKey, principal)
			return next(ctx)
		}
	}
}

// principalFrom extracts the principal stored by AuthMiddleware. The zero
// principal fails every use case's validation, so a route wired without the
// middleware cannot silently act unauthenticated.
func principalFrom(ctx echo.Context) kernel.Principal {
	principal, _ := ctx.Get(principalContextKey).(kernel.Principal)
	return principal
}
