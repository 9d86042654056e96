// Package middleware holds the echo middleware of the public HTTP API.
package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "swiftauth/internal/delivery/context"
	"swiftauth/internal/domain/entity"
	domainerrors "swiftauth/internal/domain/errors"
	"swiftauth/internal/domain/service"
	"swiftauth/internal/errors"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer access token and attaches the caller's principal to the
// request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.Wrap(domainerrors.ErrNotAuthenticated, "authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return domainerrors.ErrInvalidToken.WithDetails("authorization header must carry a Bearer token")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			deliverycontext.LoggerOr(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return errors.WithStack(err)
		}
		if claims.Type != service.TokenTypeAccess {
			return domainerrors.ErrInvalidToken.WithDetails("not an access token")
		}

		principal := &entity.Principal{
			AccountID: claims.AccountID,
			Email:     claims.Subject,
			Roles:     entity.RolesFromStrings(claims.Roles),
		}

		ctx := deliverycontext.WithPrincipal(c.Request().Context(), principal)
		if logger := deliverycontext.LoggerFrom(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("accountID", principal.AccountID.String())))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the caller holds a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := deliverycontext.PrincipalFrom(c.Request().Context())
			if principal == nil {
				return domainerrors.ErrNotAuthenticated
			}

			if !principal.Roles.Contains(requiredRole) {
				return domainerrors.ErrForbidden.WithDetails("requires role " + requiredRole.String())
			}

			return next(c)
		}
	}
}
