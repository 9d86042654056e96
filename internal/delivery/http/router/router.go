// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"swiftauth/internal/delivery/http/middleware"
	"swiftauth/internal/delivery/http/router/handler"
	"swiftauth/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AccountHandler *handler.AccountHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	accountHandler *handler.AccountHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		accountHandler: params.AccountHandler,
		authMiddleware: params.AuthMiddleware,
		rateLimiter:    params.RateLimiter,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register, r.rateLimiter.Limit)
		authGroup.POST("/login", r.authHandler.Login, r.rateLimiter.Limit)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/logout-all", r.authHandler.LogoutAll, r.authMiddleware.Authenticate)
		authGroup.GET("/verify", r.authHandler.VerifyEmail)
		authGroup.POST("/reset-password/request", r.authHandler.RequestPasswordReset, r.rateLimiter.Limit)
		authGroup.POST("/reset-password/confirm", r.authHandler.ConfirmPasswordReset)

		authGroup.POST("/oauth2/google/id-token", r.authHandler.GoogleIDToken)
		authGroup.GET("/oauth2/:provider", r.authHandler.OAuth2Begin)
		authGroup.GET("/oauth2/:provider/callback", r.authHandler.OAuth2Callback)
		authGroup.POST("/oauth2/:provider", r.authHandler.OAuth2Authenticate)
	}

	// Account routes that require authentication
	accountGroup := api.Group("/accounts")
	accountGroup.Use(r.authMiddleware.Authenticate)
	{
		accountGroup.GET("/me", r.accountHandler.Me)
		accountGroup.GET("/me/sessions", r.accountHandler.MySessions)
		accountGroup.GET("/:id", r.accountHandler.Get)
		accountGroup.PUT("/:id/password", r.accountHandler.ChangePassword)
		accountGroup.DELETE("/:id", r.accountHandler.Delete)
	}

	// Admin-only account routes
	adminGroup := api.Group("/accounts")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("", r.accountHandler.List)
		adminGroup.POST("/:id/roles/:role", r.accountHandler.AddRole)
		adminGroup.DELETE("/:id/roles/:role", r.accountHandler.RemoveRole)
	}
}
