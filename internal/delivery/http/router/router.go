// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vitrine/internal/delivery/http/middleware"
	"vitrine/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ProfileHandler  *handler.ProfileHandler
	PropertyHandler *handler.PropertyHandler
	ShowcaseHandler *handler.ShowcaseHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	profileHandler  *handler.ProfileHandler
	propertyHandler *handler.PropertyHandler
	showcaseHandler *handler.ShowcaseHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		profileHandler:  params.ProfileHandler,
		propertyHandler: params.PropertyHandler,
		showcaseHandler: params.ShowcaseHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Agent profile routes, always scoped to the authenticated account
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.UpdateProfile)
	}

	// Listing management routes
	propertyGroup := e.Group("/properties")
	propertyGroup.Use(r.authMiddleware.Authenticate)
	{
		propertyGroup.GET("", r.propertyHandler.ListProperties)
		propertyGroup.POST("", r.propertyHandler.CreateProperty)
		propertyGroup.GET("/:id", r.propertyHandler.GetProperty)
		propertyGroup.PUT("/:id", r.propertyHandler.UpdateProperty)
		propertyGroup.DELETE("/:id", r.propertyHandler.DeleteProperty)
		propertyGroup.GET("/:id/preview", r.showcaseHandler.PreviewProperty)
	}

	// Showcase generation routes
	showcaseGroup := e.Group("/showcase")
	showcaseGroup.Use(r.authMiddleware.Authenticate)
	{
		showcaseGroup.GET("", r.showcaseHandler.GeneratePage)
		showcaseGroup.GET("/qr", r.showcaseHandler.ShowcaseQR)
	}
}
