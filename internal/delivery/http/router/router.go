// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"partnerhub/internal/delivery/http/middleware"
	"partnerhub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PartnerHandler  *handler.PartnerHandler
	CategoryHandler *handler.CategoryHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	partnerHandler  *handler.PartnerHandler
	categoryHandler *handler.CategoryHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		partnerHandler:  params.PartnerHandler,
		categoryHandler: params.CategoryHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware

	partnerGroup := api.Group("/partners")
	{
		partnerGroup.GET("", r.partnerHandler.List)
		partnerGroup.POST("", r.partnerHandler.Create)
		partnerGroup.GET("/:id", r.partnerHandler.Get)
		partnerGroup.PUT("/:id", r.partnerHandler.Update)
		partnerGroup.DELETE("/:id", r.partnerHandler.Delete)
	}

	categoryGroup := api.Group("/categories")
	{
		categoryGroup.GET("", r.categoryHandler.List)
		categoryGroup.GET("/tree", r.categoryHandler.Tree)
		categoryGroup.POST("", r.categoryHandler.Create)
		categoryGroup.GET("/:id", r.categoryHandler.Get)
		categoryGroup.PUT("/:id", r.categoryHandler.Update)
		categoryGroup.DELETE("/:id", r.categoryHandler.Delete)
	}
}
