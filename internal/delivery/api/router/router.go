// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ideabank/config"
	"ideabank/internal/delivery/api/middleware"
	"ideabank/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	IdeaHandler    *handler.IdeaHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	ideaHandler    *handler.IdeaHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		ideaHandler:    params.IdeaHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Credential endpoints are public and share one per-IP limiter.
	var publicAuth []echo.MiddlewareFunc
	if limiter := middleware.NewAuthRateLimiter(r.config); limiter != nil {
		publicAuth = append(publicAuth, limiter)
	}

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.GET("", r.authHandler.GetCurrentUser, r.authMiddleware.Authenticate)
		authGroup.POST("", r.authHandler.Login, publicAuth...)
	}

	usersGroup := api.Group("/users")
	{
		usersGroup.POST("", r.userHandler.Register, publicAuth...)
		usersGroup.DELETE("", r.userHandler.Delete, r.authMiddleware.Authenticate)
	}

	ideasGroup := api.Group("/ideas")
	ideasGroup.Use(r.authMiddleware.Authenticate)
	{
		ideasGroup.GET("", r.ideaHandler.ListIdeas)
		ideasGroup.POST("", r.ideaHandler.CreateIdea)
		ideasGroup.PUT("/:id", r.ideaHandler.UpdateIdea)
		ideasGroup.DELETE("/:id", r.ideaHandler.DeleteIdea)
	}
}
