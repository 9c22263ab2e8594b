// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bookshelf/internal/delivery/http/middleware"
	"bookshelf/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	BookHandler    *handler.BookHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	bookHandler    *handler.BookHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		bookHandler:    params.BookHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/login", r.authHandler.Login)
	}

	// Book routes: listings and lookups are public, mutations require a token.
	bookGroup := e.Group("/book")
	{
		bookGroup.GET("", r.bookHandler.FindAll)
		bookGroup.GET("/:id", r.bookHandler.FindOne)

		bookGroup.POST("", r.bookHandler.Create, r.authMiddleware.Authenticate)
		bookGroup.PATCH("/:id", r.bookHandler.Update, r.authMiddleware.Authenticate)
		bookGroup.DELETE("/:id", r.bookHandler.Remove, r.authMiddleware.Authenticate)
	}
}
