// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"evently/internal/delivery/http/middleware"
	"evently/internal/delivery/http/router/handler"
	"evently/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	EventHandler   *handler.EventHandler
	AuthMiddleware *middleware.AuthMiddleware
	Gatherer       prometheus.Gatherer `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	eventHandler   *handler.EventHandler
	authMiddleware *middleware.AuthMiddleware
	gatherer       prometheus.Gatherer
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		eventHandler:   params.EventHandler,
		authMiddleware: params.AuthMiddleware,
		gatherer:       params.Gatherer,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.gatherer)))
	}

	api := e.Group("/api")

	// Auth routes; only /user needs a token
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/google", r.authHandler.GoogleLogin)
		authGroup.GET("/google/callback", r.authHandler.GoogleCallback)
		authGroup.GET("/user", r.authHandler.CurrentUser, r.authMiddleware.Authenticate)
		authGroup.GET("/logout", r.authHandler.Logout)
	}

	eventsGroup := api.Group("/events")
	eventsGroup.Use(r.authMiddleware.Authenticate)
	{
		eventsGroup.POST("", r.eventHandler.CreateEvent)
		eventsGroup.GET("", r.eventHandler.ListEvents)
		eventsGroup.GET("/:id", r.eventHandler.GetEvent)
		eventsGroup.PUT("/:id", r.eventHandler.UpdateEvent)
		eventsGroup.DELETE("/:id", r.eventHandler.DeleteEvent)
	}
}
