// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tripflow/config"
	"tripflow/internal/delivery/http/middleware"
	"tripflow/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	AuthHandler    *handler.AuthHandler `optional:"true"`
	PlanHandler    *handler.PlanHandler
	AIHandler      *handler.AIHandler
	MapHandler     *handler.MapHandler
	SpeechHandler  *handler.SpeechHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	authHandler    *handler.AuthHandler
	planHandler    *handler.PlanHandler
	aiHandler      *handler.AIHandler
	mapHandler     *handler.MapHandler
	speechHandler  *handler.SpeechHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		authHandler:    params.AuthHandler,
		planHandler:    params.PlanHandler,
		aiHandler:      params.AIHandler,
		mapHandler:     params.MapHandler,
		speechHandler:  params.SpeechHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes. Local deployments issue their own tokens; remote
	// deployments only expose the identity echo endpoint.
	authGroup := e.Group("/auth")
	if r.authHandler != nil {
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}
	if r.cfg.CloudBackendEnabled() {
		authGroup.GET("/me", handler.Me, r.authMiddleware.Authenticate)
	}

	// Plan routes that require authentication
	planGroup := e.Group("/travel/plans")
	planGroup.Use(r.authMiddleware.Authenticate)
	{
		planGroup.GET("", r.planHandler.List)
		planGroup.POST("", r.planHandler.Create)
		planGroup.PUT("/:id", r.planHandler.Update)
		planGroup.DELETE("/:id", r.planHandler.Delete)
	}

	// Provider gateway routes
	e.POST("/ai/plan", r.aiHandler.GeneratePlan)
	e.POST("/map/route", r.mapHandler.Route)
	e.POST("/speech/recognize", r.speechHandler.Recognize)
}
