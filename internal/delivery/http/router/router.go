// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"backlot/internal/delivery/http/middleware"
	"backlot/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DirectorHandler *handler.DirectorHandler
	MovieHandler    *handler.MovieHandler
	StudioHandler   *handler.StudioHandler
	AuthHandler     *handler.AuthHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	directorHandler *handler.DirectorHandler
	movieHandler    *handler.MovieHandler
	studioHandler   *handler.StudioHandler
	authHandler     *handler.AuthHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		directorHandler: params.DirectorHandler,
		movieHandler:    params.MovieHandler,
		studioHandler:   params.StudioHandler,
		authHandler:     params.AuthHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// /home, /health and the auth flow are public; every catalogue route
// requires an authenticated session.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/home", handler.Home)
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.GET("/login", r.authHandler.Login)
		authGroup.GET("/callback", r.authHandler.Callback)
	}

	directorGroup := e.Group("/directors")
	directorGroup.Use(r.authMiddleware.Authenticate)
	{
		directorGroup.GET("", r.directorHandler.FindAll)
		directorGroup.GET("/find", r.directorHandler.FindByNames)
		directorGroup.GET("/:id", r.directorHandler.FindByID)
		directorGroup.POST("/add", r.directorHandler.Create)
		directorGroup.PUT("/update", r.directorHandler.Update)
		directorGroup.DELETE("/:id", r.directorHandler.Delete)
		directorGroup.POST("/:id/movies", r.directorHandler.AddFilm)
	}

	studioGroup := e.Group("/studios")
	studioGroup.Use(r.authMiddleware.Authenticate)
	{
		studioGroup.GET("", r.studioHandler.FindAll)
		studioGroup.GET("/find", r.studioHandler.FindByName)
		studioGroup.GET("/:id/studio", r.studioHandler.FindByID)
		studioGroup.POST("/add", r.studioHandler.Create)
		studioGroup.PUT("/update", r.studioHandler.Update)
		studioGroup.DELETE("/:id", r.studioHandler.Delete)
		studioGroup.POST("/:id/directors/:directorId", r.studioHandler.AddDirector)
	}

	movieGroup := e.Group("/movies")
	movieGroup.Use(r.authMiddleware.Authenticate)
	{
		movieGroup.GET("", r.movieHandler.FindAll)
		movieGroup.GET("/find", r.movieHandler.FindByTitle)
		movieGroup.GET("/:id", r.movieHandler.FindByID)
		movieGroup.POST("/add", r.movieHandler.Create)
		movieGroup.PUT("/update", r.movieHandler.Update)
		movieGroup.DELETE("/:id", r.movieHandler.Delete)
	}
}
