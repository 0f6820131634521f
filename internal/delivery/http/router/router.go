// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fretex/internal/delivery/http/middleware"
	"fretex/internal/delivery/http/router/handler"
	"fretex/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	FreightHandler *handler.FreightHandler
	TripHandler    *handler.TripHandler
	MatchHandler   *handler.MatchHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	freightHandler *handler.FreightHandler
	tripHandler    *handler.TripHandler
	matchHandler   *handler.MatchHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		freightHandler: params.FreightHandler,
		tripHandler:    params.TripHandler,
		matchHandler:   params.MatchHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Freight routes; listing and mutation are shipper-only, reads are open
	// to any authenticated party so drivers can inspect matched freights.
	freightGroup := e.Group("/freights")
	freightGroup.Use(r.authMiddleware.Authenticate)
	{
		freightGroup.GET("/:id", r.freightHandler.GetFreight)

		shipperGroup := freightGroup.Group("")
		shipperGroup.Use(r.authMiddleware.RequireRole(entity.RoleShipper))
		{
			shipperGroup.POST("", r.freightHandler.CreateFreight)
			shipperGroup.GET("", r.freightHandler.ListFreights)
			shipperGroup.PUT("/:id", r.freightHandler.UpdateFreight)
			shipperGroup.POST("/:id/close", r.freightHandler.CloseFreight)
		}
	}

	// Trip routes require the driver role.
	tripGroup := e.Group("/trips")
	tripGroup.Use(r.authMiddleware.Authenticate)
	tripGroup.Use(r.authMiddleware.RequireRole(entity.RoleDriver))
	{
		tripGroup.POST("", r.tripHandler.CreateTrip)
		tripGroup.GET("", r.tripHandler.ListTrips)
		tripGroup.GET("/:id", r.tripHandler.GetTrip)
		tripGroup.PUT("/:id", r.tripHandler.UpdateTrip)
		tripGroup.POST("/:id/cancel", r.tripHandler.CancelTrip)

		tripGroup.GET("/:id/matches", r.matchHandler.ComputeMatches)
		tripGroup.GET("/:id/requests", r.matchHandler.ListTripMatchRequests)
	}

	// Route preview is available to any authenticated user.
	routeGroup := e.Group("/routes")
	routeGroup.Use(r.authMiddleware.Authenticate)
	{
		routeGroup.POST("/preview", r.tripHandler.PreviewRoute)
	}

	// Match request lifecycle routes.
	matchGroup := e.Group("/matches/requests")
	matchGroup.Use(r.authMiddleware.Authenticate)
	{
		matchGroup.GET("/:id", r.matchHandler.GetMatchRequest)
		matchGroup.GET("/:id/qr", r.matchHandler.GetContactQR)

		driverGroup := matchGroup.Group("")
		driverGroup.Use(r.authMiddleware.RequireRole(entity.RoleDriver))
		{
			driverGroup.POST("", r.matchHandler.ProposeMatch)
			driverGroup.POST("/:id/cancel", r.matchHandler.CancelMatch)
		}

		shipperGroup := matchGroup.Group("")
		shipperGroup.Use(r.authMiddleware.RequireRole(entity.RoleShipper))
		{
			shipperGroup.POST("/:id/respond", r.matchHandler.RespondMatch)
		}
	}
}
