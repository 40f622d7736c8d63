package routes

import (
	"github.com/gin-gonic/gin"

	"rootroutes-service/handlers"
)

type TripRouteHandler struct {
	tripHandler handlers.TripHandler
	auth        *handlers.AuthMiddleware
}

func NewTripRouteHandler(tripHandler handlers.TripHandler, auth *handlers.AuthMiddleware) TripRouteHandler {
	return TripRouteHandler{tripHandler, auth}
}

func (rc *TripRouteHandler) TripRoute(rg *gin.RouterGroup) {
	router := rg.Group("/trips")
	router.Use(rc.auth.RequireAuth())

	router.GET("", rc.tripHandler.ListTrips)
	router.POST("", rc.tripHandler.CreateTrip)
	router.GET("/:id", rc.tripHandler.GetTrip)
	router.PUT("/:id", rc.tripHandler.UpdateTrip)
	router.DELETE("/:id", rc.tripHandler.DeleteTrip)
}
