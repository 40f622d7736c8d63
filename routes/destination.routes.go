package routes

import (
	"github.com/gin-gonic/gin"

	"rootroutes-service/handlers"
)

type DestinationRouteHandler struct {
	destinationHandler handlers.DestinationHandler
	auth               *handlers.AuthMiddleware
}

func NewDestinationRouteHandler(destinationHandler handlers.DestinationHandler, auth *handlers.AuthMiddleware) DestinationRouteHandler {
	return DestinationRouteHandler{destinationHandler, auth}
}

func (rc *DestinationRouteHandler) DestinationRoute(rg *gin.RouterGroup) {
	router := rg.Group("/destinations")

	router.GET("", rc.destinationHandler.ListDestinations)
	router.GET("/mine", rc.auth.RequireAuth(), rc.destinationHandler.ListMyDestinations)
	router.GET("/:id", rc.destinationHandler.GetDestination)

	router.POST("", rc.auth.RequireAuth(), rc.destinationHandler.CreateDestination)
	router.PUT("/:id", rc.auth.RequireAuth(), rc.destinationHandler.UpdateDestination)
	router.DELETE("/:id", rc.auth.RequireAuth(), rc.destinationHandler.DeleteDestination)
	router.POST("/:id/rate", rc.auth.RequireAuth(), rc.destinationHandler.RateDestination)
	router.PATCH("/:id/status", rc.auth.RequireAuth(), rc.auth.RequireAdmin(), rc.destinationHandler.SetDestinationStatus)
}
