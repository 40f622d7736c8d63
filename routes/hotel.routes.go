package routes

import (
	"github.com/gin-gonic/gin"

	"rootroutes-service/handlers"
)

type HotelRouteHandler struct {
	hotelHandler handlers.HotelHandler
}

func NewHotelRouteHandler(hotelHandler handlers.HotelHandler) HotelRouteHandler {
	return HotelRouteHandler{hotelHandler}
}

func (rc *HotelRouteHandler) HotelRoute(rg *gin.RouterGroup) {
	router := rg.Group("/hotels")

	router.GET("/search", rc.hotelHandler.SearchHotels)
}
