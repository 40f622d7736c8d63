package routes

import (
	"github.com/gin-gonic/gin"

	"rootroutes-service/handlers"
)

type CultureRouteHandler struct {
	cultureHandler handlers.CultureHandler
	auth           *handlers.AuthMiddleware
}

func NewCultureRouteHandler(cultureHandler handlers.CultureHandler, auth *handlers.AuthMiddleware) CultureRouteHandler {
	return CultureRouteHandler{cultureHandler, auth}
}

func (rc *CultureRouteHandler) CultureRoute(rg *gin.RouterGroup) {
	router := rg.Group("/culture")

	router.GET("", rc.cultureHandler.ListCultureSites)
	router.GET("/:id", rc.cultureHandler.GetCultureSite)
	router.POST("", rc.auth.OptionalAuth(), rc.cultureHandler.CreateCultureSite)
	router.POST("/seed", rc.cultureHandler.SeedCultureSites)
}
