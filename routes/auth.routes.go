package routes

import (
	"github.com/gin-gonic/gin"

	"rootroutes-service/handlers"
)

type AuthRouteHandler struct {
	authHandler handlers.AuthHandler
	auth        *handlers.AuthMiddleware
}

func NewAuthRouteHandler(authHandler handlers.AuthHandler, auth *handlers.AuthMiddleware) AuthRouteHandler {
	return AuthRouteHandler{authHandler, auth}
}

func (rc *AuthRouteHandler) AuthRoute(rg *gin.RouterGroup) {
	router := rg.Group("/auth")

	router.POST("/register", rc.authHandler.Register)
	router.POST("/login", rc.authHandler.Login)
	router.GET("/profile", rc.auth.RequireAuth(), rc.authHandler.GetProfile)
	router.PUT("/profile", rc.auth.RequireAuth(), rc.authHandler.UpdateProfile)
}
