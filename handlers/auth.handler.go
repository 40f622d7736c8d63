package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rootroutes-service/domain"
	error2 "rootroutes-service/error"
	"rootroutes-service/services"
	"rootroutes-service/utils"
)

type AuthHandler struct {
	authService services.AuthService
	userService services.UserService
	tokens      *utils.TokenManager
	responder   *Responder
}

func NewAuthHandler(authService services.AuthService, userService services.UserService, tokens *utils.TokenManager, responder *Responder) AuthHandler {
	return AuthHandler{authService, userService, tokens, responder}
}

func (ac *AuthHandler) Register(ctx *gin.Context) {
	var input domain.RegisterInput
	if !ac.responder.bindJSON(ctx, &input) {
		return
	}

	user, err := ac.authService.Register(ctx.Request.Context(), &input)
	if err != nil {
		ac.responder.Error(ctx, err)
		return
	}
	ac.respondWithToken(ctx, http.StatusCreated, user)
}

func (ac *AuthHandler) Login(ctx *gin.Context) {
	var input domain.LoginInput
	if !ac.responder.bindJSON(ctx, &input) {
		return
	}

	user, err := ac.authService.Login(ctx.Request.Context(), &input)
	if err != nil {
		ac.responder.Error(ctx, err)
		return
	}
	ac.respondWithToken(ctx, http.StatusOK, user)
}

func (ac *AuthHandler) GetProfile(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ac.responder.Error(ctx, error2.NewAuthenticationError("Authentication required"))
		return
	}
	ac.responder.Success(ctx, http.StatusOK, user.ToResponse())
}

func (ac *AuthHandler) UpdateProfile(ctx *gin.Context) {
	identity, ok := CurrentIdentity(ctx)
	if !ok {
		ac.responder.Error(ctx, error2.NewAuthenticationError("Authentication required"))
		return
	}

	var input domain.UpdateProfileInput
	if !ac.responder.bindJSON(ctx, &input) {
		return
	}

	user, err := ac.userService.UpdateProfile(ctx.Request.Context(), identity.ID, &input)
	if err != nil {
		ac.responder.Error(ctx, err)
		return
	}
	ac.responder.Success(ctx, http.StatusOK, user.ToResponse())
}

func (ac *AuthHandler) respondWithToken(ctx *gin.Context, code int, user *domain.User) {
	token, err := ac.tokens.CreateToken(user.Identity())
	if err != nil {
		ac.responder.Error(ctx, err)
		return
	}
	ac.responder.Success(ctx, code, domain.AuthResponse{Token: token, User: user.ToResponse()})
}
