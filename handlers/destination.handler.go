package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rootroutes-service/domain"
	error2 "rootroutes-service/error"
	"rootroutes-service/query"
	"rootroutes-service/services"
)

type DestinationHandler struct {
	destinationService services.DestinationService
	responder          *Responder
}

func NewDestinationHandler(destinationService services.DestinationService, responder *Responder) DestinationHandler {
	return DestinationHandler{destinationService, responder}
}

func (h *DestinationHandler) ListDestinations(c *gin.Context) {
	filter := query.DestinationFilter{
		Search:     c.Query("search"),
		Tags:       c.Query("tags"),
		Difficulty: c.Query("difficulty"),
		Page:       c.Query("page"),
		Limit:      c.Query("limit"),
	}

	page, err := h.destinationService.ListDestinations(c.Request.Context(), filter)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	h.responder.Success(c, http.StatusOK, page)
}

func (h *DestinationHandler) ListMyDestinations(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	page, err := h.destinationService.ListOwnedDestinations(c.Request.Context(), identity.ID, c.Query("page"), c.Query("limit"))
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	h.responder.Success(c, http.StatusOK, page)
}

func (h *DestinationHandler) GetDestination(c *gin.Context) {
	destination, err := h.destinationService.GetDestinationByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	h.responder.Success(c, http.StatusOK, destination)
}

func (h *DestinationHandler) CreateDestination(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	var input domain.CreateDestinationInput
	if !h.responder.bindJSON(c, &input) {
		return
	}

	destination, err := h.destinationService.CreateDestination(c.Request.Context(), &input, identity)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	h.responder.Success(c, http.StatusCreated, destination)
}

func (h *DestinationHandler) UpdateDestination(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	var input domain.UpdateDestinationInput
	if !h.responder.bindJSON(c, &input) {
		return
	}

	destination, err := h.destinationService.UpdateDestination(c.Request.Context(), c.Param("id"), &input, identity)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	h.responder.Success(c, http.StatusOK, destination)
}

func (h *DestinationHandler) DeleteDestination(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	if err := h.destinationService.DeleteDestination(c.Request.Context(), c.Param("id"), identity); err != nil {
		h.responder.Error(c, err)
		return
	}
	h.responder.Success(c, http.StatusOK, gin.H{"id": c.Param("id")})
}

func (h *DestinationHandler) RateDestination(c *gin.Context) {
	var input domain.RateInput
	if !h.responder.bindJSON(c, &input) {
		return
	}

	destination, err := h.destinationService.RateDestination(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	h.responder.Success(c, http.StatusOK, destination)
}

func (h *DestinationHandler) SetDestinationStatus(c *gin.Context) {
	var input domain.StatusInput
	if !h.responder.bindJSON(c, &input) {
		return
	}

	destination, err := h.destinationService.SetDestinationStatus(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	h.responder.Success(c, http.StatusOK, destination)
}

func (h *DestinationHandler) identity(c *gin.Context) (domain.Identity, bool) {
	identity, ok := CurrentIdentity(c)
	if !ok {
		h.responder.Error(c, error2.NewAuthenticationError("Authentication required"))
	}
	return identity, ok
}
