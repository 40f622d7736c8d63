package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rootroutes-service/domain"
	error2 "rootroutes-service/error"
	"rootroutes-service/query"
	"rootroutes-service/services"
)

type TripHandler struct {
	tripService services.TripService
	responder   *Responder
}

func NewTripHandler(tripService services.TripService, responder *Responder) TripHandler {
	return TripHandler{tripService, responder}
}

func (h *TripHandler) ListTrips(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	filter := query.TripFilter{Status: c.Query("status"), Page: c.Query("page"), Limit: c.Query("limit")}
	page, err := h.tripService.ListTrips(c.Request.Context(), identity, filter)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	h.responder.Success(c, http.StatusOK, page)
}

func (h *TripHandler) GetTrip(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	trip, err := h.tripService.GetTripByID(c.Request.Context(), c.Param("id"), identity)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	h.responder.Success(c, http.StatusOK, trip)
}

func (h *TripHandler) CreateTrip(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	var input domain.CreateTripInput
	if !h.responder.bindJSON(c, &input) {
		return
	}

	trip, err := h.tripService.CreateTrip(c.Request.Context(), &input, identity)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	h.responder.Success(c, http.StatusCreated, trip)
}

func (h *TripHandler) UpdateTrip(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	var input domain.UpdateTripInput
	if !h.responder.bindJSON(c, &input) {
		return
	}

	trip, err := h.tripService.UpdateTrip(c.Request.Context(), c.Param("id"), &input, identity)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	h.responder.Success(c, http.StatusOK, trip)
}

func (h *TripHandler) DeleteTrip(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	if err := h.tripService.DeleteTrip(c.Request.Context(), c.Param("id"), identity); err != nil {
		h.responder.Error(c, err)
		return
	}
	h.responder.Success(c, http.StatusOK, gin.H{"id": c.Param("id")})
}

func (h *TripHandler) identity(c *gin.Context) (domain.Identity, bool) {
	identity, ok := CurrentIdentity(c)
	if !ok {
		h.responder.Error(c, error2.NewAuthenticationError("Authentication required"))
	}
	return identity, ok
}
