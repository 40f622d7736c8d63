package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	error2 "rootroutes-service/error"
	"rootroutes-service/services"
)

type HotelHandler struct {
	hotelService services.HotelService
	responder    *Responder
}

func NewHotelHandler(hotelService services.HotelService, responder *Responder) HotelHandler {
	return HotelHandler{hotelService, responder}
}

func (h *HotelHandler) SearchHotels(c *gin.Context) {
	q := strings.TrimSpace(c.Query("query"))
	if q == "" {
		h.responder.Error(c, error2.NewValidationError("query is required"))
		return
	}

	result, err := h.hotelService.SearchHotels(c.Request.Context(), q)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	h.responder.Success(c, http.StatusOK, result)
}
