package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	error2 "rootroutes-service/error"
)

// Pinger is satisfied by *mongo.Client.
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

type HealthHandler struct {
	db          Pinger
	serviceName string
}

func NewHealthHandler(db Pinger, serviceName string) HealthHandler {
	return HealthHandler{db, serviceName}
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx, readpref.Primary()); err != nil {
		c.JSON(http.StatusServiceUnavailable, error2.ErrorMessage{Status: error2.StatusError, Message: "Database unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": error2.StatusSuccess,
		"data": gin.H{
			"service":  h.serviceName,
			"database": "up",
			"time":     time.Now().UTC().Format(time.RFC3339),
		},
	})
}
