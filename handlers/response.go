package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	error2 "rootroutes-service/error"
)

// Responder writes the success and error envelopes shared by every
// endpoint. Detail of unexpected errors is only exposed when showDetail is
// set.
type Responder struct {
	logger     *logrus.Logger
	showDetail bool
}

func NewResponder(logger *logrus.Logger, showDetail bool) *Responder {
	return &Responder{logger: logger, showDetail: showDetail}
}

func (r *Responder) Success(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"status": error2.StatusSuccess, "data": data})
}

func (r *Responder) Error(c *gin.Context, err error) {
	code := error2.StatusCode(err)
	if code >= http.StatusInternalServerError {
		r.logger.WithFields(logrus.Fields{
			"path":      c.Request.URL.Path,
			"method":    c.Request.Method,
			"requestId": c.GetString(requestIDKey),
		}).WithError(err).Error("request failed")
	}

	error2.ReturnJSONError(c.Writer, error2.ErrorMessage{
		Status:  error2.StatusError,
		Message: error2.PublicMessage(err, r.showDetail),
	}, code)
	c.Abort()
}

func (r *Responder) bindJSON(c *gin.Context, v interface{}) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		r.Error(c, error2.NewValidationError("Invalid request body: "+err.Error()))
		return false
	}
	return true
}
