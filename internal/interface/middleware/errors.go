package middleware

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vidserve/backend/pkg/apperr"
	"github.com/vidserve/backend/pkg/response"
)

// ErrorHandler is the single top-level error sink. Handlers attach typed
// errors with c.Error and return; this middleware serializes the last one to
// the error envelope with its status code. 500-class errors are logged in
// full and reported to Sentry; everything else is logged message-only.
func ErrorHandler(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var ae *apperr.Error
		if !errors.As(err, &ae) {
			ae = apperr.Internal(apperr.DefaultMessage)
		}
		if ae.Status >= http.StatusInternalServerError {
			logger.WithError(err).WithField("path", c.Request.URL.Path).Error("internal server error")
			sentry.CaptureException(err)
		} else {
			logger.WithField("status", ae.Status).Error(ae.Message)
		}
		response.JSON(c, ae.Status, response.Error(ae.Message, nil))
	}
}
