package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vidserve/backend/internal/application"
	"github.com/vidserve/backend/pkg/apperr"
	"github.com/vidserve/backend/pkg/helpers"
	"github.com/vidserve/backend/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
	CtxSessionIDKey = "sessionID"
)

// Auth validates the session cookie against the session store and resolves
// the identity through the identity cache. Requests without a valid session
// are rejected here, before any handler persistence work.
func Auth(svc *application.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error("not authorized for this api", nil))
			return
		}
		id, claims, err := svc.ResolveSession(c.Request.Context(), token)
		if err != nil {
			status := http.StatusUnauthorized
			var ae *apperr.Error
			if errors.As(err, &ae) && ae.Status != http.StatusInternalServerError {
				status = ae.Status
			}
			c.AbortWithStatusJSON(status, response.Error("not authorized for this api", nil))
			return
		}
		c.Set(CtxUserIDKey, id.UserID)
		c.Set(CtxUserEmailKey, id.Email)
		c.Set(CtxSessionIDKey, claims.SessionID)
		c.Next()
	}
}
