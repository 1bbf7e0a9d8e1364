package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vidserve/backend/internal/application"
	"github.com/vidserve/backend/internal/interface/middleware"
	"github.com/vidserve/backend/pkg/helpers"
	"github.com/vidserve/backend/pkg/response"
	"github.com/vidserve/backend/pkg/validation"
)

type UserHandler struct {
	Svc     *application.Service
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
}

func NewUserHandler(svc *application.Service, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

// bindJSON decodes the request body into a generic payload. A missing or
// malformed body yields nil, which RequireFields reports as "expecting json".
func bindJSON(c *gin.Context) map[string]any {
	var payload map[string]any
	_ = c.ShouldBindJSON(&payload)
	return payload
}

// LoginToAccess is the landing endpoint for unauthenticated access attempts.
func (h *UserHandler) LoginToAccess(c *gin.Context) {
	response.OK(c, response.Error("not authorized for this api", nil))
}

// Register handles POST /register.
func (h *UserHandler) Register(c *gin.Context) {
	payload := bindJSON(c)
	if err := validation.RequireFields(payload, "email", "mobile", "password", "first_name", "last_name"); err != nil {
		_ = c.Error(err)
		return
	}

	in := application.RegisterInput{
		Email:     validation.String(payload, "email"),
		Mobile:    validation.String(payload, "mobile"),
		Password:  validation.String(payload, "password"),
		FirstName: validation.String(payload, "first_name"),
		LastName:  validation.String(payload, "last_name"),
	}
	err := h.Svc.Register(c.Request.Context(), in)
	if errors.Is(err, application.ErrEmailExists) || errors.Is(err, application.ErrMobileExists) {
		// expected rejection, not an error
		response.OK(c, response.Failure(err.Error(), nil))
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, response.Success("registration successful", nil))
}

// Login handles POST /login.
func (h *UserHandler) Login(c *gin.Context) {
	payload := bindJSON(c)
	if err := validation.RequireFields(payload, "email", "password"); err != nil {
		_ = c.Error(err)
		return
	}
	remember := validation.Bool(payload, "remember")

	res, err := h.Svc.Login(c.Request.Context(),
		validation.String(payload, "email"), validation.String(payload, "password"), remember)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.Cookies.SetSession(c, res.Token, res.Expiry, res.Remember)
	response.OK(c, response.Success("login successful", nil))
}

// GetProfile handles GET /get_profile (auth required).
func (h *UserHandler) GetProfile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	profile, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, response.Success("", profile))
}

// UpdateProfile handles POST /update_profile (auth required).
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	payload := bindJSON(c)
	if err := validation.RequireFields(payload); err != nil {
		_ = c.Error(err)
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.UpdateProfile(c.Request.Context(), uid, payload); err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, response.Success("profile updated successfully", nil))
}

// Logout handles GET /logout (auth required).
func (h *UserHandler) Logout(c *gin.Context) {
	sid := c.GetString(middleware.CtxSessionIDKey)
	if err := h.Svc.Logout(c.Request.Context(), sid); err != nil {
		_ = c.Error(err)
		return
	}
	h.Cookies.Clear(c)
	response.OK(c, response.Success("logout successful", nil))
}
