package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vidserve/backend/internal/container"
	handlers "github.com/vidserve/backend/internal/interface/http"
	"github.com/vidserve/backend/internal/interface/middleware"
)

// UserModule wires the auth/profile endpoints.
// Public: GET /login_to_access, POST /register, POST /login
// Protected: GET /get_profile, POST /update_profile, GET /logout
type UserModule struct {
	Handler *handlers.UserHandler
	Auth    gin.HandlerFunc
}

func NewUserModule(h *handlers.UserHandler, auth gin.HandlerFunc) *UserModule {
	return &UserModule{Handler: h, Auth: auth}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	// Credential endpoints are rate limited per IP
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	rg.GET("/login_to_access", m.Handler.LoginToAccess)
	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(m.Auth)
	{
		auth.GET("/get_profile", m.Handler.GetProfile)
		auth.POST("/update_profile", m.Handler.UpdateProfile)
		auth.GET("/logout", m.Handler.Logout)
	}
}
