package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vidserve/backend/internal/container"
	handlers "github.com/vidserve/backend/internal/interface/http"
	"github.com/vidserve/backend/internal/interface/middleware"
)

// VideoModule wires the video metadata lookup endpoint.
type VideoModule struct {
	Handler *handlers.VideoHandler
}

func NewVideoModule(h *handlers.VideoHandler) *VideoModule {
	return &VideoModule{Handler: h}
}

func (m *VideoModule) Register(rg *gin.RouterGroup) {
	// Each lookup hits the external platform, so keep the limit tight
	rl := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIP(), nil)
	rg.GET("/get_video_details", rl, m.Handler.GetVideoDetails)
}
