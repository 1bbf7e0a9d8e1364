package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vidserve/backend/internal/application"
	"github.com/vidserve/backend/pkg/response"
	"github.com/vidserve/backend/pkg/validation"
)

type VideoHandler struct {
	Svc    *application.VideoService
	Logger *logrus.Logger
}

func NewVideoHandler(svc *application.VideoService, logger *logrus.Logger) *VideoHandler {
	return &VideoHandler{Svc: svc, Logger: logger}
}

// GetVideoDetails handles GET /get_video_details. The url is taken from the
// query string, falling back to a JSON body for older clients.
func (h *VideoHandler) GetVideoDetails(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		payload := bindJSON(c)
		url = validation.String(payload, "url")
	}
	if err := validation.VideoURL(url); err != nil {
		_ = c.Error(err)
		return
	}
	details, err := h.Svc.GetVideoDetails(c.Request.Context(), url)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, response.Success("", details))
}
