package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vidserve/backend/internal/domain/entity"
)

// Extractor fetches full video metadata from the external platform.
// Synchronous, metadata only; no media download.
type Extractor interface {
	Extract(ctx context.Context, url string) (*entity.RawVideo, error)
}

// VideoService projects extractor results to the limited client-facing
// field set. No retry, no caching; extractor failures propagate.
type VideoService struct {
	Extractor Extractor
	Logger    *logrus.Logger
}

func NewVideoService(extractor Extractor, logger *logrus.Logger) *VideoService {
	return &VideoService{Extractor: extractor, Logger: logger}
}

// GetVideoDetails returns the projected metadata for the given url. Formats
// without an audio codec (video-only streams) are discarded.
func (s *VideoService) GetVideoDetails(ctx context.Context, url string) (*entity.VideoDetails, error) {
	raw, err := s.Extractor.Extract(ctx, url)
	if err != nil {
		return nil, err
	}
	details := &entity.VideoDetails{
		ID:          raw.ID,
		Title:       raw.Title,
		Description: raw.Description,
		Duration:    raw.Duration,
		Width:       raw.Width,
		Height:      raw.Height,
		Formats:     validFormats(raw.Formats),
	}
	s.Logger.WithFields(logrus.Fields{"video_id": raw.ID, "formats": len(details.Formats)}).
		Info("fetched video details")
	return details, nil
}

func validFormats(all []entity.RawFormat) []entity.VideoFormat {
	valid := make([]entity.VideoFormat, 0, len(all))
	for _, f := range all {
		if f.AudioCodec == "" {
			continue
		}
		valid = append(valid, entity.VideoFormat{
			Format:   f.Label,
			Ext:      f.Ext,
			Width:    f.Width,
			Height:   f.Height,
			URL:      f.URL,
			Filesize: f.Filesize,
		})
	}
	return valid
}
