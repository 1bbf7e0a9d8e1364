package youtube

import (
	"context"
	"strings"

	"github.com/kkdai/youtube/v2"

	"github.com/vidserve/backend/internal/domain/entity"
)

// Client adapts the youtube extraction library to the application's
// Extractor interface.
type Client struct {
	yt youtube.Client
}

func New() *Client {
	return &Client{}
}

// Extract fetches full metadata for the video behind url. No stream data is
// downloaded; a failure or hang in the library propagates to the caller.
func (c *Client) Extract(ctx context.Context, url string) (*entity.RawVideo, error) {
	v, err := c.yt.GetVideoContext(ctx, url)
	if err != nil {
		return nil, err
	}

	formats := make([]entity.RawFormat, 0, len(v.Formats))
	width, height := 0, 0
	for _, f := range v.Formats {
		if f.Width > width {
			width, height = f.Width, f.Height
		}
		formats = append(formats, entity.RawFormat{
			Label:      formatLabel(f),
			Ext:        extFromMime(f.MimeType),
			Width:      f.Width,
			Height:     f.Height,
			URL:        f.URL,
			Filesize:   f.ContentLength,
			AudioCodec: audioCodec(f),
		})
	}

	return &entity.RawVideo{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		Duration:    int(v.Duration.Seconds()),
		Width:       width,
		Height:      height,
		Formats:     formats,
	}, nil
}

func formatLabel(f youtube.Format) string {
	if f.QualityLabel != "" {
		return f.QualityLabel
	}
	return f.Quality
}

// extFromMime maps "video/mp4; codecs=..." to "mp4".
func extFromMime(mime string) string {
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	if i := strings.Index(mime, "/"); i >= 0 {
		return mime[i+1:]
	}
	return mime
}

// audioCodec returns the audio codec named in the MIME type, or "" for
// video-only streams. Muxed streams list the audio codec last, e.g.
// video/mp4; codecs="avc1.64001F, mp4a.40.2".
func audioCodec(f youtube.Format) string {
	if f.AudioChannels == 0 {
		return ""
	}
	start := strings.Index(f.MimeType, `codecs="`)
	if start < 0 {
		return ""
	}
	codecs := f.MimeType[start+len(`codecs="`):]
	if end := strings.Index(codecs, `"`); end >= 0 {
		codecs = codecs[:end]
	}
	parts := strings.Split(codecs, ",")
	return strings.TrimSpace(parts[len(parts)-1])
}
