package entity

// VideoDetails is the projected metadata returned for a video lookup.
// Ephemeral; computed per request and never persisted.
type VideoDetails struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Duration    int           `json:"duration"` // seconds
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Formats     []VideoFormat `json:"formats"`
}

// VideoFormat is the limited per-format projection exposed to clients.
type VideoFormat struct {
	Format   string `json:"format"`
	Ext      string `json:"ext"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	URL      string `json:"url"`
	Filesize int64  `json:"filesize"`
}

// RawFormat is a single stream variant as reported by the extractor, before
// projection. AudioCodec is empty for video-only streams.
type RawFormat struct {
	Label      string
	Ext        string
	Width      int
	Height     int
	URL        string
	Filesize   int64
	AudioCodec string
}

// RawVideo is the full extractor result prior to projection.
type RawVideo struct {
	ID          string
	Title       string
	Description string
	Duration    int
	Width       int
	Height      int
	Formats     []RawFormat
}
