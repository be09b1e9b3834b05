package models

import (
	"strings"
	"time"

	"github.com/aivantu/aivantu/internal/common"
)

const (
	RenderStatusDone    = "done"
	RenderStatusError   = "error"
	RenderStatusUnknown = "unknown"
)

// RenderResult is the /generate_video response. Rendering is synchronous on
// the backend, so there is exactly one result per request.
type RenderResult struct {
	Status      string `json:"status,omitempty"`
	VideoID     int64  `json:"video_id,omitempty"`
	DownloadURL string `json:"download_url,omitempty"`
	VideoURL    string `json:"video_url,omitempty"`
	Message     string `json:"message,omitempty"`
	Details     string `json:"details,omitempty"`
}

func (r RenderResult) WithDefaults() RenderResult {
	if strings.TrimSpace(r.Status) == "" {
		r.Status = RenderStatusUnknown
	}
	r.DownloadURL = common.FirstNonEmpty(r.DownloadURL, r.VideoURL)
	return r
}

// IsDone reports whether the backend finished the render.
func (r RenderResult) IsDone() bool {
	return strings.EqualFold(strings.TrimSpace(r.Status), RenderStatusDone)
}

// Render is the local history record of one generate request and what
// happened to its output afterwards.
type Render struct {
	ID          string
	VideoID     int64
	UserEmail   string
	Title       string
	Template    string
	Quality     string
	LengthType  string
	Lang        string
	Status      string
	DownloadURL string
	Message     string
	LocalPath   string
	Checksum    string
	ArchiveKey  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Downloaded reports whether the rendered file is on local disk.
func (r Render) Downloaded() bool { return r.LocalPath != "" }
