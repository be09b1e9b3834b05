package models

import (
	"strings"
	"time"

	"github.com/aivantu/aivantu/internal/common"
)

const (
	DefaultVideoTitle  = "Untitled"
	DefaultVideoStatus = "ready"
)

// Video is a gallery entry.
type Video struct {
	ID          int64  `json:"id,omitempty"`
	Title       string `json:"title,omitempty"`
	Template    string `json:"template,omitempty"`
	Quality     string `json:"quality,omitempty"`
	Status      string `json:"status,omitempty"`
	DownloadURL string `json:"download_url,omitempty"`
	FileURL     string `json:"file_url,omitempty"`
	VideoURL    string `json:"video_url,omitempty"`
	File        string `json:"file,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// URL returns the first non-empty link the backend supplied for the file.
func (v Video) URL() string {
	return common.FirstNonEmpty(v.DownloadURL, v.FileURL, v.VideoURL, v.File)
}

func (v Video) WithDefaults() Video {
	if strings.TrimSpace(v.Title) == "" {
		v.Title = DefaultVideoTitle
	}
	if strings.TrimSpace(v.Status) == "" {
		v.Status = DefaultVideoStatus
	}
	return v
}

var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// CreatedTime parses CreatedAt. Timestamps without a zone are taken as UTC,
// which is how the backend writes them.
func (v Video) CreatedTime() (time.Time, bool) {
	s := strings.TrimSpace(v.CreatedAt)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
