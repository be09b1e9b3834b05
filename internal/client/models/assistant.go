package models

import "strings"

const (
	DefaultAssistantReply = "No suggestion available"
	DefaultPreviewText    = "Preview from AiVantu"
)

type AssistantRequest struct {
	Query string `json:"query"`
	Lang  string `json:"lang"`
}

// AssistantReply holds the suggestion text and, when the backend managed to
// synthesize it, a link to the spoken version. audio_url may be null.
type AssistantReply struct {
	Reply    string `json:"reply,omitempty"`
	AudioURL string `json:"audio_url,omitempty"`
}

func (a AssistantReply) WithDefaults() AssistantReply {
	if strings.TrimSpace(a.Reply) == "" {
		a.Reply = DefaultAssistantReply
	}
	return a
}

type VoicePreview struct {
	AudioURL string `json:"audio_url,omitempty"`
}

// UploadResult is the /upload response. Different backend builds name the
// link url, file_url or path.
type UploadResult struct {
	URL     string `json:"url,omitempty"`
	FileURL string `json:"file_url,omitempty"`
	Path    string `json:"path,omitempty"`
	Kind    string `json:"kind,omitempty"`
}

func (u UploadResult) WithDefaults() UploadResult {
	if strings.TrimSpace(u.URL) == "" {
		u.URL = strings.TrimSpace(u.FileURL)
	}
	if u.URL == "" {
		u.URL = strings.TrimSpace(u.Path)
	}
	return u
}
