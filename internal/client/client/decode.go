package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/aivantu/aivantu/internal/client/models"
)

func decodeObject(data []byte, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}

// decodeList accepts either a bare JSON array or an object wrapping the
// array under one of keys; different backend builds do both. An object
// with none of the keys decodes to an empty list.
func decodeList[T any](data []byte, keys ...string) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrMalformedResponse)
	}

	switch trimmed[0] {
	case '[':
		var out []T
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}
		return out, nil
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}
		for _, k := range keys {
			raw, ok := obj[k]
			if !ok {
				continue
			}
			if string(bytes.TrimSpace(raw)) == "null" {
				return []T{}, nil
			}
			return decodeList[T](raw)
		}
		return []T{}, nil
	default:
		return nil, fmt.Errorf("%w: expected JSON array or object", ErrMalformedResponse)
	}
}

// decodeOutputs handles /outputs, whose items are either bare file names /
// links or full video records.
func decodeOutputs(data []byte) ([]models.Video, error) {
	raws, err := decodeList[json.RawMessage](data, "outputs", "files", "videos")
	if err != nil {
		return nil, err
	}

	videos := make([]models.Video, 0, len(raws))
	for _, raw := range raws {
		raw = bytes.TrimSpace(raw)
		if len(raw) > 0 && raw[0] == '"' {
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
			}
			videos = append(videos, models.Video{Title: path.Base(s), File: s}.WithDefaults())
			continue
		}
		var v models.Video
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}
		videos = append(videos, v.WithDefaults())
	}
	return videos, nil
}

const maxErrorMessage = 200

// errorMessage pulls a human-readable reason out of an error response body.
// The backend answers errors as {"status":"error","message":...,"details":...};
// plain-text bodies are used as is, HTML pages are dropped.
func errorMessage(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}

	if trimmed[0] == '{' {
		var obj map[string]any
		if err := json.Unmarshal(trimmed, &obj); err == nil {
			var parts []string
			for _, k := range []string{"message", "error", "detail", "details"} {
				if s, ok := obj[k].(string); ok && strings.TrimSpace(s) != "" {
					parts = append(parts, strings.TrimSpace(s))
				}
			}
			return truncate(strings.Join(parts, ": "))
		}
	}

	if trimmed[0] == '<' {
		return ""
	}
	return truncate(string(trimmed))
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= maxErrorMessage {
		return s
	}
	r := []rune(s)
	return string(r[:maxErrorMessage]) + "…"
}
