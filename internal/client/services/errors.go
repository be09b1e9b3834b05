package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRenderFailed    = errors.New("video generation failed")
	ErrNotSignedIn     = errors.New("not signed in")
	ErrArchiveDisabled = errors.New("archive is not configured")
	ErrNotDownloaded   = errors.New("render has not been downloaded")
	ErrFreePlan        = errors.New("free plan needs no payment")
)

// RenderError is returned when the backend answered a generate request but
// did not report the video as done.
type RenderError struct {
	Status  string
	Message string
	Details string
}

func (e *RenderError) Error() string {
	var parts []string
	for _, s := range []string{e.Message, e.Details} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%s (status %q)", ErrRenderFailed, e.Status)
	}
	return fmt.Sprintf("%s: %s", ErrRenderFailed, strings.Join(parts, ": "))
}

func (e *RenderError) Unwrap() error { return ErrRenderFailed }
