package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aivantu/aivantu/internal/common"
)

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrUnexpectedStatus  = errors.New("unexpected status")
	ErrMalformedResponse = errors.New("malformed response")
)

// StatusError is returned for any response whose status is not 200. Message
// is the backend's own explanation when the body carried one.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %d %s", ErrUnexpectedStatus, e.Code, http.StatusText(e.Code))
	}
	return fmt.Sprintf("%s: %d %s: %s", ErrUnexpectedStatus, e.Code, http.StatusText(e.Code), e.Message)
}

func (e *StatusError) Unwrap() error { return ErrUnexpectedStatus }

// Is lets callers match a 404 with common.ErrorNotFound.
func (e *StatusError) Is(target error) bool {
	return target == common.ErrorNotFound && e.Code == http.StatusNotFound
}
