package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aivantu/aivantu/internal/client/client"
	"github.com/aivantu/aivantu/internal/client/services"
	"github.com/aivantu/aivantu/internal/common"
)

// errorSummary turns a command error into the one-line notice shown after
// "Error: ".
func errorSummary(err error) string {
	var renderErr *services.RenderError
	var statusErr *client.StatusError

	switch {
	case errors.Is(err, context.Canceled):
		return "cancelled"
	case errors.Is(err, context.DeadlineExceeded):
		return "the server took too long to answer"
	case errors.As(err, &renderErr):
		return renderErr.Error()
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable, check that it is running and the base URL is right"
	case errors.As(err, &statusErr):
		if statusErr.Message != "" {
			return fmt.Sprintf("server answered %d: %s", statusErr.Code, statusErr.Message)
		}
		return fmt.Sprintf("server answered %d %s", statusErr.Code, http.StatusText(statusErr.Code))
	case errors.Is(err, client.ErrMalformedResponse):
		return "the server sent a response this client does not understand"
	case errors.Is(err, common.ErrTokenExpired):
		return "sign-in expired, use login again"
	case errors.Is(err, services.ErrNotSignedIn):
		return "not signed in, use login"
	case errors.Is(err, common.ErrInvalidToken):
		return "that is not a valid ID token"
	case errors.Is(err, services.ErrArchiveDisabled):
		return "archive is not configured (set s3_bucket)"
	default:
		return err.Error()
	}
}
