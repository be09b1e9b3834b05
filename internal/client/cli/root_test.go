package cli

import (
	"context"
	"testing"

	"github.com/aivantu/aivantu/internal/client/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatus(t *testing.T) {
	a := &App{}
	assert.Equal(t, "", a.getStatus())

	a.mode = ModeOffline
	assert.Equal(t, "(offline)", a.getStatus())

	a.session = &services.Session{Email: "asha@example.com"}
	a.mode = ModeOnline
	assert.Equal(t, "(asha@example.com online)", a.getStatus())

	a.mode = ""
	assert.Equal(t, "(asha@example.com )", a.getStatus())
}

func TestRoot_BannerPromptAndExit(t *testing.T) {
	lines := capturePrintln(t)
	ta := newTestApp(t, "whoami\nexit\n")

	ta.Root(context.Background())

	require.NotEmpty(t, *lines)
	assert.Equal(t, "Welcome to AiVantu CLI (type 'help' for commands)", (*lines)[0])
	assert.Contains(t, *lines, "aivantu (online)>")
	assert.Contains(t, *lines, "Bye!")
	assert.Contains(t, ta.out.String(), "Not signed in; requests are made for demo@aivantu.com")
}
