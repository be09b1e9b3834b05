package client

import (
	"context"
	"io"

	"github.com/aivantu/aivantu/internal/client/models"
	"github.com/aivantu/aivantu/internal/filex"
)

// Client is the backend API as the rest of the application sees it.
type Client interface {
	Health(ctx context.Context) error
	Templates(ctx context.Context) ([]models.Template, error)
	Voices(ctx context.Context) ([]models.VoiceOption, error)
	Gallery(ctx context.Context, email string) ([]models.Video, error)
	Outputs(ctx context.Context) ([]models.Video, error)
	GetProfile(ctx context.Context, email string) (*models.Profile, error)
	SaveProfile(ctx context.Context, p models.Profile) (*models.Profile, error)
	Upload(ctx context.Context, kind filex.Kind, path string) (*models.UploadResult, error)
	GenerateVideo(ctx context.Context, req models.GenerateRequest) (*models.RenderResult, error)
	Assistant(ctx context.Context, query, lang string) (*models.AssistantReply, error)
	PreviewVoice(ctx context.Context, text, lang string) (*models.VoicePreview, error)
	CreateOrder(ctx context.Context, provider models.Provider, req models.OrderRequest) (*models.PaymentOrder, error)
	Download(ctx context.Context, rawURL string, w io.Writer) (int64, error)
	SetToken(token string)
}
