package renders

import (
	"context"

	"github.com/aivantu/aivantu/internal/client/models"
)

// Repository stores the local history of render requests.
type Repository interface {
	Insert(ctx context.Context, r *models.Render) error
	Get(ctx context.Context, id string) (*models.Render, error)
	GetByVideoID(ctx context.Context, videoID int64) (*models.Render, error)
	List(ctx context.Context, userEmail string, limit int) ([]models.Render, error)
	MarkDownloaded(ctx context.Context, id, localPath, checksum string) error
	SetArchiveKey(ctx context.Context, id, key string) error
}
