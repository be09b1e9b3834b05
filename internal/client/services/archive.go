package services

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aivantu/aivantu/internal/client/models"
	"github.com/aivantu/aivantu/internal/client/repositories/renders"
	"github.com/aivantu/aivantu/internal/client/storage"
	"github.com/aivantu/aivantu/internal/logging"
	"github.com/aivantu/aivantu/internal/netx"
)

type ArchiveService interface {
	Enabled() bool
	Archive(ctx context.Context, renderID string) (string, error)
}

type archiveService struct {
	presigner storage.Presigner
	renders   renders.Repository
	hc        *http.Client
	log       logging.Logger
	now       func() time.Time
}

// NewArchiveService returns an ArchiveService. A nil presigner disables
// archiving.
func NewArchiveService(presigner storage.Presigner, repo renders.Repository, hc *http.Client, log logging.Logger) ArchiveService {
	return &archiveService{presigner: presigner, renders: repo, hc: hc, log: log, now: time.Now}
}

func (s *archiveService) Enabled() bool { return s.presigner != nil }

// Archive uploads a downloaded render to the bucket and returns its key.
// A render that is already archived is not uploaded again.
func (s *archiveService) Archive(ctx context.Context, renderID string) (string, error) {
	if !s.Enabled() {
		return "", ErrArchiveDisabled
	}

	rec, err := s.renders.Get(ctx, renderID)
	if err != nil {
		return "", err
	}
	if rec.ArchiveKey != "" {
		return rec.ArchiveKey, nil
	}
	if !rec.Downloaded() {
		return "", fmt.Errorf("%w: run download first", ErrNotDownloaded)
	}

	key, err := s.upload(ctx, rec)
	if err != nil {
		return "", err
	}

	if err := s.renders.SetArchiveKey(ctx, rec.ID, key); err != nil {
		return "", err
	}
	s.log.Info(ctx, "render archived", "render_id", rec.ID, "bucket", s.presigner.Bucket(), "key", key)
	return key, nil
}

func (s *archiveService) upload(ctx context.Context, rec *models.Render) (string, error) {
	f, err := os.Open(rec.LocalPath)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", rec.LocalPath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", rec.LocalPath, err)
	}

	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(rec.LocalPath)))
	key := storage.ObjectKey(s.now(), rec.UserEmail, filepath.Base(rec.LocalPath))

	url, err := s.presigner.PresignPut(ctx, key, contentType)
	if err != nil {
		return "", err
	}

	if err := netx.UploadToPresignedURL(ctx, s.hc, url, f, info.Size(), contentType); err != nil {
		return "", fmt.Errorf("archive %s: %w", rec.ID, err)
	}
	return key, nil
}
