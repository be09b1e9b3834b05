package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aivantu/aivantu/internal/client/client"
	"github.com/aivantu/aivantu/internal/client/models"
	"github.com/aivantu/aivantu/internal/client/repositories/renders"
	"github.com/aivantu/aivantu/internal/common"
	"github.com/aivantu/aivantu/internal/cryptox"
	"github.com/aivantu/aivantu/internal/filex"
	"github.com/aivantu/aivantu/internal/logging"
	"github.com/google/uuid"
)

// Identity tells services who requests are made for.
type Identity interface {
	Email(ctx context.Context) string
}

// Download describes a file saved locally.
type Download struct {
	Path     string
	Bytes    int64
	Checksum string
}

type VideoService interface {
	Generate(ctx context.Context, req models.GenerateRequest) (*models.Render, error)
	Gallery(ctx context.Context) ([]models.Video, error)
	Outputs(ctx context.Context) ([]models.Video, error)
	Download(ctx context.Context, rawURL string, videoID int64) (*Download, error)
	History(ctx context.Context, limit int) ([]models.Render, error)
	Render(ctx context.Context, id string) (*models.Render, error)
	Upload(ctx context.Context, kind filex.Kind, path string) (*models.UploadResult, error)
}

type videoService struct {
	client      client.Client
	renders     renders.Repository
	identity    Identity
	downloadDir string
	log         logging.Logger
	now         func() time.Time
}

func NewVideoService(client client.Client, repo renders.Repository, identity Identity, downloadDir string, log logging.Logger) VideoService {
	return &videoService{
		client:      client,
		renders:     repo,
		identity:    identity,
		downloadDir: downloadDir,
		log:         log,
		now:         time.Now,
	}
}

// Generate fills request defaults, checks attachments locally and submits
// the render. Every answered request lands in render history, including
// failures; a result other than "done" is returned as *RenderError.
func (s *videoService) Generate(ctx context.Context, req models.GenerateRequest) (*models.Render, error) {
	req = req.WithDefaults(s.now(), s.identity.Email(ctx))
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rec := &models.Render{
		ID:         uuid.NewString(),
		UserEmail:  req.UserEmail,
		Title:      req.Title,
		Template:   req.Template,
		Quality:    req.Quality,
		LengthType: req.LengthType,
		Lang:       req.Lang,
	}

	s.log.Info(ctx, "submitting render", "render_id", rec.ID, "title", req.Title,
		"characters", len(req.Characters), "quality", req.Quality)

	res, err := s.client.GenerateVideo(ctx, req)
	if err != nil {
		var se *client.StatusError
		if !errors.As(err, &se) {
			return nil, err
		}
		rec.Status = models.RenderStatusError
		rec.Message = se.Message
		s.record(ctx, rec)
		return rec, &RenderError{Status: fmt.Sprintf("HTTP %d", se.Code), Message: se.Message}
	}

	rec.VideoID = res.VideoID
	rec.Status = res.Status
	rec.DownloadURL = res.DownloadURL
	rec.Message = common.FirstNonEmpty(res.Message, res.Details)
	s.record(ctx, rec)

	if !res.IsDone() {
		return rec, &RenderError{Status: res.Status, Message: res.Message, Details: res.Details}
	}
	return rec, nil
}

// record saves rec to history. A history failure does not fail the render.
func (s *videoService) record(ctx context.Context, rec *models.Render) {
	if err := s.renders.Insert(ctx, rec); err != nil {
		s.log.Error(ctx, "failed to record render", "render_id", rec.ID, "error", err)
	}
}

func (s *videoService) Gallery(ctx context.Context) ([]models.Video, error) {
	videos, err := s.client.Gallery(ctx, s.identity.Email(ctx))
	if err != nil {
		return nil, err
	}
	sortNewestFirst(videos)
	return videos, nil
}

func (s *videoService) Outputs(ctx context.Context) ([]models.Video, error) {
	return s.client.Outputs(ctx)
}

// Download saves the file at rawURL into the download directory. When
// videoID matches a render in history, the render is marked downloaded.
func (s *videoService) Download(ctx context.Context, rawURL string, videoID int64) (*Download, error) {
	if rawURL == "" {
		return nil, fmt.Errorf("%w: video has no download link", common.ErrorInvalidInput)
	}

	dir, err := filex.EnsureDir(s.downloadDir)
	if err != nil {
		return nil, err
	}

	fallback := "video.mp4"
	if videoID > 0 {
		fallback = fmt.Sprintf("video_%d.mp4", videoID)
	}
	dst := filepath.Join(dir, filex.NameFromURL(rawURL, fallback))

	n, err := s.fetch(ctx, rawURL, dst)
	if err != nil {
		return nil, err
	}

	sum, err := cryptox.FileChecksum(dst)
	if err != nil {
		return nil, fmt.Errorf("checksum %s: %w", dst, err)
	}

	d := &Download{Path: dst, Bytes: n, Checksum: sum}
	s.log.Info(ctx, "downloaded video", "path", dst, "bytes", n)

	if videoID > 0 {
		rec, err := s.renders.GetByVideoID(ctx, videoID)
		switch {
		case errors.Is(err, common.ErrorNotFound):
		case err != nil:
			s.log.Warn(ctx, "render lookup failed", "video_id", videoID, "error", err)
		default:
			if err := s.renders.MarkDownloaded(ctx, rec.ID, dst, sum); err != nil {
				s.log.Warn(ctx, "failed to mark render downloaded", "render_id", rec.ID, "error", err)
			}
		}
	}
	return d, nil
}

// fetch writes into a temporary file and renames it over dst, so a failed
// download never leaves a truncated video behind.
func (s *videoService) fetch(ctx context.Context, rawURL, dst string) (int64, error) {
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".download-*")
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := s.client.Download(ctx, rawURL, tmp)
	if cerr := tmp.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return 0, err
	}

	if err := os.Rename(tmp.Name(), dst); err != nil {
		return 0, fmt.Errorf("save %s: %w", dst, err)
	}
	return n, nil
}

func (s *videoService) History(ctx context.Context, limit int) ([]models.Render, error) {
	return s.renders.List(ctx, s.identity.Email(ctx), limit)
}

func (s *videoService) Render(ctx context.Context, id string) (*models.Render, error) {
	return s.renders.Get(ctx, id)
}

// Upload sends a single asset to the backend after checking it locally.
func (s *videoService) Upload(ctx context.Context, kind filex.Kind, path string) (*models.UploadResult, error) {
	if err := filex.CheckAttachment(path, kind); err != nil {
		return nil, err
	}
	return s.client.Upload(ctx, kind, path)
}
