package renders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aivantu/aivantu/internal/client/models"
	"github.com/aivantu/aivantu/internal/common"
	"github.com/aivantu/aivantu/internal/dbx"
)

const renderColumns = `id, video_id, user_email, title, template, quality, length_type, lang,
	status, download_url, message, local_path, checksum, archive_key, created_at, updated_at`

type SQLiteRepository struct {
	db  dbx.DBTX
	now func() time.Time
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

func (r *SQLiteRepository) Insert(ctx context.Context, rec *models.Render) error {
	now := r.now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `INSERT INTO renders (`+renderColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.VideoID, rec.UserEmail, rec.Title, rec.Template, rec.Quality, rec.LengthType, rec.Lang,
		rec.Status, rec.DownloadURL, rec.Message, rec.LocalPath, rec.Checksum, rec.ArchiveKey,
		rec.CreatedAt.UTC(), rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert render %s: %w", rec.ID, err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id string) (*models.Render, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+renderColumns+` FROM renders WHERE id = ?`, id)
	rec, err := scanRender(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("render %s: %w", id, common.ErrorNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get render %s: %w", id, err)
	}
	return rec, nil
}

// GetByVideoID returns the most recent render the backend answered with
// videoID.
func (r *SQLiteRepository) GetByVideoID(ctx context.Context, videoID int64) (*models.Render, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+renderColumns+` FROM renders
		WHERE video_id = ? ORDER BY created_at DESC LIMIT 1`, videoID)
	rec, err := scanRender(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("render for video %d: %w", videoID, common.ErrorNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get render for video %d: %w", videoID, err)
	}
	return rec, nil
}

// List returns the newest renders first. An empty userEmail lists everyone's;
// limit <= 0 means no limit.
func (r *SQLiteRepository) List(ctx context.Context, userEmail string, limit int) ([]models.Render, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, `SELECT `+renderColumns+` FROM renders
		WHERE (? = '' OR user_email = ?)
		ORDER BY created_at DESC, id
		LIMIT ?`, userEmail, userEmail, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list renders: %w", err)
	}
	defer rows.Close()

	var out []models.Render
	for rows.Next() {
		rec, err := scanRender(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan render row: %w", err)
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate render rows: %w", err)
	}
	return out, nil
}

func (r *SQLiteRepository) MarkDownloaded(ctx context.Context, id, localPath, checksum string) error {
	return r.update(ctx, id, `local_path = ?, checksum = ?`, localPath, checksum)
}

func (r *SQLiteRepository) SetArchiveKey(ctx context.Context, id, key string) error {
	return r.update(ctx, id, `archive_key = ?`, key)
}

func (r *SQLiteRepository) update(ctx context.Context, id, set string, args ...any) error {
	args = append(args, r.now().UTC(), id)
	res, err := r.db.ExecContext(ctx, `UPDATE renders SET `+set+`, updated_at = ? WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("failed to update render %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update render %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("render %s: %w", id, common.ErrorNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRender(s scanner) (*models.Render, error) {
	var rec models.Render
	err := s.Scan(&rec.ID, &rec.VideoID, &rec.UserEmail, &rec.Title, &rec.Template, &rec.Quality,
		&rec.LengthType, &rec.Lang, &rec.Status, &rec.DownloadURL, &rec.Message, &rec.LocalPath,
		&rec.Checksum, &rec.ArchiveKey, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
