package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/aivantu/aivantu/internal/client/client"
	"github.com/aivantu/aivantu/internal/client/models"
	"github.com/aivantu/aivantu/internal/filex"
	"github.com/stretchr/testify/require"
)

var dbSeq atomic.Int64

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := client.InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

type staticIdentity string

func (s staticIdentity) Email(context.Context) string { return string(s) }

// fakeClient implements client.Client with canned results and records the
// arguments of the last call of each kind.
type fakeClient struct {
	HealthErr error

	TemplatesRet []models.Template
	TemplatesErr error
	TemplatesN   int

	VoicesRet []models.VoiceOption
	VoicesErr error

	GalleryRet []models.Video
	GalleryErr error

	OutputsRet []models.Video

	ProfileRet *models.Profile
	ProfileErr error

	SaveProfileErr error

	GenerateRet *models.RenderResult
	GenerateErr error

	AssistantRet *models.AssistantReply

	PreviewRet *models.VoicePreview

	OrderRet *models.PaymentOrder
	OrderErr error

	DownloadBody string
	DownloadErr  error

	LastGalleryEmail string
	LastProfileEmail string
	LastSavedProfile models.Profile
	LastGenerate     models.GenerateRequest
	LastQuery        string
	LastLang         string
	LastPreviewText  string
	LastProvider     models.Provider
	LastOrder        models.OrderRequest
	LastDownloadURL  string
	Token            string
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Health(context.Context) error { return f.HealthErr }

func (f *fakeClient) Templates(context.Context) ([]models.Template, error) {
	f.TemplatesN++
	return f.TemplatesRet, f.TemplatesErr
}

func (f *fakeClient) Voices(context.Context) ([]models.VoiceOption, error) {
	return f.VoicesRet, f.VoicesErr
}

func (f *fakeClient) Gallery(_ context.Context, email string) ([]models.Video, error) {
	f.LastGalleryEmail = email
	return f.GalleryRet, f.GalleryErr
}

func (f *fakeClient) Outputs(context.Context) ([]models.Video, error) { return f.OutputsRet, nil }

func (f *fakeClient) GetProfile(_ context.Context, email string) (*models.Profile, error) {
	f.LastProfileEmail = email
	if f.ProfileErr != nil {
		return nil, f.ProfileErr
	}
	p := *f.ProfileRet
	return &p, nil
}

func (f *fakeClient) SaveProfile(_ context.Context, p models.Profile) (*models.Profile, error) {
	f.LastSavedProfile = p
	if f.SaveProfileErr != nil {
		return nil, f.SaveProfileErr
	}
	saved := p.WithDefaults()
	return &saved, nil
}

func (f *fakeClient) Upload(_ context.Context, kind filex.Kind, path string) (*models.UploadResult, error) {
	return &models.UploadResult{URL: "uploads/" + path, Kind: string(kind)}, nil
}

func (f *fakeClient) GenerateVideo(_ context.Context, req models.GenerateRequest) (*models.RenderResult, error) {
	f.LastGenerate = req
	if f.GenerateErr != nil {
		return nil, f.GenerateErr
	}
	r := f.GenerateRet.WithDefaults()
	return &r, nil
}

func (f *fakeClient) Assistant(_ context.Context, query, lang string) (*models.AssistantReply, error) {
	f.LastQuery, f.LastLang = query, lang
	return f.AssistantRet, nil
}

func (f *fakeClient) PreviewVoice(_ context.Context, text, lang string) (*models.VoicePreview, error) {
	f.LastPreviewText, f.LastLang = text, lang
	return f.PreviewRet, nil
}

func (f *fakeClient) CreateOrder(_ context.Context, provider models.Provider, req models.OrderRequest) (*models.PaymentOrder, error) {
	f.LastProvider, f.LastOrder = provider, req
	return f.OrderRet, f.OrderErr
}

func (f *fakeClient) Download(_ context.Context, rawURL string, w io.Writer) (int64, error) {
	f.LastDownloadURL = rawURL
	if f.DownloadErr != nil {
		_, _ = io.WriteString(w, "partial")
		return 0, f.DownloadErr
	}
	return io.Copy(w, strings.NewReader(f.DownloadBody))
}

func (f *fakeClient) SetToken(token string) { f.Token = token }
